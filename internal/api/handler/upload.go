package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// readUpload pulls the named file out of the multipart form. The body-size
// cap is enforced globally by the BodyLimit middleware.
func readUpload(c echo.Context, field string) (ports.MediaUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return ports.MediaUpload{}, nil, echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	f, err := fh.Open()
	if err != nil {
		return ports.MediaUpload{}, nil, err
	}

	return ports.MediaUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, func() { _ = f.Close() }, nil
}

// readImageUpload additionally rejects anything that is not a web image.
func readImageUpload(c echo.Context, field string) (ports.MediaUpload, func(), error) {
	up, closeFn, err := readUpload(c, field)
	if err != nil {
		return ports.MediaUpload{}, nil, err
	}

	ext := strings.ToLower(filepath.Ext(up.FileName))
	if !imageExtensions[ext] || !strings.HasPrefix(up.ContentType, "image/") {
		closeFn()
		return ports.MediaUpload{}, nil, echo.NewHTTPError(http.StatusBadRequest,
			"only image files (JPG, PNG, GIF, WebP) are allowed")
	}
	return up, closeFn, nil
}

// readPDFUpload accepts PDF files only; used for the CV.
func readPDFUpload(c echo.Context, field string) (ports.MediaUpload, func(), error) {
	up, closeFn, err := readUpload(c, field)
	if err != nil {
		return ports.MediaUpload{}, nil, err
	}

	if strings.ToLower(filepath.Ext(up.FileName)) != ".pdf" || up.ContentType != "application/pdf" {
		closeFn()
		return ports.MediaUpload{}, nil, echo.NewHTTPError(http.StatusBadRequest,
			"only PDF files are allowed for CV upload")
	}
	return up, closeFn, nil
}
