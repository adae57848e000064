package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/api/metrics"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(svc ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

type profileRequest struct {
	Name         string            `json:"name"    validate:"required"`
	Summary      string            `json:"summary" validate:"required"`
	Location     string            `json:"location"`
	ProfileImage string            `json:"profileImage"`
	CVURL        string            `json:"cvUrl"`
	SocialLinks  map[string]string `json:"socialLinks"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Update(c.Request().Context(), ports.ProfileUpdateInput{
		Name:         req.Name,
		Summary:      req.Summary,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
		CVURL:        req.CVURL,
		SocialLinks:  req.SocialLinks,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UploadImage handles POST /api/profile/upload.
func (h *ProfileHandler) UploadImage(c echo.Context) error {
	up, closeFn, err := readImageUpload(c, "profileImage")
	if err != nil {
		return err
	}
	defer closeFn()

	url, err := h.service.UploadImage(c.Request().Context(), up)
	if err != nil {
		return err
	}
	metrics.MediaUploadsTotal.WithLabelValues("profile").Inc()

	return c.JSON(http.StatusOK, map[string]string{
		"message":         "Profile image uploaded successfully",
		"profileImageUrl": url,
	})
}

// UploadCV handles POST /api/profile/upload-cv.
func (h *ProfileHandler) UploadCV(c echo.Context) error {
	up, closeFn, err := readPDFUpload(c, "cvFile")
	if err != nil {
		return err
	}
	defer closeFn()

	url, err := h.service.UploadCV(c.Request().Context(), up)
	if err != nil {
		return err
	}
	metrics.MediaUploadsTotal.WithLabelValues("cv").Inc()

	return c.JSON(http.StatusOK, map[string]string{
		"message": "CV uploaded successfully",
		"cvUrl":   url,
	})
}
