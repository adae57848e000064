package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/api/metrics"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/service"
)

type CertificateHandler struct {
	service ports.CertificateService
	media   *service.MediaService
}

func NewCertificateHandler(svc ports.CertificateService, media *service.MediaService) *CertificateHandler {
	return &CertificateHandler{service: svc, media: media}
}

type certificateRequest struct {
	Title          string `json:"title"          validate:"required"`
	Organization   string `json:"organization"   validate:"required"`
	Date           string `json:"date"           validate:"required"`
	ImageURL       string `json:"imageUrl"`
	CertificateURL string `json:"certificateUrl"`
}

func (r certificateRequest) toInput() (ports.CertificateInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ports.CertificateInput{}, echo.NewHTTPError(http.StatusBadRequest, "valid date is required")
	}
	return ports.CertificateInput{
		Title:          r.Title,
		Organization:   r.Organization,
		Date:           date,
		ImageURL:       r.ImageURL,
		CertificateURL: r.CertificateURL,
	}, nil
}

// parseDate accepts full RFC 3339 timestamps or bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// List handles GET /api/certificates.
func (h *CertificateHandler) List(c echo.Context) error {
	certificates, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certificates)
}

// Get handles GET /api/certificates/:id.
func (h *CertificateHandler) Get(c echo.Context) error {
	certificate, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certificate)
}

// Create handles POST /api/certificates.
func (h *CertificateHandler) Create(c echo.Context) error {
	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	certificate, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, certificate)
}

// Update handles PUT /api/certificates/:id.
func (h *CertificateHandler) Update(c echo.Context) error {
	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	certificate, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certificate)
}

// Delete handles DELETE /api/certificates/:id.
func (h *CertificateHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Certificate deleted successfully"})
}

// Upload handles POST /api/certificates/upload. It stores the image and
// returns its URL; the caller attaches it to a record via a later update.
func (h *CertificateHandler) Upload(c echo.Context) error {
	up, closeFn, err := readImageUpload(c, "certificateImage")
	if err != nil {
		return err
	}
	defer closeFn()

	url, err := h.media.Upload(c.Request().Context(), "certificates", up)
	if err != nil {
		return err
	}
	metrics.MediaUploadsTotal.WithLabelValues("certificates").Inc()

	return c.JSON(http.StatusOK, map[string]string{"imageUrl": url})
}
