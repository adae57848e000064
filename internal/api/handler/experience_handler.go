package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/api/metrics"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/service"
)

type ExperienceHandler struct {
	service ports.ExperienceService
	media   *service.MediaService
}

func NewExperienceHandler(svc ports.ExperienceService, media *service.MediaService) *ExperienceHandler {
	return &ExperienceHandler{service: svc, media: media}
}

type experienceRequest struct {
	Company      string   `json:"company"      validate:"required"`
	Position     string   `json:"position"     validate:"required"`
	StartDate    string   `json:"startDate"    validate:"required"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"  validate:"required"`
	Technologies []string `json:"technologies"`
	Location     string   `json:"location"`
	CompanyLogo  string   `json:"companyLogo"`
}

func (r experienceRequest) toInput() (ports.ExperienceInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return ports.ExperienceInput{}, echo.NewHTTPError(http.StatusBadRequest, "valid startDate is required")
	}

	in := ports.ExperienceInput{
		Company:      r.Company,
		Position:     r.Position,
		StartDate:    start,
		Current:      r.Current,
		Description:  r.Description,
		Technologies: r.Technologies,
		Location:     r.Location,
		CompanyLogo:  r.CompanyLogo,
	}
	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		if err != nil {
			return ports.ExperienceInput{}, echo.NewHTTPError(http.StatusBadRequest, "valid endDate is required")
		}
		in.EndDate = &end
	}
	return in, nil
}

// List handles GET /api/experience.
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experiences)
}

// Get handles GET /api/experience/:id.
func (h *ExperienceHandler) Get(c echo.Context) error {
	experience, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experience)
}

// Create handles POST /api/experience.
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req experienceRequest
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

	experience, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, experience)
}

// Update handles PUT /api/experience/:id.
func (h *ExperienceHandler) Update(c echo.Context) error {
	var req experienceRequest
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

	experience, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experience)
}

// Delete handles DELETE /api/experience/:id.
func (h *ExperienceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Experience deleted successfully"})
}

// Upload handles POST /api/experience/upload for company logos.
func (h *ExperienceHandler) Upload(c echo.Context) error {
	up, closeFn, err := readImageUpload(c, "companyLogo")
	if err != nil {
		return err
	}
	defer closeFn()

	url, err := h.media.Upload(c.Request().Context(), "experience", up)
	if err != nil {
		return err
	}
	metrics.MediaUploadsTotal.WithLabelValues("experience").Inc()

	return c.JSON(http.StatusOK, map[string]string{"imageUrl": url})
}
