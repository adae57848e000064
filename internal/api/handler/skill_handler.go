package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(svc ports.SkillService) *SkillHandler {
	return &SkillHandler{service: svc}
}

type skillCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	LogoURL  string `json:"logoUrl"`
	LogoSVG  string `json:"logoSvg"`
	Category string `json:"category"`
}

type skillUpdateRequest struct {
	Name     *string `json:"name"`
	LogoURL  *string `json:"logoUrl"`
	LogoSVG  *string `json:"logoSvg"`
	Category *string `json:"category"`
	IsActive *bool   `json:"isActive"`
}

type profileSkillRequest struct {
	SkillID string `json:"skillId" validate:"required"`
	Level   int    `json:"level"   validate:"gte=0,lte=100"`
}

type profileSkillsRequest struct {
	Skills []profileSkillRequest `json:"skills" validate:"required,min=1,dive"`
}

type skillLevelRequest struct {
	Level int `json:"level" validate:"gte=0,lte=100"`
}

// List handles GET /api/skills with optional category and search filters.
func (h *SkillHandler) List(c echo.Context) error {
	filter := ports.SkillFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	skills, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// Categories handles GET /api/skills/categories.
func (h *SkillHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create handles POST /api/skills. A skill needs a name and at least one
// logo representation, either a URL or inline SVG.
func (h *SkillHandler) Create(c echo.Context) error {
	var req skillCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.LogoURL == "" && req.LogoSVG == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "either logoUrl or logoSvg is required")
	}

	skill, err := h.service.Create(c.Request().Context(), ports.SkillCreateInput{
		Name:     req.Name,
		LogoURL:  req.LogoURL,
		LogoSVG:  req.LogoSVG,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, skill)
}

// Update handles PUT /api/skills/:id with partial updates.
func (h *SkillHandler) Update(c echo.Context) error {
	var req skillUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	skill, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SkillUpdateInput{
		Name:     req.Name,
		LogoURL:  req.LogoURL,
		LogoSVG:  req.LogoSVG,
		Category: req.Category,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete handles DELETE /api/skills/:id.
func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}

// ProfileSkills handles GET /api/skills/profile.
func (h *SkillHandler) ProfileSkills(c echo.Context) error {
	skills, err := h.service.ProfileSkills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// AddProfileSkills handles POST /api/skills/profile, attaching one or more
// catalog skills with a proficiency level.
func (h *SkillHandler) AddProfileSkills(c echo.Context) error {
	var req profileSkillsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := make([]ports.ProfileSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		in = append(in, ports.ProfileSkillInput{SkillID: s.SkillID, Level: s.Level})
	}

	skills, err := h.service.AddProfileSkills(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, skills)
}

// UpdateProfileSkillLevel handles PUT /api/skills/profile/:id.
func (h *SkillHandler) UpdateProfileSkillLevel(c echo.Context) error {
	var req skillLevelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Level < 0 || req.Level > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "level must be a number between 0 and 100")
	}

	skill, err := h.service.UpdateProfileSkillLevel(c.Request().Context(), c.Param("id"), req.Level)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// RemoveProfileSkill handles DELETE /api/skills/profile/:id.
func (h *SkillHandler) RemoveProfileSkill(c echo.Context) error {
	if err := h.service.RemoveProfileSkill(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Skill removed from profile"})
}
