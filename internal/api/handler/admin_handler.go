package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/api/metrics"
	"github.com/dhiraj-pandit/portfolio-api/internal/api/middleware"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// adminProfile is the public view of the admin account; the password hash
// never appears here.
type adminProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Admin   adminProfile `json:"admin"`
}

type registerResponse struct {
	Message string       `json:"message"`
	Admin   adminProfile `json:"admin"`
}

type verifyResponse struct {
	Valid bool         `json:"valid"`
	User  adminProfile `json:"user"`
}

type changePasswordResponse struct {
	Message        string `json:"message"`
	RequiresReauth bool   `json:"requiresReauth"`
}

type dashboardResponse struct {
	Stats ports.DashboardStats `json:"stats"`
}

func toAdminProfile(a *domain.Admin) adminProfile {
	return adminProfile{ID: a.ID, Username: a.Username, Email: a.Email}
}

// Login authenticates the admin and returns a bearer token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, admin, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		Admin:   toAdminProfile(admin),
	})
}

// Register creates the admin account. Intended to run once at initial setup.
//
// @Summary      Create the admin account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /admin/register [post]
func (h *AdminHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.service.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "Admin user created successfully",
		Admin:   toAdminProfile(admin),
	})
}

// Verify confirms the bearer token attached to the request; the Auth
// middleware has already validated it by the time this runs.
//
// @Summary      Verify the session token
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/verify [get]
func (h *AdminHandler) Verify(c echo.Context) error {
	id, _ := c.Get(middleware.CtxAdminID).(string)
	username, _ := c.Get(middleware.CtxUsername).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)

	return c.JSON(http.StatusOK, verifyResponse{
		Valid: true,
		User:  adminProfile{ID: id, Username: username, Email: email},
	})
}

// ChangePassword rotates the admin password. The response instructs the
// client to re-authenticate; the old token stays valid until expiry.
//
// @Summary      Change the admin password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Password change"
// @Success      200   {object}  changePasswordResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/change-password [post]
func (h *AdminHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	adminID, _ := c.Get(middleware.CtxAdminID).(string)
	if err := h.service.ChangePassword(c.Request().Context(), adminID,
		req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, changePasswordResponse{
		Message:        "Password changed successfully. Please log in again.",
		RequiresReauth: true,
	})
}

// Dashboard returns the aggregate content counters.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Stats: *stats})
}
