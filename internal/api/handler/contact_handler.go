package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(svc ports.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

type contactResponse struct {
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
}

type markReadResponse struct {
	Message string                 `json:"message"`
	Contact *domain.ContactMessage `json:"contact"`
}

// Submit handles POST /api/contact, the only unauthenticated write.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, contactResponse{
		Message:   "Message sent successfully!",
		ContactID: msg.ID,
	})
}

// List handles GET /api/contact.
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkRead handles PUT /api/contact/:id/read.
func (h *ContactHandler) MarkRead(c echo.Context) error {
	msg, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, markReadResponse{
		Message: "Message marked as read",
		Contact: msg,
	})
}
