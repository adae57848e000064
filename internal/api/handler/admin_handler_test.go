package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dhiraj-pandit/portfolio-api/internal/api/middleware"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type stubAdminService struct {
	registerFn       func(ctx context.Context, username, email, password string) (*domain.Admin, error)
	loginFn          func(ctx context.Context, username, password string) (string, *domain.Admin, error)
	changePasswordFn func(ctx context.Context, adminID, current, newPass, confirm string) error
	statsFn          func(ctx context.Context) (*ports.DashboardStats, error)
}

func (s *stubAdminService) Register(ctx context.Context, username, email, password string) (*domain.Admin, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAdminService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAdminService) ChangePassword(ctx context.Context, adminID, current, newPass, confirm string) error {
	return s.changePasswordFn(ctx, adminID, current, newPass, confirm)
}

func (s *stubAdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	return s.statsFn(ctx)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAdminHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdminService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.Admin, error) {
			if username != "admin" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "signed.jwt.token", &domain.Admin{
				ID:       "admin-1",
				Username: "admin",
				Email:    "admin@example.com",
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	body := strings.NewReader(`{"username":"admin","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["token"] != "signed.jwt.token" {
		t.Fatalf("token missing from response")
	}
	admin, ok := resp["admin"].(map[string]any)
	if !ok {
		t.Fatalf("expected admin in response")
	}
	if admin["username"] != "admin" || admin["email"] != "admin@example.com" {
		t.Fatalf("unexpected admin payload: %+v", admin)
	}
	if _, leaked := admin["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAdminHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{
		loginFn: func(context.Context, string, string) (string, *domain.Admin, error) {
			t.Fatalf("service must not be called on validation failure")
			return "", nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{
		loginFn: func(context.Context, string, string) (string, *domain.Admin, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	body := strings.NewReader(`{"username":"admin","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAdminHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{
		registerFn: func(_ context.Context, username, email, password string) (*domain.Admin, error) {
			if username != "admin" || email != "admin@example.com" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.Admin{ID: "admin-1", Username: username, Email: email}, nil
		},
	})

	body := strings.NewReader(`{"username":"admin","email":"admin@example.com","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Admin user created successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAdminHandler_Register_ShortPassword(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{
		registerFn: func(context.Context, string, string, string) (*domain.Admin, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"username":"admin","email":"admin@example.com","password":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %v", err)
	}
}

func TestAdminHandler_Verify(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAdminID, "admin-1")
	c.Set(middleware.CtxUsername, "admin")
	c.Set(middleware.CtxEmail, "admin@example.com")

	if err := h.Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["valid"] != true {
		t.Fatalf("expected valid=true, got %v", resp["valid"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "admin-1" || user["username"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAdminHandler_ChangePassword_Success(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{
		changePasswordFn: func(_ context.Context, adminID, current, newPass, confirm string) error {
			if adminID != "admin-1" {
				t.Fatalf("admin id not taken from context: %q", adminID)
			}
			if current != "old-pass" || newPass != "new-pass" || confirm != "new-pass" {
				t.Fatalf("unexpected args: %s %s %s", current, newPass, confirm)
			}
			return nil
		},
	})

	body := strings.NewReader(`{"currentPassword":"old-pass","newPassword":"new-pass","confirmPassword":"new-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAdminID, "admin-1")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["requiresReauth"] != true {
		t.Fatalf("expected requiresReauth=true, got %v", resp["requiresReauth"])
	}
}

func TestAdminHandler_Dashboard(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{
		statsFn: func(context.Context) (*ports.DashboardStats, error) {
			return &ports.DashboardStats{Projects: 4, Certificates: 2, Contacts: 7, UnreadContacts: 3}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	stats, ok := resp["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected stats in response")
	}
	if stats["projects"] != float64(4) || stats["unreadContacts"] != float64(3) {
		t.Fatalf("unexpected stats payload: %+v", stats)
	}
}
