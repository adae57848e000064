package ports

import (
	"context"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	Projects       int64 `json:"projects"`
	Certificates   int64 `json:"certificates"`
	Contacts       int64 `json:"contacts"`
	UnreadContacts int64 `json:"unreadContacts"`
}

// AdminService covers the admin credential and session lifecycle.
type AdminService interface {
	// Register creates the admin account. Intended to run once at setup;
	// a username or email collision yields domain.ErrAdminExists.
	Register(ctx context.Context, username, email, password string) (*domain.Admin, error)
	// Login verifies credentials and mints a bearer token. An unknown
	// username and a wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
	// ChangePassword rotates the password for the authenticated admin.
	// The confirmation mismatch is rejected before any storage access.
	ChangePassword(ctx context.Context, adminID, currentPassword, newPassword, confirmPassword string) error
	Stats(ctx context.Context) (*DashboardStats, error)
}
