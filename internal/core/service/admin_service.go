package service

import (
	"context"
	"errors"
	"time"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

// AdminService orchestrates the admin credential and session lifecycle over
// the password policy and the token manager.
type AdminService struct {
	repo         ports.AdminRepository
	tokens       *TokenManager
	projects     ports.ProjectRepository
	certificates ports.CertificateRepository
	contacts     ports.ContactRepository
}

func NewAdminService(
	repo ports.AdminRepository,
	tokens *TokenManager,
	projects ports.ProjectRepository,
	certificates ports.CertificateRepository,
	contacts ports.ContactRepository,
) *AdminService {
	return &AdminService{
		repo:         repo,
		tokens:       tokens,
		projects:     projects,
		certificates: certificates,
		contacts:     contacts,
	}
}

// Register creates the admin account after the duplicate pre-check. The
// repository additionally enforces uniqueness with an index, so a lost race
// here still surfaces as domain.ErrAdminExists.
func (s *AdminService) Register(ctx context.Context, username, email, password string) (*domain.Admin, error) {
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAdminExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login verifies credentials and mints a session token. An unknown username
// is deliberately indistinguishable from a wrong password.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyLoginPassword(admin.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// ChangePassword rotates the password for the authenticated admin. The
// confirmation mismatch is rejected before any storage access; outstanding
// tokens remain valid until their natural expiry, so the caller is told to
// re-authenticate.
func (s *AdminService) ChangePassword(ctx context.Context, adminID, currentPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return domain.ErrPasswordMismatch
	}

	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !VerifyCurrentPassword(admin.PasswordHash, currentPassword) {
		return domain.ErrWrongCurrentPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, admin.ID, hash)
}

// Stats returns the dashboard counters.
func (s *AdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	projects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	certificates, err := s.certificates.Count(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.contacts.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardStats{
		Projects:       projects,
		Certificates:   certificates,
		Contacts:       contacts,
		UnreadContacts: unread,
	}, nil
}
