package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin // keyed by ID
	nextID int

	findByIDCalls int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Username == admin.Username || a.Email == admin.Email {
			return nil, domain.ErrAdminExists
		}
	}
	r.nextID++
	copy := cloneAdmin(admin)
	copy.ID = fmt.Sprintf("admin-%d", r.nextID)
	r.admins[copy.ID] = cloneAdmin(copy)
	return cloneAdmin(copy), nil
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	r.findByIDCalls++
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, a := range r.admins {
		if a.Username == username || a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAdminRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	a, ok := r.admins[id]
	if !ok {
		return domain.ErrAdminNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = time.Now().UTC()
	return nil
}

type stubCountRepo struct {
	count int64
}

func (r *stubCountRepo) Count(context.Context) (int64, error) { return r.count, nil }

type stubProjectCounter struct{ stubCountRepo }

func (r *stubProjectCounter) List(context.Context) ([]domain.Project, error)        { return nil, nil }
func (r *stubProjectCounter) FindByID(context.Context, string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}
func (r *stubProjectCounter) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	return p, nil
}
func (r *stubProjectCounter) Update(_ context.Context, _ string, p *domain.Project) (*domain.Project, error) {
	return p, nil
}
func (r *stubProjectCounter) Delete(context.Context, string) error { return nil }

type stubCertificateCounter struct{ stubCountRepo }

func (r *stubCertificateCounter) List(context.Context) ([]domain.Certificate, error) { return nil, nil }
func (r *stubCertificateCounter) FindByID(context.Context, string) (*domain.Certificate, error) {
	return nil, domain.ErrCertificateNotFound
}
func (r *stubCertificateCounter) Create(_ context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	return c, nil
}
func (r *stubCertificateCounter) Update(_ context.Context, _ string, c *domain.Certificate) (*domain.Certificate, error) {
	return c, nil
}
func (r *stubCertificateCounter) Delete(context.Context, string) error { return nil }

type stubContactCounter struct {
	total  int64
	unread int64
}

func (r *stubContactCounter) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	return m, nil
}
func (r *stubContactCounter) List(context.Context) ([]domain.ContactMessage, error) { return nil, nil }
func (r *stubContactCounter) MarkRead(context.Context, string) (*domain.ContactMessage, error) {
	return nil, domain.ErrContactNotFound
}
func (r *stubContactCounter) Count(context.Context) (int64, error)       { return r.total, nil }
func (r *stubContactCounter) CountUnread(context.Context) (int64, error) { return r.unread, nil }

func newTestAdminService(repo ports.AdminRepository) *AdminService {
	return NewAdminService(
		repo,
		NewTokenManager("secret", time.Hour),
		&stubProjectCounter{},
		&stubCertificateCounter{},
		&stubContactCounter{},
	)
}

func TestAdminService_Register_Success(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	admin, err := svc.Register(context.Background(), "admin", "admin@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if admin.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if admin.PasswordHash == "s3cret-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAdminService_Register_Duplicate(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	if _, err := svc.Register(context.Background(), "admin", "admin@example.com", "pass-one"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "admin", "other@example.com", "pass-two"); !errors.Is(err, domain.ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists for duplicate username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "other", "admin@example.com", "pass-two"); !errors.Is(err, domain.ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists for duplicate email, got %v", err)
	}
}

func TestAdminService_Login_Success(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	if _, err := svc.Register(context.Background(), "admin", "admin@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, admin, err := svc.Login(context.Background(), "admin", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if admin == nil || admin.Username != "admin" {
		t.Fatalf("unexpected admin: %+v", admin)
	}

	claims, err := NewTokenManager("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "admin" || claims.Email != "admin@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	if _, err := svc.Register(context.Background(), "admin", "admin@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "admin", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// An unknown username must be indistinguishable from a wrong password.
func TestAdminService_Login_UnknownUser(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	if _, _, err := svc.Login(context.Background(), "nobody", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminService_Login_DefaultFallback(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	if _, err := svc.Register(context.Background(), "admin", "admin@example.com", defaultPassword); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "admin", defaultPassword); err != nil {
		t.Fatalf("bootstrap login failed: %v", err)
	}
}

func TestAdminService_ChangePassword_MismatchBeforeStorage(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	err := svc.ChangePassword(context.Background(), "admin-1", "current", "new-pass", "different")
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if repo.findByIDCalls != 0 {
		t.Fatalf("mismatch check must reject before touching storage, got %d lookups", repo.findByIDCalls)
	}
}

func TestAdminService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	admin, err := svc.Register(context.Background(), "admin", "admin@example.com", "old-pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err = svc.ChangePassword(context.Background(), admin.ID, "not-the-password", "new-pass", "new-pass")
	if !errors.Is(err, domain.ErrWrongCurrentPassword) {
		t.Fatalf("expected ErrWrongCurrentPassword, got %v", err)
	}
}

func TestAdminService_ChangePassword_UnknownAdmin(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	err := svc.ChangePassword(context.Background(), "ghost", "current", "new-pass", "new-pass")
	if !errors.Is(err, domain.ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestAdminService_ChangePassword_Rotates(t *testing.T) {
	repo := newStubAdminRepo()
	svc := newTestAdminService(repo)

	admin, err := svc.Register(context.Background(), "admin", "admin@example.com", "old-pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), admin.ID, "old-pass", "new-pass", "new-pass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "admin", "old-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted after rotation, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "admin", "new-pass"); err != nil {
		t.Fatalf("new password rejected after rotation: %v", err)
	}
}

func TestAdminService_Stats(t *testing.T) {
	svc := NewAdminService(
		newStubAdminRepo(),
		NewTokenManager("secret", time.Hour),
		&stubProjectCounter{stubCountRepo{count: 4}},
		&stubCertificateCounter{stubCountRepo{count: 2}},
		&stubContactCounter{total: 7, unread: 3},
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	want := ports.DashboardStats{Projects: 4, Certificates: 2, Contacts: 7, UnreadContacts: 3}
	if *stats != want {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
