package ports

import (
	"context"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

// ProjectRepository persists portfolio projects, listed newest first.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CertificateRepository persists certificates, listed by date descending.
type CertificateRepository interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	FindByID(ctx context.Context, id string) (*domain.Certificate, error)
	Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error)
	Update(ctx context.Context, id string, c *domain.Certificate) (*domain.Certificate, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ExperienceRepository persists work history, listed by start date descending.
type ExperienceRepository interface {
	List(ctx context.Context) ([]domain.Experience, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, id string, e *domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
