package ports

import (
	"context"
	"time"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

// ProjectInput carries the full set of writable project fields; updates
// replace the record wholesale.
type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     string
	GithubURL    string
	DemoURL      string
	Technologies []string
	Featured     bool
}

type CertificateInput struct {
	Title          string
	Organization   string
	Date           time.Time
	ImageURL       string
	CertificateURL string
}

type ExperienceInput struct {
	Company      string
	Position     string
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Description  string
	Technologies []string
	Location     string
	CompanyLogo  string
}

type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type CertificateService interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	Get(ctx context.Context, id string) (*domain.Certificate, error)
	Create(ctx context.Context, in CertificateInput) (*domain.Certificate, error)
	Update(ctx context.Context, id string, in CertificateInput) (*domain.Certificate, error)
	Delete(ctx context.Context, id string) error
}

type ExperienceService interface {
	List(ctx context.Context) ([]domain.Experience, error)
	Get(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, in ExperienceInput) (*domain.Experience, error)
	Update(ctx context.Context, id string, in ExperienceInput) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
