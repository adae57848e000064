package service

import (
	"context"
	"time"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type CertificateService struct {
	repo ports.CertificateRepository
}

func NewCertificateService(repo ports.CertificateRepository) *CertificateService {
	return &CertificateService{repo: repo}
}

func (s *CertificateService) List(ctx context.Context) ([]domain.Certificate, error) {
	return s.repo.List(ctx)
}

func (s *CertificateService) Get(ctx context.Context, id string) (*domain.Certificate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CertificateService) Create(ctx context.Context, in ports.CertificateInput) (*domain.Certificate, error) {
	return s.repo.Create(ctx, &domain.Certificate{
		Title:          in.Title,
		Organization:   in.Organization,
		Date:           in.Date,
		ImageURL:       in.ImageURL,
		CertificateURL: in.CertificateURL,
		CreatedAt:      time.Now().UTC(),
	})
}

func (s *CertificateService) Update(ctx context.Context, id string, in ports.CertificateInput) (*domain.Certificate, error) {
	return s.repo.Update(ctx, id, &domain.Certificate{
		Title:          in.Title,
		Organization:   in.Organization,
		Date:           in.Date,
		ImageURL:       in.ImageURL,
		CertificateURL: in.CertificateURL,
	})
}

func (s *CertificateService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
