package service

import (
	"context"
	"time"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type ExperienceService struct {
	repo ports.ExperienceRepository
}

func NewExperienceService(repo ports.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

func (s *ExperienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.repo.List(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id string) (*domain.Experience, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ExperienceService) Create(ctx context.Context, in ports.ExperienceInput) (*domain.Experience, error) {
	return s.repo.Create(ctx, fromExperienceInput(in, time.Now().UTC()))
}

func (s *ExperienceService) Update(ctx context.Context, id string, in ports.ExperienceInput) (*domain.Experience, error) {
	return s.repo.Update(ctx, id, fromExperienceInput(in, time.Time{}))
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromExperienceInput(in ports.ExperienceInput, createdAt time.Time) *domain.Experience {
	// A current role has no end date regardless of what the caller sent.
	endDate := in.EndDate
	if in.Current {
		endDate = nil
	}
	return &domain.Experience{
		Company:      in.Company,
		Position:     in.Position,
		StartDate:    in.StartDate,
		EndDate:      endDate,
		Current:      in.Current,
		Description:  in.Description,
		Technologies: in.Technologies,
		Location:     in.Location,
		CompanyLogo:  in.CompanyLogo,
		CreatedAt:    createdAt,
	}
}
