package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

// CacheKeyProjects is the cache slot for the public projects listing.
const CacheKeyProjects = "projects:list"

// ProjectService implements project CRUD with a read-through cache on the
// public listing. Cache failures degrade to the repository and are logged.
type ProjectService struct {
	repo  ports.ProjectRepository
	cache ports.ContentCache
	log   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, cache ports.ContentCache, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, cache: cache, log: log}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	var cached []domain.Project
	if hit, err := s.cache.Get(ctx, CacheKeyProjects, &cached); err != nil {
		s.log.Warn().Err(err).Msg("project cache read failed")
	} else if hit {
		return cached, nil
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, CacheKeyProjects, projects); err != nil {
		s.log.Warn().Err(err).Msg("project cache write failed")
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Project{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		GithubURL:    in.GithubURL,
		DemoURL:      in.DemoURL,
		Technologies: in.Technologies,
		Featured:     in.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	updated, err := s.repo.Update(ctx, id, &domain.Project{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		GithubURL:    in.GithubURL,
		DemoURL:      in.DemoURL,
		Technologies: in.Technologies,
		Featured:     in.Featured,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProjectService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, CacheKeyProjects); err != nil {
		s.log.Warn().Err(err).Msg("project cache invalidation failed")
	}
}
