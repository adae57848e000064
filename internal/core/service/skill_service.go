package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

// CacheKeySkills is the cache slot for the unfiltered public skills listing.
const CacheKeySkills = "skills:list"

const defaultCategory = "Other"

// SkillService manages the skill catalog and the profile's attached skills.
// Only the unfiltered listing is cached; filtered queries go to the store.
type SkillService struct {
	repo    ports.SkillRepository
	profile ports.ProfileRepository
	cache   ports.ContentCache
	log     zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, profile ports.ProfileRepository, cache ports.ContentCache, log zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, profile: profile, cache: cache, log: log}
}

func (s *SkillService) List(ctx context.Context, filter ports.SkillFilter) ([]domain.Skill, error) {
	if filter.Category != "" || filter.Search != "" {
		return s.repo.List(ctx, filter)
	}

	var cached []domain.Skill
	if hit, err := s.cache.Get(ctx, CacheKeySkills, &cached); err != nil {
		s.log.Warn().Err(err).Msg("skill cache read failed")
	} else if hit {
		return cached, nil
	}

	skills, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, CacheKeySkills, skills); err != nil {
		s.log.Warn().Err(err).Msg("skill cache write failed")
	}
	return skills, nil
}

func (s *SkillService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *SkillService) Create(ctx context.Context, in ports.SkillCreateInput) (*domain.Skill, error) {
	if _, err := s.repo.FindByName(ctx, in.Name); err == nil {
		return nil, domain.ErrSkillExists
	} else if !errors.Is(err, domain.ErrSkillNotFound) {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = defaultCategory
	}
	created, err := s.repo.Create(ctx, &domain.Skill{
		Name:      in.Name,
		LogoURL:   in.LogoURL,
		LogoSVG:   in.LogoSVG,
		Category:  category,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *SkillService) Update(ctx context.Context, id string, in ports.SkillUpdateInput) (*domain.Skill, error) {
	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete removes the catalog entry and detaches it from the profile first,
// so the profile never references a vanished skill.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.profile.RemoveBySkillID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *SkillService) ProfileSkills(ctx context.Context) ([]domain.ProfileSkill, error) {
	return s.profile.ListSkills(ctx)
}

// AddProfileSkills attaches catalog skills to the profile, denormalising the
// catalog fields onto each attachment. Unknown skill ids fail the whole call.
func (s *SkillService) AddProfileSkills(ctx context.Context, in []ports.ProfileSkillInput) ([]domain.ProfileSkill, error) {
	added := make([]domain.ProfileSkill, 0, len(in))
	for _, item := range in {
		skill, err := s.repo.FindByID(ctx, item.SkillID)
		if err != nil {
			return nil, fmt.Errorf("add profile skill %s: %w", item.SkillID, err)
		}
		ps, err := s.profile.AddSkill(ctx, &domain.ProfileSkill{
			SkillID:  skill.ID,
			Name:     skill.Name,
			LogoURL:  skill.LogoURL,
			LogoSVG:  skill.LogoSVG,
			Category: skill.Category,
			Level:    item.Level,
		})
		if err != nil {
			return nil, err
		}
		added = append(added, *ps)
	}
	return added, nil
}

func (s *SkillService) UpdateProfileSkillLevel(ctx context.Context, id string, level int) (*domain.ProfileSkill, error) {
	return s.profile.UpdateSkillLevel(ctx, id, level)
}

func (s *SkillService) RemoveProfileSkill(ctx context.Context, id string) error {
	return s.profile.RemoveSkill(ctx, id)
}

func (s *SkillService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, CacheKeySkills); err != nil {
		s.log.Warn().Err(err).Msg("skill cache invalidation failed")
	}
}
