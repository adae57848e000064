package ports

import (
	"context"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

// SkillFilter narrows the public skills listing. Search matches the skill
// name case-insensitively; both fields are optional.
type SkillFilter struct {
	Category string
	Search   string
}

type SkillCreateInput struct {
	Name     string
	LogoURL  string
	LogoSVG  string
	Category string
}

// SkillUpdateInput applies only the fields that are non-nil.
type SkillUpdateInput struct {
	Name     *string
	LogoURL  *string
	LogoSVG  *string
	Category *string
	IsActive *bool
}

// ProfileSkillInput attaches a catalog skill to the profile.
type ProfileSkillInput struct {
	SkillID string
	Level   int
}

// SkillRepository persists the skill catalog. Only active skills are listed.
type SkillRepository interface {
	List(ctx context.Context, filter SkillFilter) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	FindByName(ctx context.Context, name string) (*domain.Skill, error)
	Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, id string, in SkillUpdateInput) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

// SkillService covers the catalog plus the profile's attached skills.
type SkillService interface {
	List(ctx context.Context, filter SkillFilter) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, in SkillCreateInput) (*domain.Skill, error)
	Update(ctx context.Context, id string, in SkillUpdateInput) (*domain.Skill, error)
	// Delete removes the skill and detaches it from the profile.
	Delete(ctx context.Context, id string) error

	ProfileSkills(ctx context.Context) ([]domain.ProfileSkill, error)
	AddProfileSkills(ctx context.Context, in []ProfileSkillInput) ([]domain.ProfileSkill, error)
	UpdateProfileSkillLevel(ctx context.Context, id string, level int) (*domain.ProfileSkill, error)
	RemoveProfileSkill(ctx context.Context, id string) error
}
