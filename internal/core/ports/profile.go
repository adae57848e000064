package ports

import (
	"context"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

type ProfileUpdateInput struct {
	Name         string
	Summary      string
	Location     string
	ProfileImage string
	CVURL        string
	SocialLinks  map[string]string
}

// ProfileRepository persists the single profile record and its attached
// skills.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, in ProfileUpdateInput) (*domain.Profile, error)
	SetProfileImage(ctx context.Context, url string) error
	SetCV(ctx context.Context, url string) error

	ListSkills(ctx context.Context) ([]domain.ProfileSkill, error)
	AddSkill(ctx context.Context, ps *domain.ProfileSkill) (*domain.ProfileSkill, error)
	UpdateSkillLevel(ctx context.Context, id string, level int) (*domain.ProfileSkill, error)
	RemoveSkill(ctx context.Context, id string) error
	// RemoveBySkillID detaches every profile skill referencing a catalog
	// skill; used when the catalog entry is deleted.
	RemoveBySkillID(ctx context.Context, skillID string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, in ProfileUpdateInput) (*domain.Profile, error)
	// UploadImage stores the picture and persists its URL on the profile.
	UploadImage(ctx context.Context, upload MediaUpload) (string, error)
	// UploadCV stores a PDF and persists its URL on the profile.
	UploadCV(ctx context.Context, upload MediaUpload) (string, error)
}
