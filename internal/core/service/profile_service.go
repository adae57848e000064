package service

import (
	"context"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

// ProfileService manages the single public profile record.
type ProfileService struct {
	repo  ports.ProfileRepository
	media *MediaService
}

func NewProfileService(repo ports.ProfileRepository, media *MediaService) *ProfileService {
	return &ProfileService{repo: repo, media: media}
}

func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.repo.Get(ctx)
}

func (s *ProfileService) Update(ctx context.Context, in ports.ProfileUpdateInput) (*domain.Profile, error) {
	return s.repo.Update(ctx, in)
}

func (s *ProfileService) UploadImage(ctx context.Context, upload ports.MediaUpload) (string, error) {
	url, err := s.media.Upload(ctx, "profile", upload)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetProfileImage(ctx, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *ProfileService) UploadCV(ctx context.Context, upload ports.MediaUpload) (string, error) {
	url, err := s.media.Upload(ctx, "cv", upload)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetCV(ctx, url); err != nil {
		return "", err
	}
	return url, nil
}
