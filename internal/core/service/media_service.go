package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

// MediaService stores uploaded files under namespaced, collision-free keys
// and returns the public URL to persist on the owning record.
type MediaService struct {
	storage ports.MediaStorage
}

func NewMediaService(storage ports.MediaStorage) *MediaService {
	return &MediaService{storage: storage}
}

// Upload writes the file under portfolio/<area>/<uuid><ext>.
func (s *MediaService) Upload(ctx context.Context, area string, up ports.MediaUpload) (string, error) {
	key := storageKey(area, up.FileName)
	url, err := s.storage.Upload(ctx, key, up.ContentType, up.Content, up.Size)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return url, nil
}

func storageKey(area, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("portfolio/%s/%s%s", area, uuid.NewString(), ext)
}
