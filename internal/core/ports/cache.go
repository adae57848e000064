package ports

import "context"

// ContentCache is a read-through JSON cache for the hot public listings.
// Get reports whether the key was present; cache errors are advisory and
// callers fall back to the repository.
type ContentCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}
