package ports

import (
	"context"
	"io"
)

// MediaUpload is a file received from a multipart form.
type MediaUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// MediaStorage writes an object under key and returns its public URL.
type MediaStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
