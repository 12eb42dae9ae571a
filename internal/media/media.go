// Package media streams uploaded profile photos to an external object store.
package media

import (
	"context"
	"errors"
	"fmt"
)

// DefaultFolder is the logical namespace every photo is stored under
const DefaultFolder = "athlete-hub"

// ErrUploadFailed wraps any failure reported by the object store
var ErrUploadFailed = errors.New("media upload failed")

// Uploader stores data under folder and returns a stable public URL
type Uploader interface {
	Upload(ctx context.Context, data []byte, folder string) (string, error)
}

// Ingestor pushes photo buffers to an Uploader under a fixed folder
type Ingestor struct {
	uploader Uploader
	folder   string
}

// NewIngestor creates an Ingestor. An empty folder means DefaultFolder.
func NewIngestor(uploader Uploader, folder string) *Ingestor {
	if folder == "" {
		folder = DefaultFolder
	}
	return &Ingestor{uploader: uploader, folder: folder}
}

// Ingest uploads buf and returns its URL. The upload is detached from ctx
// cancellation so a client disconnect lets it finish or fail on its own.
func (i *Ingestor) Ingest(ctx context.Context, buf []byte) (string, error) {
	if len(buf) == 0 {
		return "", fmt.Errorf("%w: empty buffer", ErrUploadFailed)
	}
	url, err := i.uploader.Upload(context.WithoutCancel(ctx), buf, i.folder)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if url == "" {
		return "", fmt.Errorf("%w: store returned no url", ErrUploadFailed)
	}
	return url, nil
}

// DisabledUploader is used when no media store is configured
type DisabledUploader struct{}

func (DisabledUploader) Upload(context.Context, []byte, string) (string, error) {
	return "", errors.New("media store not configured")
}
