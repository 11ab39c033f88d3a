// Package store persists generated artifacts.
package store

import (
	"context"
	"os"

	"github.com/go-logr/logr"
)

// UploadParams describes one artifact to persist.
type UploadParams struct {
	Name        string
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

// Uploader persists one artifact per call.
type Uploader interface {
	Upload(context.Context, UploadParams) error
}

// FileUploader writes artifacts to the local filesystem. The write replaces
// any existing file at the target path and is not atomic; an interrupted
// write can leave a partial file behind.
type FileUploader struct{}

func (*FileUploader) Upload(ctx context.Context, params UploadParams) error {
	log := logr.FromContextOrDiscard(ctx).WithName("file")
	log.Info("writing", "file", params.Name, "bytes", len(params.Data))
	return os.WriteFile(params.Name, params.Data, 0600)
}
