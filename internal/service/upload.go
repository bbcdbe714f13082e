package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// Uploads stores cover and category images in object storage and hands
// back public URLs.
type Uploads struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewUploads(storage model.Storage, logger *logger.Logger) *Uploads {
	return &Uploads{storage: storage, logger: logger}
}

// UploadImage stores an image under a unique key derived from the
// original file name and returns its public URL. The UUID prefix keeps
// same-named uploads from clobbering each other.
func (u *Uploads) UploadImage(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error) {
	key := fmt.Sprintf("covers/%s-%s", uuid.NewString(), sanitizeFilename(filename))

	if err := u.storage.Upload(ctx, key, reader, size, contentType); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := u.storage.PublicURL(key)

	u.logger.Info("Uploads service: image stored",
		"key", key,
		"size", size)

	return url, nil
}

// sanitizeFilename strips directory components and characters that do
// not belong in an object key.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
