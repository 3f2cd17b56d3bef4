package proofstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTooLarge     = errors.New("payment proof exceeds size limit")
	ErrEmptyContent = errors.New("payment proof is empty")
)

// LocalStore writes payment proofs to a directory on disk, one file per
// booking, named by booking ID to keep re-submissions idempotent.
type LocalStore struct {
	dir      string
	maxBytes int64
}

func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create upload directory")
	}
	return &LocalStore{dir: cfg.Dir, maxBytes: cfg.MaxBytes}, nil
}

func (s *LocalStore) Save(_ context.Context, bookingID uuid.UUID, filename string, content io.Reader, size int64) (string, error) {
	if size == 0 {
		return "", ErrEmptyContent
	}
	if size > s.maxBytes {
		return "", ErrTooLarge
	}

	path := filepath.Join(s.dir, bookingID.String()+sanitizeExt(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", errs.Wrap(err, "failed to create proof file")
	}
	defer f.Close()

	// Size from the multipart header is advisory; enforce the cap on the
	// actual bytes too.
	written, err := io.Copy(f, io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", errs.Wrap(err, "failed to write proof file")
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", ErrTooLarge
	}

	return path, nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf", ".webp":
		return ext
	default:
		return ".bin"
	}
}
