package receipts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes receipt blobs under a base directory, one folder per
// month. It implements usecase.ReceiptStore.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipts dir: %w", err)
	}

	return &LocalStore{baseDir: baseDir}, nil
}

// Store writes the blob and returns its path relative to the base dir.
// The stored name is prefixed with a timestamp so uploads never collide.
func (s *LocalStore) Store(ctx context.Context, name string, blob []byte) (string, error) {
	name = sanitize(name)
	if name == "" {
		name = "receipt"
	}

	now := time.Now().UTC()
	rel := filepath.Join(now.Format("2006-01"), fmt.Sprintf("%d_%s", now.UnixNano(), name))
	full := filepath.Join(s.baseDir, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create receipt month dir: %w", err)
	}

	if err := os.WriteFile(full, blob, 0o644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}

	return rel, nil
}

// Open returns the absolute path of a stored receipt, refusing paths that
// escape the base directory.
func (s *LocalStore) Open(rel string) (string, error) {
	full := filepath.Join(s.baseDir, filepath.Clean(rel))
	if !strings.HasPrefix(full, s.baseDir) {
		return "", fmt.Errorf("invalid receipt path %q", rel)
	}

	if _, err := os.Stat(full); err != nil {
		return "", err
	}

	return full, nil
}

// sanitize strips path separators and control characters from an uploaded
// file name.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		if r < 32 || r == '/' || r == '\\' {
			return -1
		}
		return r
	}, name)
}
