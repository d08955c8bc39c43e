package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// LocalServiceImpl implements domain.ImageStorage on a local directory.
// It is the fallback when no CDN is configured; Upload returns the
// stored file's path string rather than a URL.
type LocalServiceImpl struct {
	dir string
}

// NewLocalService creates a directory-backed image store.
func NewLocalService(dir string) (domain.ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalServiceImpl{dir: dir}, nil
}

// Upload implements domain.ImageStorage.
func (s *LocalServiceImpl) Upload(_ context.Context, name string, r io.Reader, _ string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path, nil
}
