package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=attachment_storage.go -destination=mock/storage_mock.go -package=mock
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
}

// LocalStorage keeps attachments under a root directory on disk.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

// Prepare creates the directory of every category.
func (s *LocalStorage) Prepare() error {
	for _, c := range Categories() {
		if err := os.MkdirAll(filepath.Join(s.root, filepath.FromSlash(string(c))), 0o755); err != nil {
			return err
		}
	}
	return nil
}

func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	dst := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	n, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr == nil && closeErr == nil && size >= 0 && n != size {
		copyErr = fmt.Errorf("short write: %d of %d bytes", n, size)
	}
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(dst)
		return errors.Join(copyErr, closeErr)
	}
	return nil
}

func (s *LocalStorage) Remove(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
