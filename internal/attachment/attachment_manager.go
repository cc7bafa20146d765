package attachment

import (
	"context"
	"mime/multipart"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	attachmenterrors "go-personnel/internal/attachment/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublicPrefix is prepended to storage keys to form the path persisted on
// records and served by the API.
const PublicPrefix = "/uploads/"

type Manager struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
}

func NewManager(storage Storage, logger ...*zap.Logger) *Manager {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Manager{
		storage: storage,
		logger:  l.Named("attachment.manager"),
		now:     time.Now,
	}
}

// Validate checks a file against the rules of its category without storing it.
func (m *Manager) Validate(fh *multipart.FileHeader, category Category) error {
	r, ok := rules[category]
	if !ok {
		return attachmenterrors.ErrUnknownCategory
	}

	invalid := attachmenterrors.ErrInvalidDocumentType
	if category.isPhoto() {
		invalid = attachmenterrors.ErrInvalidImageType
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mimes, ok := r.extensions[ext]
	if !ok {
		return invalid
	}
	if !mimeAccepted(mimes, fh.Header.Get("Content-Type")) {
		return invalid
	}
	if fh.Size > r.maxBytes {
		return attachmenterrors.ErrFileTooLarge
	}
	return nil
}

// Store validates and writes the file, returning its public relative path.
func (m *Manager) Store(ctx context.Context, fh *multipart.FileHeader, category Category) (string, error) {
	if fh == nil {
		return "", attachmenterrors.ErrMissingFile
	}
	if err := m.Validate(fh, category); err != nil {
		m.logger.Warn("rejected attachment",
			zap.String("category", string(category)),
			zap.String("filename", fh.Filename),
			zap.Int64("size", fh.Size),
			zap.Error(err),
		)
		return "", err
	}

	key := m.newKey(fh.Filename, category)

	src, err := fh.Open()
	if err != nil {
		m.logger.Error("failed to open upload", zap.Error(err))
		return "", attachmenterrors.ErrWriteFailed
	}
	defer src.Close()

	if err := m.storage.Save(ctx, key, src, fh.Size, fh.Header.Get("Content-Type")); err != nil {
		m.logger.Error("failed to save attachment", zap.String("key", key), zap.Error(err))
		return "", attachmenterrors.ErrWriteFailed
	}

	m.logger.Debug("attachment saved", zap.String("key", key))
	return PublicPrefix + key, nil
}

// Delete removes a previously stored file given its public relative path.
func (m *Manager) Delete(ctx context.Context, relPath string) error {
	key := strings.TrimPrefix(relPath, PublicPrefix)
	if key == "" || key == relPath {
		return nil
	}
	return m.storage.Remove(ctx, key)
}

// Stage stores the file ahead of a database write. A nil header yields a nil
// *Staged, whose methods are all no-ops.
func (m *Manager) Stage(ctx context.Context, fh *multipart.FileHeader, category Category) (*Staged, error) {
	if fh == nil {
		return nil, nil
	}
	p, err := m.Store(ctx, fh, category)
	if err != nil {
		return nil, err
	}
	return &Staged{manager: m, path: p}, nil
}

func (m *Manager) newKey(filename string, category Category) string {
	ext := strings.ToLower(filepath.Ext(filename))
	rnd := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	name := rules[category].prefix + strconv.FormatInt(m.now().UnixMilli(), 10) + "-" + rnd + ext
	return path.Join(string(category), name)
}

// Staged is a stored file whose owning row has not been committed yet.
// Callers defer Release and call Commit once the row is durable; Release
// then keeps the file, otherwise it deletes it.
type Staged struct {
	manager   *Manager
	path      string
	committed bool
}

// Path returns the public path to persist, or nil when nothing was uploaded.
func (s *Staged) Path() *string {
	if s == nil {
		return nil
	}
	p := s.path
	return &p
}

func (s *Staged) Commit() {
	if s == nil {
		return
	}
	s.committed = true
}

func (s *Staged) Release(ctx context.Context) {
	if s == nil || s.committed {
		return
	}
	if err := s.manager.Delete(context.WithoutCancel(ctx), s.path); err != nil {
		s.manager.logger.Error("failed to remove orphaned attachment",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return
	}
	s.manager.logger.Info("removed orphaned attachment", zap.String("path", s.path))
}
