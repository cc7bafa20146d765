package attachment_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-personnel/internal/attachment"
	"go-personnel/internal/attachment/attachmenttest"
	attachmenterrors "go-personnel/internal/attachment/errors"
	"go-personnel/internal/attachment/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLocalManager(t *testing.T) (*attachment.Manager, string) {
	t.Helper()
	root := t.TempDir()
	store := attachment.NewLocalStorage(root)
	require.NoError(t, store.Prepare())
	return attachment.NewManager(store), root
}

func onDisk(root, relPath string) string {
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(relPath, attachment.PublicPrefix)))
}

func TestManager_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pdf under its category", func(t *testing.T) {
		m, root := newLocalManager(t)
		fh := attachmenttest.FileHeader(t, attachmenttest.PDF("Resultado.PDF"))

		p, err := m.Store(ctx, fh, attachment.CategoryEvaluations)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(p, "/uploads/evaluaciones/evaluacion-"))
		assert.True(t, strings.HasSuffix(p, ".pdf"))
		_, statErr := os.Stat(onDisk(root, p))
		assert.NoError(t, statErr)
	})

	t.Run("nested performance category", func(t *testing.T) {
		m, _ := newLocalManager(t)
		fh := attachmenttest.FileHeader(t, attachmenttest.PDF("baja.pdf"))

		p, err := m.Store(ctx, fh, attachment.CategorySeparation)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(p, "/uploads/evaluacion-desempeno/separacion-servicio/separacion-"))
	})

	t.Run("two uploads never share a name", func(t *testing.T) {
		m, _ := newLocalManager(t)
		a, err := m.Store(ctx, attachmenttest.FileHeader(t, attachmenttest.PDF("a.pdf")), attachment.CategoryTraining)
		require.NoError(t, err)
		b, err := m.Store(ctx, attachmenttest.FileHeader(t, attachmenttest.PDF("a.pdf")), attachment.CategoryTraining)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("rejects non pdf document", func(t *testing.T) {
		m, _ := newLocalManager(t)
		fh := attachmenttest.FileHeader(t, attachmenttest.File{Filename: "notes.txt", ContentType: "text/plain", Content: []byte("x")})

		_, err := m.Store(ctx, fh, attachment.CategoryCompetencies)

		assert.ErrorIs(t, err, attachmenterrors.ErrInvalidDocumentType)
	})

	t.Run("rejects document over 5MB", func(t *testing.T) {
		m, root := newLocalManager(t)
		big := attachmenttest.PDF("big.pdf")
		big.Content = make([]byte, attachment.MaxDocumentBytes+1)
		fh := attachmenttest.FileHeader(t, big)

		_, err := m.Store(ctx, fh, attachment.CategorySanctions)

		assert.ErrorIs(t, err, attachmenterrors.ErrFileTooLarge)
		entries, _ := os.ReadDir(filepath.Join(root, "evaluacion-desempeno", "estimulos-sanciones"))
		assert.Empty(t, entries)
	})

	t.Run("accepts photo with matching type", func(t *testing.T) {
		m, _ := newLocalManager(t)
		fh := attachmenttest.FileHeader(t, attachmenttest.File{Filename: "yo.JPG", ContentType: "image/jpeg", Content: []byte{0xff, 0xd8}})

		p, err := m.Store(ctx, fh, attachment.CategoryPhotos)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(p, "/uploads/fotos/foto-"))
	})

	t.Run("rejects photo whose mime and extension disagree", func(t *testing.T) {
		m, _ := newLocalManager(t)
		fh := attachmenttest.FileHeader(t, attachmenttest.File{Filename: "yo.png", ContentType: "application/pdf", Content: []byte{1}})

		_, err := m.Store(ctx, fh, attachment.CategoryPhotos)

		assert.ErrorIs(t, err, attachmenterrors.ErrInvalidImageType)
	})

	t.Run("rejects photo over 2MB", func(t *testing.T) {
		m, _ := newLocalManager(t)
		fh := attachmenttest.FileHeader(t, attachmenttest.File{Filename: "yo.gif", ContentType: "image/gif", Content: make([]byte, attachment.MaxPhotoBytes+1)})

		_, err := m.Store(ctx, fh, attachment.CategoryPhotos)

		assert.ErrorIs(t, err, attachmenterrors.ErrFileTooLarge)
	})

	t.Run("missing file", func(t *testing.T) {
		m, _ := newLocalManager(t)
		_, err := m.Store(ctx, nil, attachment.CategoryPhotos)
		assert.ErrorIs(t, err, attachmenterrors.ErrMissingFile)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock.NewMockStorage(ctrl)
		store.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").
			Return(errors.New("disk full"))

		m := attachment.NewManager(store)
		_, err := m.Store(ctx, attachmenttest.FileHeader(t, attachmenttest.PDF("x.pdf")), attachment.CategoryEvaluations)

		assert.ErrorIs(t, err, attachmenterrors.ErrWriteFailed)
	})
}

func TestManager_Stage(t *testing.T) {
	ctx := context.Background()

	t.Run("nil file yields a no-op stage", func(t *testing.T) {
		m, _ := newLocalManager(t)
		staged, err := m.Stage(ctx, nil, attachment.CategoryEvaluations)

		require.NoError(t, err)
		assert.Nil(t, staged.Path())
		staged.Commit()
		staged.Release(ctx)
	})

	t.Run("release without commit removes the file", func(t *testing.T) {
		m, root := newLocalManager(t)
		staged, err := m.Stage(ctx, attachmenttest.FileHeader(t, attachmenttest.PDF("a.pdf")), attachment.CategoryAbsences)
		require.NoError(t, err)
		p := staged.Path()
		require.NotNil(t, p)

		staged.Release(ctx)

		_, statErr := os.Stat(onDisk(root, *p))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("release after commit keeps the file", func(t *testing.T) {
		m, root := newLocalManager(t)
		staged, err := m.Stage(ctx, attachmenttest.FileHeader(t, attachmenttest.PDF("a.pdf")), attachment.CategoryLaborHistory)
		require.NoError(t, err)

		staged.Commit()
		staged.Release(ctx)

		_, statErr := os.Stat(onDisk(root, *staged.Path()))
		assert.NoError(t, statErr)
	})

	t.Run("compensation uses the storage backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock.NewMockStorage(ctrl)
		var savedKey string
		store.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				savedKey = key
				return nil
			})
		store.EXPECT().
			Remove(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) error {
				assert.Equal(t, savedKey, key)
				return nil
			})

		m := attachment.NewManager(store)
		staged, err := m.Stage(ctx, attachmenttest.FileHeader(t, attachmenttest.PDF("a.pdf")), attachment.CategoryTraining)
		require.NoError(t, err)
		staged.Release(ctx)
	})
}

func TestHandler_UploadPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		m, _ := newLocalManager(t)
		r := gin.New()
		attachment.RegisterRoutes(r.Group("/api"), attachment.NewHandler(m))

		body, ct := attachmenttest.Body(t, nil, attachmenttest.File{Field: "foto", Filename: "yo.png", ContentType: "image/png", Content: []byte{0x89, 'P', 'N', 'G'}})
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"filePath":"/uploads/fotos/foto-`)
	})

	t.Run("no file", func(t *testing.T) {
		m, _ := newLocalManager(t)
		r := gin.New()
		attachment.RegisterRoutes(r.Group("/api"), attachment.NewHandler(m))

		body, ct := attachmenttest.Body(t, map[string]string{"x": "y"})
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No se ha subido ningún archivo")
	})
}
