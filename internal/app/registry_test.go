package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-personnel/internal/attachment"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRegistry(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	r := NewRouter(Config{AppEnv: "test"}, zap.NewNop())
	registerModules(r.Group("/api"), modules{
		db:          sqlDB,
		gormDB:      gdb,
		attachments: attachment.NewManager(attachment.NewLocalStorage(t.TempDir())),
		logger:      zap.NewNop(),
	})
	return r, mock
}

func TestRegisterModules_MountsEveryEndpoint(t *testing.T) {
	r, _ := setupRegistry(t)

	mounted := map[string]bool{}
	for _, route := range r.Routes() {
		mounted[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/personal",
		"GET /api/personal/search",
		"GET /api/personal/:id",
		"POST /api/personal",
		"PUT /api/personal/:id",
		"DELETE /api/personal/:id",
		"GET /api/personal/:id/perfil",
		"GET /api/personal/:id/perfil/pdf",
		"POST /api/upload",
		"POST /api/evaluaciones-control",
		"GET /api/evaluaciones-control/personal/:id",
		"DELETE /api/evaluaciones-control/:id",
		"POST /api/formacion-inicial",
		"GET /api/formacion-inicial/personal/:id",
		"POST /api/competencias-basicas",
		"GET /api/competencias-basicas/personal/:id",
		"DELETE /api/competencias-basicas/:id",
		"DELETE /api/formacion-inicial/:id",
		"POST /api/evaluacion-desempeno/historial-laboral",
		"GET /api/historial-laboral/personal/:id",
		"POST /api/evaluacion-desempeno/incapacidades-ausencias",
		"GET /api/incapacidades-ausencias/personal/:id",
		"POST /api/evaluacion-desempeno/estimulos-sanciones",
		"GET /api/estimulos-sanciones/personal/:id",
		"POST /api/evaluacion-desempeno/separacion-servicio",
		"GET /api/separacion-servicio/personal/:id",
		"GET /api/reportes/search",
		"GET /api/reportes/summary",
		"GET /api/reportes/summary/xlsx",
		"PUT /api/reportes/status",
	}
	for _, route := range expected {
		assert.True(t, mounted[route], "missing route %s", route)
	}
}

func TestRegisterModules_UnknownRoute(t *testing.T) {
	r, _ := setupRegistry(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestRegisterModules_RequestIDEchoed(t *testing.T) {
	r, _ := setupRegistry(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/search", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
