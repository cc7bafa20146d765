package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "DATABASE_URL", "UPLOADS_DIR", "ATTACHMENT_BACKEND", "CORS_ALLOW_ORIGINS", "HTTP_READ_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "./uploads", cfg.UploadsDir)
	assert.Equal(t, AttachmentBackendLocal, cfg.AttachmentBackend)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Contains(t, cfg.DSN(), "dbname=personal_policial")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("ATTACHMENT_BACKEND", "S3")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("OUTBOX_POLL_INTERVAL", "250ms")
	t.Setenv("APP_ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DSN())
	assert.Equal(t, AttachmentBackendS3, cfg.AttachmentBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.True(t, cfg.IsProduction())
}
