package app

import (
	"context"
	"fmt"
	"net/http"

	"go-personnel/internal/attachment"
	"go-personnel/internal/bootstrap"
	"go-personnel/internal/middleware"
	"go-personnel/internal/migration"
	"go-personnel/internal/shared/connection"
	"go-personnel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRouter returns the engine with the global middleware chain.
func NewRouter(cfg Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.SetupCORS(cfg.CORSOrigins),
	)
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ruta no encontrada", "")
	})
	return r
}

// BuildApp connects the stores, creates missing tables and mounts every
// module under /api. The returned cleanup closes the connections.
func BuildApp(ctx context.Context, cfg Config, router *gin.Engine, audit bootstrap.AuditLogger) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DBRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	cleanup := func() { _ = sqlDB.Close() }

	migrator, err := migration.New(gormDB)
	if err != nil {
		cleanup()
		return nil, err
	}
	if err := migrator.RunAll(ctx); err != nil {
		cleanup()
		return nil, fmt.Errorf("schema bootstrap: %w", err)
	}
	logger.Info("schema ready")

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 3)
		if err != nil {
			logger.Warn("redis unavailable, idempotency disabled", zap.Error(err))
			rdb = nil
		} else {
			closeDB := cleanup
			cleanup = func() {
				_ = rdb.Close()
				closeDB()
			}
		}
	}

	storage, err := newAttachmentStorage(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, err
	}
	if local, ok := storage.(*attachment.LocalStorage); ok {
		router.Static("/uploads", local.Root())
	}

	registerModules(router.Group("/api"), modules{
		db:          sqlDB,
		gormDB:      gormDB,
		rdb:         rdb,
		attachments: attachment.NewManager(storage),
		audit:       audit,
		logger:      zap.L(),
	})

	return cleanup, nil
}

func newAttachmentStorage(ctx context.Context, cfg Config) (attachment.Storage, error) {
	switch cfg.AttachmentBackend {
	case AttachmentBackendS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required for the s3 attachment backend")
		}
		return attachment.NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Endpoint)
	case AttachmentBackendLocal, "":
		local := attachment.NewLocalStorage(cfg.UploadsDir)
		if err := local.Prepare(); err != nil {
			return nil, err
		}
		return local, nil
	default:
		return nil, fmt.Errorf("unknown ATTACHMENT_BACKEND %q", cfg.AttachmentBackend)
	}
}
