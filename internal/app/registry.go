package app

import (
	"database/sql"

	"go-personnel/internal/absence"
	"go-personnel/internal/attachment"
	"go-personnel/internal/bootstrap"
	"go-personnel/internal/competency"
	"go-personnel/internal/evaluation"
	"go-personnel/internal/laborhistory"
	"go-personnel/internal/messaging/kafka"
	"go-personnel/internal/middleware"
	"go-personnel/internal/personnel"
	"go-personnel/internal/profile"
	"go-personnel/internal/record"
	"go-personnel/internal/report"
	"go-personnel/internal/sanction"
	"go-personnel/internal/separation"
	"go-personnel/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	db          *sql.DB
	gormDB      *gorm.DB
	rdb         *redis.Client
	attachments *attachment.Manager
	audit       bootstrap.AuditLogger
	logger      *zap.Logger
}

func registerModules(api *gin.RouterGroup, m modules) {
	// --- Shared ---
	outboxRepo := kafka.NewOutboxRepository(m.db)
	uow := record.NewUnitOfWork(m.db, record.NewPersonnelLookup(m.gormDB), m.attachments, m.logger)

	writeGuards := []gin.HandlerFunc{
		middleware.RateLimitByIP(10, 20),
		middleware.Idempotency(m.rdb),
	}

	// --- Services ---
	personnelService := personnel.NewServiceWithOutbox(m.db, personnel.NewRepository(m.gormDB), outboxRepo, m.audit, m.logger)
	evaluationService := evaluation.NewService(uow, evaluation.NewRepository(m.gormDB), m.logger)
	trainingService := training.NewService(uow, training.NewRepository(m.gormDB), m.logger)
	competencyService := competency.NewService(uow, competency.NewRepository(m.gormDB), m.logger)
	laborHistoryService := laborhistory.NewService(uow, laborhistory.NewRepository(m.gormDB), m.logger)
	absenceService := absence.NewService(uow, absence.NewRepository(m.gormDB), m.logger)
	sanctionService := sanction.NewService(uow, sanction.NewRepository(m.gormDB), m.logger)
	separationService := separation.NewServiceWithOutbox(uow, separation.NewRepository(m.gormDB), outboxRepo, m.logger)

	profileService := profile.NewService(profile.Sources{
		Personnel:    personnelService,
		Evaluations:  evaluationService,
		Training:     trainingService,
		LaborHistory: laborHistoryService,
		Absences:     absenceService,
		Sanctions:    sanctionService,
		Separations:  separationService,
	}, m.logger)
	reportService := report.NewService(report.NewRepository(m.gormDB), personnelService, m.logger)

	// --- Routes ---
	personal := personnel.RegisterRoutes(api, personnel.NewHandler(personnelService, m.logger), writeGuards...)
	profile.RegisterRoutes(personal, profile.NewHandler(profileService, m.logger))
	attachment.RegisterRoutes(api, attachment.NewHandler(m.attachments, m.logger), writeGuards[0])

	evaluation.RegisterRoutes(api, evaluation.NewHandler(evaluationService, m.logger), writeGuards...)
	training.RegisterRoutes(api, training.NewHandler(trainingService, m.logger), writeGuards...)
	competency.RegisterRoutes(api, competency.NewHandler(competencyService, m.logger), writeGuards...)

	performance := api.Group("/evaluacion-desempeno")
	laborhistory.RegisterRoutes(api, performance, laborhistory.NewHandler(laborHistoryService, m.logger), writeGuards...)
	absence.RegisterRoutes(api, performance, absence.NewHandler(absenceService, m.logger), writeGuards...)
	sanction.RegisterRoutes(api, performance, sanction.NewHandler(sanctionService, m.logger), writeGuards...)
	separation.RegisterRoutes(api, performance, separation.NewHandler(separationService, m.logger), writeGuards...)

	report.RegisterRoutes(api, report.NewHandler(reportService, m.logger), writeGuards...)
}
