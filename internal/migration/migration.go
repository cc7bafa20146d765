package migration

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var scripts embed.FS

// Table names in creation order; child tables reference personal.
const (
	TablePersonal               = "personal"
	TableEvaluacionesControl    = "evaluaciones_control"
	TableFormacionInicial       = "formacion_inicial"
	TableCompetenciasBasicas    = "competencias_basicas"
	TableHistorialLaboral       = "historial_laboral"
	TableIncapacidadesAusencias = "incapacidades_ausencias"
	TableEstimulosSanciones     = "estimulos_sanciones"
	TableSeparacionServicio     = "separacion_servicio"
	TableOutboxEvents           = "outbox_events"
)

var tableOrder = []string{
	TablePersonal,
	TableEvaluacionesControl,
	TableFormacionInicial,
	TableCompetenciasBasicas,
	TableHistorialLaboral,
	TableIncapacidadesAusencias,
	TableEstimulosSanciones,
	TableSeparacionServicio,
	TableOutboxEvents,
}

const tableExistsQuery = `SELECT EXISTS (
	SELECT 1 FROM information_schema.tables
	WHERE table_schema = current_schema()
	AND table_name = ?
)`

// Bootstrapper creates missing tables from the embedded DDL scripts.
type Bootstrapper struct {
	db         *gorm.DB
	statements map[string][]string
	logger     *zap.Logger
}

func New(db *gorm.DB, logger ...*zap.Logger) (*Bootstrapper, error) {
	l := zap.L().Named("migration")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("migration")
	}

	statements := make(map[string][]string, len(tableOrder))
	for _, table := range tableOrder {
		raw, err := scripts.ReadFile("sql/" + table + ".sql")
		if err != nil {
			return nil, fmt.Errorf("read ddl for %s: %w", table, err)
		}
		stmts := splitStatements(string(raw))
		if len(stmts) == 0 {
			return nil, fmt.Errorf("empty ddl for %s", table)
		}
		statements[table] = stmts
	}

	return &Bootstrapper{db: db, statements: statements, logger: l}, nil
}

// Tables returns the managed tables in creation order.
func Tables() []string {
	out := make([]string, len(tableOrder))
	copy(out, tableOrder)
	return out
}

// Statements returns the DDL statements executed for table.
func (b *Bootstrapper) Statements(table string) []string {
	return b.statements[table]
}

// EnsureTable creates table when it is missing. It is a no-op when the table
// already exists. DDL failures are returned as-is; there is no retry.
func (b *Bootstrapper) EnsureTable(ctx context.Context, table string) error {
	stmts, ok := b.statements[table]
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	var exists bool
	if err := b.db.WithContext(ctx).Raw(tableExistsQuery, table).Row().Scan(&exists); err != nil {
		b.logger.Error("table existence check failed", zap.String("table", table), zap.Error(err))
		return fmt.Errorf("check table %s: %w", table, err)
	}
	if exists {
		b.logger.Debug("table present", zap.String("table", table))
		return nil
	}

	b.logger.Info("creating missing table", zap.String("table", table))
	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		b.logger.Error("create table failed", zap.String("table", table), zap.Error(err))
		return fmt.Errorf("create table %s: %w", table, err)
	}

	b.logger.Info("table created", zap.String("table", table))
	return nil
}

// RunAll ensures every managed table exists. Called once at startup, before
// the HTTP server accepts traffic.
func (b *Bootstrapper) RunAll(ctx context.Context) error {
	for _, table := range tableOrder {
		if err := b.EnsureTable(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
