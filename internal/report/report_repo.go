package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	Search(ctx context.Context, term string) ([]SearchRow, error)
	Summary(ctx context.Context) (Summary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const searchQuery = `
	SELECT DISTINCT ON (p.id)
		p.id,
		CONCAT_WS(' ', p.nombres, p.apellido_paterno, p.apellido_materno) AS nombre_completo,
		p.fecha_ingreso, p.curp, p.foto_perfil, p.estatus,
		ec.cuip
	FROM personal p
	LEFT JOIN evaluaciones_control ec ON ec.personal_id = p.id AND ec.activo = true
	WHERE CONCAT_WS(' ', p.nombres, p.apellido_paterno, p.apellido_materno) ILIKE @pattern
		OR p.curp ILIKE @pattern
	ORDER BY p.id, ec.fecha_evaluacion DESC NULLS LAST, ec.id DESC`

func (r *repository) Search(ctx context.Context, term string) ([]SearchRow, error) {
	var rows []SearchRow
	err := r.db.WithContext(ctx).
		Raw(searchQuery, map[string]any{"pattern": "%" + escapeLike(term) + "%"}).
		Scan(&rows).Error
	return rows, err
}

const summaryQuery = `
	SELECT
		estatus,
		COUNT(*) AS count,
		json_agg(CONCAT_WS(' ', nombres, apellido_paterno, apellido_materno)
			ORDER BY apellido_paterno, apellido_materno, nombres)::text AS names
	FROM personal
	GROUP BY estatus`

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	var rows []statusRow
	if err := r.db.WithContext(ctx).Raw(summaryQuery).Scan(&rows).Error; err != nil {
		return Summary{}, err
	}

	s := Summary{
		Activo:   StatusGroup{Names: []string{}},
		Inactivo: StatusGroup{Names: []string{}},
	}
	for _, row := range rows {
		var group *StatusGroup
		switch row.Estatus {
		case "Activo":
			group = &s.Activo
		case "Inactivo":
			group = &s.Inactivo
		default:
			continue
		}
		group.Count = row.Count
		if row.Names == "" {
			continue
		}
		if err := json.Unmarshal([]byte(row.Names), &group.Names); err != nil {
			return Summary{}, fmt.Errorf("decode %s names: %w", row.Estatus, err)
		}
	}
	return s, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
