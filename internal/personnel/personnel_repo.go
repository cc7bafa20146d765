package personnel

import (
	"context"
	"database/sql"
	"strings"

	"go-personnel/internal/shared/txconn"

	"gorm.io/gorm"
)

const (
	SearchLimit = 50
	nameOrder   = "apellido_paterno, apellido_materno, nombres"
)

//go:generate mockgen -source=personnel_repo.go -destination=mock/personnel_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Personnel) error
	FindAll(ctx context.Context) ([]Personnel, error)
	FindByID(ctx context.Context, id int) (*Personnel, error)
	FindByCURP(ctx context.Context, curp string) ([]Personnel, error)
	SearchByName(ctx context.Context, term string, limit int) ([]Personnel, error)
	Update(ctx context.Context, p *Personnel) error
	UpdateStatus(ctx context.Context, id int, status string) (*Personnel, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txconn.Bind(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, p *Personnel) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Personnel, error) {
	var rows []Personnel
	err := r.conn(ctx).Order(nameOrder).Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Personnel, error) {
	var p Personnel
	if err := r.conn(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByCURP(ctx context.Context, curp string) ([]Personnel, error) {
	var rows []Personnel
	err := r.conn(ctx).
		Where("UPPER(curp) = ?", strings.ToUpper(curp)).
		Order(nameOrder).
		Find(&rows).Error
	return rows, err
}

// SearchByName matches term as a case-insensitive substring of each name
// part and of the full name. LIKE wildcards in term match literally.
func (r *repository) SearchByName(ctx context.Context, term string, limit int) ([]Personnel, error) {
	var rows []Personnel
	err := r.conn(ctx).
		Where(`nombres ILIKE @pattern
			OR apellido_paterno ILIKE @pattern
			OR apellido_materno ILIKE @pattern
			OR CONCAT_WS(' ', apellido_paterno, apellido_materno, nombres) ILIKE @pattern`,
			sql.Named("pattern", "%"+escapeLike(term)+"%")).
		Order(nameOrder).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Update rewrites every column except foto_perfil, which is only replaced
// when p carries one. p is refreshed from the stored row.
func (r *repository) Update(ctx context.Context, p *Personnel) error {
	res := r.conn(ctx).Raw(`
		UPDATE personal SET
			apellido_paterno = ?,
			apellido_materno = ?,
			nombres = ?,
			fecha_nacimiento = ?,
			fecha_ingreso = ?,
			grado_cargo = ?,
			sexo = ?,
			curp = ?,
			escolaridad = ?,
			telefono_contacto = ?,
			foto_perfil = COALESCE(?, foto_perfil),
			fecha_actualizacion = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING *`,
		p.ApellidoPaterno, p.ApellidoMaterno, p.Nombres,
		p.FechaNacimiento, p.FechaIngreso, p.GradoCargo,
		p.Sexo, p.CURP, p.Escolaridad, p.TelefonoContacto,
		p.FotoPerfil, p.ID,
	).Scan(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) (*Personnel, error) {
	var p Personnel
	res := r.conn(ctx).Raw(`
		UPDATE personal SET estatus = ?, fecha_actualizacion = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING *`, status, id).Scan(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res := r.conn(ctx).Where("id = ?", id).Delete(&Personnel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
