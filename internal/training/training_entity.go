package training

import (
	"time"

	"go-personnel/internal/record"
)

// Training is an initial training course taken by an officer.
type Training struct {
	ID            int         `gorm:"primaryKey;column:id" json:"id"`
	PersonalID    int         `gorm:"column:personal_id" json:"personal_id"`
	Curso         string      `gorm:"column:curso" json:"curso"`
	Tipo          string      `gorm:"column:tipo" json:"tipo"`
	Institucion   *string     `gorm:"column:institucion" json:"institucion"`
	Fecha         record.Date `gorm:"column:fecha;type:date" json:"fecha"`
	Resultado     string      `gorm:"column:resultado" json:"resultado"`
	Observaciones *string     `gorm:"column:observaciones" json:"observaciones"`
	ArchivoPDF    *string     `gorm:"column:archivo_pdf" json:"archivo_pdf"`
	Activo        bool        `gorm:"column:activo;default:true" json:"activo"`
	FechaRegistro time.Time   `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP" json:"fecha_registro"`
}

func (Training) TableName() string {
	return Descriptor.Table
}
