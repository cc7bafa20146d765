package competency

import (
	"time"

	"go-personnel/internal/record"
)

type Competency struct {
	ID            int         `gorm:"primaryKey;column:id" json:"id"`
	PersonalID    int         `gorm:"column:personal_id" json:"personal_id"`
	Vigencia      int         `gorm:"column:vigencia" json:"vigencia"`
	Resultado     string      `gorm:"column:resultado" json:"resultado"`
	Fecha         record.Date `gorm:"column:fecha;type:date" json:"fecha"`
	Institucion   string      `gorm:"column:institucion" json:"institucion"`
	Enlaces       *string     `gorm:"column:enlaces" json:"enlaces"`
	Observaciones *string     `gorm:"column:observaciones" json:"observaciones"`
	ArchivoPDF    *string     `gorm:"column:archivo_pdf" json:"archivo_pdf"`
	Activo        bool        `gorm:"column:activo;default:true" json:"activo"`
	FechaRegistro time.Time   `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP" json:"fecha_registro"`
}

func (Competency) TableName() string { return Descriptor.Table }
