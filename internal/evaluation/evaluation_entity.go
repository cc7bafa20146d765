package evaluation

import (
	"time"

	"go-personnel/internal/record"
)

type Evaluation struct {
	ID              int         `gorm:"primaryKey;column:id"`
	PersonalID      int         `gorm:"column:personal_id"`
	CUIP            string      `gorm:"column:cuip"`
	TipoEvaluacion  string      `gorm:"column:tipo_evaluacion"`
	FechaEvaluacion record.Date `gorm:"column:fecha_evaluacion;type:date"`
	Resultado       string      `gorm:"column:resultado"`
	Vigencia        record.Date `gorm:"column:vigencia;type:date"`
	ArchivoPDF      *string     `gorm:"column:archivo_pdf"`
	Activo          bool        `gorm:"column:activo;default:true"`
	FechaRegistro   time.Time   `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP"`
}

func (Evaluation) TableName() string {
	return Descriptor.Table
}
