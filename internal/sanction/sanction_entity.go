package sanction

import (
	"time"

	"go-personnel/internal/record"
)

// Sanction records either a reward (estímulo) or a disciplinary sanction.
type Sanction struct {
	ID            int         `gorm:"primaryKey;column:id" json:"id"`
	PersonalID    int         `gorm:"column:personal_id" json:"personal_id"`
	Tipo          string      `gorm:"column:tipo" json:"tipo"`
	Fundamento    *string     `gorm:"column:fundamento" json:"fundamento"`
	Descripcion   *string     `gorm:"column:descripcion" json:"descripcion"`
	Fecha         record.Date `gorm:"column:fecha;type:date" json:"fecha"`
	Documento     *string     `gorm:"column:documento" json:"documento"`
	Motivo        *string     `gorm:"column:motivo" json:"motivo"`
	Resultado     *string     `gorm:"column:resultado" json:"resultado"`
	Cumplimiento  *string     `gorm:"column:cumplimiento" json:"cumplimiento"`
	FechaRegistro time.Time   `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP" json:"fecha_registro"`
}

func (Sanction) TableName() string { return Descriptor.Table }
