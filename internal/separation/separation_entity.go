package separation

import (
	"time"

	"go-personnel/internal/record"
)

type Separation struct {
	ID            int         `gorm:"primaryKey;column:id" json:"id"`
	PersonalID    int         `gorm:"column:personal_id" json:"personal_id"`
	Motivo        string      `gorm:"column:motivo" json:"motivo"`
	FechaBaja     record.Date `gorm:"column:fecha_baja;type:date" json:"fecha_baja"`
	Documentos    *string     `gorm:"column:documentos" json:"documentos"`
	FechaRegistro time.Time   `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP" json:"fecha_registro"`
}

func (Separation) TableName() string { return Descriptor.Table }

type CreateSeparationRequest struct {
	PersonalID string `form:"personal_id" binding:"required,notblank"`
	Motivo     string `form:"motivo" binding:"required,notblank"`
	FechaBaja  string `form:"fecha_baja" binding:"required,notblank"`
}
