package absence

import "time"

// Absence is an incapacity or leave of absence; Fechas is free text as
// captured on the paper form (e.g. "01/03/2024 al 15/03/2024").
type Absence struct {
	ID                       int       `gorm:"primaryKey;column:id" json:"id"`
	PersonalID               int       `gorm:"column:personal_id" json:"personal_id"`
	Motivo                   string    `gorm:"column:motivo" json:"motivo"`
	Fechas                   string    `gorm:"column:fechas" json:"fechas"`
	Documentos               *string   `gorm:"column:documentos" json:"documentos"`
	TrayectoriaInstitucional *string   `gorm:"column:trayectoria_institucional" json:"trayectoria_institucional"`
	FechaRegistro            time.Time `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP" json:"fecha_registro"`
}

func (Absence) TableName() string { return Descriptor.Table }

type CreateAbsenceRequest struct {
	PersonalID               string `form:"personal_id" binding:"required,notblank"`
	Motivo                   string `form:"motivo" binding:"required,notblank"`
	Fechas                   string `form:"fechas" binding:"required,notblank"`
	TrayectoriaInstitucional string `form:"trayectoria_institucional"`
}
