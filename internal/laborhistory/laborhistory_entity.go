package laborhistory

import (
	"time"

	"go-personnel/internal/record"
)

// Entry is one assignment in an officer's labor history.
type Entry struct {
	ID                     int          `gorm:"primaryKey;column:id" json:"id"`
	PersonalID             int          `gorm:"column:personal_id" json:"personal_id"`
	CUP                    string       `gorm:"column:cup" json:"cup"`
	CUPVigencia            *record.Date `gorm:"column:cup_vigencia;type:date" json:"cup_vigencia"`
	Funcion                string       `gorm:"column:funcion" json:"funcion"`
	Direccion              *string      `gorm:"column:direccion" json:"direccion"`
	Periodo                *string      `gorm:"column:periodo" json:"periodo"`
	DocumentoComprobatorio *string      `gorm:"column:documento_comprobatorio" json:"documento_comprobatorio"`
	PortacionArmasFuego    bool         `gorm:"column:portacion_armas_fuego" json:"portacion_armas_fuego"`
	FechaRegistro          time.Time    `gorm:"column:fecha_registro;default:CURRENT_TIMESTAMP" json:"fecha_registro"`
}

func (Entry) TableName() string { return Descriptor.Table }
