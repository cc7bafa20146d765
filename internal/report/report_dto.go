package report

import "go-personnel/internal/record"

// SearchRow is one officer with the CUIP of their latest evaluation.
type SearchRow struct {
	ID             int         `gorm:"column:id" json:"id"`
	NombreCompleto string      `gorm:"column:nombre_completo" json:"nombre_completo"`
	FechaIngreso   record.Date `gorm:"column:fecha_ingreso" json:"fecha_ingreso"`
	CURP           string      `gorm:"column:curp" json:"curp"`
	FotoPerfil     *string     `gorm:"column:foto_perfil" json:"foto_perfil"`
	Estatus        string      `gorm:"column:estatus" json:"estatus"`
	CUIP           *string     `gorm:"column:cuip" json:"cuip"`
}

type StatusGroup struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// Summary always carries both service states.
type Summary struct {
	Activo   StatusGroup `json:"Activo"`
	Inactivo StatusGroup `json:"Inactivo"`
}

type statusRow struct {
	Estatus string `gorm:"column:estatus"`
	Count   int    `gorm:"column:count"`
	Names   string `gorm:"column:names"`
}

type SetStatusRequest struct {
	ID      int    `json:"id" binding:"required,gt=0"`
	Estatus string `json:"estatus" binding:"required,notblank"`
}
