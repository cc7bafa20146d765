package sanction

type CreateSanctionRequest struct {
	PersonalID   string `form:"personal_id" binding:"required,notblank"`
	Tipo         string `form:"tipo" binding:"required,notblank"`
	Fundamento   string `form:"fundamento"`
	Descripcion  string `form:"descripcion"`
	Fecha        string `form:"fecha" binding:"required,notblank"`
	Motivo       string `form:"motivo"`
	Resultado    string `form:"resultado"`
	Cumplimiento string `form:"cumplimiento"`
}
