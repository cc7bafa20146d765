package training

type CreateTrainingRequest struct {
	PersonalID    string `form:"personal_id" binding:"required,notblank"`
	Curso         string `form:"curso" binding:"required,notblank"`
	Tipo          string `form:"tipo" binding:"required,notblank"`
	Institucion   string `form:"institucion"`
	Fecha         string `form:"fecha" binding:"required,notblank"`
	Resultado     string `form:"resultado" binding:"required,notblank"`
	Observaciones string `form:"observaciones"`
}
