package competency

// CreateCompetencyRequest accepts the evaluation date as fecha or, from older
// forms, fechaVigencia.
type CreateCompetencyRequest struct {
	PersonalID    string `form:"personal_id" binding:"required,notblank"`
	Vigencia      string `form:"vigencia" binding:"required,notblank"`
	Resultado     string `form:"resultado" binding:"required,notblank"`
	Fecha         string `form:"fecha" binding:"required_without=FechaVigencia"`
	FechaVigencia string `form:"fechaVigencia"`
	Institucion   string `form:"institucion" binding:"required,notblank"`
	Enlaces       string `form:"enlaces"`
	Observaciones string `form:"observaciones"`
}

func (r CreateCompetencyRequest) date() string {
	if r.Fecha != "" {
		return r.Fecha
	}
	return r.FechaVigencia
}
