package laborhistory

type CreateEntryRequest struct {
	PersonalID          string `form:"personal_id" binding:"required,notblank"`
	CUP                 string `form:"cup" binding:"required,notblank"`
	CUPVigencia         string `form:"cup_vigencia"`
	Funcion             string `form:"funcion" binding:"required,notblank"`
	Direccion           string `form:"direccion"`
	Periodo             string `form:"periodo"`
	PortacionArmasFuego string `form:"portacion_armas_fuego"`
}
