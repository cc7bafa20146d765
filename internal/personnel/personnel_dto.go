package personnel

import (
	"strings"
	"time"

	"go-personnel/internal/record"
)

// PersonnelRequest is the body of both create and update. On update a
// missing foto_perfil keeps the stored photo.
type PersonnelRequest struct {
	ApellidoPaterno  string  `json:"apellido_paterno" binding:"required,notblank"`
	ApellidoMaterno  *string `json:"apellido_materno"`
	Nombres          string  `json:"nombres" binding:"required,notblank"`
	FechaNacimiento  string  `json:"fecha_nacimiento" binding:"required,notblank"`
	FechaIngreso     string  `json:"fecha_ingreso" binding:"required,notblank"`
	GradoCargo       string  `json:"grado_cargo" binding:"required,notblank"`
	Sexo             string  `json:"sexo" binding:"required,notblank"`
	CURP             string  `json:"curp" binding:"required,len=18,alphanum"`
	Escolaridad      string  `json:"escolaridad" binding:"required,notblank"`
	TelefonoContacto string  `json:"telefono_contacto" binding:"required,notblank"`
	FotoPerfil       *string `json:"foto_perfil"`
}

type PersonnelResponse struct {
	ID                 int       `json:"id"`
	ApellidoPaterno    string    `json:"apellido_paterno"`
	ApellidoMaterno    *string   `json:"apellido_materno"`
	Nombres            string    `json:"nombres"`
	FechaNacimiento    string    `json:"fecha_nacimiento"`
	FechaIngreso       string    `json:"fecha_ingreso"`
	GradoCargo         string    `json:"grado_cargo"`
	Sexo               string    `json:"sexo"`
	CURP               string    `json:"curp"`
	Escolaridad        string    `json:"escolaridad"`
	TelefonoContacto   string    `json:"telefono_contacto"`
	FotoPerfil         *string   `json:"foto_perfil"`
	Estatus            string    `json:"estatus"`
	FechaRegistro      time.Time `json:"fecha_registro"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// FullName joins names and surnames the way rosters print them.
func (p PersonnelResponse) FullName() string {
	materno := ""
	if p.ApellidoMaterno != nil {
		materno = *p.ApellidoMaterno
	}
	return strings.Join(strings.Fields(p.Nombres+" "+p.ApellidoPaterno+" "+materno), " ")
}

func mapToResponse(p Personnel) PersonnelResponse {
	return PersonnelResponse{
		ID:                 p.ID,
		ApellidoPaterno:    p.ApellidoPaterno,
		ApellidoMaterno:    p.ApellidoMaterno,
		Nombres:            p.Nombres,
		FechaNacimiento:    p.FechaNacimiento.Format(record.DateLayout),
		FechaIngreso:       p.FechaIngreso.Format(record.DateLayout),
		GradoCargo:         p.GradoCargo,
		Sexo:               p.Sexo,
		CURP:               p.CURP,
		Escolaridad:        p.Escolaridad,
		TelefonoContacto:   p.TelefonoContacto,
		FotoPerfil:         p.FotoPerfil,
		Estatus:            p.Estatus,
		FechaRegistro:      p.FechaRegistro,
		FechaActualizacion: p.FechaActualizacion,
	}
}

func mapToListResponse(rows []Personnel) []PersonnelResponse {
	out := make([]PersonnelResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, mapToResponse(p))
	}
	return out
}

// toEntity parses the request dates and normalises optional text. The CURP
// is stored upper-cased.
func (r PersonnelRequest) toEntity() (Personnel, error) {
	nacimiento, err := record.ParseDate("fecha_nacimiento", r.FechaNacimiento)
	if err != nil {
		return Personnel{}, err
	}
	ingreso, err := record.ParseDate("fecha_ingreso", r.FechaIngreso)
	if err != nil {
		return Personnel{}, err
	}
	p := Personnel{
		ApellidoPaterno:  r.ApellidoPaterno,
		Nombres:          r.Nombres,
		FechaNacimiento:  nacimiento.Time,
		FechaIngreso:     ingreso.Time,
		GradoCargo:       r.GradoCargo,
		Sexo:             r.Sexo,
		CURP:             normalizeCURP(r.CURP),
		Escolaridad:      r.Escolaridad,
		TelefonoContacto: r.TelefonoContacto,
	}
	if r.ApellidoMaterno != nil {
		p.ApellidoMaterno = record.Optional(*r.ApellidoMaterno)
	}
	if r.FotoPerfil != nil {
		p.FotoPerfil = record.Optional(*r.FotoPerfil)
	}
	return p, nil
}
