package evaluation

import (
	"time"

	"go-personnel/internal/record"
)

type CreateEvaluationRequest struct {
	PersonalID      string `form:"personal_id" binding:"required,notblank"`
	CUIP            string `form:"cuip" binding:"required,notblank"`
	TipoEvaluacion  string `form:"tipo_evaluacion" binding:"required,notblank"`
	FechaEvaluacion string `form:"fecha_evaluacion" binding:"required,notblank"`
	Resultado       string `form:"resultado" binding:"required,notblank"`
	Vigencia        string `form:"vigencia" binding:"required,notblank"`
}

type EvaluationResponse struct {
	ID              int         `json:"id"`
	PersonalID      int         `json:"personal_id"`
	CUIP            string      `json:"cuip"`
	TipoEvaluacion  string      `json:"tipo_evaluacion"`
	FechaEvaluacion record.Date `json:"fecha_evaluacion"`
	Resultado       string      `json:"resultado"`
	Vigencia        record.Date `json:"vigencia"`
	ArchivoPDF      *string     `json:"archivo_pdf"`
	Activo          bool        `json:"activo"`
	FechaRegistro   time.Time   `json:"fecha_registro"`
	EsVigente       bool        `json:"esVigente"`
}

func toResponse(e Evaluation, now time.Time) EvaluationResponse {
	current := false
	if c, err := ParseCUIP(e.CUIP); err == nil {
		current = c.IsCurrent(now)
	}
	return EvaluationResponse{
		ID:              e.ID,
		PersonalID:      e.PersonalID,
		CUIP:            e.CUIP,
		TipoEvaluacion:  e.TipoEvaluacion,
		FechaEvaluacion: e.FechaEvaluacion,
		Resultado:       e.Resultado,
		Vigencia:        e.Vigencia,
		ArchivoPDF:      e.ArchivoPDF,
		Activo:          e.Activo,
		FechaRegistro:   e.FechaRegistro,
		EsVigente:       current,
	}
}
