package competencyerrors

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
)

var (
	ErrCompetencyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Registro no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidVigencia = apperror.New(
		apperror.CodeInvalidInput,
		"La vigencia debe ser un número de años",
		http.StatusBadRequest,
	)
)
