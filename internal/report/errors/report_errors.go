package reporterrors

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
)

var (
	ErrEmptyQuery = apperror.New(
		apperror.CodeInvalidInput,
		"El parámetro de búsqueda es requerido",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"No se pudo generar el reporte",
		http.StatusInternalServerError,
	)
)
