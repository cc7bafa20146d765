package evaluationerrors

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
)

var (
	ErrInvalidCUIP = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de CUIP inválido. Debe seguir el formato: 18MXHGO00012543",
		http.StatusBadRequest,
	)
	ErrCUIPExpired = apperror.New(
		apperror.CodeInvalidInput,
		"La CUIP no está vigente",
		http.StatusBadRequest,
	)
	ErrEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Evaluación no encontrada",
		http.StatusNotFound,
	)
)
