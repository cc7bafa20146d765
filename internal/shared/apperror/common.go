package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso no encontrado",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"Error en el servidor",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Los datos proporcionados no son válidos",
		http.StatusBadRequest,
	)
)

// RequiredField builds the ValidationError for a missing field.
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s es requerido", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the ValidationError for a malformed field.
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s no es válido", field),
		http.StatusBadRequest,
	)
}
