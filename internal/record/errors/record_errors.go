package recorderrors

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
)

var (
	ErrPersonnelNotFound = apperror.New(
		apperror.CodeNotFound,
		"Personal no encontrado",
		http.StatusNotFound,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Registro no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidPersonalID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de personal no válido",
		http.StatusBadRequest,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de registro no válido",
		http.StatusBadRequest,
	)
	ErrDeleteNotSupported = apperror.New(
		apperror.CodeInvalidInput,
		"Este tipo de registro no admite eliminación",
		http.StatusBadRequest,
	)
)
