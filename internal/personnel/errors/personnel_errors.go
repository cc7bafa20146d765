package personnelerrors

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
	ErrCURPAlreadyExists = apperror.New(
		apperror.CodeDuplicateKey,
		"El CURP ya está registrado",
		http.StatusBadRequest,
	)
	ErrInvalidPersonnelID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de personal no válido",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Estatus no válido. Valores permitidos: Activo, Inactivo",
		http.StatusBadRequest,
	)
	ErrPersonnelHasRecords = apperror.New(
		apperror.CodeConflict,
		"El personal tiene registros asociados y no puede eliminarse",
		http.StatusConflict,
	)
	ErrEmptySearch = apperror.New(
		apperror.CodeInvalidInput,
		"El término de búsqueda es requerido",
		http.StatusBadRequest,
	)
)
