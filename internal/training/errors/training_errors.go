package trainingerrors

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
)

var ErrTrainingNotFound = apperror.New(
	apperror.CodeNotFound,
	"Registro de formación no encontrado",
	http.StatusNotFound,
)
