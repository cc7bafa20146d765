package attachmenterrors

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
)

var (
	ErrInvalidDocumentType = apperror.New(
		apperror.CodeAttachmentError,
		"Solo se permiten archivos PDF",
		http.StatusBadRequest,
	)
	ErrInvalidImageType = apperror.New(
		apperror.CodeAttachmentError,
		"Solo se permiten imágenes (JPEG, JPG, PNG, GIF)",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeAttachmentError,
		"El archivo excede el tamaño máximo permitido",
		http.StatusBadRequest,
	)
	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"No se ha subido ningún archivo",
		http.StatusBadRequest,
	)
	ErrUnknownCategory = apperror.New(
		apperror.CodeAttachmentError,
		"Categoría de archivo desconocida",
		http.StatusInternalServerError,
	)
	ErrWriteFailed = apperror.New(
		apperror.CodeAttachmentError,
		"No se pudo guardar el archivo",
		http.StatusInternalServerError,
	)
)
