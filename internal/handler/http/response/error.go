package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/domain/yearly"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Import domain errors
	case errors.Is(err, imports.ErrInvalidImportKey):
		Unauthorized(w, "Unauthorized - Invalid import key")
	case errors.Is(err, imports.ErrFileRequired):
		BadRequest(w, "No file uploaded", nil)
	case errors.Is(err, imports.ErrInvalidFileType):
		BadRequest(w, "Apenas arquivos .xls e .xlsx são permitidos", nil)
	case errors.Is(err, imports.ErrFileTooLarge):
		BadRequest(w, "File too large", nil)
	case errors.Is(err, imports.ErrEmptySpreadsheet):
		BadRequest(w, "Empty or invalid XLS file", nil)
	case errors.Is(err, imports.ErrInvalidSpreadsheet):
		BadRequest(w, "Empty or invalid XLS file", err.Error())

	// Year domain errors
	case errors.Is(err, yearly.ErrInvalidYear):
		BadRequest(w, "Invalid year", err.Error())

	// Default
	default:
		slog.Error("request failed", "error", err)
		InternalServerError(w, err.Error())
	}
}
