package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/handler/http/response"
)

type ImportHandler interface {
	// ImportXLS handles POST /api/import-xls
	ImportXLS(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService imports.ImportService
	maxUploadSize int64
}

func NewImportHandler(importService imports.ImportService, maxUploadSize int64) ImportHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = imports.DefaultMaxUploadSize
	}
	return &importHandlerImpl{
		importService: importService,
		maxUploadSize: maxUploadSize,
	}
}

// ImportXLS implements ImportHandler.
func (h *importHandlerImpl) ImportXLS(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			response.HandleError(w, imports.ErrFileTooLarge)
		case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
			response.HandleError(w, imports.ErrFileRequired)
		default:
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			slog.Error("Failed to get file from form", "error", err)
		}
		response.HandleError(w, imports.ErrFileRequired)
		return
	}
	defer file.Close()

	req := imports.ImportRequest{
		File:       file,
		FileHeader: fileHeader,
		MaxSize:    h.maxUploadSize,
	}

	result, err := h.importService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
