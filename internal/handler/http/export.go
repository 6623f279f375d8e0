package http

import (
	"net/http"

	"github.com/cmlabs-hris/xls-import-go/internal/handler/http/response"
)

// Export handles GET /api/exports/year{year}.ts
func (h *yearHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req, err := yearRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.yearService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}
