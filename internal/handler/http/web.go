package http

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/xls-import-go/internal/handler/http/response"
	"github.com/cmlabs-hris/xls-import-go/web"
)

type WebHandler interface {
	// Index serves the upload and year summary page
	Index(w http.ResponseWriter, r *http.Request)
}

type webHandlerImpl struct {
	index      *template.Template
	exportYear int
}

type indexData struct {
	Year      int
	ImportURL string
	YearURL   string
	ExportURL string
}

func NewWebHandler(exportYear int) (WebHandler, error) {
	index, err := template.ParseFS(web.Templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &webHandlerImpl{index: index, exportYear: exportYear}, nil
}

// Index handles GET /
func (h *webHandlerImpl) Index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Year:      h.exportYear,
		ImportURL: "/api/import-xls",
		YearURL:   "/api/year/" + strconv.Itoa(h.exportYear),
		ExportURL: "/api/exports/year" + strconv.Itoa(h.exportYear) + ".ts",
	}

	var buf bytes.Buffer
	if err := h.index.Execute(&buf, data); err != nil {
		slog.Error("Failed to render index page", "error", err)
		response.InternalServerError(w, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
