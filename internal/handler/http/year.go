package http

import (
	"net/http"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/yearly"
	"github.com/cmlabs-hris/xls-import-go/internal/handler/http/response"
	"github.com/cmlabs-hris/xls-import-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type YearHandler interface {
	// GetYear returns the joined employee view and summary of a year
	GetYear(w http.ResponseWriter, r *http.Request)
	// Export downloads the records of a year as a TypeScript module
	Export(w http.ResponseWriter, r *http.Request)
}

type yearHandlerImpl struct {
	yearService yearly.YearService
}

func NewYearHandler(yearService yearly.YearService) YearHandler {
	return &yearHandlerImpl{yearService: yearService}
}

func yearRequest(r *http.Request) (yearly.YearRequest, error) {
	year, ok := validator.ParseYear(chi.URLParam(r, "year"))
	if !ok {
		return yearly.YearRequest{}, yearly.ErrInvalidYear
	}
	return yearly.YearRequest{Year: year}, nil
}

// GetYear handles GET /api/year/{year}
func (h *yearHandlerImpl) GetYear(w http.ResponseWriter, r *http.Request) {
	req, err := yearRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.yearService.GetYear(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
