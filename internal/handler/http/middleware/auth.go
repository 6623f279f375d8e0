package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/xls-import-go/internal/domain/imports"
	"github.com/cmlabs-hris/xls-import-go/internal/handler/http/response"
)

// ImportKeyHeader carries the shared import secret.
const ImportKeyHeader = "x-import-key"

// ImportKeyRequired rejects requests whose x-import-key header differs from key.
// An empty key rejects everything. It runs before the body is read.
func ImportKeyRequired(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(ImportKeyHeader)
			if key == "" || provided == "" || provided != key {
				response.HandleError(w, imports.ErrInvalidImportKey)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// MaxBodySize caps the request body at limit bytes plus room for multipart framing.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit+multipartOverhead {
				response.HandleError(w, imports.ErrFileTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

const multipartOverhead = 1 << 20
