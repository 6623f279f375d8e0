package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportKeyRequired(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		header     string
		wantStatus int
	}{
		{"matching key", "secret", "secret", http.StatusOK},
		{"missing header", "secret", "", http.StatusUnauthorized},
		{"wrong key", "secret", "Secret", http.StatusUnauthorized},
		{"unconfigured key", "", "", http.StatusUnauthorized},
		{"unconfigured key with header", "", "anything", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/import-xls", nil)
			if tt.header != "" {
				req.Header.Set(ImportKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			ImportKeyRequired(tt.key)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
		})
	}
}

func TestMaxBodySize(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	body := strings.NewReader(strings.Repeat("x", multipartOverhead+11))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.ContentLength = -1
	MaxBodySize(10)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Error(t, readErr)
}

func TestMaxBodySize_RejectsDeclaredLength(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	body := strings.NewReader(strings.Repeat("x", multipartOverhead+11))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	rec := httptest.NewRecorder()
	MaxBodySize(10)(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
