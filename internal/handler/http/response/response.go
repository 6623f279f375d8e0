package response

import (
	"encoding/json"
	"net/http"
)

// Response is the error envelope. Successful payloads carry their own ok field.
type Response struct {
	OK      bool        `json:"ok"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			OK:    false,
			Error: "Failed to encode response",
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success writes payload as is with status 200
func Success(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

// Attachment sends content as a file download
func Attachment(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details interface{}) {
	writeJSON(w, http.StatusBadRequest, Response{
		OK:      false,
		Error:   message,
		Details: details,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{
		OK:    false,
		Error: message,
	})
}

func MethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, Response{
		OK:    false,
		Error: "Method not allowed",
	})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{
		OK:    false,
		Error: message,
	})
}

// InternalServerError passes the underlying message through in details.
func InternalServerError(w http.ResponseWriter, details string) {
	writeJSON(w, http.StatusInternalServerError, Response{
		OK:      false,
		Error:   "Internal server error",
		Details: details,
	})
}
