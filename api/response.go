package api

import (
	"encoding/json"
	"net/http"
	"time"

	"chat-relay/errs"
)

// ApiResponse is the uniform envelope every endpoint writes. Data and
// Error are mutually exclusive.
type ApiResponse struct {
	Success   bool        `json:"success"`
	Data      any         `json:"data,omitempty"`
	Error     *errs.Error `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// statusForCode maps the stable error codes to HTTP statuses. Codes the
// transport does not recognise fall through to 500.
func statusForCode(code string) int {
	switch code {
	case errs.CodeNotFound:
		return http.StatusNotFound
	case errs.CodeValueEmpty, errs.CodeValueRequired, errs.CodeValidation, errs.CodeIllegalState:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, ApiResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func writeError(w http.ResponseWriter, err *errs.Error) {
	writeJSON(w, statusForCode(err.Code), ApiResponse{
		Success:   false,
		Error:     err,
		Timestamp: time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
