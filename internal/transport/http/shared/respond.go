// Package shared holds the JSON response envelope used by every handler.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "disha/pkg/domain-errors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody is the error envelope. Meta fields such as retryAfter or
// attemptsRemaining are flattened alongside the code and message.
type ErrorBody struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"-"`
}

func (b ErrorBody) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3+len(b.Meta))
	out["success"] = b.Success
	out["error"] = b.Error
	out["message"] = b.Message
	for k, v := range b.Meta {
		out[k] = v
	}
	return json.Marshal(out)
}

// WriteError translates a domain error into its HTTP status and envelope.
// Unknown errors are reported as an opaque internal failure.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := "Internal server error"
	var dErr *dErrors.Error
	if errors.As(err, &dErr) {
		message = dErr.Message
	}
	WriteJSON(w, statusFor(code), ErrorBody{
		Success: false,
		Error:   string(code),
		Message: message,
		Meta:    dErrors.MetaOf(err),
	})
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeGone:
		return http.StatusGone
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
