// Package api defines the JSON envelope every devserver response uses.
// The remote data access backend decodes the same shape.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fieldforce/internal/domain/workforce"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// FromError maps the domain error taxonomy onto an HTTP failure response.
func FromError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, workforce.ErrNotFound):
		Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, workforce.ErrAlreadyProcessed):
		Fail(w, http.StatusConflict, "already_processed", err.Error(), requestID)
	case errors.Is(err, workforce.ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, "unauthorized", err.Error(), requestID)
	case errors.Is(err, workforce.ErrConfiguration):
		Fail(w, http.StatusInternalServerError, "configuration_error", err.Error(), requestID)
	default:
		Fail(w, http.StatusInternalServerError, "internal_error", err.Error(), requestID)
	}
}
