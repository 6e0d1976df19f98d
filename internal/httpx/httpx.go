// Package httpx holds the JSON response helpers shared by all route handlers.
// Every error body carries at least an "error" string; validation failures
// additionally carry the itemized "details" list.
package httpx

import (
	"encoding/json"
	"net/http"

	"novellia-pets/internal/validation"
)

type errorBody struct {
	Error   string            `json:"error"`
	Details validation.Errors `json:"details,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": ...}, used by delete confirmations.
func Message(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, messageBody{Message: msg})
}

// Error writes {"error": ...} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Error: msg})
}

// ValidationFailed writes the 400 body for a rejected request:
// {"error": "Validation failed", "details": [{"path": [...], "message": ...}]}.
func ValidationFailed(w http.ResponseWriter, errs validation.Errors) {
	WriteJSON(w, http.StatusBadRequest, errorBody{Error: "Validation failed", Details: errs})
}

// NotFound writes the 404 body for a missing entity, e.g. {"error": "Pet not found"}.
func NotFound(w http.ResponseWriter, entity string) {
	Error(w, http.StatusNotFound, entity+" not found")
}

// Internal writes a generic 500 without exposing the underlying failure.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error")
}
