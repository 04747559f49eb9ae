// Package http carries the REST surface: the router, the per-domain error
// mappers and the JSON response helpers.
package http

import (
	"encoding/json"
	"net/http"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Message string `json:"message"`
}

// WriteJSON encodes v with the status already committed; encoding failures
// at that point can only be logged by the transport, not reported.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Fail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Message: msg})
}
