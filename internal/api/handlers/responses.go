// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"errors"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/services"
	"net/http"
)

// ErrorResponse is a standard format for API error messages.
// Redirect names a safe listing view when the requested record does not exist.
type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// MessageResponse is a standard format for simple API messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// WatchedResponse is returned by the watched toggle.
type WatchedResponse struct {
	Success bool `json:"success"`
	Watched bool `json:"watched"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError maps a service error to its HTTP status. Unknown errors are
// logged and answered with the generic fallback message so store details never leak.
func respondWithServiceError(w http.ResponseWriter, err error, redirect, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Redirect: redirect})
	case errors.Is(err, services.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		logging.Log.Errorf("%s: %v", fallback, err)
		respondWithError(w, http.StatusInternalServerError, fallback)
	}
}
