package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pagenote/pagenote-be/internal/apperror"
	"github.com/rs/zerolog/log"
)

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to the HTTP contract. Store failures are
// logged with detail server-side and surfaced as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Type != apperror.StoreError {
		writeJSON(w, appErr.StatusCode(), map[string]string{"error": appErr.Message})
		return
	}
	log.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
