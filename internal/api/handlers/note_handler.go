package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pagenote/pagenote-be/internal/apperror"
	"github.com/pagenote/pagenote-be/internal/auth"
	"github.com/pagenote/pagenote-be/internal/services"
	"github.com/rs/zerolog/log"
)

// NoteHandler handles note persistence for the authenticated user.
type NoteHandler struct {
	notes services.NoteServiceProvider
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes services.NoteServiceProvider) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// NotePayload defines the structure for save requests.
type NotePayload struct {
	Content string `json:"content"`
	Page    int    `json:"page"`
}

// Save appends the request body as the new content of a page for the caller.
func (h *NoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("note save reached without an authenticated user in context")
		writeError(w, apperror.NewUnauthenticatedError("Missing auth token", nil))
		return
	}

	var payload NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidationError("Invalid request body"))
		return
	}

	if err := h.notes.Save(r.Context(), ownerID, payload.Page, payload.Content); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Note saved"})
}

// Get returns the caller's latest content for a page; an unwritten page
// reads as empty content, not an error.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("note read reached without an authenticated user in context")
		writeError(w, apperror.NewUnauthenticatedError("Missing auth token", nil))
		return
	}

	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		writeError(w, apperror.NewValidationError("page must be an integer"))
		return
	}

	content, err := h.notes.Latest(r.Context(), ownerID, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

// Stats returns how many notes the caller has saved in total.
func (h *NoteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("stats reached without an authenticated user in context")
		writeError(w, apperror.NewUnauthenticatedError("Missing auth token", nil))
		return
	}

	count, err := h.notes.CountFor(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}
