package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pagenote/pagenote-be/internal/apperror"
	"github.com/pagenote/pagenote-be/internal/models"
)

// NoteServiceProvider defines the interface for note storage.
type NoteServiceProvider interface {
	Save(ctx context.Context, ownerID int64, page int, content string) error
	Latest(ctx context.Context, ownerID int64, page int) (string, error)
	CountFor(ctx context.Context, ownerID int64) (int, error)
}

// NoteService provides append-only, owner-scoped note persistence.
type NoteService struct {
	db *sql.DB
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *sql.DB) *NoteService {
	return &NoteService{db: db}
}

// Save appends a new revision for (owner, page). Earlier rows for the same
// page are never mutated or deleted.
func (s *NoteService) Save(ctx context.Context, ownerID int64, page int, content string) error {
	note := models.Note{
		Content: content,
		Page:    page,
		OwnerID: ownerID,
	}

	_, err := s.db.ExecContext(ctx, "INSERT INTO notes (content, page, owner_id) VALUES (?, ?, ?)", note.Content, note.Page, note.OwnerID)
	if err != nil {
		return apperror.NewStoreError("failed to save note", err)
	}
	return nil
}

// Latest returns the owner's most recent content for a page, or the empty
// string when the page has never been written. Rows created within the same
// timestamp resolve to the higher id, so the later insert wins.
func (s *NoteService) Latest(ctx context.Context, ownerID int64, page int) (string, error) {
	var content string
	row := s.db.QueryRowContext(ctx,
		"SELECT content FROM notes WHERE owner_id = ? AND page = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		ownerID, page)
	if err := row.Scan(&content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", apperror.NewStoreError("failed to load note", err)
	}
	return content, nil
}

// CountFor returns how many notes the owner has saved in total, history
// included.
func (s *NoteService) CountFor(ctx context.Context, ownerID int64) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes WHERE owner_id = ?", ownerID)
	if err := row.Scan(&count); err != nil {
		return 0, apperror.NewStoreError("failed to count notes", err)
	}
	return count, nil
}
