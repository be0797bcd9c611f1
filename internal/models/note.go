package models

import "time"

// Note is one saved revision of a page's content. Rows are append-only;
// the newest row per (owner, page) is the page's current content.
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Page      int       `json:"page"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}
