package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// SavedItem is a product a user bookmarked, with optional private notes.
type SavedItem struct {
	ID        string
	UserID    string
	ProductID string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product
}

// NormalizeSavedItemNotes trims notes; blank notes are stored as NULL.
func NormalizeSavedItemNotes(notes string) (*string, error) {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > 500 {
		return nil, NewValidationError("notes", "Notes must be less than 500 characters")
	}
	if notes == "" {
		return nil, nil
	}
	return &notes, nil
}
