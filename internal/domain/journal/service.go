package journal

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an entry does not exist
var ErrNotFound = errors.New("entry not found")

// Service defines the interface for diary operations
type Service interface {
	// CreateEntry stores a new entry for a user and returns it with its
	// generated ID and timestamps
	CreateEntry(ctx context.Context, entry NewEntry) (*Entry, error)

	// ListEntries returns a user's entries, newest first
	ListEntries(ctx context.Context, userID string, filter Filter) ([]Entry, error)

	// GetEntry retrieves one entry by ID
	GetEntry(ctx context.Context, userID, entryID string) (*Entry, error)

	// UpdateEntry applies a partial update to an entry
	UpdateEntry(ctx context.Context, userID, entryID string, update Update) error

	// DeleteEntry removes an entry
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// Store defines the persistence interface for entries
type Store interface {
	SaveEntry(ctx context.Context, entry Entry) error
	FindEntries(ctx context.Context, userID string, filter Filter) ([]Entry, error)
	FindEntry(ctx context.Context, userID, entryID string) (*Entry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, update Update) error
	DeleteEntry(ctx context.Context, userID, entryID string) error
}
