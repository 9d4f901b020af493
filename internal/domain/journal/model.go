package journal

import (
	"time"
)

// Entry represents a single diary entry
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEntry carries the caller-supplied fields for entry creation. A zero
// Date means "today".
type NewEntry struct {
	UserID string
	Text   string
	Date   time.Time
	Mood   string
	Tags   []string
}

// Update carries the mutable fields of an entry. Nil fields are left as-is.
type Update struct {
	Text *string
	Mood *string
	Tags *[]string
}

// Filter defines criteria for listing entries
type Filter struct {
	Limit int
}
