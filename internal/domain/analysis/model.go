package analysis

import (
	"context"
	"errors"
	"time"

	"animo/internal/domain/emotion"
)

// ErrNotFound is returned when an analysis record does not exist
var ErrNotFound = errors.New("analysis not found")

// ErrNotEnoughEntries is returned when a user has too few entries to analyze
var ErrNotEnoughEntries = errors.New("not enough entries to analyze")

// Record is one stored weekly analysis
type Record struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"userId"`
	Analysis     emotion.WeeklyAnalysis `json:"analysis"`
	EntriesCount int                    `json:"entriesCount"`
	AnalysisDate time.Time              `json:"analysisDate"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// Result pairs a computed analysis with its persistence outcome. Computation
// and persistence succeed or fail independently: a storage failure still
// hands the caller the computed record, with Stored false.
type Result struct {
	Record Record
	Stored bool
}

// Filter defines criteria for listing analysis history
type Filter struct {
	Limit int
}

// Service defines the analysis operations
type Service interface {
	// CreateForUser analyzes the user's most recent entries and persists
	// the result. Returns ErrNotEnoughEntries when the user has fewer
	// entries than the configured minimum.
	CreateForUser(ctx context.Context, userID string) (*Result, error)

	// History returns stored analyses, newest first
	History(ctx context.Context, userID string, filter Filter) ([]Record, error)

	// Get retrieves one stored analysis
	Get(ctx context.Context, userID, analysisID string) (*Record, error)

	// Delete removes one stored analysis
	Delete(ctx context.Context, userID, analysisID string) error
}

// Store defines the persistence interface for analysis records
type Store interface {
	SaveAnalysis(ctx context.Context, record Record) error
	FindAnalyses(ctx context.Context, userID string, filter Filter) ([]Record, error)
	FindAnalysis(ctx context.Context, userID, analysisID string) (*Record, error)
	DeleteAnalysis(ctx context.Context, userID, analysisID string) error
}
