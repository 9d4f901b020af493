package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"animo/internal/domain/analysis"
	"animo/internal/domain/emotion"
	"animo/internal/domain/journal"
)

// ServiceConfig holds analysis service configuration
type ServiceConfig struct {
	// Window is how many recent entries feed one analysis
	Window int

	// MinEntries is the minimum number of entries required before an
	// analysis may be created
	MinEntries int

	EventsSubjectPrefix string
}

// Service runs the emotion engine over a user's recent entries and manages
// the stored analysis history
type Service struct {
	entries  journal.Store
	store    analysis.Store
	engine   emotion.Engine
	natsConn *nats.Conn
	cfg      ServiceConfig
}

// NewService creates an analysis service
func NewService(entries journal.Store, store analysis.Store, engine emotion.Engine, natsConn *nats.Conn, cfg ServiceConfig) *Service {
	if cfg.Window <= 0 {
		cfg.Window = 7
	}
	if cfg.MinEntries <= 0 {
		cfg.MinEntries = 3
	}
	if cfg.EventsSubjectPrefix == "" {
		cfg.EventsSubjectPrefix = "journal"
	}
	return &Service{
		entries:  entries,
		store:    store,
		engine:   engine,
		natsConn: natsConn,
		cfg:      cfg,
	}
}

// CreateForUser analyzes the user's most recent entries and persists the
// result. A storage failure after a successful computation is not fatal: the
// record is still returned, with Stored false, so the caller can surface the
// analysis alongside a warning.
func (s *Service) CreateForUser(ctx context.Context, userID string) (*analysis.Result, error) {
	entries, err := s.entries.FindEntries(ctx, userID, journal.Filter{Limit: s.cfg.Window})
	if err != nil {
		return nil, fmt.Errorf("error loading entries: %w", err)
	}

	if len(entries) < s.cfg.MinEntries {
		return nil, analysis.ErrNotEnoughEntries
	}

	raw := make([]emotion.RawEntry, 0, len(entries))
	for _, entry := range entries {
		raw = append(raw, emotion.RawEntry{
			ID:   entry.ID,
			Text: entry.Text,
			Date: entry.Date,
		})
	}

	now := time.Now()
	record := analysis.Record{
		ID:           uuid.New().String(),
		UserID:       userID,
		Analysis:     s.engine.Analyze(raw),
		EntriesCount: len(entries),
		AnalysisDate: now,
		CreatedAt:    now,
	}

	result := &analysis.Result{Record: record, Stored: true}
	if err := s.store.SaveAnalysis(ctx, record); err != nil {
		log.Printf("Failed to store analysis for user %s: %v", userID, err)
		result.Stored = false
		return result, nil
	}

	s.publishEvent(userID, map[string]interface{}{
		"type":        "analysis_created",
		"user_id":     userID,
		"analysis_id": record.ID,
		"mood":        record.Analysis.OverallMood,
		"time":        now,
	})

	return result, nil
}

// History returns stored analyses, newest first
func (s *Service) History(ctx context.Context, userID string, filter analysis.Filter) ([]analysis.Record, error) {
	records, err := s.store.FindAnalyses(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing analyses: %w", err)
	}
	return records, nil
}

// Get retrieves one stored analysis
func (s *Service) Get(ctx context.Context, userID, analysisID string) (*analysis.Record, error) {
	return s.store.FindAnalysis(ctx, userID, analysisID)
}

// Delete removes one stored analysis
func (s *Service) Delete(ctx context.Context, userID, analysisID string) error {
	return s.store.DeleteAnalysis(ctx, userID, analysisID)
}

func (s *Service) publishEvent(userID string, event map[string]interface{}) {
	if s.natsConn == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal analysis event: %v", err)
		return
	}

	subject := fmt.Sprintf("%s.%s.analyses", s.cfg.EventsSubjectPrefix, userID)
	if err := s.natsConn.Publish(subject, payload); err != nil {
		log.Printf("Failed to publish analysis event: %v", err)
	}
}
