package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"animo/internal/domain/journal"
)

// ErrEmptyText is returned when an entry is created without text
var ErrEmptyText = errors.New("entry text is required")

// ServiceConfig holds journal service configuration
type ServiceConfig struct {
	EventsSubjectPrefix string
}

// Service implements diary operations over a store, publishing events for
// connected clients
type Service struct {
	store    journal.Store
	natsConn *nats.Conn
	cfg      ServiceConfig
}

// NewService creates a journal service
func NewService(store journal.Store, natsConn *nats.Conn, cfg ServiceConfig) *Service {
	if cfg.EventsSubjectPrefix == "" {
		cfg.EventsSubjectPrefix = "journal"
	}
	return &Service{
		store:    store,
		natsConn: natsConn,
		cfg:      cfg,
	}
}

// CreateEntry stores a new entry. Text is trimmed and required; a zero date
// defaults to today.
func (s *Service) CreateEntry(ctx context.Context, newEntry journal.NewEntry) (*journal.Entry, error) {
	text := strings.TrimSpace(newEntry.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	date := newEntry.Date
	if date.IsZero() {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	tags := newEntry.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	entry := journal.Entry{
		ID:        uuid.New().String(),
		UserID:    newEntry.UserID,
		Text:      text,
		Date:      date,
		Mood:      newEntry.Mood,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("error saving entry: %w", err)
	}

	s.publishEvent(entry.UserID, "entries", map[string]interface{}{
		"type":     "entry_created",
		"user_id":  entry.UserID,
		"entry_id": entry.ID,
		"date":     entry.Date.Format("2006-01-02"),
		"time":     now,
	})

	return &entry, nil
}

// ListEntries returns a user's entries, newest first
func (s *Service) ListEntries(ctx context.Context, userID string, filter journal.Filter) ([]journal.Entry, error) {
	entries, err := s.store.FindEntries(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return entries, nil
}

// GetEntry retrieves one entry by ID
func (s *Service) GetEntry(ctx context.Context, userID, entryID string) (*journal.Entry, error) {
	return s.store.FindEntry(ctx, userID, entryID)
}

// UpdateEntry applies a partial update to an entry
func (s *Service) UpdateEntry(ctx context.Context, userID, entryID string, update journal.Update) error {
	if update.Text != nil {
		trimmed := strings.TrimSpace(*update.Text)
		update.Text = &trimmed
	}

	if err := s.store.UpdateEntry(ctx, userID, entryID, update); err != nil {
		return err
	}

	s.publishEvent(userID, "entries", map[string]interface{}{
		"type":     "entry_updated",
		"user_id":  userID,
		"entry_id": entryID,
		"time":     time.Now(),
	})

	return nil
}

// DeleteEntry removes an entry
func (s *Service) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := s.store.DeleteEntry(ctx, userID, entryID); err != nil {
		return err
	}

	s.publishEvent(userID, "entries", map[string]interface{}{
		"type":     "entry_deleted",
		"user_id":  userID,
		"entry_id": entryID,
		"time":     time.Now(),
	})

	return nil
}

// publishEvent publishes a journal event. Event delivery is best effort and
// never fails the operation that produced it.
func (s *Service) publishEvent(userID, kind string, event map[string]interface{}) {
	if s.natsConn == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal journal event: %v", err)
		return
	}

	subject := fmt.Sprintf("%s.%s.%s", s.cfg.EventsSubjectPrefix, userID, kind)
	if err := s.natsConn.Publish(subject, payload); err != nil {
		log.Printf("Failed to publish journal event: %v", err)
	}
}
