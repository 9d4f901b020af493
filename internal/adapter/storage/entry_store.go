package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"animo/internal/domain/journal"
)

// EntryStore implements storage for diary entries
type EntryStore struct {
	db *pgxpool.Pool
}

// NewEntryStore creates a new entry store
func NewEntryStore(db *pgxpool.Pool) *EntryStore {
	return &EntryStore{
		db: db,
	}
}

// SaveEntry saves an entry to storage
func (s *EntryStore) SaveEntry(ctx context.Context, entry journal.Entry) error {
	query := `
		INSERT INTO entries (
			id, user_id, text, date, mood, tags, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	var mood *string
	if entry.Mood != "" {
		mood = &entry.Mood
	}

	tagsJSON, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("error marshaling tags: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		query,
		entry.ID,
		entry.UserID,
		entry.Text,
		entry.Date,
		mood,
		tagsJSON,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// FindEntries returns a user's entries, newest first
func (s *EntryStore) FindEntries(ctx context.Context, userID string, filter journal.Filter) ([]journal.Entry, error) {
	query := `
		SELECT id, user_id, text, date, mood, tags, created_at, updated_at
		FROM entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	args := []interface{}{userID}
	if filter.Limit > 0 {
		query += " LIMIT $2"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// FindEntry retrieves one entry by ID
func (s *EntryStore) FindEntry(ctx context.Context, userID, entryID string) (*journal.Entry, error) {
	query := `
		SELECT id, user_id, text, date, mood, tags, created_at, updated_at
		FROM entries
		WHERE user_id = $1 AND id = $2
	`

	rows, err := s.db.Query(ctx, query, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error querying entry: %w", err)
		}
		return nil, journal.ErrNotFound
	}

	return scanEntry(rows)
}

// UpdateEntry applies a partial update to an entry
func (s *EntryStore) UpdateEntry(ctx context.Context, userID, entryID string, update journal.Update) error {
	query := "UPDATE entries SET updated_at = now()"
	args := []interface{}{}
	argIndex := 1

	if update.Text != nil {
		query += fmt.Sprintf(", text = $%d", argIndex)
		args = append(args, *update.Text)
		argIndex++
	}

	if update.Mood != nil {
		query += fmt.Sprintf(", mood = NULLIF($%d, '')", argIndex)
		args = append(args, *update.Mood)
		argIndex++
	}

	if update.Tags != nil {
		tagsJSON, err := json.Marshal(*update.Tags)
		if err != nil {
			return fmt.Errorf("error marshaling tags: %w", err)
		}
		query += fmt.Sprintf(", tags = $%d", argIndex)
		args = append(args, tagsJSON)
		argIndex++
	}

	query += fmt.Sprintf(" WHERE user_id = $%d AND id = $%d", argIndex, argIndex+1)
	args = append(args, userID, entryID)

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return journal.ErrNotFound
	}

	return nil
}

// DeleteEntry removes an entry
func (s *EntryStore) DeleteEntry(ctx context.Context, userID, entryID string) error {
	query := `DELETE FROM entries WHERE user_id = $1 AND id = $2`

	tag, err := s.db.Exec(ctx, query, userID, entryID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return journal.ErrNotFound
	}

	return nil
}

func scanEntry(rows pgx.Rows) (*journal.Entry, error) {
	var entry journal.Entry
	var mood *string
	var tagsJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Text,
		&entry.Date,
		&mood,
		&tagsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, journal.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning entry: %w", err)
	}

	if mood != nil {
		entry.Mood = *mood
	}

	if err := json.Unmarshal(tagsJSON, &entry.Tags); err != nil {
		return nil, fmt.Errorf("error unmarshaling tags: %w", err)
	}

	return &entry, nil
}
