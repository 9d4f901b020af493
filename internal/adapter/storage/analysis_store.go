package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"animo/internal/domain/analysis"
)

// AnalysisStore implements storage for weekly analysis records. The analysis
// payload is stored as a JSONB document.
type AnalysisStore struct {
	db *pgxpool.Pool
}

// NewAnalysisStore creates a new analysis store
func NewAnalysisStore(db *pgxpool.Pool) *AnalysisStore {
	return &AnalysisStore{
		db: db,
	}
}

// SaveAnalysis saves an analysis record to storage
func (s *AnalysisStore) SaveAnalysis(ctx context.Context, record analysis.Record) error {
	query := `
		INSERT INTO analyses (
			id, user_id, analysis, entries_count, analysis_date, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	analysisJSON, err := json.Marshal(record.Analysis)
	if err != nil {
		return fmt.Errorf("error marshaling analysis: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		query,
		record.ID,
		record.UserID,
		analysisJSON,
		record.EntriesCount,
		record.AnalysisDate,
		record.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// FindAnalyses returns a user's analysis records, newest first
func (s *AnalysisStore) FindAnalyses(ctx context.Context, userID string, filter analysis.Filter) ([]analysis.Record, error) {
	query := `
		SELECT id, user_id, analysis, entries_count, analysis_date, created_at
		FROM analyses
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

	var records []analysis.Record
	for rows.Next() {
		record, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}

	return records, nil
}

// FindAnalysis retrieves one analysis record by ID
func (s *AnalysisStore) FindAnalysis(ctx context.Context, userID, analysisID string) (*analysis.Record, error) {
	query := `
		SELECT id, user_id, analysis, entries_count, analysis_date, created_at
		FROM analyses
		WHERE user_id = $1 AND id = $2
	`

	rows, err := s.db.Query(ctx, query, userID, analysisID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error querying analysis: %w", err)
		}
		return nil, analysis.ErrNotFound
	}

	return scanAnalysis(rows)
}

// DeleteAnalysis removes one analysis record
func (s *AnalysisStore) DeleteAnalysis(ctx context.Context, userID, analysisID string) error {
	query := `DELETE FROM analyses WHERE user_id = $1 AND id = $2`

	tag, err := s.db.Exec(ctx, query, userID, analysisID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return analysis.ErrNotFound
	}

	return nil
}

func scanAnalysis(rows pgx.Rows) (*analysis.Record, error) {
	var record analysis.Record
	var analysisJSON []byte

	err := rows.Scan(
		&record.ID,
		&record.UserID,
		&analysisJSON,
		&record.EntriesCount,
		&record.AnalysisDate,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning analysis: %w", err)
	}

	if err := json.Unmarshal(analysisJSON, &record.Analysis); err != nil {
		return nil, fmt.Errorf("error unmarshaling analysis: %w", err)
	}

	return &record, nil
}
