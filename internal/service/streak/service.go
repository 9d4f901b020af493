package streak

import (
	"context"
	"fmt"
	"time"

	"animo/internal/domain/journal"
	"animo/internal/domain/streak"
)

// Service computes streaks from a user's stored entries
type Service struct {
	store      journal.Store
	calculator *Calculator
}

// NewService creates a streak service backed by the journal store
func NewService(store journal.Store, calculator *Calculator) *Service {
	return &Service{
		store:      store,
		calculator: calculator,
	}
}

// GetStreak returns the streak summary for a user
func (s *Service) GetStreak(ctx context.Context, userID string) (streak.Streak, error) {
	entries, err := s.store.FindEntries(ctx, userID, journal.Filter{})
	if err != nil {
		return streak.Streak{}, fmt.Errorf("error loading entries: %w", err)
	}

	dates := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, entry.Date)
	}

	return s.calculator.Calculate(dates), nil
}
