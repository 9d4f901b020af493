package streak

import (
	"context"
)

// Service defines the interface for streak queries
type Service interface {
	// GetStreak returns the streak summary for a user
	GetStreak(ctx context.Context, userID string) (Streak, error)
}
