package chat

import (
	"context"
)

// Companion defines the interface for the supportive chat features
type Companion interface {
	// Respond generates a short supportive reply to a free-form message
	Respond(ctx context.Context, text string) (string, error)

	// Reflect generates a brief wellbeing reflection on a diary entry
	Reflect(ctx context.Context, text string) (string, error)
}
