package ai

import (
	"context"

	"careerbot/internal/types"
)

// Provider is the interface for grading model implementations.
// GradeAnswer returns the model's free-text feedback; token usage is
// returned alongside so callers can record it, or ignore it.
type Provider interface {
	GradeAnswer(ctx context.Context, question, answer string) (types.RawFeedback, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	GetCircuitBreakerStats() map[string]any
	Close() error
}
