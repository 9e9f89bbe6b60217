package ai

import (
	"context"
	"fmt"

	"careerbot/internal/config"
	"careerbot/internal/errors"
	"careerbot/internal/types"
)

// Service handles grading operations for interview answers
type Service struct {
	Provider Provider // Exported for access from server package
	config   *config.AIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance
func NewService(cfg *config.AIConfig, logger *errors.Logger) (*Service, error) {
	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", cfg.Temperature,
		"timeout", cfg.Timeout,
		"max_retries", cfg.MaxRetries)

	var provider Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewUpstreamError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// GradeAnswer delegates to the provider and returns raw feedback with
// token usage.
func (s *Service) GradeAnswer(ctx context.Context, question, answer string) (types.RawFeedback, *TokenUsage, error) {
	return s.Provider.GradeAnswer(ctx, question, answer)
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) *ModelInfo {
	return s.Provider.GetModelInfo(ctx)
}

// GetCircuitBreakerStats exposes breaker state for health reporting
func (s *Service) GetCircuitBreakerStats() map[string]any {
	return s.Provider.GetCircuitBreakerStats()
}

// Close releases provider resources.
func (s *Service) Close() error {
	return s.Provider.Close()
}
