package ai

import (
	"errors"
	"testing"
	"time"

	"careerbot/internal/config"

	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.AIConfig {
	return &config.AIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestGradingCircuitBreakerStats(t *testing.T) {
	cb := NewGradingCircuitBreaker(breakerConfig(true), nil)
	if cb == nil {
		t.Fatal("circuit breaker should not be nil when enabled")
	}

	stats := cb.GetStats()

	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("circuit breaker name not found")
	}
	if name != "AI-grade-answer" {
		t.Errorf("name = %q, want %q", name, "AI-grade-answer")
	}

	state, ok := stats["state"].(string)
	if !ok {
		t.Fatal("circuit breaker state not found")
	}
	if state != "closed" {
		t.Errorf("initial state = %q, want closed", state)
	}

	if enabled, _ := stats["enabled"].(bool); !enabled {
		t.Error("circuit breaker should report enabled")
	}
	if !cb.IsHealthy() {
		t.Error("circuit breaker should be healthy initially")
	}
}

func TestGradingCircuitBreakerDisabled(t *testing.T) {
	cb := NewGradingCircuitBreaker(breakerConfig(false), nil)
	if cb != nil {
		t.Fatal("circuit breaker should be nil when disabled")
	}

	// A nil breaker still executes the function directly.
	wantErr := errors.New("upstream down")
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Execute() error = %v, want %v", err, wantErr)
	}

	if !cb.IsHealthy() {
		t.Error("nil circuit breaker should report healthy")
	}
	if enabled, _ := cb.GetStats()["enabled"].(bool); enabled {
		t.Error("nil circuit breaker should report disabled stats")
	}
}

func TestModelCircuitBreaker(t *testing.T) {
	cb := NewModelCircuitBreaker(breakerConfig(true), nil)
	if cb == nil {
		t.Fatal("model circuit breaker should not be nil when enabled")
	}

	stats := cb.GetModelStats()
	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("circuit breaker name not found")
	}
	if name != "AI-model-info" {
		t.Errorf("name = %q, want %q", name, "AI-model-info")
	}
	if !cb.IsModelHealthy() {
		t.Error("model circuit breaker should be healthy initially")
	}
}
