package server

import (
	"time"

	"careerbot/internal/ai"
	"careerbot/internal/config"
	careerbotErrors "careerbot/internal/errors"
	"careerbot/internal/interview"
	"careerbot/internal/observability"
	"careerbot/internal/tracker"
)

// UpdateStatusRequest represents the request body for the status update endpoint
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StartInterviewRequest represents the request body for starting a mock interview
type StartInterviewRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
}

// SubmitAnswerRequest represents the request body for submitting an interview answer
type SubmitAnswerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

// ExtractSkillsRequest represents the request body for the skill extraction endpoint
type ExtractSkillsRequest struct {
	JobDescription string `json:"job_description"`
}

// AnalyzeGapRequest represents the request body for the skill gap endpoint
type AnalyzeGapRequest struct {
	UserSkills     []string `json:"user_skills"`
	RequiredSkills []string `json:"required_skills"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration and state for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate hot-reload
	CertReloader *CertReloader

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *LimiterManager

	// Logger
	Logger *careerbotErrors.Logger

	// Application state
	Applications *tracker.Store
	Interviews   *interview.Store
	AIService    *ai.Service

	// Set during Start; nil until observability is initialized
	obs *observability.ObservabilityManager
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *careerbotErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *LimiterManager
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewLimiterManager(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	aiService, err := ai.NewService(&appCfg.AI, logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Applications:   tracker.NewStore(),
		AIService:      aiService,
	}
	s.Interviews = interview.NewStore(&instrumentedGrader{server: s}, appCfg.AI.Timeout)

	return s, nil
}

// metrics returns the custom metrics set, or an empty set before
// observability is initialized.
func (s *Server) metrics() *observability.Metrics {
	if s.obs == nil {
		return &observability.Metrics{}
	}
	return s.obs.GetMetrics()
}
