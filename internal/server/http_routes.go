package server

import (
	"net/http"
	"strings"

	"careerbot/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes(om *observability.ObservabilityManager) *http.ServeMux {
	mux := http.NewServeMux()

	rateLimit := s.createRateLimitMiddleware(om)
	sizeLimit := s.requestSizeLimitMiddleware()

	protect := func(h http.HandlerFunc) http.HandlerFunc {
		return rateLimit(s.authMiddleware(sizeLimit(h)))
	}

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /stats", s.statsHandler)

	// Job application tracker
	mux.HandleFunc("POST /api/add-application", protect(s.addApplicationHandler))
	mux.HandleFunc("GET /api/get-applications", protect(s.listApplicationsHandler))
	mux.HandleFunc("PUT /api/update-status/{id}", protect(s.updateStatusHandler))
	mux.HandleFunc("DELETE /api/delete-application/{id}", protect(s.deleteApplicationHandler))
	mux.HandleFunc("GET /api/get-reminders", protect(s.remindersHandler))
	mux.HandleFunc("GET /api/get-statistics", protect(s.statisticsHandler))
	mux.HandleFunc("GET /api/generate-email/{id}", protect(s.generateEmailHandler))

	// Mock interviews
	mux.HandleFunc("POST /api/start-interview", protect(s.startInterviewHandler))
	mux.HandleFunc("POST /api/submit-answer", protect(s.submitAnswerHandler))
	mux.HandleFunc("GET /api/interview-results/{session_id}", protect(s.interviewResultsHandler))

	// Resume and skills analysis
	mux.HandleFunc("POST /api/extract-skills", protect(s.extractSkillsHandler))
	mux.HandleFunc("POST /api/analyze-gap", protect(s.analyzeGapHandler))
	mux.HandleFunc("POST /api/analyze-resume", protect(s.analyzeResumeHandler))
	mux.HandleFunc("POST /api/calculate-score", protect(s.calculateScoreHandler))

	return mux
}

// authMiddleware provides API key authentication
func (s *Server) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Skip authentication if no API keys are configured
		if len(s.APIKeys) == 0 {
			next(w, r)
			return
		}

		// Check for API key in X-API-Key header
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			// Check for Bearer token in Authorization header as fallback
			authHeader := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				apiKey = after
			}
		}

		if apiKey == "" {
			s.Logger.Info("Authentication failed: missing API key",
				"endpoint", r.URL.Path,
				"client_ip", r.RemoteAddr)
			writeErrorResponse(w, "Missing API key", "X-API-Key header or Authorization Bearer token required", http.StatusUnauthorized)
			return
		}

		if !s.APIKeys[apiKey] {
			s.Logger.Info("Authentication failed: invalid API key",
				"endpoint", r.URL.Path,
				"client_ip", r.RemoteAddr,
				"api_key_prefix", maskAPIKey(apiKey))
			writeErrorResponse(w, "Invalid API key", "Unauthorized access", http.StatusUnauthorized)
			return
		}

		s.Logger.Debug("API authentication successful",
			"endpoint", r.URL.Path,
			"client_ip", r.RemoteAddr,
			"api_key_prefix", maskAPIKey(apiKey))

		next(w, r)
	}
}

// requestSizeLimitMiddleware limits the size of incoming requests
func (s *Server) requestSizeLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if s.MaxRequestSize > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)
			}

			next(w, r)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	return s.rateLimitMiddleware(func(r *http.Request) {
		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
			attribute.String("endpoint", r.URL.Path),
			attribute.String("method", r.Method))
	})
}

// maskAPIKey masks an API key for logging (shows only first 8 characters)
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 8 {
		return "****"
	}
	return apiKey[:8] + "****"
}
