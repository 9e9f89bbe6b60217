package server

import "fmt"

// displayServerInfo shows server configuration information
func (s *Server) displayServerInfo() {
	s.displayEndpoints()
	s.displayAuthInfo()
	s.displayRequestLimitInfo()
	s.displayRateLimitInfo()
}

// displayEndpoints shows available API endpoints
func (s *Server) displayEndpoints() {
	fmt.Println("Available endpoints:")
	fmt.Println("  GET    /health                              - Health check")
	fmt.Println("  GET    /stats                               - Server statistics")
	fmt.Println("  POST   /api/add-application                 - Track a new job application")
	fmt.Println("  GET    /api/get-applications                - List tracked applications")
	fmt.Println("  PUT    /api/update-status/{id}              - Update application status")
	fmt.Println("  DELETE /api/delete-application/{id}         - Delete an application")
	fmt.Println("  GET    /api/get-reminders                   - Follow-up reminders")
	fmt.Println("  GET    /api/get-statistics                  - Application statistics")
	fmt.Println("  GET    /api/generate-email/{id}             - Follow-up email template")
	fmt.Println("  POST   /api/start-interview                 - Start a mock interview")
	fmt.Println("  POST   /api/submit-answer                   - Submit an interview answer")
	fmt.Println("  GET    /api/interview-results/{session_id}  - Interview results")
	fmt.Println("  POST   /api/extract-skills                  - Extract skills from a job description")
	fmt.Println("  POST   /api/analyze-gap                     - Skill gap analysis")
	fmt.Println("  POST   /api/analyze-resume                  - Score an uploaded resume")
	fmt.Println("  POST   /api/calculate-score                 - Job readiness score")
	fmt.Println("All /api/* endpoints require an API key when authentication is enabled")
}

// displayAuthInfo shows authentication configuration
func (s *Server) displayAuthInfo() {
	if len(s.APIKeys) > 0 {
		fmt.Printf("API authentication: ENABLED (%d keys configured)\n", len(s.APIKeys))
		fmt.Println("Include 'X-API-Key: <your-key>' header in requests to /api/* endpoints")
	} else {
		fmt.Println("API authentication: DISABLED (no API keys configured)")
		fmt.Println("WARNING: API endpoints are publicly accessible!")
	}
}

// displayRequestLimitInfo shows request size limit configuration
func (s *Server) displayRequestLimitInfo() {
	if s.MaxRequestSize > 0 {
		fmt.Printf("Request size limit: %d bytes (%.1f MB)\n", s.MaxRequestSize, float64(s.MaxRequestSize)/(1024*1024))
	} else {
		fmt.Println("Request size limit: DISABLED")
		fmt.Println("WARNING: No request size limits configured!")
	}
}

// displayRateLimitInfo shows rate limiting configuration
func (s *Server) displayRateLimitInfo() {
	if s.RateLimit != nil && s.RateLimit.Enabled {
		fmt.Printf("Rate limiting: ENABLED (%d requests/min, burst: %d)\n",
			s.RateLimit.RequestsPerMin, s.RateLimit.BurstCapacity)
		if s.RateLimit.ByAPIKey {
			fmt.Println("  - Per API key rate limiting enabled")
		}
		if s.RateLimit.ByIP {
			fmt.Println("  - Per IP address rate limiting enabled")
		}
	} else {
		fmt.Println("Rate limiting: DISABLED")
		fmt.Println("WARNING: No rate limiting configured!")
	}
}
