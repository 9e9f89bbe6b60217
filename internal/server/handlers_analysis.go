package server

import (
	"io"
	"net/http"
	"strings"

	"careerbot/internal/analysis"
	"careerbot/internal/extract"

	"go.opentelemetry.io/otel/attribute"
)

// minTextLength is the minimum usable length for job descriptions and
// extracted resume text.
const minTextLength = 50

// extractSkillsHandler pulls catalog skills out of a job description
func (s *Server) extractSkillsHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.extract_skills")
	defer span.End()

	var req ExtractSkillsRequest
	if err := parseJSONRequest(r, &req); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	if len(strings.TrimSpace(req.JobDescription)) < minTextLength {
		writeErrorResponse(w, "Please provide a valid job description (at least 50 characters)", "", http.StatusBadRequest)
		return
	}

	skills := analysis.ExtractSkills(req.JobDescription)
	span.SetAttributes(attribute.Int("skills.count", len(skills)))

	writeJSON(w, map[string]any{
		"required_skills": skills,
		"total_skills":    len(skills),
	})
}

// analyzeGapHandler compares user skills against job requirements
func (s *Server) analyzeGapHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.analyze_gap")
	defer span.End()

	var req AnalyzeGapRequest
	if err := parseJSONRequest(r, &req); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.UserSkills) == 0 {
		writeErrorResponse(w, "Please provide your skills", "", http.StatusBadRequest)
		return
	}
	if len(req.RequiredSkills) == 0 {
		writeErrorResponse(w, "Please provide required skills", "", http.StatusBadRequest)
		return
	}

	result := analysis.AnalyzeSkillGap(req.UserSkills, req.RequiredSkills)

	// Attach learning resources for the first few missing skills
	missing := result.MissingSkills
	if len(missing) > 5 {
		missing = missing[:5]
	}
	if len(missing) > 0 {
		result.LearningResources = make(map[string][]analysis.Resource, len(missing))
		for _, skill := range missing {
			result.LearningResources[skill] = analysis.LearningResources(skill)
		}
	}

	span.SetAttributes(
		attribute.Float64("readiness.percentage", result.ReadinessPercentage),
		attribute.Int("skills.missing", result.TotalMissing),
	)

	writeJSON(w, result)
}

// analyzeResumeHandler accepts an uploaded resume file and scores it
func (s *Server) analyzeResumeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.startSpan(r.Context(), "api.analyze_resume")
	defer span.End()

	if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid upload", err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "No file uploaded", "", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeErrorResponse(w, "No file selected", "", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Failed to read uploaded file", err.Error(), http.StatusBadRequest)
		return
	}

	span.SetAttributes(
		attribute.String("upload.filename", header.Filename),
		attribute.Int("upload.size_bytes", len(data)),
	)

	text, err := extract.ExtractText(header.Filename, data)
	if err != nil {
		span.RecordError(err)
		s.metrics().RecordBusinessMetric(ctx, "resume_analyzed", false)
		writeAppError(w, err)
		return
	}

	if len(strings.TrimSpace(text)) < minTextLength {
		s.metrics().RecordBusinessMetric(ctx, "resume_analyzed", false)
		writeErrorResponse(w, "Could not extract text from resume or resume is too short", "", http.StatusBadRequest)
		return
	}

	result := analysis.AnalyzeResume(text)

	span.SetAttributes(
		attribute.Int("resume.total_score", result.TotalScore),
		attribute.Int("resume.word_count", result.WordCount),
	)
	s.metrics().RecordBusinessMetric(ctx, "resume_analyzed", true,
		attribute.Int("total_score", result.TotalScore))

	writeJSON(w, result)
}

// calculateScoreHandler scores a user profile for job-search readiness
func (s *Server) calculateScoreHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.calculate_score")
	defer span.End()

	var input analysis.ReadinessInput
	if err := parseJSONRequest(r, &input); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	result := analysis.CalculateReadinessScore(input)
	span.SetAttributes(attribute.Int("readiness.score", result.Score))

	writeJSON(w, result)
}
