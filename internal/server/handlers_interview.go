package server

import (
	"context"
	"net/http"

	"careerbot/internal/interview"
	"careerbot/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

// instrumentedGrader adapts the AI service to the interview store's
// Grader interface, recording grading metrics and token usage per call.
type instrumentedGrader struct {
	server *Server
}

func (g *instrumentedGrader) GradeAnswer(ctx context.Context, question, answer string) (string, error) {
	var text string
	err := g.server.metrics().TrackAIOperationWithTokens(ctx, "grade_answer", func(ctx context.Context) *observability.AIOperationResult {
		feedback, tokenUsage, aiErr := g.server.AIService.GradeAnswer(ctx, question, answer)
		text = feedback.Text
		return &observability.AIOperationResult{
			Error:      aiErr,
			TokenUsage: (*observability.TokenUsage)(tokenUsage),
		}
	})
	return text, err
}

// startInterviewHandler creates a new mock interview session
func (s *Server) startInterviewHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.startSpan(r.Context(), "api.start_interview")
	defer span.End()

	var req StartInterviewRequest
	if err := parseJSONRequest(r, &req); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	session, err := s.Interviews.CreateSession(req.Company, req.Role)
	if err != nil {
		span.RecordError(err)
		s.metrics().RecordBusinessMetric(ctx, "interview_started", false)
		writeAppError(w, err)
		return
	}

	span.SetAttributes(
		attribute.String("session.id", session.SessionID),
		attribute.Int("session.question_count", len(session.Questions)),
	)
	s.metrics().RecordBusinessMetric(ctx, "interview_started", true,
		attribute.String("company", session.Company),
		attribute.String("role", session.Role))

	writeJSONStatus(w, http.StatusCreated, map[string]any{
		"session_id":       session.SessionID,
		"company":          session.Company,
		"role":             session.Role,
		"total_questions":  len(session.Questions),
		"current_question": session.Questions[0],
		"question_number":  1,
	})
}

// submitAnswerHandler grades one answer and advances the session
func (s *Server) submitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.startSpan(r.Context(), "api.submit_answer")
	defer span.End()

	var req SubmitAnswerRequest
	if err := parseJSONRequest(r, &req); err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	span.SetAttributes(
		attribute.String("session.id", req.SessionID),
		attribute.Int("request.answer_length", len(req.Answer)),
	)

	result, err := s.Interviews.SubmitAnswer(ctx, req.SessionID, req.Answer)
	if err != nil {
		span.RecordError(err)
		s.metrics().RecordBusinessMetric(ctx, "answer_graded", false)
		writeAppError(w, err)
		return
	}

	span.SetAttributes(attribute.String("session.status", result.Status))
	s.metrics().RecordBusinessMetric(ctx, "answer_graded", true,
		attribute.Int("content_score", result.Feedback.ContentScore),
		attribute.Int("communication_score", result.Feedback.CommunicationScore))

	if result.Status == interview.StatusComplete {
		writeJSON(w, map[string]any{
			"status":         result.Status,
			"feedback":       result.Feedback,
			"final_scores":   result.FinalScores,
			"total_answered": result.TotalAnswered,
		})
		return
	}

	writeJSON(w, map[string]any{
		"status":          result.Status,
		"feedback":        result.Feedback,
		"next_question":   result.NextQuestion,
		"question_number": result.QuestionNumber,
		"total_questions": result.TotalQuestions,
	})
}

// interviewResultsHandler returns the complete results for a session
func (s *Server) interviewResultsHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.startSpan(r.Context(), "api.interview_results")
	defer span.End()

	session, scores, err := s.Interviews.Results(r.PathValue("session_id"))
	if err != nil {
		span.RecordError(err)
		writeAppError(w, err)
		return
	}

	span.SetAttributes(attribute.Int("session.answered", len(session.Answers)))

	writeJSON(w, map[string]any{
		"session": session,
		"scores":  scores,
		"answers": session.Answers,
	})
}
