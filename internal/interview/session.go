package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"careerbot/internal/errors"
	"careerbot/internal/types"

	"github.com/google/uuid"
)

const (
	minAnswerLength     = 10
	defaultGradeTimeout = 30 * time.Second
)

// TimestampLayout is the wire format for session created_at fields.
const TimestampLayout = "2006-01-02 15:04:05"

// Grader produces free-text feedback for one answered question. The
// session store treats it as best-effort: any error is converted into
// fallback feedback and never fails the interview turn.
type Grader interface {
	GradeAnswer(ctx context.Context, question, answer string) (string, error)
}

// Submission statuses reported after each graded answer.
const (
	StatusContinue = "continue"
	StatusComplete = "complete"
)

// SubmitResult is the outcome of one graded answer. NextQuestion and
// QuestionNumber are set while the session continues; FinalScores and
// TotalAnswered are set once it completes.
type SubmitResult struct {
	Status         string
	Feedback       types.TurnFeedback
	NextQuestion   string
	QuestionNumber int
	TotalQuestions int
	FinalScores    *types.SessionScores
	TotalAnswered  int
}

// Store holds every interview session in memory, keyed by session id.
// The mutex is never held across a grading call: SubmitAnswer releases
// it for the network round-trip and re-validates on reacquire.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*types.InterviewSession

	grader       Grader
	gradeTimeout time.Duration

	// Injected for deterministic tests.
	now      func() time.Time
	idSuffix func() string
	shuffle  func([]string)
}

// NewStore creates an empty session store backed by the given grader.
// A zero gradeTimeout falls back to the default.
func NewStore(grader Grader, gradeTimeout time.Duration) *Store {
	if gradeTimeout <= 0 {
		gradeTimeout = defaultGradeTimeout
	}
	return &Store{
		sessions:     make(map[string]*types.InterviewSession),
		grader:       grader,
		gradeTimeout: gradeTimeout,
		now:          time.Now,
		idSuffix:     func() string { return uuid.NewString()[:8] },
	}
}

// CreateSession builds a new session for the given company and role and
// registers it under a fresh id.
func (s *Store) CreateSession(company, role string) (types.InterviewSession, error) {
	if strings.TrimSpace(company) == "" || strings.TrimSpace(role) == "" {
		return types.InterviewSession{}, errors.NewValidationError(errors.ErrCodeMissingField,
			"Company and role are required", nil)
	}

	now := s.now()
	session := &types.InterviewSession{
		SessionID: fmt.Sprintf("interview_%s_%s", now.Format("20060102_150405"), s.idSuffix()),
		Company:   company,
		Role:      role,
		Questions: SelectQuestions(company, role, s.shuffle),
		Answers:   []types.TurnFeedback{},
		CreatedAt: now.Format(TimestampLayout),
	}

	s.mu.Lock()
	s.sessions[session.SessionID] = session
	snapshot := *session
	s.mu.Unlock()

	return snapshot, nil
}

// SubmitAnswer grades one answer and advances the session. The grading
// call runs outside the store lock with a bounded timeout; after
// reacquiring, the turn index is re-checked so a concurrent submission
// for the same session cannot overwrite or double-advance it.
func (s *Store) SubmitAnswer(ctx context.Context, sessionID, answer string) (SubmitResult, error) {
	answer = strings.TrimSpace(answer)
	// Characters, not bytes: a short multibyte answer must not slip past
	// the minimum on byte length alone.
	if utf8.RuneCountInString(answer) < minAnswerLength {
		return SubmitResult{}, errors.NewValidationError(errors.ErrCodeAnswerTooShort,
			"Please provide a meaningful answer (at least 10 characters)", nil)
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return SubmitResult{}, errors.NewNotFoundError(errors.ErrCodeSessionNotFound,
			"Invalid session ID", nil).WithContext("session_id", sessionID)
	}
	if session.Complete() {
		s.mu.Unlock()
		return SubmitResult{}, errors.NewStateError(errors.ErrCodeSessionComplete,
			"Interview is already complete", nil).WithContext("session_id", sessionID)
	}
	turn := session.CurrentQuestion
	question := session.Questions[turn]
	s.mu.Unlock()

	feedback := s.gradeTurn(ctx, question, answer)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok = s.sessions[sessionID]
	if !ok {
		return SubmitResult{}, errors.NewNotFoundError(errors.ErrCodeSessionNotFound,
			"Invalid session ID", nil).WithContext("session_id", sessionID)
	}
	if session.CurrentQuestion != turn {
		return SubmitResult{}, errors.NewStateError(errors.ErrCodeSessionConflict,
			"Session was advanced by a concurrent request", nil).WithContext("session_id", sessionID)
	}

	session.Answers = append(session.Answers, feedback)
	session.CurrentQuestion++

	result := SubmitResult{
		Feedback:       feedback,
		TotalQuestions: len(session.Questions),
	}
	if session.Complete() {
		scores := computeScores(session)
		result.Status = StatusComplete
		result.FinalScores = &scores
		result.TotalAnswered = len(session.Answers)
	} else {
		result.Status = StatusContinue
		result.NextQuestion = session.Questions[session.CurrentQuestion]
		result.QuestionNumber = session.CurrentQuestion + 1
	}
	return result, nil
}

// gradeTurn combines the external grading call with local filler-word
// analysis. A grading failure degrades to default scores and an error
// commentary instead of failing the turn.
func (s *Store) gradeTurn(ctx context.Context, question, answer string) types.TurnFeedback {
	ctx, cancel := context.WithTimeout(ctx, s.gradeTimeout)
	defer cancel()

	content, communication := defaultScore, defaultScore
	text, err := s.grader.GradeAnswer(ctx, question, answer)
	if err != nil {
		text = fmt.Sprintf("Error: %v. Please check your API key.", err)
	} else {
		content = ParseScore(text, "Content Score")
		communication = ParseScore(text, "Communication Score")
	}

	fillers := AnalyzeFillers(answer)

	return types.TurnFeedback{
		Question:           question,
		Answer:             answer,
		ContentScore:       content,
		CommunicationScore: communication,
		ConfidenceScore:    fillers.ConfidenceScore,
		Feedback:           text,
		FillerWords:        fillers.FillerWords,
		TotalFillers:       fillers.TotalFillers,
	}
}

// Results returns a snapshot of the session and its aggregate scores.
func (s *Store) Results(sessionID string) (types.InterviewSession, types.SessionScores, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return types.InterviewSession{}, types.SessionScores{},
			errors.NewNotFoundError(errors.ErrCodeSessionNotFound,
				"Session not found", nil).WithContext("session_id", sessionID)
	}

	snapshot := *session
	snapshot.Questions = append([]string(nil), session.Questions...)
	snapshot.Answers = append([]types.TurnFeedback(nil), session.Answers...)
	return snapshot, computeScores(session), nil
}

// Count returns how many sessions the store currently holds.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// computeScores aggregates per-turn scores. Content and communication
// average on the 1-10 scale and are rescaled by ten in the overall
// score so they weigh against the 0-100 confidence average at 40/40/20.
func computeScores(session *types.InterviewSession) types.SessionScores {
	if len(session.Answers) == 0 {
		return types.SessionScores{}
	}

	var content, communication, confidence float64
	for _, a := range session.Answers {
		content += float64(a.ContentScore)
		communication += float64(a.CommunicationScore)
		confidence += a.ConfidenceScore
	}
	n := float64(len(session.Answers))
	contentAvg := content / n
	communicationAvg := communication / n
	confidenceAvg := confidence / n

	overall := contentAvg*10*0.4 + communicationAvg*10*0.4 + confidenceAvg*0.2

	return types.SessionScores{
		OverallScore:     round1(overall),
		ContentAvg:       round1(contentAvg),
		CommunicationAvg: round1(communicationAvg),
		ConfidenceAvg:    round1(confidenceAvg),
	}
}
