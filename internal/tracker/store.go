package tracker

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"careerbot/internal/errors"
	"careerbot/internal/types"

	"github.com/google/uuid"
)

// TimestampLayout is the wire format for created_at / last_updated fields.
const TimestampLayout = "2006-01-02 15:04:05"

// Store holds every tracked application in memory, in insertion order.
// All mutations go through the mutex; applications live only as long as
// the process.
type Store struct {
	mu   sync.Mutex
	apps []*types.Application

	// Injected for deterministic tests.
	now      func() time.Time
	idSuffix func() string
}

// NewStore creates an empty application store.
func NewStore() *Store {
	return &Store{
		now:      time.Now,
		idSuffix: func() string { return uuid.NewString()[:8] },
	}
}

// newApplicationID derives a unique id from the creation timestamp.
func (s *Store) newApplicationID(now time.Time) string {
	return fmt.Sprintf("job_%s_%s", now.Format("20060102_150405"), s.idSuffix())
}

// Add validates the input, fills defaults and appends a new application.
func (s *Store) Add(input types.ApplicationInput) (types.Application, error) {
	if strings.TrimSpace(input.Company) == "" {
		return types.Application{}, errors.NewValidationError(errors.ErrCodeMissingField,
			"Company name is required", nil)
	}
	if strings.TrimSpace(input.Position) == "" {
		return types.Application{}, errors.NewValidationError(errors.ErrCodeMissingField,
			"Position is required", nil)
	}

	status := types.StatusApplied
	if input.Status != "" {
		status = types.Status(input.Status)
		if !status.IsValid() {
			return types.Application{}, errors.NewValidationError(errors.ErrCodeInvalidStatus,
				fmt.Sprintf("Invalid status. Must be one of: %v", types.ValidStatuses), nil)
		}
	}

	now := s.now()
	dateApplied := now
	dateAppliedStr := now.Format(DateLayout)
	if input.DateApplied != "" {
		parsed, err := time.Parse(DateLayout, input.DateApplied)
		if err != nil {
			return types.Application{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
				"date_applied must be in YYYY-MM-DD format", err)
		}
		dateApplied = parsed
		dateAppliedStr = input.DateApplied
	}

	app := &types.Application{
		ID:           s.newApplicationID(now),
		Company:      input.Company,
		Position:     input.Position,
		JobURL:       input.JobURL,
		DateApplied:  dateAppliedStr,
		Status:       status,
		Notes:        input.Notes,
		FollowUpDate: InitialFollowUpDate(dateApplied),
		CreatedAt:    now.Format(TimestampLayout),
	}

	s.mu.Lock()
	s.apps = append(s.apps, app)
	snapshot := *app
	s.mu.Unlock()

	return snapshot, nil
}

// List returns all applications sorted by creation time, newest first.
// Ties keep insertion order.
func (s *Store) List() []types.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Application, len(s.apps))
	for i, app := range s.apps {
		out[i] = *app
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Get returns the application with the given id.
func (s *Store) Get(id string) (types.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.apps {
		if app.ID == id {
			return *app, nil
		}
	}
	return types.Application{}, errors.NewNotFoundError(errors.ErrCodeApplicationNotFound,
		"Application not found", nil).WithContext("application_id", id)
}

// UpdateStatus transitions an application to a new status and recomputes
// its follow-up date per the status policy table. The application is left
// untouched when validation fails.
func (s *Store) UpdateStatus(id string, newStatus types.Status) (types.Application, error) {
	if !newStatus.IsValid() {
		return types.Application{}, errors.NewValidationError(errors.ErrCodeInvalidStatus,
			fmt.Sprintf("Invalid status. Must be one of: %v", types.ValidStatuses), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.apps {
		if app.ID != id {
			continue
		}
		now := s.now()
		app.Status = newStatus
		app.LastUpdated = now.Format(TimestampLayout)
		if date, replace := NextFollowUpDate(newStatus, now); replace {
			app.FollowUpDate = date
		}
		return *app, nil
	}

	return types.Application{}, errors.NewNotFoundError(errors.ErrCodeApplicationNotFound,
		"Application not found", nil).WithContext("application_id", id)
}

// Delete removes the application with the given id and reports whether
// anything was removed. The HTTP layer turns a false result into a 404.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.apps {
		if app.ID == id {
			s.apps = append(s.apps[:i], s.apps[i+1:]...)
			return true
		}
	}
	return false
}

// Reminders returns every due or overdue follow-up as of today, most
// overdue first. Only Applied and Viewed applications ever remind.
func (s *Store) Reminders(today time.Time) []types.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remindersLocked(today)
}

func (s *Store) remindersLocked(today time.Time) []types.Reminder {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	reminders := []types.Reminder{}

	for _, app := range s.apps {
		if app.Status != types.StatusApplied && app.Status != types.StatusViewed {
			continue
		}
		if app.FollowUpDate == "" {
			continue
		}
		due, err := time.Parse(DateLayout, app.FollowUpDate)
		if err != nil {
			continue
		}
		if due.After(day) {
			continue
		}
		overdue := int(day.Sub(due).Hours() / 24)
		priority := types.PriorityMedium
		if overdue > 3 {
			priority = types.PriorityHigh
		}
		reminders = append(reminders, types.Reminder{
			Application: *app,
			DaysOverdue: overdue,
			Priority:    priority,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysOverdue > reminders[j].DaysOverdue
	})
	return reminders
}

// Statistics aggregates counts across every tracked application. An empty
// store short-circuits to all-zero values so the response rate never
// divides by zero.
func (s *Store) Statistics() types.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.apps)
	if total == 0 {
		return types.Stats{StatusBreakdown: map[types.Status]int{}}
	}

	breakdown := make(map[types.Status]int)
	for _, app := range s.apps {
		breakdown[app.Status]++
	}

	responded := breakdown[types.StatusViewed] +
		breakdown[types.StatusInterviewScheduled] +
		breakdown[types.StatusInterviewed] +
		breakdown[types.StatusOffer]

	return types.Stats{
		TotalApplications: total,
		StatusBreakdown:   breakdown,
		ResponseRate:      round1(float64(responded) / float64(total) * 100),
		PendingFollowUps:  len(s.remindersLocked(s.now())),
		Interviews:        breakdown[types.StatusInterviewScheduled] + breakdown[types.StatusInterviewed],
		Offers:            breakdown[types.StatusOffer],
		Rejections:        breakdown[types.StatusRejected],
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
