package tracker

import (
	"strings"
	"testing"
	"time"

	"careerbot/internal/errors"
	"careerbot/internal/types"
)

// newTestStore returns a store pinned to a fixed clock and id suffix.
func newTestStore(now time.Time) *Store {
	s := NewStore()
	s.now = func() time.Time { return now }
	n := 0
	s.idSuffix = func() string {
		n++
		return string(rune('a' + n - 1))
	}
	return s
}

func TestAddDefaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	s := newTestStore(now)

	app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if app.Status != types.StatusApplied {
		t.Errorf("Status = %q, want %q", app.Status, types.StatusApplied)
	}
	if app.DateApplied != "2025-03-10" {
		t.Errorf("DateApplied = %q, want %q", app.DateApplied, "2025-03-10")
	}
	if app.FollowUpDate != "2025-03-17" {
		t.Errorf("FollowUpDate = %q, want %q", app.FollowUpDate, "2025-03-17")
	}
	if app.CreatedAt != "2025-03-10 14:00:00" {
		t.Errorf("CreatedAt = %q, want %q", app.CreatedAt, "2025-03-10 14:00:00")
	}
	if !strings.HasPrefix(app.ID, "job_20250310_140000_") {
		t.Errorf("ID = %q, want job_20250310_140000_ prefix", app.ID)
	}
	if app.LastUpdated != "" {
		t.Errorf("LastUpdated = %q, want empty on creation", app.LastUpdated)
	}
}

func TestAddExplicitDateApplied(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	s := newTestStore(now)

	app, err := s.Add(types.ApplicationInput{
		Company:     "Acme",
		Position:    "Engineer",
		DateApplied: "2025-03-01",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	// Follow-up derives from the application date, not the creation time.
	if app.FollowUpDate != "2025-03-08" {
		t.Errorf("FollowUpDate = %q, want %q", app.FollowUpDate, "2025-03-08")
	}
}

func TestAddValidation(t *testing.T) {
	s := newTestStore(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		input    types.ApplicationInput
		wantCode string
	}{
		{
			name:     "missing company",
			input:    types.ApplicationInput{Position: "Engineer"},
			wantCode: errors.ErrCodeMissingField,
		},
		{
			name:     "missing position",
			input:    types.ApplicationInput{Company: "Acme"},
			wantCode: errors.ErrCodeMissingField,
		},
		{
			name:     "whitespace company",
			input:    types.ApplicationInput{Company: "   ", Position: "Engineer"},
			wantCode: errors.ErrCodeMissingField,
		},
		{
			name:     "unknown status",
			input:    types.ApplicationInput{Company: "Acme", Position: "Engineer", Status: "Ghosted"},
			wantCode: errors.ErrCodeInvalidStatus,
		},
		{
			name:     "bad date format",
			input:    types.ApplicationInput{Company: "Acme", Position: "Engineer", DateApplied: "03/10/2025"},
			wantCode: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.input)
			appErr, ok := err.(*errors.AppError)
			if !ok {
				t.Fatalf("Add() error = %v, want *AppError", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", appErr.Code, tt.wantCode)
			}
		})
	}

	if got := len(s.List()); got != 0 {
		t.Errorf("store has %d applications after failed adds, want 0", got)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := NewStore()
	times := []time.Time{
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	i := 0
	s.now = func() time.Time { t := times[i]; i++; return t }
	s.idSuffix = func() string { return "abcd1234" }

	for _, company := range []string{"First", "Second", "Third"} {
		if _, err := s.Add(types.ApplicationInput{Company: company, Position: "Engineer"}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	got := s.List()
	want := []string{"Second", "Third", "First"}
	for i, company := range want {
		if got[i].Company != company {
			t.Errorf("List()[%d].Company = %q, want %q", i, got[i].Company, company)
		}
	}
}

func TestUpdateStatusFollowUpPolicy(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     types.Status
		wantFollow string
	}{
		{"viewed resets to three days", types.StatusViewed, "2025-03-13"},
		{"interview scheduled clears", types.StatusInterviewScheduled, ""},
		{"rejected clears", types.StatusRejected, ""},
		{"offer clears", types.StatusOffer, ""},
		{"interviewed keeps existing", types.StatusInterviewed, "2025-03-17"},
		{"applied keeps existing", types.StatusApplied, "2025-03-17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(now)
			app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			updated, err := s.UpdateStatus(app.ID, tt.status)
			if err != nil {
				t.Fatalf("UpdateStatus() error = %v", err)
			}
			if updated.FollowUpDate != tt.wantFollow {
				t.Errorf("FollowUpDate = %q, want %q", updated.FollowUpDate, tt.wantFollow)
			}
			if updated.Status != tt.status {
				t.Errorf("Status = %q, want %q", updated.Status, tt.status)
			}
			if updated.LastUpdated != "2025-03-10 14:00:00" {
				t.Errorf("LastUpdated = %q, want %q", updated.LastUpdated, "2025-03-10 14:00:00")
			}
		})
	}
}

func TestUpdateStatusInvalidLeavesUnmodified(t *testing.T) {
	s := newTestStore(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))
	app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if _, err := s.UpdateStatus(app.ID, "Ghosted"); err == nil {
		t.Fatal("UpdateStatus() with unknown status succeeded, want error")
	}

	got, err := s.Get(app.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != types.StatusApplied {
		t.Errorf("Status = %q after failed update, want %q", got.Status, types.StatusApplied)
	}
	if got.LastUpdated != "" {
		t.Errorf("LastUpdated = %q after failed update, want empty", got.LastUpdated)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	s := newTestStore(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	_, err := s.UpdateStatus("job_missing", types.StatusViewed)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Type != errors.ErrorTypeNotFound {
		t.Fatalf("UpdateStatus() error = %v, want not_found AppError", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if !s.Delete(app.ID) {
		t.Error("Delete() = false for existing application, want true")
	}
	if s.Delete(app.ID) {
		t.Error("Delete() = true for removed application, want false")
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("store has %d applications after delete, want 0", got)
	}
}

func TestReminders(t *testing.T) {
	today := time.Date(2025, 3, 20, 11, 30, 0, 0, time.UTC)
	s := newTestStore(today)

	add := func(company string, status types.Status, followUp string) {
		app, err := s.Add(types.ApplicationInput{Company: company, Position: "Engineer"})
		if err != nil {
			t.Fatalf("Add(%s) error = %v", company, err)
		}
		s.mu.Lock()
		for _, a := range s.apps {
			if a.ID == app.ID {
				a.Status = status
				a.FollowUpDate = followUp
			}
		}
		s.mu.Unlock()
	}

	add("DueToday", types.StatusApplied, "2025-03-20")
	add("FiveOver", types.StatusViewed, "2025-03-15")
	add("TwoOver", types.StatusApplied, "2025-03-18")
	add("Future", types.StatusApplied, "2025-03-25")
	add("NoDate", types.StatusApplied, "")
	add("WrongStatus", types.StatusInterviewed, "2025-03-15")

	got := s.Reminders(today)
	if len(got) != 3 {
		t.Fatalf("Reminders() returned %d entries, want 3", len(got))
	}

	want := []struct {
		company  string
		overdue  int
		priority types.ReminderPriority
	}{
		{"FiveOver", 5, types.PriorityHigh},
		{"TwoOver", 2, types.PriorityMedium},
		{"DueToday", 0, types.PriorityMedium},
	}
	for i, w := range want {
		r := got[i]
		if r.Application.Company != w.company {
			t.Errorf("reminder[%d].Company = %q, want %q", i, r.Application.Company, w.company)
		}
		if r.DaysOverdue != w.overdue {
			t.Errorf("reminder[%d].DaysOverdue = %d, want %d", i, r.DaysOverdue, w.overdue)
		}
		if r.Priority != w.priority {
			t.Errorf("reminder[%d].Priority = %q, want %q", i, r.Priority, w.priority)
		}
	}
}

func TestRemindersPriorityBoundary(t *testing.T) {
	// Exactly three days overdue stays Medium; four flips to High.
	today := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	s := newTestStore(today)

	for _, followUp := range []string{"2025-03-17", "2025-03-16"} {
		app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		s.mu.Lock()
		s.apps[len(s.apps)-1].FollowUpDate = followUp
		s.mu.Unlock()
		_ = app
	}

	got := s.Reminders(today)
	if len(got) != 2 {
		t.Fatalf("Reminders() returned %d entries, want 2", len(got))
	}
	if got[0].DaysOverdue != 4 || got[0].Priority != types.PriorityHigh {
		t.Errorf("4 days overdue: got (%d, %q), want (4, High)", got[0].DaysOverdue, got[0].Priority)
	}
	if got[1].DaysOverdue != 3 || got[1].Priority != types.PriorityMedium {
		t.Errorf("3 days overdue: got (%d, %q), want (3, Medium)", got[1].DaysOverdue, got[1].Priority)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	s := newTestStore(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	got := s.Statistics()
	if got.TotalApplications != 0 || got.ResponseRate != 0 {
		t.Errorf("Statistics() = %+v, want zero values", got)
	}
	if got.StatusBreakdown == nil {
		t.Error("StatusBreakdown is nil, want empty map")
	}
}

func TestStatistics(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s := newTestStore(now)

	statuses := []types.Status{
		types.StatusApplied,
		types.StatusViewed,
		types.StatusInterviewScheduled,
		types.StatusInterviewed,
		types.StatusRejected,
		types.StatusOffer,
	}
	for _, status := range statuses {
		app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if status != types.StatusApplied {
			if _, err := s.UpdateStatus(app.ID, status); err != nil {
				t.Fatalf("UpdateStatus(%s) error = %v", status, err)
			}
		}
	}

	got := s.Statistics()
	if got.TotalApplications != 6 {
		t.Errorf("TotalApplications = %d, want 6", got.TotalApplications)
	}
	// Viewed, Interview Scheduled, Interviewed and Offer count as responses.
	if got.ResponseRate != 66.7 {
		t.Errorf("ResponseRate = %v, want 66.7", got.ResponseRate)
	}
	if got.Interviews != 2 {
		t.Errorf("Interviews = %d, want 2", got.Interviews)
	}
	if got.Offers != 1 {
		t.Errorf("Offers = %d, want 1", got.Offers)
	}
	if got.Rejections != 1 {
		t.Errorf("Rejections = %d, want 1", got.Rejections)
	}
	if got.StatusBreakdown[types.StatusApplied] != 1 {
		t.Errorf("StatusBreakdown[Applied] = %d, want 1", got.StatusBreakdown[types.StatusApplied])
	}
}

func TestStatusLifecycleFollowUpSequence(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := newTestStore(now)

	app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if app.FollowUpDate != "2025-03-17" {
		t.Fatalf("initial FollowUpDate = %q, want 2025-03-17", app.FollowUpDate)
	}

	app, err = s.UpdateStatus(app.ID, types.StatusViewed)
	if err != nil {
		t.Fatalf("UpdateStatus(Viewed) error = %v", err)
	}
	if app.FollowUpDate != "2025-03-13" {
		t.Fatalf("after Viewed FollowUpDate = %q, want 2025-03-13", app.FollowUpDate)
	}

	app, err = s.UpdateStatus(app.ID, types.StatusInterviewed)
	if err != nil {
		t.Fatalf("UpdateStatus(Interviewed) error = %v", err)
	}
	if app.FollowUpDate != "2025-03-13" {
		t.Fatalf("after Interviewed FollowUpDate = %q, want unchanged 2025-03-13", app.FollowUpDate)
	}

	app, err = s.UpdateStatus(app.ID, types.StatusOffer)
	if err != nil {
		t.Fatalf("UpdateStatus(Offer) error = %v", err)
	}
	if app.FollowUpDate != "" {
		t.Fatalf("after Offer FollowUpDate = %q, want cleared", app.FollowUpDate)
	}
}

func TestAddSnapshotIsolatedFromConcurrentUpdates(t *testing.T) {
	s := NewStore()

	ids := make(chan string, 32)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for id := range ids {
			if _, err := s.UpdateStatus(id, types.StatusViewed); err != nil {
				t.Errorf("UpdateStatus() error = %v", err)
			}
		}
	}()

	for range 32 {
		app, err := s.Add(types.ApplicationInput{Company: "Acme", Position: "Engineer"})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		ids <- app.ID
		// The returned value is a snapshot: an update racing with this
		// read must not show through it.
		if app.Status != types.StatusApplied || app.LastUpdated != "" {
			t.Errorf("snapshot mutated: status=%q lastUpdated=%q", app.Status, app.LastUpdated)
		}
	}
	close(ids)
	<-done
}

func TestGenerateFollowUpEmail(t *testing.T) {
	email := GenerateFollowUpEmail(types.Application{Company: "Acme", Position: "Engineer"})
	if !strings.Contains(email, "Subject: Following Up on Engineer Application") {
		t.Error("email missing subject line with position")
	}
	if !strings.Contains(email, "Engineer position at Acme") {
		t.Error("email missing position and company in body")
	}
}
