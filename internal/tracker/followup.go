package tracker

import (
	"time"

	"careerbot/internal/types"
)

// Follow-up policy: a fresh application gets a reminder one week out; an
// application the employer has viewed resets the clock to three days;
// terminal or scheduled statuses disable reminders entirely.
const (
	initialFollowUpDays = 7
	viewedFollowUpDays  = 3
)

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"

// InitialFollowUpDate returns the follow-up date for a newly tracked
// application: the application date plus one week.
func InitialFollowUpDate(dateApplied time.Time) string {
	return dateApplied.AddDate(0, 0, initialFollowUpDays).Format(DateLayout)
}

// NextFollowUpDate applies the status-to-policy table for a status change.
// It returns the new follow-up date and whether the stored value should be
// replaced at all: Applied and Interviewed carry the prior value unchanged.
func NextFollowUpDate(status types.Status, now time.Time) (date string, replace bool) {
	switch status {
	case types.StatusViewed:
		return now.AddDate(0, 0, viewedFollowUpDays).Format(DateLayout), true
	case types.StatusInterviewScheduled, types.StatusRejected, types.StatusOffer:
		return "", true
	default:
		// Applied and Interviewed keep whatever was scheduled before.
		return "", false
	}
}
