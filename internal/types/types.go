package types

// Status is the lifecycle state of a tracked job application.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusViewed             Status = "Viewed"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewed        Status = "Interviewed"
	StatusRejected           Status = "Rejected"
	StatusOffer              Status = "Offer"
)

// ValidStatuses lists every status the tracker accepts, in display order.
var ValidStatuses = []Status{
	StatusApplied,
	StatusViewed,
	StatusInterviewScheduled,
	StatusInterviewed,
	StatusRejected,
	StatusOffer,
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Application is a tracked job application. FollowUpDate is a YYYY-MM-DD
// date string; empty means no follow-up is scheduled for the current status.
type Application struct {
	ID           string `json:"id"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	JobURL       string `json:"job_url"`
	DateApplied  string `json:"date_applied"`
	Status       Status `json:"status"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"follow_up_date,omitempty"`
	CreatedAt    string `json:"created_at"`
	LastUpdated  string `json:"last_updated,omitempty"`
}

// ApplicationInput carries the caller-supplied fields for a new application.
type ApplicationInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	JobURL      string `json:"job_url"`
	DateApplied string `json:"date_applied"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// ReminderPriority classifies how urgent a follow-up reminder is.
type ReminderPriority string

const (
	PriorityHigh   ReminderPriority = "High"
	PriorityMedium ReminderPriority = "Medium"
)

// Reminder is a due or overdue follow-up for an application.
type Reminder struct {
	Application Application      `json:"application"`
	DaysOverdue int              `json:"days_overdue"`
	Priority    ReminderPriority `json:"priority"`
}

// Stats aggregates the state of every tracked application.
type Stats struct {
	TotalApplications int            `json:"total_applications"`
	StatusBreakdown   map[Status]int `json:"status_breakdown"`
	ResponseRate      float64        `json:"response_rate"`
	PendingFollowUps  int            `json:"pending_follow_ups"`
	Interviews        int            `json:"interviews"`
	Offers            int            `json:"offers"`
	Rejections        int            `json:"rejections"`
}

// TurnFeedback is the immutable record of one answered interview question.
type TurnFeedback struct {
	Question           string         `json:"question"`
	Answer             string         `json:"answer"`
	ContentScore       int            `json:"content_score"`
	CommunicationScore int            `json:"communication_score"`
	ConfidenceScore    float64        `json:"confidence_score"`
	Feedback           string         `json:"feedback"`
	FillerWords        map[string]int `json:"filler_words"`
	TotalFillers       int            `json:"total_fillers"`
}

// InterviewSession is a mock interview in progress or completed.
// CurrentQuestion always equals len(Answers) between turns.
type InterviewSession struct {
	SessionID       string         `json:"session_id"`
	Company         string         `json:"company"`
	Role            string         `json:"role"`
	Questions       []string       `json:"questions"`
	CurrentQuestion int            `json:"current_question"`
	Answers         []TurnFeedback `json:"answers"`
	CreatedAt       string         `json:"created_at"`
}

// Complete reports whether every question has been answered.
func (s *InterviewSession) Complete() bool {
	return s.CurrentQuestion >= len(s.Questions)
}

// SessionScores are the aggregate results of a session. Content and
// communication averages are on the 1-10 grading scale; confidence is
// 0-100; the overall score rescales the first two to weight them 40/40/20
// against confidence.
type SessionScores struct {
	OverallScore     float64 `json:"overall_score"`
	ContentAvg       float64 `json:"content_avg"`
	CommunicationAvg float64 `json:"communication_avg"`
	ConfidenceAvg    float64 `json:"confidence_avg"`
}

// RawFeedback is the unparsed grading response from the AI collaborator.
type RawFeedback struct {
	Text string `json:"text"`
}
