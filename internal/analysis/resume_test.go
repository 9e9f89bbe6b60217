package analysis

import (
	"strings"
	"testing"
)

func filler(words int) string {
	return strings.TrimSpace(strings.Repeat("lorem ", words))
}

func TestAnalyzeResumeLengthBands(t *testing.T) {
	tests := []struct {
		words     int
		wantScore int
	}{
		{500, 20},
		{350, 15},
		{700, 15},
		{900, 10},
		{100, 5},
	}

	for _, tt := range tests {
		got := AnalyzeResume(filler(tt.words))
		if got.WordCount != tt.words {
			t.Errorf("WordCount = %d, want %d", got.WordCount, tt.words)
		}
		if got.Scores.LengthScore != tt.wantScore {
			t.Errorf("LengthScore for %d words = %d, want %d",
				tt.words, got.Scores.LengthScore, tt.wantScore)
		}
	}
}

func TestAnalyzeResumeStrongResume(t *testing.T) {
	resume := `John Doe
john.doe@example.com 555-123-4567 linkedin.com/in/johndoe

Experience
• Developed and implemented backend services
• Managed releases, led a team of four, created internal tooling
• Improved throughput and reduced costs, achieved quarterly targets

Education
Skills
Projects and achievement highlights
` + filler(420)

	got := AnalyzeResume(resume)

	if got.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100 (scores %+v)", got.TotalScore, got.Scores)
	}
	if got.OverallAssessment != "Excellent resume! You're ready to apply with confidence." {
		t.Errorf("OverallAssessment = %q", got.OverallAssessment)
	}
	if !got.HasEmail || !got.HasPhone || !got.HasLinkedIn {
		t.Errorf("contact detection = (%v, %v, %v), want all true",
			got.HasEmail, got.HasPhone, got.HasLinkedIn)
	}
	if len(got.Improvements) != 0 {
		t.Errorf("Improvements = %v, want none", got.Improvements)
	}
	if len(got.Feedback) != 5 {
		t.Errorf("len(Feedback) = %d, want one line per category", len(got.Feedback))
	}
}

func TestAnalyzeResumeWeakResume(t *testing.T) {
	got := AnalyzeResume("I did some things at a company.")

	want := ResumeScores{
		LengthScore:      5,
		KeywordsScore:    10,
		FormattingScore:  10,
		ContactInfoScore: 10,
		ActionVerbsScore: 10,
	}
	if got.Scores != want {
		t.Errorf("Scores = %+v, want %+v", got.Scores, want)
	}
	if got.TotalScore != 45 {
		t.Errorf("TotalScore = %d, want 45", got.TotalScore)
	}
	if got.OverallAssessment != "Your resume needs major work before applying to jobs." {
		t.Errorf("OverallAssessment = %q", got.OverallAssessment)
	}
	if len(got.Improvements) != 5 {
		t.Fatalf("len(Improvements) = %d, want 5", len(got.Improvements))
	}
	if got.Improvements[0].Issue != "Resume is too short" {
		t.Errorf("length improvement issue = %q", got.Improvements[0].Issue)
	}
}

func TestAnalyzeResumeContactDetection(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEmail bool
		wantPhone bool
		wantLink  bool
	}{
		{"email only", "Reach me at jane@example.org", true, false, false},
		{"compact phone", "Call 5551234567 anytime", false, true, false},
		{"linkedin only", "See linkedin.com/in/jane", false, false, true},
		{"dotted phone", "Phone: 555.123.4567", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeResume(tt.text)
			if got.HasEmail != tt.wantEmail || got.HasPhone != tt.wantPhone || got.HasLinkedIn != tt.wantLink {
				t.Errorf("detection = (%v, %v, %v), want (%v, %v, %v)",
					got.HasEmail, got.HasPhone, got.HasLinkedIn,
					tt.wantEmail, tt.wantPhone, tt.wantLink)
			}
		})
	}
}

func TestAnalyzeResumePartialContactFeedback(t *testing.T) {
	got := AnalyzeResume("jane@example.org 555-123-4567")
	if got.Scores.ContactInfoScore != 15 {
		t.Fatalf("ContactInfoScore = %d, want 15", got.Scores.ContactInfoScore)
	}
	found := false
	for _, line := range got.Feedback {
		if strings.Contains(line, "Add LinkedIn profile") {
			found = true
		}
	}
	if !found {
		t.Errorf("feedback %v missing LinkedIn suggestion", got.Feedback)
	}
}
