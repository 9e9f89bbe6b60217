package interview

import (
	"strings"
	"testing"
)

// identityShuffle keeps the combined list in catalog order so tests can
// assert exact contents.
func identityShuffle([]string) {}

func reverseShuffle(qs []string) {
	for i, j := 0, len(qs)-1; i < j; i, j = i+1, j-1 {
		qs[i], qs[j] = qs[j], qs[i]
	}
}

func TestSelectQuestionsCompanyMatching(t *testing.T) {
	tests := []struct {
		name      string
		company   string
		wantFirst string
	}{
		{"google substring", "Google Cloud", "Tell me about a time you solved a complex technical problem."},
		{"amazon substring", "amazon web services", "Tell me about a time you failed and what you learned."},
		{"microsoft substring", "Microsoft", "How would you improve one of our products?"},
		{"startup keyword", "Some Startup Inc", "Why do you want to work at a startup?"},
		{"small keyword", "a small company", "Why do you want to work at a startup?"},
		{"unknown falls back to general", "Initech", "Tell me about yourself."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectQuestions(tt.company, "manager", identityShuffle)
			if len(got) == 0 {
				t.Fatal("SelectQuestions() returned no questions")
			}
			if got[0] != tt.wantFirst {
				t.Errorf("first question = %q, want %q", got[0], tt.wantFirst)
			}
		})
	}
}

func TestSelectQuestionsRoleBucketsAreIndependent(t *testing.T) {
	// A data engineer matches both role buckets, collecting all four
	// role questions on top of the startup base set.
	got := SelectQuestions("startup", "Data Engineer", reverseShuffle)

	joined := strings.Join(got, "\n")
	if !strings.Contains(joined, "How do you ensure code quality?") {
		t.Error("missing engineering role question")
	}
	if !strings.Contains(joined, "Explain a time you used data to drive a decision.") {
		t.Error("missing data role question")
	}
}

func TestSelectQuestionsTruncatesToFive(t *testing.T) {
	// general (5) + engineering (2) = 7 before truncation.
	got := SelectQuestions("Initech", "Software Engineer", identityShuffle)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	// Identity order means the engineering questions fall past the cut.
	for _, q := range got {
		if q == "Describe your development workflow." {
			t.Error("role question survived truncation under identity order")
		}
	}
}

func TestSelectQuestionsNoPaddingBelowFive(t *testing.T) {
	// startup base is 4 questions and "manager" matches no role bucket.
	got := SelectQuestions("startup", "manager", identityShuffle)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 without padding", len(got))
	}
}

func TestSelectQuestionsShuffleApplied(t *testing.T) {
	forward := SelectQuestions("Initech", "manager", identityShuffle)
	reversed := SelectQuestions("Initech", "manager", reverseShuffle)
	if forward[0] == reversed[0] {
		t.Error("reverse shuffle produced same leading question as identity order")
	}
}
