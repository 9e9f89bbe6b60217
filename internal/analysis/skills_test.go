package analysis

import (
	"reflect"
	"sort"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	job := `We are looking for a backend developer with strong Python and Go
experience. Familiarity with Docker, Kubernetes and PostgreSQL is required.
Experience with CI/CD pipelines is a plus.`

	got := ExtractSkills(job)

	for _, want := range []string{"Python", "Docker", "Kubernetes", "Postgresql", "Ci/Cd"} {
		found := false
		for _, skill := range got {
			if skill == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ExtractSkills() missing %q in %v", want, got)
		}
	}

	if !sort.StringsAreSorted(got) {
		t.Errorf("ExtractSkills() result not sorted: %v", got)
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	// No catalog entry appears in this text, not even the single-letter
	// language names.
	got := ExtractSkills("地道なチームワークを大切にできる方を探しています。")
	if len(got) != 0 {
		t.Errorf("ExtractSkills() = %v, want none", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"python", "Python"},
		{"node.js", "Node.Js"},
		{"machine learning", "Machine Learning"},
		{"ci/cd", "Ci/Cd"},
		{"c++", "C++"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyzeSkillGap(t *testing.T) {
	user := []string{"Python", "SQL", "Git"}
	required := []string{"python", "Docker", "sql", "Kubernetes", "AWS"}

	got := AnalyzeSkillGap(user, required)

	// Matching preserves the required list's casing and order.
	if !reflect.DeepEqual(got.MatchingSkills, []string{"python", "sql"}) {
		t.Errorf("MatchingSkills = %v", got.MatchingSkills)
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"Docker", "Kubernetes", "AWS"}) {
		t.Errorf("MissingSkills = %v", got.MissingSkills)
	}
	if got.ReadinessPercentage != 40 {
		t.Errorf("ReadinessPercentage = %v, want 40", got.ReadinessPercentage)
	}
	if got.ReadinessStatus != "Moderately Ready" {
		t.Errorf("ReadinessStatus = %q", got.ReadinessStatus)
	}
	if got.TotalRequired != 5 || got.TotalMatching != 2 || got.TotalMissing != 3 {
		t.Errorf("totals = (%d, %d, %d), want (5, 2, 3)",
			got.TotalRequired, got.TotalMatching, got.TotalMissing)
	}
}

func TestAnalyzeSkillGapStatusBands(t *testing.T) {
	tests := []struct {
		name       string
		user       []string
		required   []string
		wantStatus string
	}{
		{
			name:       "full match",
			user:       []string{"go", "sql"},
			required:   []string{"Go", "SQL"},
			wantStatus: "Highly Ready",
		},
		{
			name:       "two of three",
			user:       []string{"go", "sql"},
			required:   []string{"Go", "SQL", "Rust"},
			wantStatus: "Ready with Minor Gaps",
		},
		{
			name:       "no match",
			user:       []string{"cooking"},
			required:   []string{"Go", "SQL"},
			wantStatus: "Needs Preparation",
		},
		{
			name:       "no required skills",
			user:       []string{"go"},
			required:   []string{},
			wantStatus: "Needs Preparation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeSkillGap(tt.user, tt.required)
			if got.ReadinessStatus != tt.wantStatus {
				t.Errorf("ReadinessStatus = %q, want %q (%.1f%%)",
					got.ReadinessStatus, tt.wantStatus, got.ReadinessPercentage)
			}
		})
	}
}

func TestLearningResources(t *testing.T) {
	curated := LearningResources("Python")
	if len(curated) != 2 || curated[0].Name != "Python.org Tutorial" {
		t.Errorf("curated resources = %v", curated)
	}

	generic := LearningResources("Elixir")
	if len(generic) != 3 {
		t.Fatalf("generic resources = %v, want 3 entries", generic)
	}
	if generic[0].Type != "Video" {
		t.Errorf("first generic resource type = %q, want Video", generic[0].Type)
	}
}
