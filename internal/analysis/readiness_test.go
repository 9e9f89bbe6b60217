package analysis

import "testing"

func TestCalculateReadinessScore(t *testing.T) {
	tests := []struct {
		name      string
		input     ReadinessInput
		wantTotal int
		wantLevel string
	}{
		{
			name: "strong profile maxes every category",
			input: ReadinessInput{
				HasResume:       true,
				ResumeLength:    500,
				SkillsCount:     10,
				ExperienceYears: 4,
				HasProjects:     true,
				ProjectsCount:   6,
			},
			wantTotal: 100,
			wantLevel: "Highly Ready",
		},
		{
			name:      "empty profile still credits fresh graduates",
			input:     ReadinessInput{},
			wantTotal: 15, // experience floor 10 + projects floor 5
			wantLevel: "Needs Significant Preparation",
		},
		{
			name: "resume without length detail scores base points only",
			input: ReadinessInput{
				HasResume:       true,
				SkillsCount:     5,
				ExperienceYears: 1.5,
				HasProjects:     true,
				ProjectsCount:   2,
			},
			wantTotal: 65, // 10 + 20 + 20 + 15
			wantLevel: "Ready with Minor Improvements",
		},
		{
			name: "half year of experience counts as exposure",
			input: ReadinessInput{
				HasResume:       true,
				ResumeLength:    350,
				SkillsCount:     3,
				ExperienceYears: 0.5,
				HasProjects:     true,
				ProjectsCount:   3,
			},
			wantTotal: 70, // 20 + 15 + 15 + 20
			wantLevel: "Ready with Minor Improvements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateReadinessScore(tt.input)
			if got.Score != tt.wantTotal {
				t.Errorf("Score = %d, want %d (breakdown %+v)", got.Score, tt.wantTotal, got.Breakdown)
			}
			if got.ReadinessLevel != tt.wantLevel {
				t.Errorf("ReadinessLevel = %q, want %q", got.ReadinessLevel, tt.wantLevel)
			}
			if got.Breakdown.TotalScore != got.Score {
				t.Errorf("Breakdown.TotalScore = %d disagrees with Score %d", got.Breakdown.TotalScore, got.Score)
			}
			if len(got.Feedback) != 4 {
				t.Errorf("len(Feedback) = %d, want one line per category", len(got.Feedback))
			}
		})
	}
}

func TestReadinessLevelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Highly Ready"},
		{80, "Highly Ready"},
		{79, "Ready with Minor Improvements"},
		{60, "Ready with Minor Improvements"},
		{59, "Developing Readiness"},
		{40, "Developing Readiness"},
		{39, "Needs Significant Preparation"},
		{0, "Needs Significant Preparation"},
	}
	for _, tt := range tests {
		if got := ReadinessLevel(tt.score); got != tt.want {
			t.Errorf("ReadinessLevel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
