package analysis

// ReadinessInput is the user profile for career readiness scoring.
type ReadinessInput struct {
	HasResume       bool    `json:"has_resume"`
	ResumeLength    int     `json:"resume_length"`
	SkillsCount     int     `json:"skills_count"`
	ExperienceYears float64 `json:"experience_years"`
	HasProjects     bool    `json:"has_projects"`
	ProjectsCount   int     `json:"projects_count"`
}

// ReadinessBreakdown holds the per-category scores, each out of 25.
type ReadinessBreakdown struct {
	ResumeQuality    int `json:"resume_quality"`
	SkillsMatch      int `json:"skills_match"`
	ExperienceLevel  int `json:"experience_level"`
	ProjectPortfolio int `json:"project_portfolio"`
	TotalScore       int `json:"total_score"`
}

// ReadinessResult is the complete readiness assessment.
type ReadinessResult struct {
	Score          int                `json:"score"`
	Breakdown      ReadinessBreakdown `json:"breakdown"`
	Feedback       []string           `json:"feedback"`
	ReadinessLevel string             `json:"readiness_level"`
}

// CalculateReadinessScore scores a user profile out of 100 across four
// equally weighted categories.
func CalculateReadinessScore(input ReadinessInput) ReadinessResult {
	breakdown := ReadinessBreakdown{
		ResumeQuality:    resumeQualityScore(input),
		SkillsMatch:      skillsScore(input.SkillsCount),
		ExperienceLevel:  experienceScore(input.ExperienceYears),
		ProjectPortfolio: projectsScore(input),
	}
	breakdown.TotalScore = breakdown.ResumeQuality + breakdown.SkillsMatch +
		breakdown.ExperienceLevel + breakdown.ProjectPortfolio

	return ReadinessResult{
		Score:          breakdown.TotalScore,
		Breakdown:      breakdown,
		Feedback:       readinessFeedback(breakdown),
		ReadinessLevel: ReadinessLevel(breakdown.TotalScore),
	}
}

func resumeQualityScore(input ReadinessInput) int {
	if !input.HasResume {
		return 0
	}
	score := 10
	switch {
	case input.ResumeLength >= 400 && input.ResumeLength <= 600:
		score += 15 // optimal length
	case input.ResumeLength >= 300 && input.ResumeLength < 800:
		score += 10
	case input.ResumeLength > 0:
		score += 5
	}
	return score
}

func skillsScore(count int) int {
	switch {
	case count >= 8:
		return 25
	case count >= 5:
		return 20
	case count >= 3:
		return 15
	case count > 0:
		return 10
	default:
		return 0
	}
}

func experienceScore(years float64) int {
	switch {
	case years >= 3:
		return 25
	case years >= 1:
		return 20
	case years >= 0.5:
		return 15
	default:
		return 10 // fresh graduate
	}
}

func projectsScore(input ReadinessInput) int {
	if !input.HasProjects {
		return 5
	}
	switch {
	case input.ProjectsCount >= 5:
		return 25
	case input.ProjectsCount >= 3:
		return 20
	case input.ProjectsCount >= 1:
		return 15
	default:
		return 0
	}
}

// readinessFeedback produces one line of feedback per category.
func readinessFeedback(b ReadinessBreakdown) []string {
	feedback := make([]string, 0, 4)

	switch {
	case b.ResumeQuality < 15:
		feedback = append(feedback, "Your resume needs improvement. Focus on making it ATS-friendly and concise.")
	case b.ResumeQuality < 20:
		feedback = append(feedback, "Your resume is good but could be optimized further.")
	default:
		feedback = append(feedback, "Great resume quality! Keep it updated with recent achievements.")
	}

	switch {
	case b.SkillsMatch < 15:
		feedback = append(feedback, "Add more relevant skills to your profile. Aim for at least 5-8 key skills.")
	case b.SkillsMatch < 20:
		feedback = append(feedback, "Good skill set. Consider learning trending technologies in your field.")
	default:
		feedback = append(feedback, "Excellent skill portfolio! Keep learning to stay ahead.")
	}

	switch {
	case b.ExperienceLevel < 15:
		feedback = append(feedback, "Gain experience through internships, freelancing, or personal projects.")
	case b.ExperienceLevel < 20:
		feedback = append(feedback, "Your experience is building up. Document your achievements clearly.")
	default:
		feedback = append(feedback, "Strong professional experience! Highlight your impact in each role.")
	}

	switch {
	case b.ProjectPortfolio < 15:
		feedback = append(feedback, "Build more projects! They demonstrate your practical skills to employers.")
	case b.ProjectPortfolio < 20:
		feedback = append(feedback, "Good project portfolio. Add detailed descriptions and live demos.")
	default:
		feedback = append(feedback, "Impressive project portfolio! Make sure they're accessible on GitHub.")
	}

	return feedback
}

// ReadinessLevel converts a numerical score to a readiness level.
func ReadinessLevel(score int) string {
	switch {
	case score >= 80:
		return "Highly Ready"
	case score >= 60:
		return "Ready with Minor Improvements"
	case score >= 40:
		return "Developing Readiness"
	default:
		return "Needs Significant Preparation"
	}
}
