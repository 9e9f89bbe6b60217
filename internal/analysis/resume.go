package analysis

import (
	"math"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`\d{10}|\d{3}[-.\s]\d{3}[-.\s]\d{4}`)
)

var importantKeywords = []string{
	"experience", "education", "skills", "project", "achievement",
	"developed", "managed", "led", "created", "implemented",
}

var strongActionVerbs = []string{
	"achieved", "improved", "increased", "reduced", "developed",
	"created", "implemented", "designed", "led", "managed",
	"optimized", "built", "launched", "generated", "delivered",
}

// ResumeScores holds the per-category resume scores, each out of 20.
type ResumeScores struct {
	LengthScore      int `json:"length_score"`
	KeywordsScore    int `json:"keywords_score"`
	FormattingScore  int `json:"formatting_score"`
	ContactInfoScore int `json:"contact_info_score"`
	ActionVerbsScore int `json:"action_verbs_score"`
}

// Improvement is one concrete suggestion derived from a weak category.
type Improvement struct {
	Category string `json:"category"`
	Issue    string `json:"issue"`
	Fix      string `json:"fix"`
}

// ResumeAnalysis is the complete assessment of one resume's text.
type ResumeAnalysis struct {
	TotalScore        int           `json:"total_score"`
	Scores            ResumeScores  `json:"scores"`
	Feedback          []string      `json:"feedback"`
	OverallAssessment string        `json:"overall_assessment"`
	WordCount         int           `json:"word_count"`
	HasEmail          bool          `json:"has_email"`
	HasPhone          bool          `json:"has_phone"`
	HasLinkedIn       bool          `json:"has_linkedin"`
	Improvements      []Improvement `json:"improvements"`
}

// AnalyzeResume scores resume text across five categories of 20 points
// each and derives improvement suggestions from the weak ones.
func AnalyzeResume(resumeText string) ResumeAnalysis {
	resumeLower := strings.ToLower(resumeText)
	wordCount := len(strings.Fields(resumeText))

	var scores ResumeScores
	feedback := []string{}

	// Length
	switch {
	case wordCount >= 400 && wordCount <= 600:
		scores.LengthScore = 20
		feedback = append(feedback, "✓ Perfect length! Your resume is concise and complete.")
	case wordCount >= 300 && wordCount < 400:
		scores.LengthScore = 15
		feedback = append(feedback, "⚠ Resume is a bit short. Add more details about your achievements.")
	case wordCount > 600 && wordCount <= 800:
		scores.LengthScore = 15
		feedback = append(feedback, "⚠ Resume is slightly long. Try to be more concise.")
	case wordCount > 800:
		scores.LengthScore = 10
		feedback = append(feedback, "✗ Resume is too long! Recruiters spend only 6 seconds. Cut it down.")
	default:
		scores.LengthScore = 5
		feedback = append(feedback, "✗ Resume is too short. Add more relevant experience and skills.")
	}

	// Keywords
	keywordsFound := 0
	for _, keyword := range importantKeywords {
		if strings.Contains(resumeLower, keyword) {
			keywordsFound++
		}
	}
	keywordPercentage := float64(keywordsFound) / float64(len(importantKeywords)) * 100
	switch {
	case keywordPercentage >= 70:
		scores.KeywordsScore = 20
		feedback = append(feedback, "✓ Great use of important keywords! ATS systems will love this.")
	case keywordPercentage >= 50:
		scores.KeywordsScore = 15
		feedback = append(feedback, "⚠ Good keywords, but add more action verbs and achievements.")
	default:
		scores.KeywordsScore = 10
		feedback = append(feedback, "✗ Missing important keywords. Add more action verbs and specific achievements.")
	}

	// Formatting
	hasBullets := strings.ContainsAny(resumeText, "•-*")
	hasSections := false
	for _, section := range []string{"experience", "education", "skills", "projects"} {
		if strings.Contains(resumeLower, section) {
			hasSections = true
			break
		}
	}
	switch {
	case hasBullets && hasSections:
		scores.FormattingScore = 20
		feedback = append(feedback, "✓ Well-structured with clear sections and bullet points.")
	case hasSections:
		scores.FormattingScore = 15
		feedback = append(feedback, "⚠ Good sections, but use bullet points for better readability.")
	default:
		scores.FormattingScore = 10
		feedback = append(feedback, "✗ Poor structure. Add clear sections: Experience, Education, Skills, Projects.")
	}

	// Contact information
	hasEmail := emailPattern.MatchString(resumeText)
	hasPhone := phonePattern.MatchString(resumeText)
	hasLinkedIn := strings.Contains(resumeLower, "linkedin")
	contactCount := 0
	for _, present := range []bool{hasEmail, hasPhone, hasLinkedIn} {
		if present {
			contactCount++
		}
	}
	switch {
	case contactCount >= 3:
		scores.ContactInfoScore = 20
		feedback = append(feedback, "✓ Complete contact information provided.")
	case contactCount >= 2:
		scores.ContactInfoScore = 15
		feedback = append(feedback, "⚠ Add LinkedIn profile for better networking opportunities.")
	default:
		scores.ContactInfoScore = 10
		feedback = append(feedback, "✗ Missing contact information! Add email, phone, and LinkedIn.")
	}

	// Action verbs
	verbsFound := 0
	for _, verb := range strongActionVerbs {
		if strings.Contains(resumeLower, verb) {
			verbsFound++
		}
	}
	switch {
	case verbsFound >= 5:
		scores.ActionVerbsScore = 20
		feedback = append(feedback, "✓ Excellent use of strong action verbs showing impact!")
	case verbsFound >= 3:
		scores.ActionVerbsScore = 15
		feedback = append(feedback, "⚠ Good action verbs, but use more to show your impact.")
	default:
		scores.ActionVerbsScore = 10
		feedback = append(feedback, "✗ Weak language! Replace passive descriptions with strong action verbs.")
	}

	totalScore := scores.LengthScore + scores.KeywordsScore + scores.FormattingScore +
		scores.ContactInfoScore + scores.ActionVerbsScore

	analysis := ResumeAnalysis{
		TotalScore:        totalScore,
		Scores:            scores,
		Feedback:          feedback,
		OverallAssessment: overallAssessment(totalScore),
		WordCount:         wordCount,
		HasEmail:          hasEmail,
		HasPhone:          hasPhone,
		HasLinkedIn:       hasLinkedIn,
	}
	analysis.Improvements = generateImprovements(analysis)
	return analysis
}

func overallAssessment(totalScore int) string {
	switch {
	case totalScore >= 85:
		return "Excellent resume! You're ready to apply with confidence."
	case totalScore >= 70:
		return "Good resume with minor improvements needed."
	case totalScore >= 50:
		return "Decent resume, but needs significant improvements."
	default:
		return "Your resume needs major work before applying to jobs."
	}
}

// generateImprovements emits one suggestion per category scoring below 15.
func generateImprovements(analysis ResumeAnalysis) []Improvement {
	improvements := []Improvement{}
	scores := analysis.Scores

	if scores.LengthScore < 15 {
		if analysis.WordCount < 400 {
			improvements = append(improvements, Improvement{
				Category: "Length",
				Issue:    "Resume is too short",
				Fix:      "Add more details about your projects, quantify your achievements, and expand on your responsibilities.",
			})
		} else {
			improvements = append(improvements, Improvement{
				Category: "Length",
				Issue:    "Resume is too long",
				Fix:      "Remove unnecessary details, focus on recent and relevant experience, use concise bullet points.",
			})
		}
	}
	if scores.KeywordsScore < 15 {
		improvements = append(improvements, Improvement{
			Category: "Keywords",
			Issue:    "Missing important keywords",
			Fix:      `Add action verbs like "developed", "implemented", "managed". Include technical skills and achievements.`,
		})
	}
	if scores.FormattingScore < 15 {
		improvements = append(improvements, Improvement{
			Category: "Formatting",
			Issue:    "Poor structure and formatting",
			Fix:      "Use clear sections: Summary, Experience, Education, Skills, Projects. Use bullet points, not paragraphs.",
		})
	}
	if scores.ContactInfoScore < 15 {
		improvements = append(improvements, Improvement{
			Category: "Contact Info",
			Issue:    "Incomplete contact information",
			Fix:      "Add: Professional email, phone number, LinkedIn profile, GitHub (for tech roles), portfolio link.",
		})
	}
	if scores.ActionVerbsScore < 15 {
		improvements = append(improvements, Improvement{
			Category: "Impact",
			Issue:    "Weak language and no quantified results",
			Fix:      `Use strong verbs: "Increased sales by 30%", "Reduced costs by $50K", "Led team of 5 developers".`,
		})
	}

	return improvements
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
