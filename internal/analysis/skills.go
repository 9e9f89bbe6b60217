package analysis

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// skillsDatabase is the fixed catalog of technical skills matched by
// substring against job descriptions.
var skillsDatabase = []string{
	// Programming Languages
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift",
	"kotlin", "go", "rust", "typescript", "r", "matlab", "scala",

	// Web Technologies
	"html", "css", "react", "angular", "vue", "node.js", "express",
	"django", "flask", "fastapi", "spring", "asp.net", "jquery",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra",
	"oracle", "dynamodb", "sqlite", "nosql",

	// Data Science & ML
	"machine learning", "deep learning", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "data analysis", "statistics",
	"nlp", "computer vision", "keras", "data science",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
	"git", "github", "gitlab", "ci/cd", "terraform", "ansible",

	// Other Tools
	"excel", "power bi", "tableau", "jira", "agile", "scrum",
	"linux", "bash", "api", "rest", "graphql", "microservices",
}

// ExtractSkills finds catalog skills mentioned in a job description by
// case-insensitive substring match, returned title-cased and sorted.
func ExtractSkills(jobDescription string) []string {
	jobText := strings.ToLower(jobDescription)

	found := []string{}
	for _, skill := range skillsDatabase {
		if strings.Contains(jobText, skill) {
			found = append(found, titleCase(skill))
		}
	}

	sort.Strings(found)
	return found
}

// titleCase capitalizes the first letter of every word, where words are
// delimited by any non-letter rune. "node.js" becomes "Node.Js", which
// matches the display form used throughout.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}

// GapAnalysis compares a user's skills to a job's requirements.
type GapAnalysis struct {
	MatchingSkills      []string              `json:"matching_skills"`
	MissingSkills       []string              `json:"missing_skills"`
	ReadinessPercentage float64               `json:"readiness_percentage"`
	ReadinessStatus     string                `json:"readiness_status"`
	Recommendation      string                `json:"recommendation"`
	TotalRequired       int                   `json:"total_required"`
	TotalMatching       int                   `json:"total_matching"`
	TotalMissing        int                   `json:"total_missing"`
	LearningResources   map[string][]Resource `json:"learning_resources,omitempty"`
}

// AnalyzeSkillGap splits required skills into matching and missing by
// case-insensitive comparison against the user's skills, preserving the
// required skills' original casing and order.
func AnalyzeSkillGap(userSkills, requiredSkills []string) GapAnalysis {
	userSet := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		userSet[strings.ToLower(skill)] = true
	}

	matching := []string{}
	missing := []string{}
	for _, skill := range requiredSkills {
		if userSet[strings.ToLower(skill)] {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	percentage := 0.0
	if len(requiredSkills) > 0 {
		percentage = float64(len(matching)) / float64(len(requiredSkills)) * 100
	}

	status, recommendation := readinessStatus(percentage)

	return GapAnalysis{
		MatchingSkills:      matching,
		MissingSkills:       missing,
		ReadinessPercentage: round1(percentage),
		ReadinessStatus:     status,
		Recommendation:      recommendation,
		TotalRequired:       len(requiredSkills),
		TotalMatching:       len(matching),
		TotalMissing:        len(missing),
	}
}

func readinessStatus(percentage float64) (status, recommendation string) {
	switch {
	case percentage >= 80:
		return "Highly Ready", "You have most required skills! Apply with confidence."
	case percentage >= 60:
		return "Ready with Minor Gaps", "You're qualified! Learn the missing skills while applying."
	case percentage >= 40:
		return "Moderately Ready", "Spend 2-3 weeks learning key missing skills before applying."
	default:
		return "Needs Preparation", "Focus on building foundational skills first."
	}
}

// Resource is one free learning resource for a skill.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

var curatedResources = map[string][]Resource{
	"python": {
		{Name: "Python.org Tutorial", URL: "https://docs.python.org/3/tutorial/", Type: "Documentation"},
		{Name: "freeCodeCamp Python Course", URL: "https://www.freecodecamp.org/", Type: "Course"},
	},
	"javascript": {
		{Name: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Type: "Documentation"},
		{Name: "JavaScript.info", URL: "https://javascript.info/", Type: "Tutorial"},
	},
	"react": {
		{Name: "Official React Docs", URL: "https://react.dev/", Type: "Documentation"},
		{Name: "freeCodeCamp React", URL: "https://www.freecodecamp.org/", Type: "Course"},
	},
	"sql": {
		{Name: "SQLBolt", URL: "https://sqlbolt.com/", Type: "Interactive Tutorial"},
		{Name: "W3Schools SQL", URL: "https://www.w3schools.com/sql/", Type: "Tutorial"},
	},
	"machine learning": {
		{Name: "Google ML Crash Course", URL: "https://developers.google.com/machine-learning/crash-course", Type: "Course"},
		{Name: "Kaggle Learn", URL: "https://www.kaggle.com/learn", Type: "Interactive"},
	},
}

// LearningResources returns curated resources for well-known skills and
// generic search links for everything else.
func LearningResources(skill string) []Resource {
	if resources, ok := curatedResources[strings.ToLower(skill)]; ok {
		return resources
	}
	return []Resource{
		{Name: "YouTube Tutorials", URL: fmt.Sprintf("https://www.youtube.com/results?search_query=%s+tutorial", skill), Type: "Video"},
		{Name: "freeCodeCamp", URL: "https://www.freecodecamp.org/", Type: "Course"},
		{Name: "Coursera Free Courses", URL: fmt.Sprintf("https://www.coursera.org/search?query=%s", skill), Type: "Course"},
	}
}
