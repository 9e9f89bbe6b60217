package interview

import (
	"math/rand/v2"
	"strings"
)

// questionsPerSession caps how many questions one mock interview asks.
const questionsPerSession = 5

// Company-specific question catalogs. The company name is matched by
// case-insensitive substring, falling back to the general set.
var companyQuestions = map[string][]string{
	"google": {
		"Tell me about a time you solved a complex technical problem.",
		"How would you design a scalable system for millions of users?",
		"Explain a technical concept to a non-technical person.",
		"Describe your approach to debugging a production issue.",
	},
	"amazon": {
		"Tell me about a time you failed and what you learned.",
		"Describe a situation where you had to work with limited resources.",
		"How do you prioritize tasks when everything is urgent?",
		"Tell me about a time you went above and beyond for a customer.",
	},
	"microsoft": {
		"How would you improve one of our products?",
		"Describe a time you had to learn a new technology quickly.",
		"How do you handle disagreements with team members?",
		"Tell me about a project you're most proud of.",
	},
	"startup": {
		"Why do you want to work at a startup?",
		"Describe a time you wore multiple hats to get something done.",
		"How do you handle ambiguity and rapid change?",
		"What would you do in your first 90 days here?",
	},
	"general": {
		"Tell me about yourself.",
		"What are your greatest strengths and weaknesses?",
		"Where do you see yourself in 5 years?",
		"Why should we hire you?",
		"Tell me about a challenging project you worked on.",
	},
}

var (
	dataQuestions = []string{
		"How do you approach analyzing a large dataset?",
		"Explain a time you used data to drive a decision.",
	}
	engineeringQuestions = []string{
		"Describe your development workflow.",
		"How do you ensure code quality?",
	}
)

// SelectQuestions builds the question list for a session. The company
// picks a base catalog; the role buckets are independent checks, so a
// "data engineer" collects both sets of role questions. The combined
// list is shuffled before truncation, so role questions can be dropped.
func SelectQuestions(company, role string, shuffle func([]string)) []string {
	companyLower := strings.ToLower(company)

	var base []string
	switch {
	case strings.Contains(companyLower, "google"):
		base = companyQuestions["google"]
	case strings.Contains(companyLower, "amazon"):
		base = companyQuestions["amazon"]
	case strings.Contains(companyLower, "microsoft"):
		base = companyQuestions["microsoft"]
	case strings.Contains(companyLower, "startup"), strings.Contains(companyLower, "small"):
		base = companyQuestions["startup"]
	default:
		base = companyQuestions["general"]
	}
	questions := append([]string(nil), base...)

	roleLower := strings.ToLower(role)
	if strings.Contains(roleLower, "data") || strings.Contains(roleLower, "analyst") {
		questions = append(questions, dataQuestions...)
	}
	if strings.Contains(roleLower, "developer") || strings.Contains(roleLower, "engineer") {
		questions = append(questions, engineeringQuestions...)
	}

	if shuffle == nil {
		shuffle = defaultShuffle
	}
	shuffle(questions)

	if len(questions) > questionsPerSession {
		questions = questions[:questionsPerSession]
	}
	return questions
}

func defaultShuffle(questions []string) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
