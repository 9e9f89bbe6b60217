package interview

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// defaultScore stands in whenever the grading response cannot be parsed
// or the grading call fails entirely.
const defaultScore = 5

// Filler terms counted by case-insensitive substring match against the
// answer, multi-word phrases included.
var fillerWords = []string{
	"um", "uh", "like", "you know", "actually",
	"basically", "literally", "kind of", "sort of",
}

// FillerAnalysis summarizes the verbal habits found in one answer.
type FillerAnalysis struct {
	FillerWords     map[string]int
	TotalFillers    int
	ConfidenceScore float64
}

// AnalyzeFillers counts filler terms in the answer and derives a 0-100
// confidence score. Each percentage point of filler density costs ten
// points, floored at zero; an empty answer scores zero outright.
func AnalyzeFillers(answer string) FillerAnalysis {
	lower := strings.ToLower(answer)

	found := map[string]int{}
	total := 0
	for _, filler := range fillerWords {
		if n := strings.Count(lower, filler); n > 0 {
			found[filler] = n
			total += n
		}
	}

	confidence := 0.0
	if wordCount := len(strings.Fields(answer)); wordCount > 0 {
		fillerPct := float64(total) / float64(wordCount) * 100
		confidence = math.Max(0, 100-fillerPct*10)
	}

	return FillerAnalysis{
		FillerWords:     found,
		TotalFillers:    total,
		ConfidenceScore: round1(confidence),
	}
}

// ParseScore extracts the first integer following the given label in
// free-text grading feedback, case-insensitively. The grading model is
// not held to a structured output contract, so a missing label or
// integer falls back to the default score rather than erroring.
func ParseScore(text, label string) int {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `.*?(\d+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return defaultScore
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultScore
	}
	return n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
