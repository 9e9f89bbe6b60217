package ai

// DefaultGradingPrompt is the built-in prompt template for grading an
// interview answer. The two %s verbs take the question and the answer.
// The numbered format matters: downstream parsing looks for the
// "Content Score" and "Communication Score" labels in the response.
const DefaultGradingPrompt = `You are an expert interview coach. Analyze this interview answer and provide constructive feedback.

Question: %s

Candidate's Answer: %s

Provide feedback in the following format:
1. Content Score (1-10): Rate how well they answered the question
2. Communication Score (1-10): Rate clarity and structure
3. Strengths: List 2-3 things they did well
4. Areas for Improvement: List 2-3 specific suggestions
5. Better Answer Example: Provide a brief example of a stronger answer

Keep feedback honest but encouraging. Be specific and actionable.`

// resolvePrompt selects the prompt template, preferring a configured
// override over the hardcoded default.
func resolvePrompt(fromConfig, fromDefault string) string {
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
