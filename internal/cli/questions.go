package cli

import (
	"fmt"

	"careerbot/internal/interview"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [company] [role]",
	Short: "Preview the interview questions for a company and role",
	Long: `Print the question set a mock interview session would use for the given
company and role. Useful for preparing offline before starting a live
session against the server.`,
	Args: cobra.ExactArgs(2),
	Run:  runQuestions,
}

func runQuestions(cmd *cobra.Command, args []string) {
	company, role := args[0], args[1]

	questions := interview.SelectQuestions(company, role, nil)

	fmt.Printf("Mock interview questions for %s (%s):\n", role, company)
	for i, q := range questions {
		fmt.Printf("  %d. %s\n", i+1, q)
	}
}
