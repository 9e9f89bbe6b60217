package tracker

import (
	"fmt"

	"careerbot/internal/types"
)

// GenerateFollowUpEmail renders the follow-up email template for an
// application. Plain string substitution, no personalization beyond
// company and position.
func GenerateFollowUpEmail(app types.Application) string {
	return fmt.Sprintf(`Subject: Following Up on %s Application

Dear Hiring Manager,

I hope this email finds you well. I recently applied for the %s position at %s and wanted to follow up on my application.

I am very excited about the opportunity to contribute to your team and believe my skills and experience align well with the role's requirements.

I would appreciate any update on the status of my application and would be happy to provide any additional information you may need.

Thank you for your time and consideration. I look forward to hearing from you.

Best regards,
[Your Name]
[Your Email]
[Your Phone]
`, app.Position, app.Position, app.Company)
}
