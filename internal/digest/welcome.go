package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"signalist/internal/model"
	"signalist/pkg/llm"
)

const fallbackWelcomeIntro = "Thanks for joining Signalist! As someone focused on technology growth stocks, you'll love our real-time alerts for companies like the ones you're tracking. We'll help you spot opportunities before they become mainstream news."

// SignupEvent carries the profile of a freshly registered user.
type SignupEvent struct {
	Email             string
	Name              string
	Country           string
	InvestmentGoals   string
	RiskTolerance     string
	PreferredIndustry string
}

// WelcomeRunner handles the single-recipient signup path: generate a
// personalized intro (or fall back to the fixed one) and send the welcome
// email.
type WelcomeRunner struct {
	llm    llm.Inferencer
	mailer MailSender
}

func NewWelcomeRunner(inferencer llm.Inferencer, mailer MailSender) *WelcomeRunner {
	return &WelcomeRunner{llm: inferencer, mailer: mailer}
}

func (r *WelcomeRunner) Run(ctx context.Context, event SignupEvent) model.JobResult {
	if event.Email == "" || event.Name == "" {
		return model.JobResult{Success: false, Message: "Signup event is missing email or name"}
	}

	profile := fmt.Sprintf(
		"- Country: %s\n- Investment goals: %s\n- Risk tolerance: %s\n- Preferred industry: %s\n",
		event.Country, event.InvestmentGoals, event.RiskTolerance, event.PreferredIndustry,
	)
	prompt := strings.Replace(llm.WelcomeIntroPrompt, "{{userProfile}}", profile, 1)

	ictx, cancel := context.WithTimeout(ctx, inferTimeout)
	defer cancel()

	intro, err := r.llm.Infer(ictx, prompt)
	if err != nil || strings.TrimSpace(intro) == "" {
		if err != nil {
			slog.Error("error generating welcome intro", "email", event.Email, "error", err)
		}
		intro = fallbackWelcomeIntro
	}

	if err := r.mailer.SendWelcome(ctx, event.Email, event.Name, intro); err != nil {
		slog.Error("error sending welcome email", "email", event.Email, "error", err)
		return model.JobResult{Success: false, Message: "Failed to send welcome email"}
	}

	return model.JobResult{Success: true, Message: "Welcome email sent successfully!"}
}
