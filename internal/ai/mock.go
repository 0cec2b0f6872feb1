package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ai_calls_platform/backend/internal/utils"
)

// MockGenerator answers every prompt with a well-formed reply picked
// deterministically from the prompt text. Used for offline demos.
type MockGenerator struct{}

func (MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sentiments := []string{
		"positive - the call appears to have been resolved quickly",
		"neutral - a routine interaction with no sign of escalation",
		"negative - the length of the call suggests the customer was frustrated",
	}
	intents := []string{
		"Get an answer to a question about their account",
		"Resolve a problem with an existing service",
		"Request a change to their current arrangement",
	}
	subject := promptField(prompt, "Subject")

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nThe customer contacted support about %q and the agent worked through the request.\n\n", LabelSummary, subject)
	fmt.Fprintf(&b, "%s\n- Subject: %s\n- Queue: %s\n- Duration: %s\n\n", LabelKeyPoints, subject, promptField(prompt, "Queue"), promptField(prompt, "Duration"))
	fmt.Fprintf(&b, "%s\n%s\n\n", LabelSentiment, sentiments[utils.Pick(prompt, "sentiment", len(sentiments))])
	fmt.Fprintf(&b, "%s\n- Confirm the outcome with the customer\n- Update the case notes\n\n", LabelActionItems)
	fmt.Fprintf(&b, "%s\n%s\n", LabelCustomerIntent, intents[utils.Pick(prompt, "intent", len(intents))])
	return b.String(), nil
}

// promptField reads a "- Name: value" line back out of a built prompt.
func promptField(prompt, name string) string {
	prefix := "- " + name + ": "
	for _, line := range strings.Split(prompt, "\n") {
		if v, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(v)
		}
	}
	return "Unknown"
}
