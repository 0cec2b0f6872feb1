package ai

import (
	"fmt"

	"github.com/ai_calls_platform/backend/internal/models"
)

// Section labels, in the order the model is asked to emit them. The prompt
// and the extractor both read from this list.
const (
	LabelSummary        = "SUMMARY:"
	LabelKeyPoints      = "KEY POINTS:"
	LabelSentiment      = "SENTIMENT:"
	LabelActionItems    = "ACTION ITEMS:"
	LabelCustomerIntent = "CUSTOMER INTENT:"
)

var Labels = []string{
	LabelSummary,
	LabelKeyPoints,
	LabelSentiment,
	LabelActionItems,
	LabelCustomerIntent,
}

const promptTemplate = `Analyze this customer service call based on the metadata provided:

Call Details:
- Direction: %s
- Subject: %s
- Agent: %s
- Department: %s
- Queue: %s
- Duration: %s
- Date: %s

Please provide a structured analysis in the following format:

%s
[Provide a brief 2-3 sentence summary of what likely occurred in this call]

%s
- [Point 1]
- [Point 2]
- [Point 3]

%s
[positive/neutral/negative - with brief explanation]

%s
- [Action 1]
- [Action 2]

%s
[What the customer was likely trying to accomplish]

Note: You only have metadata, not the actual recording, so make reasonable inferences based on the information provided.`

func BuildPrompt(md models.CallMetadata) string {
	agentName, department := "Unknown", "Unknown"
	if a := md.FirstAgent(); a != nil {
		agentName = orDefault(a.Name, "Unknown")
		department = orDefault(a.Department, "Unknown")
	}
	queue := "Unknown"
	if q := md.FirstQueue(); q != nil {
		queue = orDefault(q.Name, "Unknown")
	}
	direction, subject := "", ""
	if md.Call != nil {
		direction, subject = string(md.Call.Direction), md.Call.Subject
	}
	duration, start := "", ""
	if rec := md.Recording(); rec != nil {
		duration, start = rec.Duration, rec.Start
	}

	return fmt.Sprintf(promptTemplate,
		direction, subject, agentName, department, queue, duration, start,
		LabelSummary, LabelKeyPoints, LabelSentiment, LabelActionItems, LabelCustomerIntent,
	)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
