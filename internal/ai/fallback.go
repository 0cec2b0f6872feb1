package ai

import (
	"fmt"

	"github.com/ai_calls_platform/backend/internal/models"
)

const (
	defaultSentiment      = "neutral"
	defaultCustomerIntent = "General inquiry"
)

var (
	fallbackActionItems = []string{"Review call recording for details", "Follow up if needed"}
	defaultActionItems  = []string{"Follow up with customer"}
)

// Fallback builds an analysis from metadata alone. It is used whenever the
// model is unconfigured, unreachable, or its reply cannot be read.
func Fallback(md models.CallMetadata) models.AIAnalysis {
	return models.AIAnalysis{
		Summary:        fallbackSummary(md),
		KeyPoints:      fallbackKeyPoints(md),
		Sentiment:      defaultSentiment,
		ActionItems:    append([]string(nil), fallbackActionItems...),
		CustomerIntent: fmt.Sprintf("Inquiry about %s", callInfo(md).Subject),
	}
}

func fallbackSummary(md models.CallMetadata) string {
	agent := "An agent"
	if a := md.FirstAgent(); a != nil && a.Name != "" {
		agent = a.Name
	}
	queue := "main"
	if q := md.FirstQueue(); q != nil && q.Name != "" {
		queue = q.Name
	}
	call := callInfo(md)
	return fmt.Sprintf("%s handled an %s call regarding \"%s\". The call lasted %s and was processed through the %s queue.",
		agent, call.Direction, call.Subject, recording(md).Duration, queue)
}

func fallbackKeyPoints(md models.CallMetadata) []string {
	name, department := "Unknown", "Unknown department"
	if a := md.FirstAgent(); a != nil {
		name = orDefault(a.Name, name)
		department = orDefault(a.Department, department)
	}
	call := callInfo(md)
	return []string{
		fmt.Sprintf("Call duration: %s", recording(md).Duration),
		fmt.Sprintf("Handled by: %s (%s)", name, department),
		fmt.Sprintf("Call type: %s %s", call.Direction, call.Type),
	}
}

func callInfo(md models.CallMetadata) models.CallInfo {
	if md.Call == nil {
		return models.CallInfo{}
	}
	return *md.Call
}

func recording(md models.CallMetadata) models.RecordingTiming {
	if rec := md.Recording(); rec != nil {
		return *rec
	}
	return models.RecordingTiming{}
}
