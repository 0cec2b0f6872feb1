package ai

import (
	"strings"
	"unicode"

	"github.com/ai_calls_platform/backend/internal/models"
)

// Extract reads the labeled sections of a model reply into an analysis.
// Sections that are missing or empty fall back per field; an unexpected
// failure while reading replaces the whole result with Fallback(md).
func Extract(text string, md models.CallMetadata) (out models.AIAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			out = Fallback(md)
		}
	}()

	summary := extractSection(text, LabelSummary)
	keyPoints := extractList(text, LabelKeyPoints)
	sentiment := extractSection(text, LabelSentiment)
	actionItems := extractList(text, LabelActionItems)
	intent := extractSection(text, LabelCustomerIntent)

	if summary == "" {
		summary = fallbackSummary(md)
	}
	if len(keyPoints) == 0 {
		keyPoints = fallbackKeyPoints(md)
	}
	if sentiment == "" {
		sentiment = defaultSentiment
	}
	if len(actionItems) == 0 {
		actionItems = append([]string(nil), defaultActionItems...)
	}
	if intent == "" {
		intent = defaultCustomerIntent
	}

	return models.AIAnalysis{
		Summary:        summary,
		KeyPoints:      keyPoints,
		Sentiment:      sentiment,
		ActionItems:    actionItems,
		CustomerIntent: intent,
	}
}

// extractSection returns the text between label and the label that follows it
// in Labels. A missing start label yields "", a missing end label reads to the
// end of text.
func extractSection(text, label string) string {
	start := strings.Index(text, label)
	if start == -1 {
		return ""
	}
	body := text[start+len(label):]
	if next := nextLabel(label); next != "" {
		if end := strings.Index(body, next); end != -1 {
			body = body[:end]
		}
	}
	return stripBrackets(strings.TrimSpace(body))
}

func extractList(text, label string) []string {
	section := extractSection(text, label)
	if section == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(section, "\n") {
		item, ok := cutMarker(strings.TrimSpace(line))
		if !ok {
			continue
		}
		item = strings.TrimSpace(stripBrackets(strings.TrimLeftFunc(item, unicode.IsSpace)))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func nextLabel(label string) string {
	for i, l := range Labels {
		if l == label && i+1 < len(Labels) {
			return Labels[i+1]
		}
	}
	return ""
}

// stripBrackets drops one leading "[" and one trailing "]", which models
// sometimes echo from the template placeholders.
func stripBrackets(s string) string {
	s = strings.TrimPrefix(s, "[")
	return strings.TrimSuffix(s, "]")
}

func cutMarker(line string) (string, bool) {
	if rest, ok := strings.CutPrefix(line, "-"); ok {
		return rest, true
	}
	return strings.CutPrefix(line, "•")
}
