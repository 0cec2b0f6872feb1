package ai

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ai_calls_platform/backend/internal/models"
)

func sampleMetadata() models.CallMetadata {
	return models.CallMetadata{
		RecordingID: "r1",
		Call:        &models.CallInfo{Direction: models.DirectionInbound, Type: "voice", Subject: "Billing issue"},
		Agents:      []models.Agent{{Name: "Sam", Department: "Billing"}},
		Queues:      []models.Queue{{Name: "Support"}},
		Timing: &models.Timing{Recording: &models.RecordingTiming{
			Duration: "3m12s",
			Start:    "2024-01-01T10:00:00Z",
		}},
	}
}

const wellFormedReply = `SUMMARY:
The customer called about a duplicate charge and the agent issued a refund.

KEY POINTS:
- Duplicate charge on last invoice
• Refund issued
- [Customer satisfied]
not a bullet

SENTIMENT:
positive - issue resolved on first contact

ACTION ITEMS:
- Confirm refund posted
-

CUSTOMER INTENT:
[Get the duplicate charge reversed]`

func TestExtractWellFormed(t *testing.T) {
	got := Extract(wellFormedReply, sampleMetadata())

	if got.Summary != "The customer called about a duplicate charge and the agent issued a refund." {
		t.Fatalf("summary=%q", got.Summary)
	}
	wantPoints := []string{"Duplicate charge on last invoice", "Refund issued", "Customer satisfied"}
	if !reflect.DeepEqual(got.KeyPoints, wantPoints) {
		t.Fatalf("keyPoints=%q", got.KeyPoints)
	}
	if got.Sentiment != "positive - issue resolved on first contact" {
		t.Fatalf("sentiment=%q", got.Sentiment)
	}
	if !reflect.DeepEqual(got.ActionItems, []string{"Confirm refund posted"}) {
		t.Fatalf("actionItems=%q", got.ActionItems)
	}
	if got.CustomerIntent != "Get the duplicate charge reversed" {
		t.Fatalf("customerIntent=%q", got.CustomerIntent)
	}
}

func TestExtractIsStable(t *testing.T) {
	md := sampleMetadata()
	a := Extract(wellFormedReply, md)
	b := Extract(wellFormedReply, md)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical extraction, got %+v and %+v", a, b)
	}
}

func TestExtractMissingLabelFallsBackPerField(t *testing.T) {
	md := sampleMetadata()
	reply := strings.Replace(wellFormedReply, "SUMMARY:\n", "", 1)

	got := Extract(reply, md)
	if got.Summary != Fallback(md).Summary {
		t.Fatalf("summary=%q", got.Summary)
	}
	if len(got.KeyPoints) != 3 || got.KeyPoints[0] != "Duplicate charge on last invoice" {
		t.Fatalf("keyPoints should still extract, got %q", got.KeyPoints)
	}
	if got.Sentiment != "positive - issue resolved on first contact" {
		t.Fatalf("sentiment=%q", got.Sentiment)
	}
	if got.CustomerIntent != "Get the duplicate charge reversed" {
		t.Fatalf("customerIntent=%q", got.CustomerIntent)
	}
}

func TestExtractMissingEndLabelReadsToEnd(t *testing.T) {
	reply := strings.Replace(wellFormedReply, "SENTIMENT:\npositive - issue resolved on first contact\n\n", "", 1)

	got := Extract(reply, sampleMetadata())
	if got.Sentiment != "neutral" {
		t.Fatalf("sentiment=%q", got.Sentiment)
	}
	want := []string{"Duplicate charge on last invoice", "Refund issued", "Customer satisfied", "Confirm refund posted"}
	if !reflect.DeepEqual(got.KeyPoints, want) {
		t.Fatalf("keyPoints=%q", got.KeyPoints)
	}
	if !reflect.DeepEqual(got.ActionItems, []string{"Confirm refund posted"}) {
		t.Fatalf("actionItems=%q", got.ActionItems)
	}
}

func TestExtractEmptyReply(t *testing.T) {
	md := sampleMetadata()
	got := Extract("", md)

	if got.Summary != Fallback(md).Summary {
		t.Fatalf("summary=%q", got.Summary)
	}
	if !reflect.DeepEqual(got.KeyPoints, Fallback(md).KeyPoints) {
		t.Fatalf("keyPoints=%q", got.KeyPoints)
	}
	if got.Sentiment != "neutral" {
		t.Fatalf("sentiment=%q", got.Sentiment)
	}
	if !reflect.DeepEqual(got.ActionItems, []string{"Follow up with customer"}) {
		t.Fatalf("actionItems=%q", got.ActionItems)
	}
	if got.CustomerIntent != "General inquiry" {
		t.Fatalf("customerIntent=%q", got.CustomerIntent)
	}
}

func TestExtractSection(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		label string
		want  string
	}{
		{"bounded by next label", "SUMMARY: hello\nKEY POINTS: x", LabelSummary, "hello"},
		{"next label missing reads to end", "SUMMARY:  hello world  ", LabelSummary, "hello world"},
		{"label missing", "nothing here", LabelSentiment, ""},
		{"placeholder brackets", "SENTIMENT: [neutral]\nACTION ITEMS:", LabelSentiment, "neutral"},
		{"last label", "CUSTOMER INTENT:\n  wants a refund\n", LabelCustomerIntent, "wants a refund"},
		{"skipped label ignored", "SUMMARY: a\nSENTIMENT: b", LabelSummary, "a\nSENTIMENT: b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractSection(tc.text, tc.label); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractListWithoutBullets(t *testing.T) {
	if got := extractList("KEY POINTS:\nplain line\nanother\nSENTIMENT:", LabelKeyPoints); len(got) != 0 {
		t.Fatalf("expected no items, got %q", got)
	}
}
