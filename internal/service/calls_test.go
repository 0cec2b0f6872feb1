package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ai_calls_platform/backend/internal/models"
	"github.com/ai_calls_platform/backend/internal/store"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func writeMetadata(t *testing.T, dir, id, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+store.MetadataSuffix), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", id, err)
	}
}

func validDoc(id, direction, start, agent, queue string) string {
	return fmt.Sprintf(`{
		"recordingId": %q,
		"call": {"direction": %q, "subject": "Subject %s"},
		"agents": [{"name": %q}],
		"queues": [{"name": %q}],
		"timing": {"recording": {"duration": "1m", "start": %q}}
	}`, id, direction, id, agent, queue, start)
}

func newCallService(dir string) *CallService {
	return &CallService{Store: store.New(dir), Logger: zerolog.Nop(), Now: func() time.Time { return fixedNow }}
}

func TestListCallsSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "good", validDoc("good", "inbound", "2024-01-01T10:00:00Z", "Sam", "Support"))
	writeMetadata(t, dir, "broken", `{"recordingId": "broken", "call": `)

	calls := newCallService(dir).ListCalls(context.Background())
	if len(calls) != 1 || calls[0].RecordingID != "good" {
		t.Fatalf("expected only the valid call, got %+v", calls)
	}
}

func TestListCallsSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "no-timing", `{"recordingId": "no-timing", "call": {"direction": "inbound"}}`)
	writeMetadata(t, dir, "no-recording", `{"recordingId": "no-recording", "call": {}, "timing": {}}`)
	writeMetadata(t, dir, "no-call", `{"recordingId": "no-call", "timing": {"recording": {}}}`)
	writeMetadata(t, dir, "no-id", `{"call": {}, "timing": {"recording": {}}}`)
	writeMetadata(t, dir, "space", `{"recordingId": "space", " ": {"direction": "outbound"}, "timing": {"recording": {}}}`)

	calls := newCallService(dir).ListCalls(context.Background())
	if len(calls) != 1 || calls[0].RecordingID != "space" {
		t.Fatalf("expected only the repaired document, got %+v", calls)
	}
	if calls[0].Direction != "outbound" {
		t.Fatalf("direction=%q", calls[0].Direction)
	}
}

func TestListCallsEmptyAndMissingDir(t *testing.T) {
	calls := newCallService(t.TempDir()).ListCalls(context.Background())
	if calls == nil || len(calls) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", calls)
	}

	calls = newCallService(filepath.Join(t.TempDir(), "missing")).ListCalls(context.Background())
	if calls == nil || len(calls) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", calls)
	}
}

func TestListCallsSortedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "a", validDoc("a", "inbound", "2024-01-01T10:00:00Z", "Sam", "Support"))
	writeMetadata(t, dir, "b", validDoc("b", "inbound", "2024-03-01T10:00:00Z", "Sam", "Support"))
	writeMetadata(t, dir, "c", validDoc("c", "inbound", "2024-02-01T10:00:00Z", "Sam", "Support"))

	calls := newCallService(dir).ListCalls(context.Background())
	got := []string{calls[0].RecordingID, calls[1].RecordingID, calls[2].RecordingID}
	if got[0] != "b" || got[1] != "c" || got[2] != "a" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestSortUnparsableDatesGoLast(t *testing.T) {
	calls := []models.CallSummary{
		{RecordingID: "old", Date: "2020-01-01T00:00:00Z"},
		{RecordingID: "x", Date: "not a date"},
		{RecordingID: "new", Date: "2024-01-01T00:00:00Z"},
		{RecordingID: "y", Date: "also bad"},
		{RecordingID: "mid", Date: "2022-06-01"},
	}
	sortByDateDesc(calls)
	want := []string{"new", "mid", "old", "x", "y"}
	for i, id := range want {
		if calls[i].RecordingID != id {
			t.Fatalf("position %d: got %q want %q (%+v)", i, calls[i].RecordingID, id, calls)
		}
	}
}

func TestSummarizeDefaults(t *testing.T) {
	md := models.CallMetadata{
		RecordingID: "r",
		Call:        &models.CallInfo{},
		Timing:      &models.Timing{Recording: &models.RecordingTiming{}},
	}
	got := Summarize(md, fixedNow)
	want := models.CallSummary{
		RecordingID: "r",
		Subject:     "Unknown Subject",
		Direction:   "unknown",
		Agent:       "Unknown",
		Duration:    "0s",
		Date:        "2025-03-01T12:00:00.000Z",
		Queue:       "Unknown",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestStatsMatchesListing(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "a", validDoc("a", "inbound", "2024-01-01T10:00:00Z", "Sam", "Support"))
	writeMetadata(t, dir, "b", validDoc("b", "outbound", "2024-01-02T10:00:00Z", "Sam", "Sales"))
	writeMetadata(t, dir, "c", validDoc("c", "transfer", "2024-01-03T10:00:00Z", "Alex", "Support"))
	writeMetadata(t, dir, "d", `not json`)

	svc := newCallService(dir)
	stats := svc.Stats(context.Background())
	if stats.Total != len(svc.ListCalls(context.Background())) || stats.Total != 3 {
		t.Fatalf("total=%d", stats.Total)
	}
	if stats.ByDirection.Inbound != 1 || stats.ByDirection.Outbound != 1 {
		t.Fatalf("byDirection=%+v", stats.ByDirection)
	}
	if stats.ByDirection.Inbound+stats.ByDirection.Outbound > stats.Total {
		t.Fatalf("direction buckets exceed total")
	}
	if stats.ByQueue["Support"] != 2 || stats.ByQueue["Sales"] != 1 {
		t.Fatalf("byQueue=%v", stats.ByQueue)
	}
	if stats.ByAgent["Sam"] != 2 || stats.ByAgent["Alex"] != 1 {
		t.Fatalf("byAgent=%v", stats.ByAgent)
	}
}

func TestStatsAvgDuration(t *testing.T) {
	stats := ComputeStats([]models.CallSummary{
		{Duration: "1m"},
		{Duration: "3m"},
		{Duration: "0s"},
		{Duration: "unknown"},
	})
	if stats.AvgDuration != 80 {
		t.Fatalf("avgDuration=%v", stats.AvgDuration)
	}
}

func TestListingToleratesMismatchedOptionalFields(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, "het", `{
		"recordingId": "het",
		"call": {"direction": "outbound", "subject": 42},
		"agents": ["not an object", {"name": "Alex"}],
		"queues": [{"name": "Sales", "memberCount": "12"}],
		"timing": {"recording": {"duration": "2m", "durationMs": "120000", "start": "2024-01-01T10:00:00Z"}}
	}`)

	calls := newCallService(dir).ListCalls(context.Background())
	if len(calls) != 1 {
		t.Fatalf("expected the document to be listed, got %+v", calls)
	}
	got := calls[0]
	if got.Subject != "42" || got.Agent != "Unknown" || got.Queue != "Sales" || got.Direction != "outbound" {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.Total != 0 || stats.AvgDuration != 0 || stats.ByQueue == nil || stats.ByAgent == nil {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
