package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ai_calls_platform/backend/internal/models"
	"github.com/ai_calls_platform/backend/internal/store"
)

const (
	defaultSubject   = "Unknown Subject"
	defaultDirection = "unknown"
	defaultAgent     = "Unknown"
	defaultDuration  = "0s"
	defaultQueue     = "Unknown"
)

type CallService struct {
	Store  *store.Store
	Logger zerolog.Logger
	Now    func() time.Time
}

// ListCalls returns summaries of every valid metadata document, newest first.
// Documents that fail to load or validate are skipped; if the directory
// itself cannot be read the result is empty.
func (s *CallService) ListCalls(ctx context.Context) []models.CallSummary {
	calls := []models.CallSummary{}

	ids, err := s.Store.RecordingIDs(ctx)
	if err != nil {
		s.Logger.Error().Err(err).Str("dir", s.Store.Dir).Msg("failed to read calls directory")
		return calls
	}

	now := s.now()
	for _, id := range ids {
		md, err := s.Store.Load(ctx, id)
		if err != nil {
			s.Logger.Error().Err(err).Str("recording_id", id).Msg("skipping metadata file")
			continue
		}
		if !IsValid(md) {
			s.Logger.Debug().Str("recording_id", id).Msg("skipping invalid metadata")
			continue
		}
		calls = append(calls, Summarize(md, now))
	}

	sortByDateDesc(calls)
	return calls
}

// Stats folds the current listing into aggregate counts.
func (s *CallService) Stats(ctx context.Context) models.CallStats {
	return ComputeStats(s.ListCalls(ctx))
}

// IsValid reports whether a document has the minimum shape needed for listing.
func IsValid(md models.CallMetadata) bool {
	return md.RecordingID != "" && md.Call != nil && md.Recording() != nil
}

func Summarize(md models.CallMetadata, now time.Time) models.CallSummary {
	out := models.CallSummary{
		RecordingID: md.RecordingID,
		Subject:     defaultSubject,
		Direction:   defaultDirection,
		Agent:       defaultAgent,
		Duration:    defaultDuration,
		Date:        models.FormatISO(now),
		Queue:       defaultQueue,
	}
	if md.Call != nil {
		out.Subject = orDefault(md.Call.Subject, out.Subject)
		out.Direction = orDefault(string(md.Call.Direction), out.Direction)
	}
	if a := md.FirstAgent(); a != nil {
		out.Agent = orDefault(a.Name, out.Agent)
	}
	if rec := md.Recording(); rec != nil {
		out.Duration = orDefault(rec.Duration, out.Duration)
		out.Date = orDefault(rec.Start, out.Date)
	}
	if q := md.FirstQueue(); q != nil {
		out.Queue = orDefault(q.Name, out.Queue)
	}
	return out
}

func ComputeStats(calls []models.CallSummary) models.CallStats {
	stats := models.CallStats{
		Total:   len(calls),
		ByQueue: map[string]int{},
		ByAgent: map[string]int{},
	}
	var total time.Duration
	var timed int
	for _, c := range calls {
		if d, err := time.ParseDuration(c.Duration); err == nil {
			total += d
			timed++
		}
		switch models.Direction(c.Direction) {
		case models.DirectionInbound:
			stats.ByDirection.Inbound++
		case models.DirectionOutbound:
			stats.ByDirection.Outbound++
		}
		stats.ByQueue[c.Queue]++
		stats.ByAgent[c.Agent]++
	}
	if timed > 0 {
		stats.AvgDuration = total.Seconds() / float64(timed)
	}
	return stats
}

// sortByDateDesc orders summaries newest first. Dates that do not parse
// compare equal to each other and sort after every parsable date, so one bad
// value never leaves the valid ones out of order.
func sortByDateDesc(calls []models.CallSummary) {
	type parsed struct {
		t  time.Time
		ok bool
	}
	dates := make(map[string]parsed, len(calls))
	for _, c := range calls {
		if _, seen := dates[c.Date]; seen {
			continue
		}
		t, ok := parseDate(c.Date)
		dates[c.Date] = parsed{t: t, ok: ok}
	}
	sort.SliceStable(calls, func(i, j int) bool {
		a, b := dates[calls[i].Date], dates[calls[j].Date]
		if !a.ok {
			return false
		}
		return !b.ok || a.t.After(b.t)
	})
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *CallService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
