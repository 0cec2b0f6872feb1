package store

import (
	"encoding/json"
	"strconv"

	"github.com/ai_calls_platform/backend/internal/models"
)

// typedView reads the fields the service relies on out of a repaired
// document one at a time. A field holding an unexpected JSON type is left at
// its zero value; it never fails the document.
func typedView(raw map[string]json.RawMessage) models.CallMetadata {
	md := models.CallMetadata{
		RecordingID:    text(raw["recordingId"]),
		ConversationID: text(raw["conversationId"]),
	}

	if call, ok := object(raw["call"]); ok {
		md.Call = &models.CallInfo{
			Direction:   models.Direction(text(call["direction"])),
			Type:        text(call["type"]),
			Subtype:     text(call["subtype"]),
			Subject:     text(call["subject"]),
			From:        text(call["from"]),
			To:          text(call["to"]),
			WrapupCodes: texts(call["wrapupCodes"]),
		}
	}

	if timing, ok := object(raw["timing"]); ok {
		md.Timing = &models.Timing{}
		if rec, ok := object(timing["recording"]); ok {
			md.Timing.Recording = &models.RecordingTiming{
				Start:      text(rec["start"]),
				End:        text(rec["end"]),
				Duration:   text(rec["duration"]),
				DurationMs: integer(rec["durationMs"]),
			}
		}
		if conv, ok := object(timing["conversation"]); ok {
			md.Timing.Conversation = &models.ConversationTiming{
				Start:    text(conv["start"]),
				End:      text(conv["end"]),
				Duration: text(conv["duration"]),
			}
		}
		if iso, ok := object(timing["iso"]); ok {
			md.Timing.ISO = &models.ISOTiming{
				RecordingStart:    text(iso["recordingStart"]),
				RecordingEnd:      text(iso["recordingEnd"]),
				ConversationStart: text(iso["conversationStart"]),
				ConversationEnd:   text(iso["conversationEnd"]),
			}
		}
	}

	// Non-object entries keep their slot so "first agent" still means the
	// first element of the array.
	for _, v := range elements(raw["agents"]) {
		a, _ := object(v)
		md.Agents = append(md.Agents, models.Agent{
			ID:         text(a["id"]),
			Name:       text(a["name"]),
			Email:      text(a["email"]),
			Department: text(a["department"]),
			Title:      optionalText(a["title"]),
			State:      text(a["state"]),
			Username:   text(a["username"]),
		})
	}
	for _, v := range elements(raw["queues"]) {
		q, _ := object(v)
		md.Queues = append(md.Queues, models.Queue{
			ID:          text(q["id"]),
			Name:        text(q["name"]),
			Description: text(q["description"]),
			MemberCount: int(integer(q["memberCount"])),
		})
	}

	if tech, ok := object(raw["technical"]); ok {
		md.Technical = &models.Technical{
			OrganizationID: text(tech["organizationId"]),
			Provider:       text(tech["provider"]),
		}
	}
	return md
}

func object(v json.RawMessage) (map[string]json.RawMessage, bool) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(v, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

func elements(v json.RawMessage) []json.RawMessage {
	var arr []json.RawMessage
	if err := json.Unmarshal(v, &arr); err != nil {
		return nil
	}
	return arr
}

// text renders strings, numbers and booleans as text. Anything else,
// including null, reads as "".
func text(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

func optionalText(v json.RawMessage) *string {
	if isNull(v) {
		return nil
	}
	if _, ok := object(v); ok {
		return nil
	}
	s := text(v)
	return &s
}

func texts(v json.RawMessage) []string {
	var out []string
	for _, e := range elements(v) {
		if s := text(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// integer accepts JSON numbers and numeric strings; fractions are truncated.
func integer(v json.RawMessage) int64 {
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return int64(f)
	}
	return 0
}
