package models

import (
	"encoding/json"
	"time"
)

// ISOMillis matches the millisecond ISO-8601 layout used by the metadata exporter.
const ISOMillis = "2006-01-02T15:04:05.000Z"

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// CallMetadata is the typed view of one recording's metadata document. Nested
// objects are pointers so an absent section can be told apart from an empty
// one. Raw holds the document itself after the space-key repair, including
// keys the typed view does not know about.
type CallMetadata struct {
	Raw json.RawMessage `json:"-"`


	RecordingID    string     `json:"recordingId"`
	ConversationID string     `json:"conversationId,omitempty"`
	Call           *CallInfo  `json:"call,omitempty"`
	Timing         *Timing    `json:"timing,omitempty"`
	Agents         []Agent    `json:"agents"`
	Queues         []Queue    `json:"queues"`
	Technical      *Technical `json:"technical,omitempty"`
}

type CallInfo struct {
	Direction   Direction `json:"direction"`
	Type        string    `json:"type"`
	Subtype     string    `json:"subtype"`
	Subject     string    `json:"subject"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	WrapupCodes []string  `json:"wrapupCodes,omitempty"`
}

type Timing struct {
	Recording    *RecordingTiming    `json:"recording,omitempty"`
	Conversation *ConversationTiming `json:"conversation,omitempty"`
	ISO          *ISOTiming          `json:"iso,omitempty"`
}

type RecordingTiming struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Duration   string `json:"duration"`
	DurationMs int64  `json:"durationMs"`
}

type ConversationTiming struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

type ISOTiming struct {
	RecordingStart    string `json:"recordingStart"`
	RecordingEnd      string `json:"recordingEnd"`
	ConversationStart string `json:"conversationStart"`
	ConversationEnd   string `json:"conversationEnd"`
}

type Agent struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Title      *string `json:"title"`
	State      string  `json:"state,omitempty"`
	Username   string  `json:"username,omitempty"`
}

type Queue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"memberCount"`
}

type Technical struct {
	OrganizationID string `json:"organizationId"`
	Provider       string `json:"provider"`
}

// FirstAgent returns the first listed agent, or nil.
func (m CallMetadata) FirstAgent() *Agent {
	if len(m.Agents) == 0 {
		return nil
	}
	return &m.Agents[0]
}

// FirstQueue returns the first listed queue, or nil.
func (m CallMetadata) FirstQueue() *Queue {
	if len(m.Queues) == 0 {
		return nil
	}
	return &m.Queues[0]
}

// Recording returns timing.recording, or nil when either level is missing.
func (m CallMetadata) Recording() *RecordingTiming {
	if m.Timing == nil {
		return nil
	}
	return m.Timing.Recording
}

type CallSummary struct {
	RecordingID string `json:"recordingId"`
	Subject     string `json:"subject"`
	Direction   string `json:"direction"`
	Agent       string `json:"agent"`
	Duration    string `json:"duration"`
	Date        string `json:"date"`
	Queue       string `json:"queue"`
}

type DirectionCounts struct {
	Inbound  int `json:"inbound"`
	Outbound int `json:"outbound"`
}

// CallStats aggregates the listing. AvgDuration is the mean recording length
// in seconds over calls whose duration parses, 0 when none do.
type CallStats struct {
	Total       int             `json:"total"`
	ByDirection DirectionCounts `json:"byDirection"`
	ByQueue     map[string]int  `json:"byQueue"`
	ByAgent     map[string]int  `json:"byAgent"`
	AvgDuration float64         `json:"avgDuration"`
}

type AIAnalysis struct {
	Summary        string   `json:"summary"`
	KeyPoints      []string `json:"keyPoints"`
	Sentiment      string   `json:"sentiment"`
	ActionItems    []string `json:"actionItems"`
	CustomerIntent string   `json:"customerIntent"`
}

type BatchAnalysis struct {
	RecordingID string     `json:"recordingId"`
	Analysis    AIAnalysis `json:"analysis"`
}

// FormatISO renders t the way the exporter writes timestamps.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}
