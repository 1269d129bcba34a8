package webui

import "github.com/raysh454/compliscan/internal/report"

// AnalyzeRequest is the body of POST /api/analyze and of every message a
// live session sends over /ws.
type AnalyzeRequest struct {
	URL string `json:"url" example:"example.com"`
}

// AnalyzeResponse carries the report tree of a successful scan.
type AnalyzeResponse struct {
	ID   string       `json:"id" example:"7f1c9a7e-4a57-4a8e-9b59-1f7a6a3c1d2e"`
	URL  string       `json:"url" example:"https://example.com"`
	View *report.View `json:"view"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"please enter a valid URL"`
	Kind  string `json:"kind,omitempty" example:"validation"`
}

// EventType names a live session event.
type EventType string

const (
	EventReset  EventType = "reset"
	EventBusy   EventType = "busy"
	EventReport EventType = "report"
	EventError  EventType = "error"
	EventIdle   EventType = "idle"
)

// Event is one message pushed to a live session.
type Event struct {
	Type    EventType    `json:"type"`
	Message string       `json:"message,omitempty"`
	Kind    string       `json:"kind,omitempty"`
	HTML    string       `json:"html,omitempty"`
	View    *report.View `json:"view,omitempty"`
}
