// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/report"
	"github.com/raysh454/compliscan/internal/webclient"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// WarnCount returns the number of recorded warnings.
func (l *DummyLogger) WarnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Warns)
}

// ─── Surface ───────────────────────────────────────────────────────────

// Surface event names recorded by DummySurface.
const (
	EventNotify = "notify"
	EventReset  = "reset"
	EventBusy   = "busy"
	EventIdle   = "idle"
	EventReport = "report"
)

// DummySurface implements app.Surface by recording every call in order.
// OnBusy, when set, runs inside EnterBusy; tests use it to act mid-flight.
type DummySurface struct {
	mu      sync.Mutex
	Events  []string
	Errors  []error
	Views   []*report.View
	Busy    bool
	Visible bool

	OnBusy func()
}

func (s *DummySurface) record(ev string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, ev)
}

func (s *DummySurface) Notify(err error) {
	s.mu.Lock()
	s.Errors = append(s.Errors, err)
	s.mu.Unlock()
	s.record(EventNotify)
}

func (s *DummySurface) ResetReport() {
	s.mu.Lock()
	s.Visible = false
	s.mu.Unlock()
	s.record(EventReset)
}

func (s *DummySurface) EnterBusy() {
	s.mu.Lock()
	s.Busy = true
	hook := s.OnBusy
	s.mu.Unlock()
	s.record(EventBusy)
	if hook != nil {
		hook()
	}
}

func (s *DummySurface) ExitBusy() {
	s.mu.Lock()
	s.Busy = false
	s.mu.Unlock()
	s.record(EventIdle)
}

func (s *DummySurface) ShowReport(v *report.View) {
	s.mu.Lock()
	s.Visible = true
	s.Views = append(s.Views, v)
	s.mu.Unlock()
	s.record(EventReport)
}

// Snapshot returns a copy of the recorded events.
func (s *DummySurface) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Events...)
}

// Count returns how often ev was recorded.
func (s *DummySurface) Count(ev string) int {
	n := 0
	for _, e := range s.Snapshot() {
		if e == ev {
			n++
		}
	}
	return n
}

// IsBusy reports the busy flag.
func (s *DummySurface) IsBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Busy
}

// IsVisible reports whether a report is shown.
func (s *DummySurface) IsVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Visible
}

// LastError returns the most recent notified error.
func (s *DummySurface) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Errors) == 0 {
		return nil
	}
	return s.Errors[len(s.Errors)-1]
}

// ─── WebClient ─────────────────────────────────────────────────────────

// DummyWebClient implements webclient.WebClient.
// By default it answers with Status and Body (200 and "{}" when unset).
// Set Err to force a transport failure.
type DummyWebClient struct {
	Status        int
	Body          []byte
	Err           error
	ResponseDelay time.Duration

	mu       sync.Mutex
	Requests []*webclient.Request
}

func (d *DummyWebClient) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	d.mu.Lock()
	d.Requests = append(d.Requests, req)
	d.mu.Unlock()

	if d.ResponseDelay > 0 {
		select {
		case <-time.After(d.ResponseDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if d.Err != nil {
		return nil, d.Err
	}

	status := d.Status
	if status == 0 {
		status = http.StatusOK
	}
	body := d.Body
	if body == nil {
		body = []byte("{}")
	}
	return &webclient.Response{
		Request:    req,
		Body:       body,
		StatusCode: status,
		FetchedAt:  time.Now(),
	}, nil
}

func (d *DummyWebClient) PostJSON(ctx context.Context, url string, v any) (*webclient.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	hdrs := http.Header{}
	hdrs.Set("Content-Type", "application/json")
	return d.Do(ctx, &webclient.Request{Method: http.MethodPost, URL: url, Headers: hdrs, Body: body})
}

func (d *DummyWebClient) Close() error { return nil }

// RequestCount returns how many requests were issued.
func (d *DummyWebClient) RequestCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Requests)
}

// LastRequest returns the most recent request, or nil.
func (d *DummyWebClient) LastRequest() *webclient.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Requests) == 0 {
		return nil
	}
	return d.Requests[len(d.Requests)-1]
}

// ─── Fixtures ──────────────────────────────────────────────────────────

// ResultJSON is a small service payload with one defect and one confirmation.
const ResultJSON = `{
  "score": 72,
  "status": "Partially compliant",
  "scanned_pages": 3,
  "issues": [
    {"severity":"high","rule":"cookie-banner","description":"No cookie consent banner",
     "location_guide":"body > footer","suggestion":"Add a consent banner",
     "url":"https://example.com/","screenshot":"screenshots/home.png"},
    {"severity":"success","rule":"privacy-policy","description":"Privacy policy linked",
     "context":"Privacy Policy","suggestion":"Compliant",
     "url":"https://example.com/","screenshot":"screenshots/privacy.png"}
  ]
}`
