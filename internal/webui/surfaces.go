package webui

import (
	"bytes"
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/raysh454/compliscan/internal/app"
	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/report"
)

// pageSurface collects what a single request/response round trip should show:
// the form post and the JSON API both render it once Submit returns.
type pageSurface struct {
	busy  bool
	err   error
	view  *report.View
	input string
}

var _ app.Surface = (*pageSurface)(nil)

func (p *pageSurface) Notify(err error) { p.err = err }

func (p *pageSurface) ResetReport() { p.view = nil }

func (p *pageSurface) EnterBusy() { p.busy = true }

func (p *pageSurface) ExitBusy() { p.busy = false }

func (p *pageSurface) ShowReport(v *report.View) { p.view = v }

func (p *pageSurface) state() PageState {
	st := PageState{Input: p.input, Busy: p.busy, View: p.view}
	if p.err != nil {
		st.Alert = p.err.Error()
		st.AlertKind = app.Kind(p.err)
	}
	return st
}

// wsSurface streams surface calls to a live session as Events.
type wsSurface struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	logger logging.Logger
	err    error
}

var _ app.Surface = (*wsSurface)(nil)

func newWSSurface(conn *websocket.Conn, logger logging.Logger) *wsSurface {
	return &wsSurface{conn: conn, logger: logger}
}

func (s *wsSurface) send(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	if err := s.conn.WriteJSON(ev); err != nil {
		// the peer is gone; the read loop notices and cancels the session
		s.err = err
		s.logger.Debug("writing websocket event", logging.F("type", string(ev.Type)), logging.Err(err))
	}
}

func (s *wsSurface) Notify(err error) {
	s.send(Event{Type: EventError, Message: err.Error(), Kind: app.Kind(err)})
}

func (s *wsSurface) ResetReport() { s.send(Event{Type: EventReset}) }

func (s *wsSurface) EnterBusy() { s.send(Event{Type: EventBusy}) }

func (s *wsSurface) ExitBusy() { s.send(Event{Type: EventIdle}) }

func (s *wsSurface) ShowReport(v *report.View) {
	var buf bytes.Buffer
	if err := report.WriteHTML(&buf, v); err != nil {
		s.logger.Error("rendering report fragment", logging.Err(err))
		s.Notify(errors.New("the report could not be rendered"))
		return
	}
	s.send(Event{Type: EventReport, HTML: buf.String(), View: v})
}
