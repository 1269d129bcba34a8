package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/model"
	"github.com/raysh454/compliscan/internal/report"
	"github.com/raysh454/compliscan/internal/webclient"
)

// Submission records one pass through the orchestrator.
type Submission struct {
	ID        string                `json:"id"`
	Input     string                `json:"input"`
	URL       string                `json:"url,omitempty"`
	StartedAt time.Time             `json:"started_at"`
	EndedAt   time.Time             `json:"ended_at"`
	Result    *model.AnalysisResult `json:"result,omitempty"`
	View      *report.View          `json:"view,omitempty"`
	Err       error                 `json:"-"`
}

// Outcome is what SubmitAsync delivers.
type Outcome struct {
	Submission *Submission
	Err        error
}

// Orchestrator runs submissions for one session: it owns the Idle/Busy state
// and drives the session's Surface.
type Orchestrator struct {
	cfg       *Config
	client    webclient.WebClient
	surface   Surface
	logger    logging.Logger
	imageBase *url.URL

	state atomic.Int32
}

// NewOrchestrator ties together config, transport, surface and logger.
func NewOrchestrator(cfg *Config, client webclient.WebClient, surface Surface, logger logging.Logger) (*Orchestrator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if client == nil {
		return nil, errors.New("orchestrator needs a web client")
	}
	if surface == nil {
		return nil, errors.New("orchestrator needs a surface")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := cfg.ImageBaseURL()
	if err != nil {
		return nil, fmt.Errorf("resolving image base: %w", err)
	}

	return &Orchestrator{
		cfg:       cfg,
		client:    client,
		surface:   surface,
		logger:    logger.With(logging.F("component", "orchestrator")),
		imageBase: base,
	}, nil
}

// State reports whether a submission is in flight.
func (o *Orchestrator) State() InteractionState {
	return InteractionState(o.state.Load())
}

// Submit runs one submission to completion. Every failure is also passed to
// Surface.Notify; the surface is back in its idle state when Submit returns.
func (o *Orchestrator) Submit(ctx context.Context, rawInput string) (*Submission, error) {
	sub := &Submission{
		ID:        uuid.NewString(),
		Input:     rawInput,
		StartedAt: time.Now().UTC(),
	}
	log := o.logger.With(logging.F("submission", sub.ID))

	target, err := NormalizeURL(rawInput)
	if err != nil {
		return o.fail(sub, log, err)
	}
	sub.URL = target

	release, err := o.acquire()
	if err != nil {
		return o.fail(sub, log, err)
	}
	defer release()

	o.surface.ResetReport()
	o.surface.EnterBusy()

	log.Info("analysis started", logging.F("url", target), logging.F("endpoint", o.cfg.Endpoint))

	result, err := o.analyze(ctx, target)
	if err != nil {
		return o.fail(sub, log, err)
	}

	sub.Result = result
	sub.View = report.Build(*result, report.Options{ImageBase: o.imageBase})
	o.surface.ShowReport(sub.View)
	sub.EndedAt = time.Now().UTC()

	log.Info("analysis finished",
		logging.F("url", target),
		logging.F("score", result.Score),
		logging.F("issues", len(result.Issues)),
		logging.F("duration", sub.EndedAt.Sub(sub.StartedAt).String()))
	return sub, nil
}

// SubmitAsync runs Submit on its own goroutine. The channel yields exactly one
// Outcome and is then closed.
func (o *Orchestrator) SubmitAsync(ctx context.Context, rawInput string) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		sub, err := o.Submit(ctx, rawInput)
		out <- Outcome{Submission: sub, Err: err}
	}()
	return out
}

// acquire moves Idle to Busy. The returned release restores Idle and calls
// Surface.ExitBusy once, however often it is invoked.
func (o *Orchestrator) acquire() (func(), error) {
	if !o.state.CompareAndSwap(int32(StateIdle), int32(StateBusy)) {
		return nil, ErrSubmissionInFlight
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			o.surface.ExitBusy()
			o.state.Store(int32(StateIdle))
		})
	}, nil
}

func (o *Orchestrator) analyze(ctx context.Context, target string) (*model.AnalysisResult, error) {
	resp, err := o.client.PostJSON(ctx, o.cfg.Endpoint, model.AnalysisRequest{URL: target})
	if err != nil {
		return nil, &NetworkError{URL: o.cfg.Endpoint, Err: err}
	}
	if !resp.OK() {
		return nil, &RequestFailedError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return decodeResult(resp.Body)
}

// wireResult catches a missing issues list, which would otherwise decode as
// an empty report.
type wireResult struct {
	model.AnalysisResult
	Issues *[]model.Issue `json:"issues"`
}

func decodeResult(body []byte) (*model.AnalysisResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &MalformedResponseError{Err: errors.New("body is not a JSON object")}
	}

	var w wireResult
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if w.Issues == nil {
		return nil, &MalformedResponseError{Err: errors.New(`missing "issues"`)}
	}

	result := w.AnalysisResult
	result.Issues = *w.Issues
	return &result, nil
}

func (o *Orchestrator) fail(sub *Submission, log logging.Logger, err error) (*Submission, error) {
	sub.Err = err
	sub.EndedAt = time.Now().UTC()
	log.Warn("analysis failed",
		logging.F("url", sub.URL),
		logging.F("kind", Kind(err)),
		logging.Err(err))
	o.surface.Notify(err)
	return sub, err
}
