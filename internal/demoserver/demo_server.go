// Package demoserver is a stand-in for the remote scanning service. It answers
// POST /api/analyze with canned results chosen by the target host and serves
// placeholder screenshots.
package demoserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/model"
)

// DemoServer is the stub scanning service.
type DemoServer struct {
	cfg       Config
	logger    logging.Logger
	scenarios []Scenario
	router    chi.Router

	mu     sync.RWMutex
	forced string // scenario name applied to every target, "" when unset
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config, logger logging.Logger) *DemoServer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &DemoServer{
		cfg:       cfg,
		logger:    logger.With(logging.F("component", "demoserver")),
		scenarios: GetAllScenarios(),
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *DemoServer) routes() {
	r := s.router
	r.Post("/api/analyze", s.analyzeHandler)
	r.Get("/screenshots/{name}", s.screenshotHandler)

	// Control endpoints for forcing a scenario regardless of the target
	r.Get("/demo/scenarios", s.listScenariosHandler)
	r.Post("/demo/force", s.forceScenarioHandler)
	r.Post("/demo/reset", s.resetHandler)
}

// ServeHTTP implements http.Handler.
func (s *DemoServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr is the listen address derived from the configured port.
func (s *DemoServer) Addr() string {
	return fmt.Sprintf(":%d", s.cfg.Port)
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *DemoServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("demo server starting", logging.F("addr", "http://localhost"+s.Addr()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down demo server: %w", err)
		}
		return nil
	}
}

// scenarioFor returns the forced scenario, or the one matching target.
func (s *DemoServer) scenarioFor(target *url.URL) Scenario {
	s.mu.RLock()
	forced := s.forced
	s.mu.RUnlock()

	if forced != "" {
		if sc, ok := s.lookup(forced); ok {
			return sc
		}
	}
	return matchScenario(s.scenarios, target)
}

func (s *DemoServer) lookup(name string) (Scenario, bool) {
	for _, sc := range s.scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

func (s *DemoServer) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	target, err := url.Parse(req.URL)
	if err != nil || target.Host == "" {
		http.Error(w, "url must be an absolute URL", http.StatusBadRequest)
		return
	}

	sc := s.scenarioFor(target)
	s.logger.Info("analyze request", logging.F("url", req.URL), logging.F("scenario", sc.Name))

	if sc.Slow && s.cfg.SlowDelay > 0 {
		select {
		case <-time.After(s.cfg.SlowDelay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", sc.ContentType)
	w.WriteHeader(sc.Status)
	_, _ = w.Write(sc.Body(target))
}

// screenshotHandler serves a generated PNG for any *.png name.
func (s *DemoServer) screenshotHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if path.Ext(name) != ".png" {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, placeholder(strings.TrimSuffix(name, ".png"))); err != nil {
		s.logger.Error("encoding placeholder", logging.Err(err))
		http.Error(w, "could not render screenshot", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(buf.Bytes())
}

const (
	placeholderWidth  = 320
	placeholderHeight = 200
	placeholderBorder = 6
)

// placeholder draws a bordered card whose fill color is derived from name.
func placeholder(name string) image.Image {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	fill := color.RGBA{R: 160 + uint8(sum)%96, G: 160 + uint8(sum>>8)%96, B: 160 + uint8(sum>>16)%96, A: 255}
	border := color.RGBA{R: 73, G: 80, B: 87, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	for y := 0; y < placeholderHeight; y++ {
		for x := 0; x < placeholderWidth; x++ {
			if x < placeholderBorder || y < placeholderBorder ||
				x >= placeholderWidth-placeholderBorder || y >= placeholderHeight-placeholderBorder {
				img.Set(x, y, border)
				continue
			}
			img.Set(x, y, fill)
		}
	}
	return img
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// listScenariosHandler returns the scenarios and the forced one, if any.
func (s *DemoServer) listScenariosHandler(w http.ResponseWriter, r *http.Request) {
	type ScenarioInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Status      int    `json:"status"`
	}

	infos := make([]ScenarioInfo, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		infos = append(infos, ScenarioInfo{Name: sc.Name, Description: sc.Description, Status: sc.Status})
	}

	s.mu.RLock()
	forced := s.forced
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"scenarios": infos,
		"forced":    forced,
	})
}

// forceScenarioHandler applies one scenario to every target.
func (s *DemoServer) forceScenarioHandler(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("scenario")
	if _, ok := s.lookup(name); !ok {
		http.Error(w, "unknown scenario", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.forced = name
	s.mu.Unlock()

	s.logger.Info("scenario forced", logging.F("scenario", name))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"scenario": name,
	})
}

// resetHandler goes back to matching by host.
func (s *DemoServer) resetHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.forced = ""
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "scenarios matched by host again",
	})
}
