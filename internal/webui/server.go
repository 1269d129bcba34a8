// Package webui serves the compliance scanner in a browser: a plain HTML form,
// a live WebSocket session and a JSON API, each driving its own orchestrator.
package webui

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/raysh454/compliscan/internal/app"
	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/webclient"
	_ "github.com/raysh454/compliscan/internal/webui/docs" // swagger spec
)

//go:embed static
var staticFiles embed.FS

const (
	// maxBodyBytes caps request bodies of the form and JSON endpoints.
	maxBodyBytes = 64 << 10

	// logBodyBytes is how much of a POST body goes into the request log.
	logBodyBytes = 4 << 10
)

// Server is the HTTP + WebSocket surface of the scanner.
type Server struct {
	cfg        Config
	client     webclient.WebClient
	ownsClient bool
	router     chi.Router
	upgrader   websocket.Upgrader
	logger     logging.Logger
}

// NewServer validates cfg and wires the routes.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		cfg.Service = app.DefaultConfig()
	}
	if err := cfg.Service.Validate(); err != nil {
		return nil, fmt.Errorf("validating service config: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.With(logging.F("component", "webui"))

	client := cfg.Client
	owns := false
	if client == nil {
		c, err := webclient.NewNetHTTPClient(cfg.Service.WebClientConfig(), logger, nil)
		if err != nil {
			return nil, fmt.Errorf("creating web client: %w", err)
		}
		client, owns = c, true
	}

	s := &Server{
		cfg:        cfg,
		client:     client,
		ownsClient: owns,
		router:     chi.NewRouter(),
		logger:     logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/api/analyze", s.optionsHandler("POST"))

	r.Get("/", s.handleIndex)
	r.Post("/analyze", s.handleAnalyzeForm)
	r.Get("/ws", s.handleWS)
	r.Post("/api/analyze", s.handleAnalyzeAPI)

	static, _ := fs.Sub(staticFiles, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		logging.F("method", r.Method),
		logging.F("path", r.URL.Path),
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.F("query", q))
	}

	if r.Body != nil && r.Method == http.MethodPost {
		if prefix, err := io.ReadAll(io.LimitReader(r.Body, logBodyBytes)); err == nil {
			fields = append(fields, logging.F("body", string(prefix)))
			r.Body = struct {
				io.Reader
				io.Closer
			}{io.MultiReader(bytes.NewReader(prefix), r.Body), r.Body}
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close releases the web client when the server created it.
func (s *Server) Close() error {
	if s.ownsClient && s.client != nil {
		return s.client.Close()
	}
	return nil
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      0, // scans can outlive any fixed write deadline
	}
}

// newSession gives one browser session its own orchestrator.
func (s *Server) newSession(surface app.Surface) (*app.Orchestrator, error) {
	return app.NewOrchestrator(s.cfg.Service, s.client, surface, s.logger)
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// statusFor maps an orchestrator failure to an API status code.
func statusFor(err error) int {
	switch app.Kind(err) {
	case "validation":
		return http.StatusBadRequest
	case "busy":
		return http.StatusConflict
	case "network", "request_failed", "malformed_response":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// --- HTTP handlers ---

func (s *Server) writePage(w http.ResponseWriter, status int, st PageState) {
	var buf bytes.Buffer
	if err := WritePage(&buf, st); err != nil {
		s.logger.Error("rendering page", logging.Err(err))
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, PageState{})
}

func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("parsing analyze form", logging.Err(err))
		status, msg := http.StatusBadRequest, "invalid form submission"
		if isTooLarge(err) {
			status, msg = http.StatusRequestEntityTooLarge, "request body too large"
		}
		s.writePage(w, status, PageState{Alert: msg, AlertKind: "validation"})
		return
	}

	surface := &pageSurface{input: r.PostFormValue("url")}
	orch, err := s.newSession(surface)
	if err != nil {
		s.logger.Error("creating session", logging.Err(err))
		s.writePage(w, http.StatusInternalServerError, PageState{Alert: err.Error(), AlertKind: "internal"})
		return
	}

	// failures are already on the surface
	_, _ = orch.Submit(r.Context(), surface.input)
	s.writePage(w, http.StatusOK, surface.state())
}

// handleAnalyzeAPI godoc
// @Summary Analyze a site
// @Description Normalizes the URL, runs a scan through the scanning service and returns the rendered report tree.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Site to scan"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/analyze [post]
func (s *Server) handleAnalyzeAPI(w http.ResponseWriter, r *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.logger.Warn("decoding analyze body", logging.Err(err))
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	surface := &pageSurface{input: body.URL}
	orch, err := s.newSession(surface)
	if err != nil {
		s.logger.Error("creating session", logging.Err(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sub, err := orch.Submit(r.Context(), body.URL)
	if err != nil {
		writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error(), Kind: app.Kind(err)})
		return
	}
	writeJSON(w, http.StatusOK, AnalyzeResponse{ID: sub.ID, URL: sub.URL, View: sub.View})
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

// WebSockets

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Err(err))
		return
	}
	defer conn.Close()

	surface := newWSSurface(conn, s.logger)
	orch, err := s.newSession(surface)
	if err != nil {
		s.logger.Error("creating session", logging.Err(err))
		_ = conn.WriteJSON(Event{Type: EventError, Message: err.Error(), Kind: "internal"})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	var wg sync.WaitGroup
	defer wg.Wait()
	// in-flight scans stop when the peer leaves
	defer cancel()

	for {
		var msg AnalyzeRequest
		if err := conn.ReadJSON(&msg); err != nil {
			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				surface.Notify(&app.ValidationError{Input: ""})
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("reading websocket message", logging.Err(err))
			}
			return
		}

		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			// failures are already on the surface
			_, _ = orch.Submit(ctx, input)
		}(msg.URL)
	}
}
