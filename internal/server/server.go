// Package server serves the catalog over HTTP. Each visitor gets a session
// holding live screens, so taps posted from the pages (with or without the
// runtime script) change state the next render reflects.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-a11ycatalog/components/elementsearch"
	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/vanilla"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// SessionCookie names the cookie carrying the session id between pages.
const SessionCookie = "a11y_session"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxSessions bounds how many sessions keep screen state.
func WithMaxSessions(max int) Option {
	return func(s *Server) {
		s.maxSessions = max
	}
}

// WithRegistry registers metrics on registry instead of a private one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithDefaults sets the renderer, theme, variant and locale used when a
// request does not name them.
func WithDefaults(renderer, themeName, variant, locale string) Option {
	return func(s *Server) {
		s.defaults = requestDefaults{renderer: renderer, theme: themeName, variant: variant, locale: locale}
	}
}

type requestDefaults struct {
	renderer string
	theme    string
	variant  string
	locale   string
}

// Server exposes screens, taps and semantics trees over HTTP.
type Server struct {
	orch        *orchestrator.Orchestrator
	logger      *slog.Logger
	registry    *prometheus.Registry
	metrics     *Metrics
	sessions    *sessionStore
	maxSessions int
	defaults    requestDefaults
	handler     http.Handler
}

// New builds a server around orch. The orchestrator should be configured
// WithNavigation so pages link to each other.
func New(orch *orchestrator.Orchestrator, options ...Option) (*Server, error) {
	if orch == nil {
		return nil, errors.New("server: orchestrator is required")
	}
	s := &Server{
		orch:        orch,
		logger:      slog.Default(),
		maxSessions: 1000,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	s.metrics = NewMetrics(s.registry)
	s.sessions = newSessionStore(s.maxSessions)
	s.sessions.onEvict = s.metrics.SessionsEvictedTotal.Inc
	entries, err := s.searchIndex(context.Background())
	if err != nil {
		return nil, err
	}
	handler, err := s.routes(entries)
	if err != nil {
		return nil, err
	}
	s.handler = handler
	return s, nil
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics exposes the registered metrics.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// searchIndex builds every catalog screen once to index its labelled nodes.
func (s *Server) searchIndex(ctx context.Context) ([]elementsearch.Entry, error) {
	ids := s.orch.Catalog().IDs()
	screens := make([]*screen.Screen, 0, len(ids))
	for _, id := range ids {
		built, err := s.orch.Screen(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("server: index screen %q: %w", id, err)
		}
		screens = append(screens, built)
	}
	return elementsearch.Index(screens...), nil
}

func (s *Server) routes(entries []elementsearch.Entry) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/screens", http.StatusFound)
	})
	mux.HandleFunc("GET /screens", s.handleIndex)
	mux.HandleFunc("GET /screens/{id}", s.handleScreen)
	mux.HandleFunc("GET /screens/{id}/tree", s.handleTree)
	mux.HandleFunc("POST /screens/{id}/tap/{element}", s.handleTap)
	mux.HandleFunc("POST /screens/{id}/reset", s.handleReset)
	mux.Handle("GET /runtime/", http.StripPrefix("/runtime/", http.FileServerFS(vanilla.AssetsFS())))
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	search := elementsearch.New(
		elementsearch.WithEntries(entries),
		elementsearch.WithHref(func(e elementsearch.Entry) string {
			return screenPath(e.Screen) + "#" + e.ID
		}),
	)
	if _, err := search.RegisterRoutes(mux, ""); err != nil {
		return nil, err
	}
	return mux, nil
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("catalog server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("catalog server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	summaries := s.orch.Catalog().Summaries()
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{
			"title":   s.orch.Catalog().Catalog().Title,
			"screens": summaries,
		})
		return
	}
	if len(summaries) == 0 {
		http.Error(w, "catalog is empty", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, screenPath(summaries[0].ID), http.StatusFound)
}

func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	s.render(w, r, orchestrator.Request{
		Renderer:     firstNonEmpty(query.Get("renderer"), s.defaults.renderer),
		ThemeName:    firstNonEmpty(query.Get("theme"), s.defaults.theme),
		ThemeVariant: firstNonEmpty(query.Get("variant"), s.defaults.variant),
		Audit:        truthy(query.Get("audit")),
		RenderOptions: render.RenderOptions{
			Locale: firstNonEmpty(query.Get("locale"), s.defaults.locale),
			Subset: render.ParseSubset(query.Get("subset")),
			Format: query.Get("format"),
		},
	})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	s.render(w, r, orchestrator.Request{
		Renderer: "semantic",
		Audit:    truthy(query.Get("audit")),
		RenderOptions: render.RenderOptions{
			Subset: render.ParseSubset(query.Get("subset")),
			Format: firstNonEmpty(query.Get("format"), "json"),
		},
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, req orchestrator.Request) {
	screenID := r.PathValue("id")
	sessionID := s.session(w, r)
	live, err := s.liveScreen(r.Context(), sessionID, screenID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	req.Screen = live
	req.RenderOptions.TapAction = func(screenID, elementID string) string {
		return screenPath(screenID) + "/tap/" + elementID
	}
	req.RenderOptions.Hidden = render.MergeHiddenFields(nil,
		render.SessionField(sessionID),
		render.ReturnField(r.URL.RequestURI()),
	)

	start := time.Now()
	result, err := s.orch.Render(r.Context(), req)
	rendererLabel := firstNonEmpty(result.Renderer, req.Renderer, "default")
	if err != nil {
		s.metrics.RendersTotal.WithLabelValues(screenID, rendererLabel, "error").Inc()
		s.writeError(w, err)
		return
	}
	s.metrics.RendersTotal.WithLabelValues(screenID, rendererLabel, "success").Inc()
	s.metrics.RenderDurationSeconds.WithLabelValues(rendererLabel).Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", result.ContentType)
	_, _ = w.Write(result.Output)
}

// tapResponse is returned to script-driven taps.
type tapResponse struct {
	Screen string          `json:"screen"`
	Events []screen.Event  `json:"events"`
	State  map[string]bool `json:"state"`
}

func (s *Server) handleTap(w http.ResponseWriter, r *http.Request) {
	screenID, elementID := r.PathValue("id"), r.PathValue("element")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	sessionID := s.session(w, r)
	live, err := s.liveScreen(r.Context(), sessionID, screenID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	events, err := live.Tap(elementID)
	if err != nil {
		s.metrics.TapsTotal.WithLabelValues(screenID, tapStatus(err)).Inc()
		s.writeError(w, err)
		return
	}
	s.metrics.TapsTotal.WithLabelValues(screenID, "success").Inc()
	s.logger.Debug("tap", "session", sessionID, "screen", screenID, "element", elementID, "events", len(events))

	if wantsJSON(r) {
		if events == nil {
			events = []screen.Event{}
		}
		writeJSON(w, http.StatusOK, tapResponse{Screen: screenID, Events: events, State: live.State()})
		return
	}
	http.Redirect(w, r, returnPath(r.PostForm.Get("return"), screenID), http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	screenID := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	s.sessions.reset(s.session(w, r), screenID)
	http.Redirect(w, r, returnPath(r.PostForm.Get("return"), screenID), http.StatusSeeOther)
}

// session resolves the caller's session from the form, the query or the
// cookie, starting a new one when none is live.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	requested := r.FormValue("session")
	if requested == "" {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			requested = cookie.Value
		}
	}
	id, created := s.sessions.ensure(requested)
	if created {
		s.metrics.ActiveSessions.Set(float64(s.sessions.len()))
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return id
}

func (s *Server) liveScreen(ctx context.Context, sessionID, screenID string) (*screen.Screen, error) {
	return s.sessions.screen(sessionID, screenID, func() (*screen.Screen, error) {
		return s.orch.Screen(ctx, screenID)
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, orchestrator.ErrScreenNotFound), errors.Is(err, screen.ErrUnknownElement):
		status = http.StatusNotFound
	case errors.Is(err, screen.ErrNotInteractive):
		status = http.StatusConflict
	case errors.Is(err, render.ErrRendererNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

func tapStatus(err error) string {
	switch {
	case errors.Is(err, screen.ErrUnknownElement):
		return "unknown_element"
	case errors.Is(err, screen.ErrNotInteractive):
		return "not_interactive"
	default:
		return "error"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") || r.URL.Query().Get("format") == "json"
}

// returnPath accepts only local absolute paths. Browsers treat a backslash
// like a slash, so "/\\host" is protocol-relative too. Control characters
// are rejected for the same reason.
func returnPath(raw, screenID string) string {
	fallback := screenPath(screenID)
	if !strings.HasPrefix(raw, "/") || strings.ContainsAny(raw, "\\\r\n\t") {
		return fallback
	}
	if strings.HasPrefix(raw, "//") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return fallback
	}
	return raw
}

func screenPath(id string) string {
	return "/screens/" + id
}

func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
