// Package server exposes the badge links over a small JSON HTTP API.
//
// Routes:
//
//	GET /healthz                          liveness probe
//	GET /dependencies                     links for every configured dependency
//	GET /dependencies/{vendor}/{name}     links for one dependency (?type=docker)
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sfneal/dependencies/pkg/badges"
	"github.com/sfneal/dependencies/pkg/deps"
	errs "github.com/sfneal/dependencies/pkg/errors"
	"github.com/sfneal/dependencies/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Server serves links built by a pipeline runner from a fixed source.
type Server struct {
	runner *pipeline.Runner
	source *deps.Source
	logger *log.Logger
}

// New creates a Server. The runner's logger is used for request logs.
func New(runner *pipeline.Runner, source *deps.Source) *Server {
	return &Server{runner: runner, source: source, logger: runner.Logger}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/dependencies", s.handleList)
	r.Get("/dependencies/{vendor}/{name}", s.handleShow)
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	result, err := s.runner.Execute(r.Context(), s.source)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if result.Links == nil {
		result.Links = []badges.Links{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	dep := deps.Dependency{
		Name: chi.URLParam(r, "vendor") + "/" + chi.URLParam(r, "name"),
		Type: deps.ParseType(r.URL.Query().Get("type")),
	}
	if err := s.runner.Set(dep).Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	links, err := s.runner.Summary(r.Context(), dep)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

type errorBody struct {
	Error string    `json:"error"`
	Code  errs.Code `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	status := errs.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorBody{Error: errs.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
