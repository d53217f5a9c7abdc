// Package server exposes the snowflake generator over HTTP: an HTML form
// page, a JSON API and the stored image files.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/esimov/koch"
	"github.com/esimov/koch/store"
)

//go:embed templates/index.html
var templateFS embed.FS

// Server wires the geometry engine, the renderer and the image store behind
// an http.Handler. Handlers are stateless; the engine is pure and the store
// relies on unique filenames, so no extra locking is needed.
type Server struct {
	store    *store.Store
	renderer *koch.Renderer
	log      *slog.Logger
	tmpl     *template.Template
}

// New builds a Server around the given image store.
func New(st *store.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		store:    st,
		renderer: koch.NewRenderer(),
		log:      log,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

// Handler returns the route table of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/koch/generate", s.cors(s.handleGenerate))
	mux.HandleFunc("/api/koch/list", s.cors(s.handleList))
	mux.HandleFunc("/api/koch/clear", s.cors(s.handleClear))
	mux.HandleFunc("/static/images/", s.handleImage)
	return s.logRequests(mux)
}

// Run serves HTTP on addr until the context is cancelled, then drains
// in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("server.listening", "addr", addr, "output_dir", s.store.Dir())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info("server.stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleImage serves a stored PNG by name.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/static/images/"):]
	f, err := s.store.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "image not found", http.StatusNotFound)
			return
		}
		s.log.Error("server.open_image_failed", "name", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "image/png")
	if _, err := io.Copy(w, f); err != nil {
		s.log.Warn("server.serve_image_interrupted", "name", name, "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// cors allows the JSON API to be called from any origin and answers
// preflight requests.
func (s *Server) cors(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
