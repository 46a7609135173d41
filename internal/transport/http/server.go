package http

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"jeopardy/internal/app"
	"jeopardy/internal/config"
	"jeopardy/internal/i18n"
	"jeopardy/internal/transport/ws"
)

// Server represents the HTTP server
type Server struct {
	server     *http.Server
	controller *app.Controller
	config     *config.Config
	lang       language.Tag
	logger     *slog.Logger
	webFS      fs.FS
}

// NewServer creates a new HTTP server. webFS must contain a web directory
// holding index.html.
func NewServer(cfg *config.Config, controller *app.Controller, logger *slog.Logger, webFS fs.FS) *Server {
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		logger.Error("failed to get web subdirectory", "error", err)
	}

	lang, ok := i18n.Parse(cfg.Game.Language)
	if !ok {
		logger.Warn("unsupported language, using default", "language", cfg.Game.Language, "default", i18n.DefaultTag)
	}

	s := &Server{
		controller: controller,
		config:     cfg,
		lang:       lang,
		logger:     logger,
		webFS:      webContent,
	}

	s.server = &http.Server{
		Addr:              cfg.GetAddr(),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/state", s.handleState)
		r.Post("/clueset", s.handleUploadClueSet)
		r.Get("/clueset/sample", s.handleDownloadSample)
		r.Post("/clueset/sample", s.handleLoadSample)
	})

	r.Handle("/ws", ws.NewHandler(s.controller, s.lang, s.logger))

	r.Get("/static/*", s.handleStatic)
	r.Get("/", s.handleIndex)

	return r
}

// Start listens on the configured address and serves until Shutdown
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.server.Addr, err)
	}

	s.logger.Info("server starting", "addr", ln.Addr().String())
	err = s.server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

// requestLogger logs each request; static files only in development
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			if !s.config.IsDevelopment() && isStaticRequest(r.URL.Path) {
				return
			}
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func isStaticRequest(path string) bool {
	return strings.HasPrefix(path, "/static/")
}
