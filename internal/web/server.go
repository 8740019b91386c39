// Package web serves the question authoring workflow over HTTP: a form
// based page backed by a per-browser workspace, and a small JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/abhisek/passagequiz/internal/logger"
	"github.com/abhisek/passagequiz/internal/questiongen"
	"github.com/abhisek/passagequiz/internal/workspace"
)

//go:embed templates/*.html
var templateFS embed.FS

// Config configures a Server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// SessionKey signs the session cookie. A random key is generated when
	// empty, which invalidates sessions on restart.
	SessionKey []byte
	// SecureCookie marks the session cookie Secure.
	SecureCookie bool
	// SessionTTL evicts workspaces idle for longer than this.
	SessionTTL time.Duration
	// UploadLimit caps the multipart body of /upload.
	UploadLimit int64
}

// DefaultConfig returns the defaults used by `passagequiz serve`.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		SessionTTL:  2 * time.Hour,
		UploadLimit: 20 << 20,
	}
}

// ConfigFromEnv reads PORT and PASSAGEQUIZ_SESSION_KEY over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if key := os.Getenv("PASSAGEQUIZ_SESSION_KEY"); key != "" {
		cfg.SessionKey = []byte(key)
	}
	return cfg
}

// Server wires handlers to workspaces and a generator.
type Server struct {
	cfg        Config
	gen        questiongen.Generator
	exp        workspace.Exporter
	log        *logger.Logger
	cookies    *sessions.CookieStore
	workspaces *registry
	page       *template.Template
}

// New builds a Server. exp may be nil to disable PDF export; log may be nil.
func New(cfg Config, gen questiongen.Generator, exp workspace.Exporter, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}
	if len(cfg.SessionKey) == 0 {
		cfg.SessionKey = securecookie.GenerateRandomKey(32)
		log.Warn("no session key configured, using an ephemeral one")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	if cfg.UploadLimit <= 0 {
		cfg.UploadLimit = DefaultConfig().UploadLimit
	}

	page, err := template.New("index.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	cookies := sessions.NewCookieStore(cfg.SessionKey)
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		cfg:     cfg,
		gen:     gen,
		exp:     exp,
		log:     log,
		cookies: cookies,
		page:    page,
	}
	s.workspaces = newRegistry(cfg.SessionTTL, func() *workspace.Workspace {
		return workspace.New(gen, exp, log)
	})
	return s, nil
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Post("/demo", s.handleDemo)
	r.Post("/upload", s.handleUpload)
	r.Post("/reset", s.handleReset)
	r.Post("/answers/{index}", s.handleToggleAnswer)
	r.Get("/export.pdf", s.handleExport)

	r.Route("/api", func(r chi.Router) {
		r.Get("/types", s.handleAPITypes)
		r.Post("/generate", s.handleAPIGenerate)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Generation and export are synchronous and can take a while.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
