// Package preview serves a live XHTML preview of one Aozora Bunko text.
// The page reloads itself over a WebSocket whenever the source changes.
package preview

import (
	"context"
	"embed"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/FocuswithJustin/Aozora/core/encoding"
	"github.com/FocuswithJustin/Aozora/core/render/html"
	"github.com/FocuswithJustin/Aozora/internal/input"
	"github.com/FocuswithJustin/Aozora/internal/logging"
)

//go:embed static/*
var staticFS embed.FS

const reloadScriptTag = `<script type="text/javascript" src="/static/reload.js"></script>`

// Config holds preview server configuration.
type Config struct {
	// Addr is the listen address, for example 127.0.0.1:8765.
	Addr string
	// SourcePath is the Aozora text or archive being previewed.
	SourcePath string
	// ZipMode treats the source as a ZIP archive regardless of suffix.
	ZipMode bool
	// RenderOpts are the renderer options for the preview page. Stylesheet
	// paths are replaced with the server's own.
	RenderOpts html.Options
	// PollInterval is how often the source is checked for changes.
	// Defaults to one second.
	PollInterval time.Duration
}

// Server renders one source file and pushes reloads to connected pages.
type Server struct {
	cfg Config
	hub *Hub

	mu      sync.RWMutex
	page    []byte
	modTime time.Time
}

// New creates a preview server for the given configuration.
func New(cfg Config) *Server {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	// The converted page links site-relative stylesheets; the preview
	// serves its own copy instead.
	cfg.RenderOpts.CSSFiles = []string{"/static/aozora.css"}
	return &Server{cfg: cfg, hub: NewHub()}
}

// Refresh reconverts the source and swaps in the new page.
func (s *Server) Refresh() error {
	data, err := input.Read(s.cfg.SourcePath, s.cfg.ZipMode)
	if err != nil {
		return err
	}
	page := html.Convert(encoding.DecodeToUTF8(data), s.cfg.RenderOpts)
	page = strings.Replace(page, "</body>", reloadScriptTag+"\r\n</body>", 1)

	s.mu.Lock()
	s.page = []byte(page)
	s.mu.Unlock()
	return nil
}

// Handler returns the preview route set wrapped in the logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	mux.Handle("/static/", http.FileServer(http.FS(staticFS)))
	return logging.CombinedMiddleware(mux)
}

// Start converts the source once, then serves it until ctx is canceled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Refresh(); err != nil {
		return err
	}
	if info, err := os.Stat(s.cfg.SourcePath); err == nil {
		s.setModTime(info.ModTime())
	}

	go s.hub.Run()
	go s.watchLoop(ctx)

	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logging.ServerStartup("preview", s.cfg.Addr, "source", s.cfg.SourcePath)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	page := s.page
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/xhtml+xml; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ServeWS(s.hub, w, r)
}

// watchLoop polls the source file and pushes a reload when it changes.
func (s *Server) watchLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		info, err := os.Stat(s.cfg.SourcePath)
		if err != nil {
			continue
		}
		if info.ModTime().Equal(s.lastModTime()) {
			continue
		}
		s.setModTime(info.ModTime())

		if err := s.Refresh(); err != nil {
			logging.ConversionError(s.cfg.SourcePath, "preview", err)
			continue
		}
		s.hub.BroadcastReload(s.cfg.SourcePath)
	}
}

func (s *Server) lastModTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modTime
}

func (s *Server) setModTime(t time.Time) {
	s.mu.Lock()
	s.modTime = t
	s.mu.Unlock()
}
