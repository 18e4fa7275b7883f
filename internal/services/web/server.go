package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/versocms/verso/internal/platform/timeouts"
	"github.com/versocms/verso/internal/site"
	"github.com/versocms/verso/internal/storage"
	"github.com/versocms/verso/internal/storage/sqlite"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// SiteDir is a site tree on disk. Empty serves the embedded default site.
	SiteDir string
	// SettingsDBPath locates the sqlite settings database. Empty runs with
	// built-in defaults and no persistence.
	SettingsDBPath string
	// ActiveTheme forces the active theme, bypassing the settings store.
	ActiveTheme string
	// AppName overrides the product name in rendered chrome.
	AppName string
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	settings   storage.Store
}

// NewServer builds a configured web server serving the site tree.
func NewServer(config Config) (*Server, error) {
	return NewServerWithContext(context.Background(), config)
}

// NewServerWithContext builds the server, loading the site and opening the
// settings store under ctx.
func NewServerWithContext(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	var root fs.FS = site.FS
	if dir := strings.TrimSpace(config.SiteDir); dir != "" {
		root = os.DirFS(dir)
	}

	var settings storage.Store
	if dbPath := strings.TrimSpace(config.SettingsDBPath); dbPath != "" {
		store, err := sqlite.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open settings store: %w", err)
		}
		settings = store
	}

	loaded, err := LoadSite(ctx, SiteConfig{
		Root:        root,
		ActiveTheme: config.ActiveTheme,
		Settings:    settings,
	})
	if err != nil {
		closeSettings(settings)
		return nil, fmt.Errorf("load site: %w", err)
	}

	handler, err := NewHandler(config, loaded)
	if err != nil {
		closeSettings(settings)
		return nil, fmt.Errorf("build handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		settings:   settings,
	}, nil
}

// ListenAndServe serves HTTP until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.httpServer.ListenAndServe() }()
	log.Printf("web listening on %s", s.httpAddr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Close releases the settings store held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	closeSettings(s.settings)
}

func closeSettings(settings storage.Store) {
	if settings == nil {
		return
	}
	if err := settings.Close(); err != nil {
		log.Printf("close settings store: %v", err)
	}
}
