// Package web parses web command flags and starts the site server.
package web

import (
	"context"
	"flag"

	entrypoint "github.com/versocms/verso/internal/platform/cmd"
	server "github.com/versocms/verso/internal/services/web"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr       string `env:"VERSO_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	SiteDir        string `env:"VERSO_WEB_SITE_DIR"`
	SettingsDBPath string `env:"VERSO_WEB_SETTINGS_DB"`
	ActiveTheme    string `env:"VERSO_WEB_ACTIVE_THEME"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The web server listen address")
	fs.StringVar(&cfg.SiteDir, "site-dir", cfg.SiteDir, "Site tree directory (defaults to the embedded site)")
	fs.StringVar(&cfg.SettingsDBPath, "settings-db", cfg.SettingsDBPath, "SQLite settings database path")
	fs.StringVar(&cfg.ActiveTheme, "active-theme", cfg.ActiveTheme, "Force the active theme, bypassing settings")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunService(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		srv, err := server.NewServerWithContext(ctx, server.Config{
			HTTPAddr:       cfg.HTTPAddr,
			SiteDir:        cfg.SiteDir,
			SettingsDBPath: cfg.SettingsDBPath,
			ActiveTheme:    cfg.ActiveTheme,
		})
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.ListenAndServe(ctx)
	})
}
