// Package sqlite provides SQLite-backed persistence for site settings.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/versocms/verso/internal/platform/storage/sqlitemigrate"
	"github.com/versocms/verso/internal/storage"
	"github.com/versocms/verso/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const activeThemeKey = "active_theme"

// Store provides SQLite-backed persistence for site theming settings.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a settings SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ActiveTheme returns the persisted active theme selection.
func (s *Store) ActiveTheme(ctx context.Context) (string, bool, error) {
	if s == nil || s.sqlDB == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT setting_value FROM site_settings WHERE setting_key = ?`,
		activeThemeKey,
	)

	var name string
	if err := row.Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get active theme: %w", err)
	}
	return name, true, nil
}

// SetActiveTheme persists the active theme selection.
func (s *Store) SetActiveTheme(ctx context.Context, name string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("theme name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO site_settings (setting_key, setting_value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(setting_key) DO UPDATE SET
		   setting_value = excluded.setting_value,
		   updated_at = excluded.updated_at`,
		activeThemeKey,
		name,
		timeToUnixMillis(time.Now().UTC()),
	)
	if err != nil {
		return fmt.Errorf("set active theme: %w", err)
	}
	return nil
}

// ThemeIconDirectory returns one theme's persisted icon directory override.
func (s *Store) ThemeIconDirectory(ctx context.Context, theme string) (string, bool, error) {
	if s == nil || s.sqlDB == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return "", false, fmt.Errorf("theme name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT icon_directory FROM theme_settings WHERE theme_name = ?`,
		theme,
	)

	var directory string
	if err := row.Scan(&directory); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get theme icon directory: %w", err)
	}
	return directory, true, nil
}

// SetThemeIconDirectory persists one theme's icon directory override. An
// empty directory clears the override back to the theme default.
func (s *Store) SetThemeIconDirectory(ctx context.Context, theme, directory string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return fmt.Errorf("theme name is required")
	}

	directory = strings.TrimSpace(directory)
	if directory == "" {
		if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM theme_settings WHERE theme_name = ?`, theme); err != nil {
			return fmt.Errorf("clear theme icon directory: %w", err)
		}
		return nil
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO theme_settings (theme_name, icon_directory, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(theme_name) DO UPDATE SET
		   icon_directory = excluded.icon_directory,
		   updated_at = excluded.updated_at`,
		theme,
		directory,
		timeToUnixMillis(time.Now().UTC()),
	)
	if err != nil {
		return fmt.Errorf("set theme icon directory: %w", err)
	}
	return nil
}

// runMigrations applies embedded SQL migrations in filename order.
func (s *Store) runMigrations() error {
	return sqlitemigrate.Apply(context.Background(), s.sqlDB, migrations.FS)
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

var _ storage.Store = (*Store)(nil)
