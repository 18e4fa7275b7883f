package storage

import "context"

// SettingsStore persists site-wide theming selections.
type SettingsStore interface {
	// ActiveTheme returns the persisted active theme selection, when set.
	ActiveTheme(ctx context.Context) (string, bool, error)
	// SetActiveTheme persists the active theme selection.
	SetActiveTheme(ctx context.Context, name string) error
	// ThemeIconDirectory returns one theme's persisted icon directory
	// override, when set.
	ThemeIconDirectory(ctx context.Context, theme string) (string, bool, error)
	// SetThemeIconDirectory persists one theme's icon directory override.
	// An empty directory clears the override.
	SetThemeIconDirectory(ctx context.Context, theme, directory string) error
}

// Store is the composite contract for settings persistence lifecycle.
type Store interface {
	SettingsStore
	Close() error
}
