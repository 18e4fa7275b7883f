package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	assertTableExists(t, sqlDB, "site_settings")
	assertTableExists(t, sqlDB, "theme_settings")
}

func TestActiveThemeRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, found, err := store.ActiveTheme(ctx); err != nil || found {
		t.Fatalf("ActiveTheme on empty store = found %v, err %v", found, err)
	}

	if err := store.SetActiveTheme(ctx, "midnight"); err != nil {
		t.Fatalf("set active theme: %v", err)
	}
	name, found, err := store.ActiveTheme(ctx)
	if err != nil {
		t.Fatalf("active theme: %v", err)
	}
	if !found || name != "midnight" {
		t.Fatalf("ActiveTheme = %q, %v; want midnight", name, found)
	}

	if err := store.SetActiveTheme(ctx, "basis"); err != nil {
		t.Fatalf("overwrite active theme: %v", err)
	}
	name, _, err = store.ActiveTheme(ctx)
	if err != nil {
		t.Fatalf("active theme: %v", err)
	}
	if name != "basis" {
		t.Fatalf("ActiveTheme after overwrite = %q, want basis", name)
	}
}

func TestSetActiveThemeRequiresName(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetActiveTheme(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank theme name")
	}
}

func TestThemeIconDirectoryRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, found, err := store.ThemeIconDirectory(ctx, "midnight"); err != nil || found {
		t.Fatalf("ThemeIconDirectory on empty store = found %v, err %v", found, err)
	}

	if err := store.SetThemeIconDirectory(ctx, "midnight", "assets/glyphs"); err != nil {
		t.Fatalf("set icon directory: %v", err)
	}
	directory, found, err := store.ThemeIconDirectory(ctx, "midnight")
	if err != nil {
		t.Fatalf("icon directory: %v", err)
	}
	if !found || directory != "assets/glyphs" {
		t.Fatalf("ThemeIconDirectory = %q, %v; want assets/glyphs", directory, found)
	}
}

func TestSetThemeIconDirectoryEmptyClearsOverride(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SetThemeIconDirectory(ctx, "midnight", "assets/glyphs"); err != nil {
		t.Fatalf("set icon directory: %v", err)
	}
	if err := store.SetThemeIconDirectory(ctx, "midnight", ""); err != nil {
		t.Fatalf("clear icon directory: %v", err)
	}
	if _, found, err := store.ThemeIconDirectory(ctx, "midnight"); err != nil || found {
		t.Fatalf("ThemeIconDirectory after clear = found %v, err %v; want cleared", found, err)
	}
}

func TestNilStoreGuards(t *testing.T) {
	var store *Store
	ctx := context.Background()

	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	if _, _, err := store.ActiveTheme(ctx); err == nil {
		t.Fatalf("expected error from nil store")
	}
	if err := store.SetActiveTheme(ctx, "basis"); err == nil {
		t.Fatalf("expected error from nil store")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func assertTableExists(t *testing.T, sqlDB *sql.DB, tableName string) {
	t.Helper()

	row := sqlDB.QueryRowContext(context.Background(), `
SELECT COUNT(*)
FROM sqlite_master
WHERE type = 'table' AND name = ?;
`, tableName)
	var count int
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan sqlite_master for %q: %v", tableName, err)
	}
	if count != 1 {
		t.Fatalf("table %q count = %d, want 1", tableName, count)
	}
}
