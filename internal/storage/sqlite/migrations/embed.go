// Package migrations contains embedded SQL migrations for the settings store.
package migrations

import "embed"

// FS contains embedded SQLite migrations for site settings storage.
//
//go:embed *.sql
var FS embed.FS
