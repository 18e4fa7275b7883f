// Package storage defines persistence contracts for site theming settings.
//
// Bootstrap and handler code depend on these interfaces so theme selection
// stays testable and free of any concrete SQLite schema.
package storage
