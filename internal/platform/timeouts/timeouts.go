// Package timeouts holds the timeout budget shared by Verso processes.
package timeouts

import "time"

const (
	// ReadHeader limits how long the HTTP server waits for request headers.
	ReadHeader = 5 * time.Second

	// Shutdown limits how long in-flight requests may run during graceful
	// shutdown.
	Shutdown = 5 * time.Second

	// SettingsQuery caps a single settings store lookup performed while
	// building a page.
	SettingsQuery = 2 * time.Second
)
