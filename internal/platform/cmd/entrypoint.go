// Package cmd carries the startup plumbing shared by Verso binaries:
// environment configuration, the telemetry lifecycle, and fatal exits.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/versocms/verso/internal/platform/otel"
)

// ServiceWeb names the site-serving process in telemetry.
const ServiceWeb = "web"

const telemetryFlushTimeout = 5 * time.Second

// ParseEnv fills cfg from environment variables. Callers bind flags on top
// of the parsed values so flags override the environment.
func ParseEnv(cfg any) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RunService starts telemetry for the named service, invokes run, and
// flushes pending spans before returning run's error.
func RunService(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s telemetry shutdown: %v", service, err)
		}
	}()

	return run(ctx)
}

// Exitf prints a final message to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
