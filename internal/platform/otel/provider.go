// Package otel wires OpenTelemetry tracing for Verso processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// settings gates the exporter. Tracing stays off until an endpoint is
// configured, and VERSO_OTEL_ENABLED=false switches it off regardless.
type settings struct {
	Endpoint string `env:"VERSO_OTEL_ENDPOINT"`
	Enabled  string `env:"VERSO_OTEL_ENABLED"`
}

func (s settings) off() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return true
	}
	return strings.TrimSpace(s.Endpoint) == ""
}

// Setup registers a global OTLP trace provider for the named service and
// returns a shutdown function that flushes pending spans. When tracing is
// not configured the shutdown is a no-op and no provider is registered.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	var cfg settings
	if err := env.Parse(&cfg); err != nil {
		return noop, fmt.Errorf("parse otel env: %w", err)
	}
	if cfg.off() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("build otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("build trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider.Shutdown, nil
}
