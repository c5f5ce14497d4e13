package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/praiseOjay/capstone-project/internal/config"
)

const serviceName = "fitness-etl"

// TracingProvider wraps the configured tracer provider so callers can
// shut it down cleanly at the end of a run.
type TracingProvider struct {
	provider *sdktrace.TracerProvider
}

// InitializeTracing sets up OpenTelemetry tracing for the pipeline.
// When tracing is disabled it installs a no-op provider so span creation
// stays cheap and callers never need to branch.
func InitializeTracing(cfg config.TracingConfig, logger *slog.Logger) (*TracingProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if !cfg.Enabled {
		tp := sdktrace.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return &TracingProvider{provider: tp}, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logger.Info("tracing initialized", slog.String("exporter", "stdout"))

	return &TracingProvider{provider: tp}, nil
}

// Shutdown flushes and stops the tracer provider
func (t *TracingProvider) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
