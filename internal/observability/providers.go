package observability

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Providers bundles the logger, meter, and Prometheus registry handed to
// subsystems at startup.
type Providers struct {
	Logger *slog.Logger
	Meter  metric.Meter

	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
}

// Init builds the observability stack for the given configuration: a slog
// logger on stderr (stdout stays clean for command output and the MCP stdio
// transport) and an OTel meter provider whose metrics are collected into a
// private Prometheus registry.
func Init(cfg Config) (Providers, error) {
	logger := NewLogger(cfg)

	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return Providers{}, fmt.Errorf("create prometheus exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	return Providers{
		Logger:   logger,
		Meter:    provider.Meter(cfg.ServiceName),
		registry: registry,
		provider: provider,
	}, nil
}

// Shutdown flushes and stops the meter provider.
func (p Providers) Shutdown(ctx context.Context) error {
	if p.provider == nil {
		return nil
	}

	err := p.provider.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}

	return nil
}

// NewLogger builds the slog logger for the given configuration.
func NewLogger(cfg Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	return slog.New(handler).With("mode", string(cfg.Mode))
}
