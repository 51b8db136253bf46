package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	metricExportInterval  = 15 * time.Second
	telemetryFlushTimeout = 5 * time.Second
)

type shutdownFunc func(context.Context) error

// InitTelemetry installs global trace, meter and log providers exporting to
// the collector. The returned func flushes and stops every provider.
func (app *Application) InitTelemetry() (func(context.Context), error) {
	endpoint := app.config.OtelCollectorUrl
	if endpoint == "" {
		app.logger.Info("otel collector url not set, telemetry disabled")
		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
		semconv.DeploymentEnvironment(app.config.Env),
	))
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	var shutdowns []shutdownFunc

	shutdownAll := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, telemetryFlushTimeout)
		defer cancel()

		var errs []error
		for _, shutdown := range shutdowns {
			errs = append(errs, shutdown(ctx))
		}
		return errors.Join(errs...)
	}

	for _, setup := range []func(context.Context, string, *resource.Resource) (shutdownFunc, error){
		setupTracing,
		setupMetrics,
		setupLogs,
	} {
		shutdown, err := setup(ctx, endpoint, res)
		if err != nil {
			return nil, errors.Join(err, shutdownAll(ctx))
		}
		shutdowns = append(shutdowns, shutdown)
	}

	return func(ctx context.Context) {
		if err := shutdownAll(ctx); err != nil {
			app.logger.Error("telemetry shutdown failed", "error", err)
		}
	}, nil
}

func setupTracing(ctx context.Context, endpoint string, res *resource.Resource) (shutdownFunc, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel trace exporter: %w", err)
	}

	provider := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return provider.Shutdown, nil
}

func setupMetrics(ctx context.Context, endpoint string, res *resource.Resource) (shutdownFunc, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel metric exporter: %w", err)
	}

	reader := metric.NewPeriodicReader(exporter, metric.WithInterval(metricExportInterval))
	provider := metric.NewMeterProvider(metric.WithResource(res), metric.WithReader(reader))

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

func setupLogs(ctx context.Context, endpoint string, res *resource.Resource) (shutdownFunc, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel log exporter: %w", err)
	}

	provider := log.NewLoggerProvider(
		log.WithResource(res),
		log.WithProcessor(log.NewBatchProcessor(exporter)),
	)

	global.SetLoggerProvider(provider)

	return provider.Shutdown, nil
}

// MultiHandler sends every slog record to each handler that accepts its level.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle reports the first handler error but still feeds the remaining handlers.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error

	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (h *MultiHandler) derive(fn func(slog.Handler) slog.Handler) *MultiHandler {
	derived := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		derived[i] = fn(handler)
	}
	return &MultiHandler{handlers: derived}
}
