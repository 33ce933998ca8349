// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const InstrumentationName = "clientgen"

type Options struct {
	Endpoint    string
	Insecure    bool
	ServiceName string
	Version     string
}

// Shutdown сбрасывает накопленные спаны и останавливает экспорт.
type Shutdown func(ctx context.Context) error

// Setup настраивает глобальный TracerProvider. Без Endpoint трассы не экспортируются,
// но спаны создаются и доступны процессорам, добавленным позже.
func Setup(ctx context.Context, opts Options) (shutdown Shutdown, err error) {

	res := resource.NewSchemaless(
		attribute.String("service.name", opts.ServiceName),
		attribute.String("service.version", opts.Version),
	)
	providerOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	if opts.Endpoint != "" {
		clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opts.Endpoint)}
		if opts.Insecure {
			clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
		}
		var exporter *otlptrace.Exporter
		if exporter, err = otlptracegrpc.New(ctx, clientOpts...); err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exporter))
		slog.Debug("trace export enabled", slog.String("endpoint", opts.Endpoint))
	}

	provider := sdktrace.NewTracerProvider(providerOpts...)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return provider.Shutdown, nil
}

func Tracer() trace.Tracer {

	return otel.Tracer(InstrumentationName)
}

func Meter() metric.Meter {

	return otel.Meter(InstrumentationName)
}
