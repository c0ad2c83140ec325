package otel

import (
	"context"
	"fmt"

	"hotel/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials/insecure"
)

// Otel opens spans. Handlers, services and repositories each use their own
// scope name so traces group by layer.
type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type otelImpl struct {
	provider oteltrace.TracerProvider
}

// FromProvider wraps an existing provider, such as one backed by a span
// recorder.
func FromProvider(provider oteltrace.TracerProvider) Otel {
	return &otelImpl{provider: provider}
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.provider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// New installs the global tracer provider and W3C propagation. Without an
// exporter endpoint spans are created but never shipped. The cleanup flushes
// pending spans.
func New(cfg *config.Config) (Otel, func(), error) {
	opts := []trace.TracerProviderOption{
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
		)),
		trace.WithSampler(Sampler(cfg.External.Otel.SampleRatio)),
	}

	if endpoint := cfg.External.Otel.Endpoint; endpoint != "" {
		exporter, err := otlptracegrpc.New(context.Background(),
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}

		opts = append(opts, trace.WithBatcher(exporter))
	} else {
		log.Warn().Msg("EXTERNAL_OTEL_ENDPOINT is empty, traces stay local")
	}

	provider := trace.NewTracerProvider(opts...)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	cleanup := func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")

			return
		}

		log.Info().Msg("tracer provider shut down")
	}

	return FromProvider(provider), cleanup, nil
}

// Sampler keeps ratio of new traces and follows the caller's decision for
// propagated ones. Ratios outside (0, 1) clamp to never or always.
func Sampler(ratio float64) trace.Sampler {
	switch {
	case ratio <= 0:
		return trace.ParentBased(trace.NeverSample())
	case ratio >= 1:
		return trace.ParentBased(trace.AlwaysSample())
	default:
		return trace.ParentBased(trace.TraceIDRatioBased(ratio))
	}
}
