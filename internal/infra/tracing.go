package infra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/fx"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/pkg/bininfo"
	"github.com/salesboard/backend/internal/pkg/observability"
)

// Tracer sets up the global OpenTelemetry tracer provider. It returns nil when
// tracing is disabled.
func Tracer(lc fx.Lifecycle, conf *appconfig.Config) (*tracesdk.TracerProvider, error) {
	if !conf.TracingEnabled {
		return nil, nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
			attribute.Bool("dev", conf.DevMode),
		)),
	}

	for _, name := range conf.TracingExporters {
		switch name {
		case "otlp":
			exporter, err := otlptracegrpc.New(context.Background())
			if err != nil {
				return nil, errors.Wrap(err, "infra: tracing: failed to create otlp exporter")
			}
			opts = append(opts, tracesdk.WithBatcher(exporter))
		case "stdout":
			exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
			if err != nil {
				return nil, errors.Wrap(err, "infra: tracing: failed to create stdout exporter")
			}
			opts = append(opts, tracesdk.WithSyncer(exporter))
		default:
			return nil, errors.Errorf("infra: tracing: unknown exporter %q", name)
		}
	}

	tp := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	log.Info().Strs("exporters", conf.TracingExporters).Msg("tracing enabled")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}
