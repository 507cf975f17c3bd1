package tracing

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// NewProvider creates a tracer provider exporting to an OTLP/HTTP endpoint.
// Without an endpoint spans are recorded but not exported.
func NewProvider(endpoint, name string) (*trace.TracerProvider, func(), error) {
	ctx := context.Background()

	opts := []trace.TracerProviderOption{
		trace.WithResource(newResource(name)),
	}
	if endpoint != "" {
		exp, err := newExporter(ctx, endpoint)
		if err != nil {
			return nil, nil, errors.Wrap(err, "creating trace exporter")
		}
		opts = append(opts, trace.WithBatcher(exp))
	}

	tp := trace.NewTracerProvider(opts...)

	shutdown := func() {
		tp.Shutdown(ctx)
	}

	return tp, shutdown, nil
}

func newResource(name string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(name),
	)
}
