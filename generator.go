package soltype

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/mathieupost/soltype/generate"
	"github.com/mathieupost/soltype/log"
)

// Generator loads an ABI from a Source and writes its TypeScript definitions
// to a Sink.
type Generator struct {
	source  Source
	sink    Sink
	options []generate.Option
}

func NewGenerator(source Source, sink Sink, options ...generate.Option) *Generator {
	return &Generator{
		source:  source,
		sink:    sink,
		options: options,
	}
}

// Run performs one generation pass. Nothing is written when generation fails.
func (g *Generator) Run(ctx context.Context) error {
	ctx, span := otel.Tracer("").Start(ctx, "soltype.Generator.Run")
	defer span.End()

	descriptors, err := g.source.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "loading ABI")
	}

	definitions, err := generate.Generate(ctx, descriptors, g.options...)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "generating definitions")
	}
	log.Info().Int("descriptors", len(descriptors)).Msg("definitions generated successfully")

	err = g.sink.Write(ctx, []byte(definitions))
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "writing definitions")
	}
	return nil
}
