package file

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mathieupost/soltype"
	"github.com/mathieupost/soltype/abi"
	"github.com/mathieupost/soltype/log"
)

var _ soltype.Source = (*Source)(nil)

// Source reads an ABI list or a compilation output from a JSON file.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Load(ctx context.Context) ([]*abi.Descriptor, error) {
	_, span := otel.Tracer("").Start(ctx, "file.Source.Load")
	defer span.End()
	span.SetAttributes(attribute.String("soltype.path", s.path))

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "reading ABI file")
	}

	doc, err := abi.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", s.path)
	}
	if doc.Compiled {
		log.Info().
			Str("contract", doc.ContractName).
			Str("source", doc.SourceName).
			Msg("the file is a compilation output file, processing accordingly")
	}
	return doc.Descriptors, nil
}
