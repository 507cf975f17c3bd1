package file

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mathieupost/soltype"
)

var _ soltype.Sink = (*Sink)(nil)

// Sink writes definitions to a file, replacing any existing content, or to
// Stdout when no path is set.
type Sink struct {
	path   string
	Stdout io.Writer
	Mode   os.FileMode
}

func NewSink(path string) *Sink {
	return &Sink{
		path:   path,
		Stdout: os.Stdout,
		Mode:   0o644,
	}
}

func (s *Sink) Write(ctx context.Context, content []byte) error {
	_, span := otel.Tracer("").Start(ctx, "file.Sink.Write")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return err
	}

	if s.path == "" {
		_, err := s.Stdout.Write(content)
		return errors.Wrap(err, "writing to stdout")
	}

	span.SetAttributes(attribute.String("soltype.path", s.path))
	err := os.WriteFile(s.path, content, s.Mode)
	return errors.Wrapf(err, "writing %s", s.path)
}
