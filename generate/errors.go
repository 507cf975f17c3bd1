package generate

import "github.com/pkg/errors"

var (
	// ErrMalformedTupleReference is returned for a tuple whose internal type
	// has no qualified name after a dot.
	ErrMalformedTupleReference = errors.New("unsupported tuple definition")

	// ErrInvalidStructureSynthesis is returned when a structure definition is
	// requested for a type that is not marked as a struct.
	ErrInvalidStructureSynthesis = errors.New("cannot generate struct definition for non-struct type")
)
