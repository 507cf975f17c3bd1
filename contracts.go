package soltype

import (
	"context"

	"github.com/mathieupost/soltype/abi"
)

// Source provides the ABI descriptors of a contract.
//
//go:generate go run github.com/vektra/mockery/v2 --name Source --case underscore --with-expecter
type Source interface {
	Load(ctx context.Context) ([]*abi.Descriptor, error)
}

// Sink receives the generated definitions.
//
//go:generate go run github.com/vektra/mockery/v2 --name Sink --case underscore --with-expecter
type Sink interface {
	Write(ctx context.Context, content []byte) error
}
