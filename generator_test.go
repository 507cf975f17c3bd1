package soltype_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mathieupost/soltype"
	"github.com/mathieupost/soltype/abi"
	"github.com/mathieupost/soltype/generate"
	"github.com/mathieupost/soltype/mocks"
)

func TestGeneratorRun(t *testing.T) {
	ctx := context.Background()

	getOwner := []*abi.Descriptor{{
		Type:            abi.KindFunction,
		Name:            "getOwner",
		StateMutability: abi.MutabilityView,
		Outputs:         []*abi.Type{{Type: "address"}},
	}}
	malformed := []*abi.Descriptor{{
		Type:   abi.KindFunction,
		Name:   "set",
		Inputs: []*abi.Type{{Name: "p", Type: "tuple", InternalType: "tuple"}},
	}}
	loadErr := errors.New("load failed")
	writeErr := errors.New("write failed")

	table := []struct {
		name    string
		options []generate.Option
		setup   func(source *mocks.Source, sink *mocks.Sink)
		err     error
	}{
		{
			name: "Success",
			setup: func(source *mocks.Source, sink *mocks.Sink) {
				source.EXPECT().Load(mock.Anything).Return(getOwner, nil)
				sink.EXPECT().
					Write(mock.Anything, []byte("interface SolidityContract {\n  getOwner(): Promise<string>\n}\n")).
					Return(nil)
			},
		},
		{
			name:    "Options",
			options: []generate.Option{generate.WithInterfaceName("Ownable")},
			setup: func(source *mocks.Source, sink *mocks.Sink) {
				source.EXPECT().Load(mock.Anything).Return(getOwner, nil)
				sink.EXPECT().
					Write(mock.Anything, []byte("interface Ownable {\n  getOwner(): Promise<string>\n}\n")).
					Return(nil)
			},
		},
		{
			name: "LoadFailed",
			setup: func(source *mocks.Source, sink *mocks.Sink) {
				source.EXPECT().Load(mock.Anything).Return(nil, loadErr)
			},
			err: loadErr,
		},
		{
			name: "GenerateFailed",
			setup: func(source *mocks.Source, sink *mocks.Sink) {
				source.EXPECT().Load(mock.Anything).Return(malformed, nil)
			},
			err: generate.ErrMalformedTupleReference,
		},
		{
			name: "WriteFailed",
			setup: func(source *mocks.Source, sink *mocks.Sink) {
				source.EXPECT().Load(mock.Anything).Return(getOwner, nil)
				sink.EXPECT().Write(mock.Anything, mock.Anything).Return(writeErr)
			},
			err: writeErr,
		},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewSource(t)
			sink := mocks.NewSink(t)
			tt.setup(source, sink)

			g := soltype.NewGenerator(source, sink, tt.options...)
			err := g.Run(ctx)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}
