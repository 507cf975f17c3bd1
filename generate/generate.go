package generate

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mathieupost/soltype/abi"
	"github.com/mathieupost/soltype/log"
)

const (
	DefaultInterfaceName = "SolidityContract"
	DefaultResponseType  = "TransactionResponse"
)

type options struct {
	interfaceName string
	responseType  string
}

type Option func(*options)

// WithInterfaceName sets the name of the aggregate contract interface.
func WithInterfaceName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.interfaceName = name
		}
	}
}

// WithResponseType sets the type returned by state-changing functions.
func WithResponseType(name string) Option {
	return func(o *options) {
		if name != "" {
			o.responseType = name
		}
	}
}

// Generate renders TypeScript definitions for an ABI list: one interface for
// the contract, followed by an interface per struct in the order the structs
// were discovered. descriptors are not modified.
func Generate(ctx context.Context, descriptors []*abi.Descriptor, opts ...Option) (string, error) {
	_, span := otel.Tracer("").Start(ctx, "generate.Generate")
	defer span.End()

	o := options{
		interfaceName: DefaultInterfaceName,
		responseType:  DefaultResponseType,
	}
	for _, opt := range opts {
		opt(&o)
	}

	defs := abi.Classify(descriptors)
	log.Debug().
		Int("functions", len(defs.Functions)).
		Int("events", len(defs.Events)).
		Int("errors", len(defs.Errors)).
		Msg("classified descriptors")

	state := NewState()
	data := definitionsData{
		Name:    o.interfaceName,
		Members: []memberData{},
	}
	for _, fn := range defs.Functions {
		member, err := state.member(fn, o.responseType)
		if err != nil {
			span.RecordError(err)
			return "", errors.Wrapf(err, "generating %s %q", fn.Kind, fn.Name)
		}
		// Nameless functions are skipped after their types were resolved,
		// so their structs are still emitted.
		if fn.Name == "" {
			continue
		}
		data.Members = append(data.Members, *member)
	}
	data.Structures = state.definitions()

	span.SetAttributes(
		attribute.Int("soltype.members", len(data.Members)),
		attribute.Int("soltype.structures", len(data.Structures)),
	)

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "definitions.tmpl", data); err != nil {
		return "", errors.Wrap(err, "executing definitions template")
	}
	return buf.String(), nil
}

func (s *State) member(fn *abi.Function, responseType string) (*memberData, error) {
	member := &memberData{
		Name:       fn.Name,
		Parameters: []string{},
	}
	for _, input := range fn.Inputs {
		res, err := s.Resolve(input)
		if err != nil {
			return nil, err
		}
		member.Parameters = append(member.Parameters, res.Type.Name+": "+res.TypeName)
	}

	returns, err := s.returnType(fn, responseType)
	if err != nil {
		return nil, err
	}
	member.Returns = returns
	return member, nil
}

// returnType builds the promise type of a function. Outputs of state-changing
// functions are not resolved.
func (s *State) returnType(fn *abi.Function, responseType string) (string, error) {
	if !fn.ReadOnly() {
		return "Promise<" + responseType + ">", nil
	}

	typeNames := make([]string, 0, len(fn.Outputs))
	for _, output := range fn.Outputs {
		res, err := s.Resolve(output)
		if err != nil {
			return "", err
		}
		typeNames = append(typeNames, res.TypeName)
	}

	switch len(typeNames) {
	case 0:
		return "Promise<void>", nil
	case 1:
		return "Promise<" + typeNames[0] + ">", nil
	default:
		return "Promise<[" + strings.Join(typeNames, ", ") + "]>", nil
	}
}
