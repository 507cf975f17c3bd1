package abi

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrInvalidDocument is returned when input is neither an ABI list nor a
// compilation output carrying one.
var ErrInvalidDocument = errors.New("not a valid ABI definition or compilation output")

// CompilationOutput is the artifact a build tool writes per contract.
type CompilationOutput struct {
	Format           string          `json:"_format,omitempty"`
	ContractName     string          `json:"contractName,omitempty"`
	SourceName       string          `json:"sourceName,omitempty"`
	ABI              []*Descriptor   `json:"abi"`
	Bytecode         string          `json:"bytecode,omitempty"`
	DeployedBytecode string          `json:"deployedBytecode,omitempty"`
	LinkReferences   json.RawMessage `json:"linkReferences,omitempty"`
}

// Document is a decoded input file.
type Document struct {
	Descriptors []*Descriptor

	// Compiled is true when the descriptors were unwrapped from a
	// CompilationOutput. ContractName and SourceName are only set then.
	Compiled     bool
	ContractName string
	SourceName   string
}

// Parse decodes either a bare descriptor list or a compilation output.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrInvalidDocument
	}

	if data[0] == '[' {
		var descriptors []*Descriptor
		if err := json.Unmarshal(data, &descriptors); err != nil {
			return nil, errors.Wrap(err, "decoding descriptor list")
		}
		if len(descriptors) > 0 {
			return &Document{Descriptors: descriptors}, nil
		}
		return nil, ErrInvalidDocument
	}

	if data[0] != '{' {
		return nil, ErrInvalidDocument
	}

	var output CompilationOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, errors.Wrap(err, "decoding compilation output")
	}
	if len(output.ABI) == 0 {
		return nil, ErrInvalidDocument
	}
	return &Document{
		Descriptors:  output.ABI,
		Compiled:     true,
		ContractName: output.ContractName,
		SourceName:   output.SourceName,
	}, nil
}
