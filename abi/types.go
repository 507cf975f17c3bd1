package abi

// Kind is the discriminant of a Descriptor.
type Kind string

const (
	KindFunction    Kind = "function"
	KindConstructor Kind = "constructor"
	KindReceive     Kind = "receive"
	KindFallback    Kind = "fallback"
	KindEvent       Kind = "event"
	KindError       Kind = "error"
)

type Mutability string

const (
	MutabilityPure       Mutability = "pure"
	MutabilityView       Mutability = "view"
	MutabilityPayable    Mutability = "payable"
	MutabilityNonPayable Mutability = "nonpayable"
)

// Type describes one parameter, struct field or return slot.
type Type struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Components   []*Type `json:"components,omitempty"`
	Indexed      bool    `json:"indexed,omitempty"`
	InternalType string  `json:"internalType,omitempty"`

	// GeneratedName is set by the generator when Name was filled in for a
	// nameless parameter. It is never read from input.
	GeneratedName bool `json:"-"`
}

// Descriptor is a single entry of an ABI list. Type tells which of the
// remaining fields are meaningful.
type Descriptor struct {
	Type            Kind       `json:"type"`
	Name            string     `json:"name,omitempty"`
	Inputs          []*Type    `json:"inputs,omitempty"`
	Outputs         []*Type    `json:"outputs,omitempty"`
	StateMutability Mutability `json:"stateMutability,omitempty"`
	Anonymous       bool       `json:"anonymous,omitempty"`
}

// Function is a callable member: a function, constructor, receive or
// fallback entry.
type Function struct {
	Name            string
	Kind            Kind
	Inputs          []*Type
	Outputs         []*Type
	StateMutability Mutability
}

// ReadOnly reports whether calling the function leaves chain state untouched.
func (f *Function) ReadOnly() bool {
	return f.StateMutability == MutabilityPure || f.StateMutability == MutabilityView
}

type Event struct {
	Name      string
	Inputs    []*Type
	Anonymous bool
}

type Error struct {
	Name      string
	Inputs    []*Type
	Anonymous bool
}

// Definitions holds the classified entries of an ABI list, each bucket in
// the order of the original list.
type Definitions struct {
	Functions []*Function
	Events    []*Event
	Errors    []*Error
}
