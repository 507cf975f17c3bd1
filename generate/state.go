package generate

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mathieupost/soltype/abi"
)

// State is the bookkeeping of a single generation pass. A State must not be
// shared between passes.
type State struct {
	// Structures maps a structure name to its rendered definition, in the
	// order the structures were registered.
	Structures *orderedmap.OrderedMap[string, string]

	// counter feeds generated parameter names.
	counter int
}

func NewState() *State {
	return &State{
		Structures: orderedmap.New[string, string](),
	}
}

// Resolved is the mapping of one abi.Type to a TypeScript type.
type Resolved struct {
	// Type is the enriched copy of the resolved descriptor, with Name and
	// InternalType filled in.
	Type *abi.Type
	// TypeName is the TypeScript type name, "" for unknown scalar types.
	TypeName string
	// Definition is the structure definition for tuple types.
	Definition string
}

// Structure returns the definition registered under name.
func (s *State) Structure(name string) (string, bool) {
	return s.Structures.Get(name)
}

// StructureNames lists registered structures in registration order.
func (s *State) StructureNames() []string {
	names := make([]string, 0, s.Structures.Len())
	for pair := s.Structures.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (s *State) definitions() []string {
	defs := make([]string, 0, s.Structures.Len())
	for pair := s.Structures.Oldest(); pair != nil; pair = pair.Next() {
		defs = append(defs, pair.Value)
	}
	return defs
}
