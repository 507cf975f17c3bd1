package generate

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/huandu/go-clone"
	"github.com/pkg/errors"

	"github.com/mathieupost/soltype/abi"
	"github.com/mathieupost/soltype/log"
)

const (
	TypeString    = "string"
	TypeBoolean   = "boolean"
	TypeNumber    = "number"
	TypeBigNumber = "BigNumber"
)

var (
	// tuplePattern matches tuple and tuple arrays of any dimension.
	tuplePattern = regexp.MustCompile(`^tuple(?:\[\d*\])*$`)
	// tupleArrayPattern captures a tuple array without its outermost dimension.
	tupleArrayPattern = regexp.MustCompile(`^(tuple(?:\[\d*\])*)\[\d*\]$`)
	// arrayPattern captures any array type without its outermost dimension.
	arrayPattern = regexp.MustCompile(`^(\w+(?:\[\d*\])*)\[\d*\]$`)
	intPattern   = regexp.MustCompile(`^u?int(\d*)$`)
	bytesPattern = regexp.MustCompile(`^bytes\d*$`)
	namePrefix   = regexp.MustCompile(`^\w+`)
)

// Resolve maps t to its TypeScript type and registers the structures it
// needs. t itself is left untouched: names and internal types are filled in on
// a deep copy, returned as Resolved.Type.
func (s *State) Resolve(t *abi.Type) (*Resolved, error) {
	if t == nil {
		return s.resolve(&abi.Type{})
	}
	return s.resolve(clone.Clone(t).(*abi.Type))
}

// resolve works on a descriptor tree owned by the State and enriches it in
// place.
func (s *State) resolve(t *abi.Type) (*Resolved, error) {
	if t == nil {
		t = &abi.Type{}
	}
	// The internal type must be derived before a name is generated; struct
	// naming only uses names from the ABI.
	if t.InternalType == "" {
		t.InternalType = s.internalTypeName(t)
	}
	if t.Name == "" {
		s.generateName(t)
	}

	if m := tupleArrayPattern.FindStringSubmatch(t.Type); m != nil {
		element := *t
		element.Type = m[1]
		res, err := s.resolve(&element)
		if err != nil {
			return nil, err
		}
		return &Resolved{
			Type:       t,
			TypeName:   res.TypeName + "[]",
			Definition: res.Definition,
		}, nil
	}

	if t.Type == "tuple" {
		return s.resolveStruct(t)
	}

	return &Resolved{
		Type:     t,
		TypeName: scalarTypeName(t.Type),
	}, nil
}

func (s *State) resolveStruct(t *abi.Type) (*Resolved, error) {
	name, err := structName(t.InternalType)
	if err != nil {
		return nil, err
	}

	definition, ok := s.Structures.Get(name)
	if !ok {
		definition, err = s.synthesize(name, t)
		if err != nil {
			return nil, errors.Wrapf(err, "generating struct %s", name)
		}
		s.Structures.Set(name, definition)
		log.Debug().
			Str("struct", name).
			Int("registered", s.Structures.Len()).
			Msg("registered struct")
	}

	return &Resolved{
		Type:       t,
		TypeName:   name,
		Definition: definition,
	}, nil
}

// synthesize renders the interface for a struct. Components are resolved, and
// may register structures themselves, before the caller registers this one.
func (s *State) synthesize(name string, t *abi.Type) (string, error) {
	if !strings.HasPrefix(t.InternalType, "struct") {
		return "", errors.Wrapf(ErrInvalidStructureSynthesis, "internal type %q", t.InternalType)
	}

	data := structureData{Name: name, Fields: []fieldData{}}
	for _, component := range t.Components {
		res, err := s.resolve(component)
		if err != nil {
			return "", err
		}
		data.Fields = append(data.Fields, fieldData{
			Name:     res.Type.Name,
			TypeName: res.TypeName,
		})
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "structure.tmpl", data); err != nil {
		return "", errors.Wrap(err, "executing structure template")
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// internalTypeName invents an internal type for a descriptor that came
// without one. Struct numbers follow the current registry size.
func (s *State) internalTypeName(t *abi.Type) string {
	if !tuplePattern.MatchString(t.Type) {
		return t.Type
	}
	name := ""
	if !t.GeneratedName {
		name = capitalize(t.Name)
	}
	return fmt.Sprintf("struct Contract.%sStruct%d", name, s.Structures.Len()+1)
}

func (s *State) generateName(t *abi.Type) {
	s.counter++
	prefix := namePrefix.FindString(t.Type)
	if prefix == "" {
		prefix = "var"
	}
	t.Name = prefix + strconv.Itoa(s.counter)
	t.GeneratedName = true
	log.Debug().
		Str("type", t.Type).
		Str("name", t.Name).
		Msg("generated parameter name")
}

// structName extracts the qualified name from an internal type such as
// "struct Contract.Pair" or "struct Contract.Pair[]".
func structName(internalType string) (string, error) {
	dot := strings.Index(internalType, ".")
	if dot == -1 || dot >= len(internalType)-1 {
		return "", errors.Wrapf(ErrMalformedTupleReference, "tuple definition %q", internalType)
	}
	name := internalType[dot+1:]
	if bracket := strings.Index(name, "["); bracket != -1 {
		name = name[:bracket]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Wrapf(ErrMalformedTupleReference, "tuple definition %q", internalType)
	}
	return name, nil
}

// scalarTypeName maps non-tuple types. Unknown types map to "".
func scalarTypeName(typ string) string {
	if m := arrayPattern.FindStringSubmatch(typ); m != nil {
		return scalarTypeName(m[1]) + "[]"
	}

	switch typ {
	case "address", "string":
		return TypeString
	case "bool":
		return TypeBoolean
	}

	if m := intPattern.FindStringSubmatch(typ); m != nil {
		size := 256
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return TypeBigNumber
			}
			size = n
		}
		if size <= 32 {
			return TypeNumber
		}
		return TypeBigNumber
	}

	if bytesPattern.MatchString(typ) {
		return TypeString
	}
	return ""
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
