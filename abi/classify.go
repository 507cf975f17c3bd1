package abi

// Classify partitions descriptors into functions, events and errors. Any
// descriptor that is neither an event nor an error is treated as callable.
func Classify(descriptors []*Descriptor) *Definitions {
	defs := &Definitions{
		Functions: []*Function{},
		Events:    []*Event{},
		Errors:    []*Error{},
	}
	for _, d := range descriptors {
		if d == nil {
			continue
		}
		switch d.Type {
		case KindEvent:
			defs.Events = append(defs.Events, &Event{
				Name:      d.Name,
				Inputs:    d.Inputs,
				Anonymous: d.Anonymous,
			})
		case KindError:
			defs.Errors = append(defs.Errors, &Error{
				Name:      d.Name,
				Inputs:    d.Inputs,
				Anonymous: d.Anonymous,
			})
		default:
			defs.Functions = append(defs.Functions, &Function{
				Name:            d.Name,
				Kind:            d.Type,
				Inputs:          d.Inputs,
				Outputs:         d.Outputs,
				StateMutability: d.StateMutability,
			})
		}
	}
	return defs
}
