package attribute

import (
	"github.com/vango-dev/markup/internal/errors"
)

// State is the exported form of an attribute.
type State struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

// Export returns the attribute name and its rendered values.
func (v *Value) Export() State {
	return State{Name: v.name, Values: v.ValuesAsArray()}
}

// Import restores an exported state. The name is not validated again; a
// state that carries values without a name is rejected and v is left
// unchanged.
func (v *Value) Import(s State) error {
	if s.Name == "" && len(s.Values) > 0 {
		return errors.New(errors.CodeDeserialization).
			WithDetailf("attribute state has %d values but no name", len(s.Values))
	}
	values := make([]any, len(s.Values))
	for i, val := range s.Values {
		values[i] = val
	}
	v.name = s.Name
	v.values = values
	return nil
}
