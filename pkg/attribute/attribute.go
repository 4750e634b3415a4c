package attribute

import (
	"fmt"
	"strings"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/value"
)

// Attribute is the capability contract every attribute constructor must
// satisfy. Mutators return the attribute for chaining.
type Attribute interface {
	value.Renderer
	fmt.Stringer

	// Name returns the attribute name, or "" once cleared.
	Name() string

	// ValuesAsArray returns the flattened, preprocessed, non-empty values.
	ValuesAsArray() []string

	// ValuesAsString returns the escaped, space-joined values. The boolean
	// result is false when the attribute is boolean.
	ValuesAsString() (string, bool)

	// IsBoolean reports whether ValuesAsArray is empty.
	IsBoolean() bool

	Set(values ...any) Attribute
	Append(values ...any) Attribute
	Remove(values ...any) Attribute
	Replace(original any, replacement ...any) Attribute
	Contains(values ...any) bool
	SetBoolean(flag bool) Attribute
	Alter(transforms ...Transform) Attribute

	// Clear blanks the name and values in place. A cleared attribute renders
	// as the empty string but stays in its collection until removed there.
	Clear() Attribute

	// Clone returns an independent attribute of the same kind.
	Clone() Attribute

	// Indexed access. Reading by index is not supported.
	OffsetExists(offset any) bool
	OffsetGet(offset any) (string, error)
	OffsetSet(offset, v any)
	OffsetUnset(offset any)

	Export() State
	Import(s State) error
}

// Context is passed to a Preprocessor.
type Context struct {
	// Name is the attribute name.
	Name string
}

// Preprocessor canonicalizes the flattened values of an attribute before
// they are escaped and rendered.
type Preprocessor func(values []string, ctx Context) []string

// Transform rewrites the flattened values of an attribute. Its result
// replaces the raw value set.
type Transform func(values []string, name string) []any

// Value is the standard Attribute implementation.
type Value struct {
	name       string
	values     []any
	preprocess Preprocessor
}

var _ Attribute = (*Value)(nil)

// New creates a generic attribute. It fails with ErrInvalidName when the
// name is not a valid attribute name.
func New(name string, values ...any) (*Value, error) {
	return newValue(name, nil, values)
}

// NewWith returns a Constructor for attributes that run p before escaping.
func NewWith(p Preprocessor) Constructor {
	return func(name string, values ...any) (Attribute, error) {
		v, err := newValue(name, p, values)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func newValue(name string, p Preprocessor, values []any) (*Value, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Value{name: name, values: values, preprocess: p}, nil
}

// ValidateName checks that name can be used as an attribute name.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.CodeInvalidName).
			WithDetail("attribute name is empty")
	}
	if i := strings.IndexAny(name, "\t\n\f\r />\"'="); i >= 0 {
		return errors.New(errors.CodeInvalidName).
			WithDetailf("attribute name %q contains %q", name, name[i]).
			WithSuggestion(`Remove whitespace and the characters / > " ' = from the name`)
	}
	return nil
}

// Name returns the attribute name.
func (v *Value) Name() string {
	return v.name
}

// Render returns the attribute as it appears inside a start tag.
func (v *Value) Render() string {
	if v.name == "" {
		return ""
	}
	values, ok := v.ValuesAsString()
	if !ok {
		return v.name
	}
	return v.name + `="` + values + `"`
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return v.Render()
}

// ValuesAsString returns the escaped, space-joined values.
func (v *Value) ValuesAsString() (string, bool) {
	values := v.ValuesAsArray()
	if len(values) == 0 {
		return "", false
	}
	return value.Escape(strings.Join(values, " ")), true
}

// ValuesAsArray returns the flattened, preprocessed values with empty
// strings removed.
func (v *Value) ValuesAsArray() []string {
	values := value.Strings(v.values...)
	if v.preprocess != nil {
		values = v.preprocess(values, Context{Name: v.name})
	}
	out := make([]string, 0, len(values))
	for _, s := range values {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsBoolean reports whether the attribute renders without a value.
func (v *Value) IsBoolean() bool {
	return len(v.ValuesAsArray()) == 0
}

// Set replaces the raw value set.
func (v *Value) Set(values ...any) Attribute {
	v.values = values
	return v
}

// Append adds values to the raw set. Each argument is kept as a single
// unit; slices are flattened only when the attribute is read.
func (v *Value) Append(values ...any) Attribute {
	v.values = append(v.values, values...)
	return v
}

// Remove deletes every flattened value equal to one of the flattened
// arguments. The remaining values replace the raw set as a flat list.
func (v *Value) Remove(values ...any) Attribute {
	drop := make(map[string]struct{})
	for _, s := range value.Strings(values...) {
		drop[s] = struct{}{}
	}

	current := value.Strings(v.values...)
	kept := make([]any, 0, len(current))
	for _, s := range current {
		if _, ok := drop[s]; !ok {
			kept = append(kept, s)
		}
	}
	v.values = kept
	return v
}

// Replace removes original and, only if something was removed, appends
// the replacement values.
func (v *Value) Replace(original any, replacement ...any) Attribute {
	before := len(value.Flatten(v.values...))
	v.Remove(original)
	if len(value.Flatten(v.values...)) != before {
		v.Append(replacement...)
	}
	return v
}

// Contains reports whether every flattened argument is one of the current
// flattened values. It is true when called without arguments.
func (v *Value) Contains(values ...any) bool {
	current := make(map[string]struct{})
	for _, s := range value.Strings(v.values...) {
		current[s] = struct{}{}
	}
	for _, s := range value.Strings(values...) {
		if _, ok := current[s]; !ok {
			return false
		}
	}
	return true
}

// SetBoolean makes the attribute boolean when flag is true. When flag is
// false a boolean attribute gets its own name as value (checked="checked");
// an attribute that already has values is left alone.
func (v *Value) SetBoolean(flag bool) Attribute {
	if flag {
		return v.Set()
	}
	if v.IsBoolean() {
		v.values = []any{v.name}
	}
	return v
}

// Alter applies the transforms in order, each receiving the output of the
// previous one as flattened values.
func (v *Value) Alter(transforms ...Transform) Attribute {
	for _, t := range transforms {
		v.values = t(value.Strings(v.values...), v.name)
	}
	return v
}

// Clear blanks the attribute in place.
func (v *Value) Clear() Attribute {
	v.name = ""
	v.values = nil
	return v
}

// Clone returns a copy that shares no value storage with v.
func (v *Value) Clone() Attribute {
	values := make([]any, len(v.values))
	copy(values, v.values)
	return &Value{name: v.name, values: values, preprocess: v.preprocess}
}

// OffsetExists is Contains for a single value.
func (v *Value) OffsetExists(offset any) bool {
	return v.Contains(value.String(offset))
}

// OffsetGet always fails: values are read through ValuesAsArray.
func (v *Value) OffsetGet(offset any) (string, error) {
	return "", errors.New(errors.CodeUnsupportedOperation).
		WithDetailf("read of index %v on attribute %q", offset, v.name)
}

// OffsetSet appends val. The offset is ignored.
func (v *Value) OffsetSet(_, val any) {
	v.Append(val)
}

// OffsetUnset removes offset from the values.
func (v *Value) OffsetUnset(offset any) {
	v.Remove(value.String(offset))
}
