package attributes

import (
	"strings"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attribute"
)

// Attr is a name and raw value pair used to build or merge collections.
// Value may be nil (boolean attribute), a scalar, or a nested slice.
type Attr struct {
	Key   string
	Value any
}

// A creates an Attr. Multiple values are kept as one group.
func A(key string, values ...any) Attr {
	switch len(values) {
	case 0:
		return Attr{Key: key}
	case 1:
		return Attr{Key: key, Value: values[0]}
	default:
		return Attr{Key: key, Value: values}
	}
}

// Collection is an ordered set of attributes keyed by name.
type Collection struct {
	registry *attribute.Registry
	keys     []string
	entries  map[string]attribute.Attribute
}

// New creates an empty collection whose entries are built by reg. A nil
// registry means attribute.Default().
func New(reg *attribute.Registry) *Collection {
	if reg == nil {
		reg = attribute.Default()
	}
	return &Collection{
		registry: reg,
		entries:  make(map[string]attribute.Attribute),
	}
}

// Render returns every entry prefixed by a space, in insertion order.
// Cleared entries are skipped.
func (c *Collection) Render() string {
	var b strings.Builder
	for _, key := range c.keys {
		r := c.entries[key].Render()
		if r == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(r)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (c *Collection) String() string {
	return c.Render()
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.keys)
}

// Keys returns the entry names in render order.
func (c *Collection) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Lookup returns the entry for key without creating it.
func (c *Collection) Lookup(key string) (attribute.Attribute, bool) {
	a, ok := c.entries[key]
	return a, ok
}

// Get returns the live entry for key, creating an empty one at the end of
// the collection when it does not exist yet. A cleared entry is rebuilt in
// its original position.
func (c *Collection) Get(key string) (attribute.Attribute, error) {
	if a, ok := c.live(key); ok {
		return a, nil
	}
	a, err := c.registry.Create(key)
	if err != nil {
		return nil, err
	}
	c.put(key, a)
	return a, nil
}

// live returns the entry for key unless it is missing or cleared.
func (c *Collection) live(key string) (attribute.Attribute, bool) {
	a, ok := c.entries[key]
	if !ok || a.Name() == "" {
		return nil, false
	}
	return a, true
}

func (c *Collection) add(key string, a attribute.Attribute) {
	c.keys = append(c.keys, key)
	c.entries[key] = a
}

// put stores a under key, keeping the slot of an existing entry.
func (c *Collection) put(key string, a attribute.Attribute) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = a
		return
	}
	c.add(key, a)
}

// Set creates the entry for key or replaces its values in place.
func (c *Collection) Set(key string, values ...any) error {
	if a, ok := c.live(key); ok {
		a.Set(values...)
		return nil
	}
	a, err := c.registry.Create(key, values...)
	if err != nil {
		return err
	}
	c.put(key, a)
	return nil
}

// Append adds values to the entry for key, creating it if needed.
func (c *Collection) Append(key string, values ...any) error {
	a, err := c.Get(key)
	if err != nil {
		return err
	}
	a.Append(values...)
	return nil
}

// Remove removes values from the entry for key. Absent keys are ignored.
func (c *Collection) Remove(key string, values ...any) *Collection {
	if a, ok := c.live(key); ok {
		a.Remove(values...)
	}
	return c
}

// Replace replaces a value of the entry for key. Absent keys are ignored.
func (c *Collection) Replace(key string, original any, replacements ...any) *Collection {
	if a, ok := c.live(key); ok {
		a.Replace(original, replacements...)
	}
	return c
}

// Contains reports whether key exists and contains all values.
func (c *Collection) Contains(key string, values ...any) bool {
	a, ok := c.live(key)
	if !ok {
		return false
	}
	return a.Contains(values...)
}

// Exists reports whether key exists and, if values are given, contains
// all of them. Cleared entries do not exist.
func (c *Collection) Exists(key string, values ...any) bool {
	a, ok := c.live(key)
	if !ok {
		return false
	}
	return len(values) == 0 || a.Contains(values...)
}

// Delete removes the entries for keys.
func (c *Collection) Delete(keys ...string) *Collection {
	for _, key := range keys {
		if _, ok := c.entries[key]; !ok {
			continue
		}
		delete(c.entries, key)
		for i, k := range c.keys {
			if k == key {
				c.keys = append(c.keys[:i], c.keys[i+1:]...)
				break
			}
		}
	}
	return c
}

// Without returns a copy of the collection minus keys. c is not modified.
func (c *Collection) Without(keys ...string) *Collection {
	skip := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		skip[k] = struct{}{}
	}
	out := New(c.registry)
	for _, key := range c.keys {
		if _, ok := skip[key]; ok {
			continue
		}
		out.add(key, c.entries[key].Clone())
	}
	return out
}

// Merge sets every pair of every dataset in order. Later pairs override
// the values of earlier ones; existing keys keep their position. Merge
// stops at the first pair that cannot be created.
func (c *Collection) Merge(datasets ...[]Attr) error {
	for _, data := range datasets {
		for _, attr := range data {
			if err := c.Set(attr.Key, attr.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValuesAsArray returns every entry's name and values in insertion order.
// Cleared entries render nothing and are left out.
func (c *Collection) ValuesAsArray() []attribute.State {
	out := make([]attribute.State, 0, len(c.keys))
	for _, key := range c.keys {
		a := c.entries[key]
		if a.Name() == "" {
			continue
		}
		out = append(out, attribute.State{Name: key, Values: a.ValuesAsArray()})
	}
	return out
}

// Import replaces the whole collection with states. Either every state is
// imported or the collection is left unchanged.
func (c *Collection) Import(states []attribute.State) error {
	keys := make([]string, 0, len(states))
	entries := make(map[string]attribute.Attribute, len(states))

	for i, s := range states {
		if _, dup := entries[s.Name]; dup {
			return errors.New(errors.CodeDeserialization).
				WithDetailf("attribute %q appears twice", s.Name)
		}
		a, err := c.registry.Create(s.Name)
		if err != nil {
			return errors.New(errors.CodeDeserialization).
				WithDetailf("attribute state %d", i).
				Wrap(err)
		}
		if err := a.Import(s); err != nil {
			return err
		}
		keys = append(keys, s.Name)
		entries[s.Name] = a
	}

	c.keys = keys
	c.entries = entries
	return nil
}
