package attributes

import (
	"github.com/vango-dev/markup/pkg/attribute"
)

// Factory builds collections whose entries come from one attribute
// registry.
type Factory struct {
	registry *attribute.Registry
}

// NewFactory creates a Factory. A nil registry means attribute.Default().
func NewFactory(reg *attribute.Registry) *Factory {
	if reg == nil {
		reg = attribute.Default()
	}
	return &Factory{registry: reg}
}

var defaultFactory = NewFactory(nil)

// DefaultFactory returns the factory backed by attribute.Default().
func DefaultFactory() *Factory {
	return defaultFactory
}

// Registry returns the attribute registry used by the factory.
func (f *Factory) Registry() *attribute.Registry {
	return f.registry
}

// New creates a collection populated with attrs in order.
func (f *Factory) New(attrs ...Attr) (*Collection, error) {
	c := New(f.registry)
	if err := c.Merge(attrs); err != nil {
		return nil, err
	}
	return c, nil
}
