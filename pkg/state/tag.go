package state

import (
	"io"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attribute"
	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/tag"
)

// EncodeTag writes the exported state of t. Fragments have no tag name and
// cannot be decoded again, so they are rejected.
func EncodeTag(w io.Writer, f Format, t tag.Tag) error {
	if t.Name() == "" {
		return errors.New(errors.CodeUnsupportedOperation).
			WithDetail("a fragment has no tag state").
			WithSuggestion("Wrap the document in a tag before exporting it")
	}
	return Encode(w, f, t.Export())
}

// DecodeTag reads a tag state and restores it into a tag created by reg.
// A nil registry means tag.Default().
func DecodeTag(r io.Reader, f Format, reg *tag.Registry) (tag.Tag, error) {
	if reg == nil {
		reg = tag.Default()
	}
	var s tag.State
	if err := Decode(r, f, &s); err != nil {
		return nil, err
	}
	if s.Tag == "" {
		return nil, errors.New(errors.CodeDeserialization).
			WithDetail("tag state has no tag name")
	}
	t, err := reg.Create(s.Tag, nil)
	if err != nil {
		return nil, errors.New(errors.CodeDeserialization).Wrap(err)
	}
	if err := t.Import(s); err != nil {
		return nil, err
	}
	return t, nil
}

// EncodeAttributes writes the exported state of c.
func EncodeAttributes(w io.Writer, f Format, c *attributes.Collection) error {
	return Encode(w, f, c.ValuesAsArray())
}

// DecodeAttributes reads attribute states and imports them into a new
// collection built by factory. A nil factory means the default one.
func DecodeAttributes(r io.Reader, f Format, factory *attributes.Factory) (*attributes.Collection, error) {
	if factory == nil {
		factory = attributes.DefaultFactory()
	}
	var states []attribute.State
	if err := Decode(r, f, &states); err != nil {
		return nil, err
	}
	c, err := factory.New()
	if err != nil {
		return nil, err
	}
	if err := c.Import(states); err != nil {
		return nil, err
	}
	return c, nil
}
