// Package markup builds HTML markup from attributes and tags.
//
// This is the recommended import for most callers:
//
//	import "github.com/vango-dev/markup"
//
// Usage:
//
//	div, err := markup.CreateTag("div",
//		[]markup.Attr{markup.A("id", "x"), markup.A("class", "a", "b")},
//		"hi",
//	)
//	div.Render() // <div id="x" class="a b">hi</div>
//
// Every constructor here goes through the process-wide registries
// (attribute.Default and tag.Default). Register custom constructors there,
// or build separate registries and use the subpackages directly.
package markup

import (
	"github.com/vango-dev/markup/pkg/attribute"
	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/builder"
	"github.com/vango-dev/markup/pkg/tag"
)

// =============================================================================
// Types
// =============================================================================

// Attribute is a single named attribute with a multi-valued payload.
type Attribute = attribute.Attribute

// Attributes is an ordered collection of attributes.
type Attributes = attributes.Collection

// Attr is a name and raw value pair.
type Attr = attributes.Attr

// Tag is an element or comment node.
type Tag = tag.Tag

// Raw is markup that renders verbatim.
type Raw = tag.Raw

// Builder assembles tag trees with Open and Close calls.
type Builder = builder.Builder

// =============================================================================
// Errors
// =============================================================================

var (
	ErrInvalidName          = attribute.ErrInvalidName
	ErrUnsupportedOperation = attribute.ErrUnsupportedOperation
	ErrContractViolation    = attribute.ErrContractViolation
	ErrDeserialization      = attribute.ErrDeserialization
)

// =============================================================================
// Construction
// =============================================================================

// A creates an Attr. Without values the attribute is boolean.
func A(key string, values ...any) Attr {
	return attributes.A(key, values...)
}

// CreateAttribute creates an attribute through the default registry.
//
//	a, _ := markup.CreateAttribute("disabled")
//	a.Render() // disabled
func CreateAttribute(name string, values ...any) (Attribute, error) {
	return attribute.Default().Create(name, values...)
}

// CreateAttributes creates a collection holding attrs in order.
func CreateAttributes(attrs ...Attr) (*Attributes, error) {
	return attributes.DefaultFactory().New(attrs...)
}

// CreateTag creates a tag through the default registry. Without content the
// tag renders self-closing.
func CreateTag(name string, attrs []Attr, content ...any) (Tag, error) {
	return tag.Default().Create(name, attrs, content...)
}

// CreateComment creates an HTML comment.
func CreateComment(content ...any) (Tag, error) {
	return tag.Default().Create(tag.CommentName, nil, content...)
}

// NewBuilder returns a builder backed by the default tag registry.
func NewBuilder() *Builder {
	return builder.New(tag.Default())
}
