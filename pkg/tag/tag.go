package tag

import (
	"fmt"
	"strings"

	"github.com/vango-dev/markup/pkg/attribute"
	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/value"
)

// Tag is the capability contract every tag constructor must satisfy.
type Tag interface {
	value.Renderer
	fmt.Stringer

	// Name returns the tag name.
	Name() string

	// Attributes returns the collection owned by the tag.
	Attributes() *attributes.Collection

	// Attrs returns the rendered attribute string, each entry prefixed by
	// a space.
	Attrs() string

	// Attr returns the live attribute for name, creating it if needed.
	Attr(name string) (attribute.Attribute, error)

	// SetAttr sets the values of the attribute name.
	SetAttr(name string, values ...any) error

	// Content replaces the content and returns it rendered. Without
	// arguments it only renders; a leading nil makes the content absent.
	Content(items ...any) string

	// Child appends items to the content.
	Child(items ...any) Tag

	// ContentAsArray returns the flattened, preprocessed content.
	ContentAsArray() []any

	// HasContent reports whether content is present (possibly empty).
	HasContent() bool

	// Alter rewrites the flattened content with each transform in order.
	Alter(transforms ...ContentTransform) Tag

	// Escape renders a single content item.
	Escape(v any) string

	Export() State
	Import(s State) error
}

// ContentTransform rewrites flattened tag content.
type ContentTransform func(content []any) []any

// ContentPreprocessor canonicalizes flattened content before it is
// rendered.
type ContentPreprocessor func(content []any) []any

// Node is the generic Tag implementation.
type Node struct {
	name       string
	attrs      *attributes.Collection
	content    []any
	present    bool
	preprocess ContentPreprocessor
}

var _ Tag = (*Node)(nil)

// Option configures a Node.
type Option func(*Node)

// WithPreprocessor sets the content preprocessor of a node.
func WithPreprocessor(p ContentPreprocessor) Option {
	return func(n *Node) {
		n.preprocess = p
	}
}

// NewNode creates a node with absent content. A nil collection is
// replaced by an empty one backed by attribute.Default(). A node with an
// empty name renders only its content.
func NewNode(name string, attrs *attributes.Collection, opts ...Option) *Node {
	if attrs == nil {
		attrs = attributes.New(nil)
	}
	n := &Node{name: name, attrs: attrs}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the tag name.
func (n *Node) Name() string {
	return n.name
}

// Attributes returns the collection owned by n.
func (n *Node) Attributes() *attributes.Collection {
	return n.attrs
}

// Attrs returns the rendered attributes.
func (n *Node) Attrs() string {
	return n.attrs.Render()
}

// Attr returns the live attribute name. Mutations through it show up in
// the next render of n.
func (n *Node) Attr(name string) (attribute.Attribute, error) {
	return n.attrs.Get(name)
}

// SetAttr sets the values of the attribute name.
func (n *Node) SetAttr(name string, values ...any) error {
	return n.attrs.Set(name, values...)
}

// Content replaces the content of n and returns it rendered.
func (n *Node) Content(items ...any) string {
	if len(items) > 0 {
		if items[0] == nil {
			n.content = nil
			n.present = false
		} else {
			n.content = items
			n.present = true
		}
	}
	return n.renderContent()
}

// Child appends items to the content and marks it present.
func (n *Node) Child(items ...any) Tag {
	n.content = append(n.content, items...)
	n.present = true
	return n
}

// ContentAsArray returns the flattened, preprocessed content.
func (n *Node) ContentAsArray() []any {
	items := value.Flatten(n.content...)
	if n.preprocess != nil {
		items = n.preprocess(items)
	}
	return items
}

// HasContent reports whether content is present.
func (n *Node) HasContent() bool {
	return n.present
}

// Alter applies the transforms in order to the flattened content.
func (n *Node) Alter(transforms ...ContentTransform) Tag {
	for _, t := range transforms {
		n.content = t(value.Flatten(n.content...))
		n.present = true
	}
	return n
}

// Escape renders one content item: Renderers render themselves, anything
// else is converted to text and escaped.
func (n *Node) Escape(v any) string {
	if r, ok := v.(value.Renderer); ok {
		return r.Render()
	}
	return value.Escape(value.String(v))
}

func (n *Node) renderContent() string {
	var b strings.Builder
	for _, item := range n.ContentAsArray() {
		b.WriteString(n.Escape(item))
	}
	return b.String()
}

// Render returns the markup for n and, recursively, its content.
func (n *Node) Render() string {
	if n.name == "" {
		return n.renderContent()
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.name)
	b.WriteString(n.attrs.Render())
	if !n.present {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteByte('>')
	b.WriteString(n.renderContent())
	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteByte('>')
	return b.String()
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Render()
}
