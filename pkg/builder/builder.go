// Package builder assembles tag trees with explicit open and close calls.
//
//	b := builder.New(nil)
//	b.Open("ul", attributes.A("class", "menu")).
//		Open("li").Text("Home").Close().
//		Open("li").Text("About").Close().
//		Close()
//	b.Render() // <ul class="menu"><li>Home</li><li>About</li></ul>
//
// The first failing call is kept and returned by Err; every later call is a
// no-op.
package builder

import (
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/tag"
)

// Builder appends tags to the innermost open tag, or to the top level when
// no tag is open. It is not safe for concurrent use.
type Builder struct {
	registry *tag.Registry
	root     *tag.Node
	scopes   []tag.Tag
	err      error
}

// New creates a builder whose tags come from reg. A nil registry means
// tag.Default().
func New(reg *tag.Registry) *Builder {
	if reg == nil {
		reg = tag.Default()
	}
	return &Builder{
		registry: reg,
		root:     tag.NewNode("", nil),
	}
}

// Open creates a tag, attaches it to the current scope and makes it the new
// scope. Comments cannot hold tags; use Comment for them.
func (b *Builder) Open(name string, attrs ...attributes.Attr) *Builder {
	if b.err != nil {
		return b
	}
	if name == tag.CommentName {
		b.err = errors.New(errors.CodeUnsupportedOperation).
			WithDetail("a comment cannot be opened as a scope").
			WithSuggestion("Use Comment to add a comment")
		return b
	}
	t, err := b.registry.Create(name, attrs)
	if err != nil {
		b.err = err
		return b
	}
	b.attach(t)
	b.scopes = append(b.scopes, t)
	return b
}

// Text appends content to the current scope. Strings are escaped on
// render; tags and other renderers are kept as markup.
func (b *Builder) Text(items ...any) *Builder {
	if b.err != nil || len(items) == 0 {
		return b
	}
	b.attach(items...)
	return b
}

// Comment attaches a comment without changing the scope. Without text it
// does nothing.
func (b *Builder) Comment(text ...any) *Builder {
	if b.err != nil || len(text) == 0 {
		return b
	}
	c, err := b.registry.Create(tag.CommentName, nil, text...)
	if err != nil {
		b.err = err
		return b
	}
	b.attach(c)
	return b
}

// Close ends the current scope. Closing with no open tag is a no-op.
func (b *Builder) Close() *Builder {
	if b.err != nil || len(b.scopes) == 0 {
		return b
	}
	b.scopes = b.scopes[:len(b.scopes)-1]
	return b
}

// Reset closes every open tag. Content built so far is kept.
func (b *Builder) Reset() *Builder {
	b.scopes = b.scopes[:0]
	return b
}

// Depth returns the number of open tags.
func (b *Builder) Depth() int {
	return len(b.scopes)
}

// Current returns the innermost open tag, or nil at the top level.
func (b *Builder) Current() tag.Tag {
	if len(b.scopes) == 0 {
		return nil
	}
	return b.scopes[len(b.scopes)-1]
}

// Items returns the top-level items in order.
func (b *Builder) Items() []any {
	return b.root.ContentAsArray()
}

// Err returns the first error encountered.
func (b *Builder) Err() error {
	return b.err
}

// Render concatenates the rendered top-level items.
func (b *Builder) Render() string {
	return b.root.Render()
}

// String implements fmt.Stringer.
func (b *Builder) String() string {
	return b.Render()
}

func (b *Builder) attach(items ...any) {
	if cur := b.Current(); cur != nil {
		cur.Child(items...)
		return
	}
	b.root.Child(items...)
}
