package tag

import (
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attribute"
)

// State is the exported form of a tag. Content holds the rendered content
// and is nil when the content is absent.
type State struct {
	Tag        string            `json:"tag" yaml:"tag"`
	Attributes []attribute.State `json:"attributes" yaml:"attributes"`
	Content    *string           `json:"content" yaml:"content"`
}

// Export returns the tag name, attribute values and rendered content.
func (n *Node) Export() State {
	s := State{Tag: n.name, Attributes: n.attrs.ValuesAsArray()}
	if n.present {
		content := n.renderContent()
		s.Content = &content
	}
	return s
}

// Import restores an exported state. The imported content is kept as Raw
// markup. On error n is left unchanged.
func (n *Node) Import(s State) error {
	if s.Tag == "" {
		return errors.New(errors.CodeDeserialization).
			WithDetail("tag state has no tag name")
	}
	if err := n.attrs.Import(s.Attributes); err != nil {
		return err
	}

	n.name = s.Tag
	if s.Content == nil {
		n.content = nil
		n.present = false
	} else {
		n.content = []any{Raw(*s.Content)}
		n.present = true
	}
	return nil
}
