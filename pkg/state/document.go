package state

import (
	"fmt"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attribute"
	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/tag"
)

// Document describes a markup tree.
//
// A document with a Tag is an element: Text, when set, comes first and is
// followed by Children. An element with neither Text nor Children (nil,
// not merely empty) renders self-closing.
//
// A document without a Tag is a comment when Comment is set, and otherwise
// a fragment that renders Text followed by Children with no wrapper.
type Document struct {
	Tag        string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attributes []attribute.State `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Text       string            `json:"text,omitempty" yaml:"text,omitempty"`
	Comment    string            `json:"comment,omitempty" yaml:"comment,omitempty"`
	Children   []Document        `json:"children,omitempty" yaml:"children,omitempty"`
}

// Build creates the tag tree described by doc. A nil registry means
// tag.Default(). Errors name the failing node by its path from the root.
func Build(reg *tag.Registry, doc Document) (tag.Tag, error) {
	if reg == nil {
		reg = tag.Default()
	}
	return build(reg, doc, "$")
}

func build(reg *tag.Registry, doc Document, path string) (tag.Tag, error) {
	if doc.Comment != "" {
		if doc.Tag != "" || doc.Text != "" || len(doc.Attributes) > 0 || doc.Children != nil {
			return nil, errors.New(errors.CodeDeserialization).
				WithDetailf("%s: a comment cannot have a tag, text, attributes or children", path)
		}
		return reg.Create(tag.CommentName, nil, doc.Comment)
	}

	content, err := buildContent(reg, doc, path)
	if err != nil {
		return nil, err
	}

	if doc.Tag == "" {
		if len(doc.Attributes) > 0 {
			return nil, errors.New(errors.CodeDeserialization).
				WithDetailf("%s: attributes without a tag", path)
		}
		n := tag.NewNode("", nil)
		n.Content(content)
		return n, nil
	}

	attrs := make([]attributes.Attr, len(doc.Attributes))
	for i, s := range doc.Attributes {
		attrs[i] = attributes.Attr{Key: s.Name, Value: s.Values}
	}

	var t tag.Tag
	if content == nil {
		t, err = reg.Create(doc.Tag, attrs)
	} else {
		t, err = reg.Create(doc.Tag, attrs, content)
	}
	if err != nil {
		return nil, errors.New(errors.CodeDeserialization).
			WithDetailf("%s: tag %q", path, doc.Tag).
			Wrap(err)
	}
	return t, nil
}

// buildContent returns nil when doc has no content at all.
func buildContent(reg *tag.Registry, doc Document, path string) ([]any, error) {
	if doc.Text == "" && doc.Children == nil {
		return nil, nil
	}
	content := make([]any, 0, len(doc.Children)+1)
	if doc.Text != "" {
		content = append(content, doc.Text)
	}
	for i, child := range doc.Children {
		t, err := build(reg, child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		content = append(content, t)
	}
	return content, nil
}

// DecodeDocument reads a document and builds it.
func DecodeDocument(data []byte, f Format, reg *tag.Registry) (tag.Tag, error) {
	var doc Document
	if err := Unmarshal(f, data, &doc); err != nil {
		return nil, err
	}
	return Build(reg, doc)
}
