package el

import (
	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/tag"
)

// Type aliases for the primitives used by the DSL.
type Attr = attributes.Attr
type Tag = tag.Tag
