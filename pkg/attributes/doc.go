// Package attributes provides the ordered attribute set of a tag.
//
// A Collection maps attribute names to attribute.Attribute values and
// renders them in insertion order. Entries are created through an
// attribute.Registry, so specialized kinds (class, rel, ...) apply
// automatically:
//
//	c, err := attributes.DefaultFactory().New(
//	    attributes.A("id", "main"),
//	    attributes.A("class", []string{"card", "card"}),
//	)
//	c.Render() // ` id="main" class="card"`
//
// Delete removes entries from the collection. Clearing an individual
// attribute (attribute.Attribute.Clear) only blanks it; the blanked entry
// keeps its position and renders as nothing until it is deleted here.
package attributes
