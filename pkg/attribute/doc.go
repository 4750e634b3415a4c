// Package attribute models a single HTML attribute and its value set.
//
// An Attribute keeps the values exactly as the caller supplied them,
// nested slices included, and derives everything else on demand: the
// flattened value list, whether the attribute is boolean, and its
// rendered form. Rendering is a pure function of the name and the raw
// values, so the same attribute always renders the same way.
//
// # Boolean Attributes
//
// An attribute with no non-empty values renders as its name alone:
//
//	a, _ := attribute.New("disabled")
//	a.Render() // disabled
//
//	a.Set("a", []string{"b", "c"})
//	a.Render() // disabled="a b c"
//
// # Kinds
//
// Specialized attributes are regular Values built with a Preprocessor,
// which canonicalizes the flattened values before they are escaped.
// TokenList removes duplicate tokens (used for class) and Lowercase folds
// case (used for rel). Registries map attribute names to constructors and
// fall back to the "*" entry:
//
//	reg := attribute.NewRegistry()
//	reg.Register("class", attribute.NewWith(attribute.TokenList))
//	a, err := reg.Create("class", "btn btn", "primary")
//	a.Render() // class="btn primary"
package attribute
