// Package value normalizes heterogeneous inputs for markup rendering.
//
// Attribute values and tag content arrive as scalars, slices of scalars,
// arbitrarily nested slices, and nodes that render themselves. Flatten
// collapses them into one ordered sequence, Strings additionally coerces
// every leaf to a string, and Escape makes a string safe to emit inside
// element content or a double-quoted attribute value.
//
// Escape is the single point of truth for output safety: every render
// path in markup calls it before emitting text that did not come from a
// Renderer.
package value
