// Package state persists exported markup state as JSON or YAML.
//
// Attribute, collection and tag states are the values returned by their
// Export methods. A Document is a tree description of markup that Build
// turns into tags through a tag registry:
//
//	tag: ul
//	attributes:
//	  - name: class
//	    values: [menu]
//	children:
//	  - tag: li
//	    text: Home
//	  - tag: br
//
// Decoding rejects unknown fields. Every decode failure matches
// attribute.ErrDeserialization.
package state
