// Package tag provides HTML tag nodes and their rendering.
//
// A Node has a name, an attributes.Collection it owns exclusively, and
// content made of strings, scalars, nested slices and other nodes. Text is
// escaped when rendered; anything implementing value.Renderer (nodes,
// comments, Raw) renders itself unescaped.
//
// # Absent vs Empty Content
//
// Content that was never set, or was set with a leading nil, is absent and
// the node renders self-closing. Content set to an empty list is present
// and renders an open and a close tag:
//
//	img, _ := tag.Default().Create("img", []attributes.Attr{attributes.A("src", "a.png")})
//	img.Render() // <img src="a.png"/>
//
//	div, _ := tag.Default().Create("div", nil, []any{})
//	div.Render() // <div></div>
//
// # Live Rendering
//
// Render always recomputes from current state. A node attached as content
// of another stays referenceable by the caller; later changes to it show
// up the next time the parent renders.
package tag
