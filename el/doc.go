// Package el provides an element DSL on top of package tag.
//
// Element functions take any mix of attributes and content:
//
//	import . "github.com/vango-dev/markup/el"
//
//	page := Ul(Class("menu"),
//		Li(A(Href("/"), "Home")),
//		Li(A(Href("/about"), Rel("NoFollow"), "About")),
//	)
//	page.Render()
//	// <ul class="menu"><li><a href="/">Home</a></li><li><a href="/about" rel="nofollow">About</a></li></ul>
//
// Elements are created through tag.Default(), so attribute preprocessing
// (class tokens, lower-cased rel) and custom tag constructors apply.
// Void elements such as br and img render self-closing; every other
// element renders an open and a close tag even when empty.
//
// Element functions panic when an attribute cannot be created, the way
// regexp.MustCompile does. Use tag.Registry.Create to handle the error.
package el
