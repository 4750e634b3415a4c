package el

import (
	"fmt"

	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/tag"
	"github.com/vango-dev/markup/pkg/value"
)

var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(name string) bool {
	return voidElements[name]
}

// createElement creates a tag with the given name and arguments.
// Arguments can be: nil, Attr, []Attr, or content (strings, scalars,
// tags, renderers and slices of them).
func createElement(name string, args []any) Tag {
	var (
		attrs   []attributes.Attr
		content []any
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue
		case Attr:
			if v.Key != "" {
				attrs = append(attrs, v)
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					attrs = append(attrs, a)
				}
			}
		default:
			content = append(content, v)
		}
	}

	if len(value.Flatten(content...)) == 0 {
		content = nil
	}

	var (
		t   Tag
		err error
	)
	switch {
	case content != nil:
		t, err = tag.Default().Create(name, attrs, content...)
	case IsVoidElement(name):
		t, err = tag.Default().Create(name, attrs)
	default:
		t, err = tag.Default().Create(name, attrs, []any{})
	}
	if err != nil {
		panic(fmt.Sprintf("el: <%s>: %v", name, err))
	}
	return t
}

// Document structure elements

func Html(args ...any) Tag  { return createElement("html", args) }
func Head(args ...any) Tag  { return createElement("head", args) }
func Body(args ...any) Tag  { return createElement("body", args) }
func Title(args ...any) Tag { return createElement("title", args) }
func Meta(args ...any) Tag  { return createElement("meta", args) }
func Link(args ...any) Tag  { return createElement("link", args) }
func Base(args ...any) Tag  { return createElement("base", args) }

// Content sectioning elements

func Header(args ...any) Tag  { return createElement("header", args) }
func Footer(args ...any) Tag  { return createElement("footer", args) }
func Main(args ...any) Tag    { return createElement("main", args) }
func Nav(args ...any) Tag     { return createElement("nav", args) }
func Section(args ...any) Tag { return createElement("section", args) }
func Article(args ...any) Tag { return createElement("article", args) }
func Aside(args ...any) Tag   { return createElement("aside", args) }
func Address(args ...any) Tag { return createElement("address", args) }
func H1(args ...any) Tag      { return createElement("h1", args) }
func H2(args ...any) Tag      { return createElement("h2", args) }
func H3(args ...any) Tag      { return createElement("h3", args) }
func H4(args ...any) Tag      { return createElement("h4", args) }
func H5(args ...any) Tag      { return createElement("h5", args) }
func H6(args ...any) Tag      { return createElement("h6", args) }
func Hgroup(args ...any) Tag  { return createElement("hgroup", args) }

// Text content elements

func Div(args ...any) Tag        { return createElement("div", args) }
func P(args ...any) Tag          { return createElement("p", args) }
func Span(args ...any) Tag       { return createElement("span", args) }
func Pre(args ...any) Tag        { return createElement("pre", args) }
func Blockquote(args ...any) Tag { return createElement("blockquote", args) }
func Ul(args ...any) Tag         { return createElement("ul", args) }
func Ol(args ...any) Tag         { return createElement("ol", args) }
func Li(args ...any) Tag         { return createElement("li", args) }
func Dl(args ...any) Tag         { return createElement("dl", args) }
func Dt(args ...any) Tag         { return createElement("dt", args) }
func Dd(args ...any) Tag         { return createElement("dd", args) }
func Hr(args ...any) Tag         { return createElement("hr", args) }
func Figure(args ...any) Tag     { return createElement("figure", args) }
func Figcaption(args ...any) Tag { return createElement("figcaption", args) }

// Inline text semantics

func A(args ...any) Tag           { return createElement("a", args) }
func Strong(args ...any) Tag      { return createElement("strong", args) }
func Em(args ...any) Tag          { return createElement("em", args) }
func B(args ...any) Tag           { return createElement("b", args) }
func I(args ...any) Tag           { return createElement("i", args) }
func U(args ...any) Tag           { return createElement("u", args) }
func S(args ...any) Tag           { return createElement("s", args) }
func Small(args ...any) Tag       { return createElement("small", args) }
func Mark(args ...any) Tag        { return createElement("mark", args) }
func Sub(args ...any) Tag         { return createElement("sub", args) }
func Sup(args ...any) Tag         { return createElement("sup", args) }
func Code(args ...any) Tag        { return createElement("code", args) }
func Kbd(args ...any) Tag         { return createElement("kbd", args) }
func Samp(args ...any) Tag        { return createElement("samp", args) }
func Var(args ...any) Tag         { return createElement("var", args) }
func Abbr(args ...any) Tag        { return createElement("abbr", args) }
func Time_(args ...any) Tag       { return createElement("time", args) }
func Cite(args ...any) Tag        { return createElement("cite", args) }
func Q(args ...any) Tag           { return createElement("q", args) }
func Dfn(args ...any) Tag         { return createElement("dfn", args) }
func Ruby(args ...any) Tag        { return createElement("ruby", args) }
func Rt(args ...any) Tag          { return createElement("rt", args) }
func Rp(args ...any) Tag          { return createElement("rp", args) }
func Bdi(args ...any) Tag         { return createElement("bdi", args) }
func Bdo(args ...any) Tag         { return createElement("bdo", args) }
func DataElement(args ...any) Tag { return createElement("data", args) }
func Br(args ...any) Tag          { return createElement("br", args) }
func Wbr(args ...any) Tag         { return createElement("wbr", args) }

// Form elements

func Form(args ...any) Tag     { return createElement("form", args) }
func Input(args ...any) Tag    { return createElement("input", args) }
func Textarea(args ...any) Tag { return createElement("textarea", args) }
func Select(args ...any) Tag   { return createElement("select", args) }
func Option(args ...any) Tag   { return createElement("option", args) }
func Optgroup(args ...any) Tag { return createElement("optgroup", args) }
func Button(args ...any) Tag   { return createElement("button", args) }
func Label(args ...any) Tag    { return createElement("label", args) }
func Fieldset(args ...any) Tag { return createElement("fieldset", args) }
func Legend(args ...any) Tag   { return createElement("legend", args) }
func Datalist(args ...any) Tag { return createElement("datalist", args) }
func Output(args ...any) Tag   { return createElement("output", args) }
func Progress(args ...any) Tag { return createElement("progress", args) }
func Meter(args ...any) Tag    { return createElement("meter", args) }

// Table elements

func Table(args ...any) Tag    { return createElement("table", args) }
func Thead(args ...any) Tag    { return createElement("thead", args) }
func Tbody(args ...any) Tag    { return createElement("tbody", args) }
func Tfoot(args ...any) Tag    { return createElement("tfoot", args) }
func Tr(args ...any) Tag       { return createElement("tr", args) }
func Th(args ...any) Tag       { return createElement("th", args) }
func Td(args ...any) Tag       { return createElement("td", args) }
func Caption(args ...any) Tag  { return createElement("caption", args) }
func Colgroup(args ...any) Tag { return createElement("colgroup", args) }
func Col(args ...any) Tag      { return createElement("col", args) }

// Media elements

func Img(args ...any) Tag     { return createElement("img", args) }
func Picture(args ...any) Tag { return createElement("picture", args) }
func Source(args ...any) Tag  { return createElement("source", args) }
func Video(args ...any) Tag   { return createElement("video", args) }
func Audio(args ...any) Tag   { return createElement("audio", args) }
func Track(args ...any) Tag   { return createElement("track", args) }
func Iframe(args ...any) Tag  { return createElement("iframe", args) }
func Embed(args ...any) Tag   { return createElement("embed", args) }
func Object(args ...any) Tag  { return createElement("object", args) }
func Param(args ...any) Tag   { return createElement("param", args) }
func Canvas(args ...any) Tag  { return createElement("canvas", args) }
func Svg(args ...any) Tag     { return createElement("svg", args) }
func Math(args ...any) Tag    { return createElement("math", args) }
func Map_(args ...any) Tag    { return createElement("map", args) }
func Area(args ...any) Tag    { return createElement("area", args) }

// Interactive elements

func Details(args ...any) Tag { return createElement("details", args) }
func Summary(args ...any) Tag { return createElement("summary", args) }
func Dialog(args ...any) Tag  { return createElement("dialog", args) }
func Menu(args ...any) Tag    { return createElement("menu", args) }

// Scripting elements

func Script(args ...any) Tag   { return createElement("script", args) }
func Noscript(args ...any) Tag { return createElement("noscript", args) }
func Template(args ...any) Tag { return createElement("template", args) }
func Slot(args ...any) Tag     { return createElement("slot", args) }
func Style(args ...any) Tag    { return createElement("style", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(name string, args ...any) Tag {
	return createElement(name, args)
}
