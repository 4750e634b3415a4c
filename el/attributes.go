package el

import (
	"sort"

	"github.com/vango-dev/markup/pkg/attributes"
)

// attr creates an Attr with the given key and values.
func attr(key string, values ...any) Attr {
	return attributes.A(key, values...)
}

// Attribute creates an arbitrary attribute. Without values it is boolean.
func Attribute(key string, values ...any) Attr { return attr(key, values...) }

// Identity

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute. Each argument may hold several
// space-separated classes; duplicates are dropped.
func Class(classes ...string) Attr { return attr("class", classes) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, values ...any) Attr { return attr("data-"+key, values...) }

// Accessibility

func Role(role string) Attr              { return attr("role", role) }
func AriaLabel(label string) Attr        { return attr("aria-label", label) }
func AriaHidden(hidden bool) Attr        { return attr("aria-hidden", hidden) }
func AriaExpanded(expanded bool) Attr    { return attr("aria-expanded", expanded) }
func AriaDescribedBy(ids ...string) Attr { return attr("aria-describedby", ids) }
func AriaLabelledBy(ids ...string) Attr  { return attr("aria-labelledby", ids) }
func AriaControls(id string) Attr        { return attr("aria-controls", id) }
func AriaCurrent(value string) Attr      { return attr("aria-current", value) }
func AriaLive(mode string) Attr          { return attr("aria-live", mode) }
func TabIndex(index int) Attr            { return attr("tabindex", index) }

// Global

func Hidden() Attr                { return attr("hidden") }
func TitleAttr(title string) Attr { return attr("title", title) }
func Lang(lang string) Attr       { return attr("lang", lang) }
func Dir(dir string) Attr         { return attr("dir", dir) }

// Links

func Href(url string) Attr      { return attr("href", url) }
func Target(target string) Attr { return attr("target", target) }
func Rel(rel ...string) Attr    { return attr("rel", rel) }
func Hreflang(lang string) Attr { return attr("hreflang", lang) }

// Download sets the download attribute, with an optional file name.
func Download(filename ...string) Attr {
	if len(filename) > 0 {
		return attr("download", filename[0])
	}
	return attr("download")
}

// Forms

func Name(name string) Attr          { return attr("name", name) }
func Value(value any) Attr           { return attr("value", value) }
func Type(t string) Attr             { return attr("type", t) }
func Placeholder(text string) Attr   { return attr("placeholder", text) }
func For(id string) Attr             { return attr("for", id) }
func FormAttr(id string) Attr        { return attr("form", id) }
func Action(url string) Attr         { return attr("action", url) }
func Method(method string) Attr      { return attr("method", method) }
func Autocomplete(value string) Attr { return attr("autocomplete", value) }
func Pattern(pattern string) Attr    { return attr("pattern", pattern) }
func MinLength(n int) Attr           { return attr("minlength", n) }
func MaxLength(n int) Attr           { return attr("maxlength", n) }
func Min(value any) Attr             { return attr("min", value) }
func Max(value any) Attr             { return attr("max", value) }
func Step(value any) Attr            { return attr("step", value) }
func Rows(n int) Attr                { return attr("rows", n) }
func Cols(n int) Attr                { return attr("cols", n) }

func Disabled() Attr   { return attr("disabled") }
func Readonly() Attr   { return attr("readonly") }
func Required() Attr   { return attr("required") }
func Checked() Attr    { return attr("checked") }
func Selected() Attr   { return attr("selected") }
func Multiple() Attr   { return attr("multiple") }
func Autofocus() Attr  { return attr("autofocus") }
func Novalidate() Attr { return attr("novalidate") }

// Media

func Src(url string) Attr       { return attr("src", url) }
func Alt(text string) Attr      { return attr("alt", text) }
func Width(w int) Attr          { return attr("width", w) }
func Height(h int) Attr         { return attr("height", h) }
func Loading(mode string) Attr  { return attr("loading", mode) }
func Srcset(srcset string) Attr { return attr("srcset", srcset) }
func Controls() Attr            { return attr("controls") }

// Tables

func Colspan(n int) Attr      { return attr("colspan", n) }
func Rowspan(n int) Attr      { return attr("rowspan", n) }
func Scope(scope string) Attr { return attr("scope", scope) }

// Document metadata

func Charset(charset string) Attr { return attr("charset", charset) }
func Content(content string) Attr { return attr("content", content) }
func HttpEquiv(value string) Attr { return attr("http-equiv", value) }
func Async() Attr                 { return attr("async") }
func Defer_() Attr                { return attr("defer") }
func Open() Attr                  { return attr("open") }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return Class(class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges class values from strings, string slices and
// map[string]bool. Map entries are added in name order.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			result = append(result, v)
		case []string:
			result = append(result, v...)
		case map[string]bool:
			names := make([]string, 0, len(v))
			for class, include := range v {
				if include {
					names = append(names, class)
				}
			}
			sort.Strings(names)
			result = append(result, names...)
		}
	}
	return attr("class", result)
}
