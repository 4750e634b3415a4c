package attribute

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func mustNew(t *testing.T, name string, values ...any) *Value {
	t.Helper()
	v, err := New(name, values...)
	if err != nil {
		t.Fatalf("New(%q) error = %v", name, err)
	}
	return v
}

func TestNew_InvalidName(t *testing.T) {
	names := []string{"", "a b", "a\tb", "a\nb", "a\fb", "a/b", "a>b", `a"b`, "a'b", "a=b"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := New(name)
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("New(%q) error = %v, want ErrInvalidName", name, err)
			}
		})
	}
}

func TestNew_ValidNames(t *testing.T) {
	for _, name := range []string{"id", "data-user-id", "aria-label", "x:lang", "@click", "ünïcode"} {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		attr   string
		values []any
		want   string
	}{
		{"boolean", "disabled", nil, "disabled"},
		{"single value", "id", []any{"main"}, `id="main"`},
		{"nested values", "class", []any{"a", []any{"b", []string{"c"}}}, `class="a b c"`},
		{"empty strings filtered", "class", []any{"a", "", "b"}, `class="a b"`},
		{"only empty strings is boolean", "hidden", []any{"", []string{""}}, "hidden"},
		{"escaped", "title", []any{`"quoted" <b> & 'single'`}, `title="&quot;quoted&quot; &lt;b&gt; &amp; &#39;single&#39;"`},
		{"scalars", "data-n", []any{1, 2.5, true}, `data-n="1 2.5 true"`},
		{"nil dropped", "alt", []any{nil}, "alt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustNew(t, tt.attr, tt.values...)
			if got := a.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if got := a.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValuesAsString(t *testing.T) {
	a := mustNew(t, "class")
	if s, ok := a.ValuesAsString(); ok || s != "" {
		t.Errorf("ValuesAsString() = (%q, %v), want (\"\", false)", s, ok)
	}

	a.Set("a&b", "c")
	s, ok := a.ValuesAsString()
	if !ok || s != "a&amp;b c" {
		t.Errorf("ValuesAsString() = (%q, %v), want (%q, true)", s, ok, "a&amp;b c")
	}
}

func TestAppend_KeepsNestingUntilRead(t *testing.T) {
	a := mustNew(t, "class", "a")
	a.Append([]string{"b", "c"}, "d")

	if len(a.values) != 3 {
		t.Errorf("raw values = %v, want 3 units", a.values)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, a.ValuesAsArray()); diff != "" {
		t.Errorf("ValuesAsArray() mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	a := mustNew(t, "class", "a", []any{"b", []string{"c", "b"}}, "d")
	a.Remove("b", []string{"d"})

	if diff := cmp.Diff([]string{"a", "c"}, a.ValuesAsArray()); diff != "" {
		t.Errorf("ValuesAsArray() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"a", "c"}, a.values); diff != "" {
		t.Errorf("Remove should flatten the raw set (-want +got):\n%s", diff)
	}
}

func TestReplace(t *testing.T) {
	t.Run("absent original is a no-op", func(t *testing.T) {
		a := mustNew(t, "class", []string{"a", "b"})
		a.Replace("z", "c")
		if diff := cmp.Diff([]string{"a", "b"}, a.ValuesAsArray()); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("present original is replaced", func(t *testing.T) {
		a := mustNew(t, "class", []string{"a", "b"})
		a.Replace("a", "c")
		if diff := cmp.Diff([]string{"b", "c"}, a.ValuesAsArray()); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("multiple replacements", func(t *testing.T) {
		a := mustNew(t, "class", "a")
		a.Replace("a", "x", []string{"y", "z"})
		if diff := cmp.Diff([]string{"x", "y", "z"}, a.ValuesAsArray()); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestContains(t *testing.T) {
	a := mustNew(t, "class", "a", []string{"b", "c"})

	tests := []struct {
		name string
		args []any
		want bool
	}{
		{"no arguments", nil, true},
		{"single present", []any{"a"}, true},
		{"nested present", []any{[]string{"b", "c"}}, true},
		{"one missing", []any{"a", "z"}, false},
		{"case sensitive", []any{"A"}, false},
		{"substring is not a match", []any{"b c"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.args...); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestAppendRemoveContains(t *testing.T) {
	a := mustNew(t, "class")
	for _, v := range []string{"x", "y", "x"} {
		a.Append(v)
		if !a.Contains(v) {
			t.Errorf("Contains(%q) after Append = false", v)
		}
	}
	a.Remove("x")
	if a.Contains("x") {
		t.Error("Contains(\"x\") after Remove = true")
	}
}

func TestIsBoolean_TracksValues(t *testing.T) {
	a := mustNew(t, "data-x")
	steps := []func(){
		func() { a.Set("v") },
		func() { a.Append("w") },
		func() { a.Remove("v", "w") },
		func() { a.Set("") },
		func() { a.Append([]string{"", "q"}) },
		func() { a.Set() },
	}
	check := func() {
		t.Helper()
		if got, want := a.IsBoolean(), len(a.ValuesAsArray()) == 0; got != want {
			t.Errorf("IsBoolean() = %v with values %v", got, a.ValuesAsArray())
		}
	}
	check()
	for _, step := range steps {
		step()
		check()
	}
}

func TestSetBoolean(t *testing.T) {
	a := mustNew(t, "checked", "yes")
	a.SetBoolean(true)
	if !a.IsBoolean() || a.Render() != "checked" {
		t.Errorf("SetBoolean(true) render = %q", a.Render())
	}

	a.SetBoolean(false)
	if a.IsBoolean() {
		t.Error("SetBoolean(false) should make the attribute non-boolean")
	}
	if got, want := a.Render(), `checked="checked"`; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	b := mustNew(t, "value", "kept")
	b.SetBoolean(false)
	if got, want := b.Render(), `value="kept"`; got != want {
		t.Errorf("SetBoolean(false) on valued attribute: Render() = %q, want %q", got, want)
	}
}

func TestAlter(t *testing.T) {
	a := mustNew(t, "class", "b", []string{"a"})
	var seenName string

	a.Alter(
		func(values []string, name string) []any {
			seenName = name
			return []any{values, "c"}
		},
		func(values []string, _ string) []any {
			out := make([]any, len(values))
			for i, v := range values {
				out[i] = strings.ToUpper(v)
			}
			return out
		},
	)

	if seenName != "class" {
		t.Errorf("transform got name %q, want class", seenName)
	}
	if diff := cmp.Diff([]string{"B", "A", "C"}, a.ValuesAsArray()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClear(t *testing.T) {
	a := mustNew(t, "id", "x")
	a.Clear()
	if a.Name() != "" || a.Render() != "" || !a.IsBoolean() {
		t.Errorf("cleared attribute: name=%q render=%q", a.Name(), a.Render())
	}
	a.Set("y")
	if got := a.Render(); got != "" {
		t.Errorf("cleared attribute with values Render() = %q, want empty", got)
	}
}

func TestClone(t *testing.T) {
	a := mustNew(t, "class", "a")
	c := a.Clone()
	c.Append("b")

	if a.Contains("b") {
		t.Error("mutating a clone changed the original")
	}
	if got, want := c.Render(), `class="a b"`; got != want {
		t.Errorf("clone Render() = %q, want %q", got, want)
	}
}

func TestOffsetAccess(t *testing.T) {
	a := mustNew(t, "class", "a")

	a.OffsetSet(99, "b")
	if !a.OffsetExists("b") {
		t.Error("OffsetExists(b) = false after OffsetSet")
	}
	if diff := cmp.Diff([]string{"a", "b"}, a.ValuesAsArray()); diff != "" {
		t.Errorf("OffsetSet should append (-want +got):\n%s", diff)
	}

	a.OffsetUnset("a")
	if a.OffsetExists("a") {
		t.Error("OffsetExists(a) = true after OffsetUnset")
	}

	a.Set(1)
	if !a.OffsetExists(1) {
		t.Error("OffsetExists(1) should compare the string form")
	}

	if _, err := a.OffsetGet(0); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("OffsetGet() error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestExportImport(t *testing.T) {
	a := mustNew(t, "class", "a", []string{"b", ""})
	s := a.Export()
	if diff := cmp.Diff(State{Name: "class", Values: []string{"a", "b"}}, s); diff != "" {
		t.Errorf("Export() mismatch (-want +got):\n%s", diff)
	}

	b := mustNew(t, "other")
	if err := b.Import(s); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if b.Render() != a.Render() {
		t.Errorf("imported Render() = %q, want %q", b.Render(), a.Render())
	}
}

func TestImport_SkipsNameValidation(t *testing.T) {
	a := mustNew(t, "id")
	if err := a.Import(State{Name: "x y", Values: []string{"1"}}); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if a.Name() != "x y" {
		t.Errorf("Name() = %q", a.Name())
	}
}

func TestImport_Malformed(t *testing.T) {
	a := mustNew(t, "id", "keep")
	err := a.Import(State{Values: []string{"orphan"}})
	if !errors.Is(err, ErrDeserialization) {
		t.Fatalf("Import() error = %v, want ErrDeserialization", err)
	}
	if got := a.Render(); got != `id="keep"` {
		t.Errorf("failed Import mutated the attribute: %q", got)
	}
}

// Rendered attributes parse back to the same name and values.
func TestRender_ParsesBack(t *testing.T) {
	cases := []*Value{
		mustNew(t, "disabled"),
		mustNew(t, "title", `Fish & "Chips" <today>`),
		mustNew(t, "class", "a", []string{"b", "c"}),
		mustNew(t, "data-json", `{"k":'v'}`),
		mustNew(t, "alt", "naïve café"),
	}

	for _, a := range cases {
		t.Run(a.Name(), func(t *testing.T) {
			doc, err := html.Parse(strings.NewReader("<div " + a.Render() + "></div>"))
			if err != nil {
				t.Fatalf("html.Parse() error = %v", err)
			}
			div := findElement(doc, "div")
			if div == nil || len(div.Attr) != 1 {
				t.Fatalf("parsed element has attributes %v", div)
			}
			got := div.Attr[0]
			if got.Key != a.Name() {
				t.Errorf("parsed key = %q, want %q", got.Key, a.Name())
			}
			if want := strings.Join(a.ValuesAsArray(), " "); got.Val != want {
				t.Errorf("parsed value = %q, want %q", got.Val, want)
			}
		})
	}
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
