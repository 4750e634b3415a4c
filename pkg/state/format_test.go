package state

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/markup/pkg/attribute"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{"JSON", JSON},
		{"yaml", YAML},
		{" yml ", YAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("toml"); err == nil || !strings.Contains(err.Error(), "E221") {
		t.Errorf("ParseFormat(toml) error = %v, want E221", err)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"page.json", JSON},
		{"page.yaml", YAML},
		{"dir/page.YML", YAML},
		{"page.txt", JSON},
		{"page", JSON},
	}
	for _, tt := range tests {
		if got := FormatFor(tt.path, JSON); got != tt.want {
			t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	in := []attribute.State{
		{Name: "id", Values: []string{"x"}},
		{Name: "class", Values: []string{"a", "b"}},
		{Name: "hidden", Values: []string{}},
	}
	for _, f := range []Format{JSON, YAML} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Marshal(f, in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var out []attribute.State
			if err := Unmarshal(f, data, &out); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshal_JSONLayout(t *testing.T) {
	data, err := Marshal(JSON, attribute.State{Name: "id", Values: []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"name\": \"id\",\n  \"values\": [\n    \"x\"\n  ]\n}\n"
	if got := string(data); got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		in   string
	}{
		{"json syntax", JSON, `{"name": `},
		{"json unknown field", JSON, `{"name": "id", "value": "x"}`},
		{"json empty", JSON, ``},
		{"json trailing", JSON, `{"name": "a"} {"name": "b"}`},
		{"yaml syntax", YAML, "name: [a"},
		{"yaml unknown field", YAML, "name: id\nvalue: x\n"},
		{"yaml empty", YAML, ""},
		{"yaml trailing", YAML, "name: a\n---\nname: b\n"},
		{"yaml wrong type", YAML, "name: [a, b]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s attribute.State
			err := Unmarshal(tt.f, []byte(tt.in), &s)
			if !errors.Is(err, attribute.ErrDeserialization) {
				t.Errorf("Unmarshal() error = %v, want ErrDeserialization", err)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	var s attribute.State
	if err := Unmarshal(Format("toml"), []byte("x"), &s); err == nil || !strings.Contains(err.Error(), "E221") {
		t.Errorf("Unmarshal(toml) error = %v, want E221", err)
	}
	if _, err := Marshal(Format("toml"), s); err == nil {
		t.Error("Marshal(toml) error = nil")
	}
}
