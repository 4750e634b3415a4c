package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/markup/internal/errors"
)

const pageYAML = `tag: ul
attributes:
  - name: class
    values: ["menu main", main]
children:
  - tag: li
    text: Fish & Chips
  - comment: end
`

const pageHTML = `<ul class="menu main"><li>Fish &amp; Chips</li><!--end--></ul>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "markup.json", `{
  "format": "yaml",
  "logLevel": "error",
  "attributes": {"class": "tokens", "rel": "lowercase", "data-tags": "tokens"}
}`)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	cfg := testConfig(t)
	page := writeFile(t, t.TempDir(), "page.yaml", pageYAML)

	out, err := run(t, "", "render", "--config", cfg, "--check", page)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if got := strings.TrimSpace(out); got != pageHTML {
		t.Errorf("render output = %q, want %q", got, pageHTML)
	}
}

func TestRender_Stdin(t *testing.T) {
	cfg := testConfig(t)
	in := `{"tag": "a", "attributes": [{"name": "rel", "values": ["NoOpener"]}], "text": "x"}`

	out, err := run(t, in, "render", "--config", cfg, "--format", "json")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if got, want := strings.TrimSpace(out), `<a rel="noopener">x</a>`; got != want {
		t.Errorf("render output = %q, want %q", got, want)
	}
}

func TestRender_Errors(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		code  string
	}{
		{"bad document", "tag: [", []string{"render"}, errors.CodeDeserialization},
		{"unknown field", "tag: p\nbody: x\n", []string{"render"}, errors.CodeDeserialization},
		{"bad attribute", "tag: p\nattributes: [{name: 'a b'}]\n", []string{"render"}, errors.CodeInvalidName},
		{"bad format", "", []string{"render", "--format", "toml"}, errors.CodeUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", cfg}, tt.args...)
			_, err := run(t, tt.stdin, args...)
			if !errors.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := run(t, "tag: p\n", "--config", cfg, "render", "--input", "html"); err == nil {
		t.Error("render --input html error = nil")
	}
}

func TestExportThenRender(t *testing.T) {
	cfg := testConfig(t)
	page := writeFile(t, t.TempDir(), "page.yaml", pageYAML)

	exported, err := run(t, "", "--config", cfg, "export", page, "--to", "json")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(exported, `"tag": "ul"`) {
		t.Errorf("export output = %q", exported)
	}

	out, err := run(t, exported, "--config", cfg, "render", "--input", "tag", "--format", "json")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if got := strings.TrimSpace(out); got != pageHTML {
		t.Errorf("render output = %q, want %q", got, pageHTML)
	}
}

func TestExport_FragmentRoot(t *testing.T) {
	page := writeFile(t, t.TempDir(), "page.yaml", "text: loose\n")
	if _, err := run(t, "", "--config", testConfig(t), "export", page); !errors.HasCode(err, errors.CodeUnsupportedOperation) {
		t.Errorf("export error = %v, want E201", err)
	}
}

func TestAttr(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"class", "a b", "b", "c"}, `class="a b c"`},
		{[]string{"data-tags", "x x", "y"}, `data-tags="x y"`},
		{[]string{"rel", "NoFollow"}, `rel="nofollow"`},
		{[]string{"disabled"}, `disabled`},
		{[]string{"title", `"q" & <t>`}, `title="&quot;q&quot; &amp; &lt;t&gt;"`},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, err := run(t, "", append([]string{"--config", cfg, "attr"}, tt.args...)...)
			if err != nil {
				t.Fatalf("attr error = %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("attr output = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := run(t, "", "--config", cfg, "attr", "on click"); !errors.HasCode(err, errors.CodeInvalidName) {
		t.Errorf("attr(invalid) error = %v, want E200", err)
	}
}

func TestAttr_Export(t *testing.T) {
	out, err := run(t, "", "--config", testConfig(t), "attr", "class", "b a b", "--export", "yaml")
	if err != nil {
		t.Fatalf("attr error = %v", err)
	}
	want := "name: class\nvalues:\n  - b\n  - a\n"
	if out != want {
		t.Errorf("attr --export output = %q, want %q", out, want)
	}
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "markup.json", `{"attributes": {"class": "magic"}}`)
	if _, err := run(t, "", "--config", bad, "attr", "id"); !errors.HasCode(err, errors.CodeConfigInvalid) {
		t.Errorf("error = %v, want E211", err)
	}

	missing := filepath.Join(dir, "missing.json")
	if _, err := run(t, "", "--config", missing, "attr", "id"); !errors.HasCode(err, errors.CodeConfigNotFound) {
		t.Errorf("error = %v, want E210", err)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "init", dir)
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(out, "markup.json") {
		t.Errorf("init output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "markup.json")); err != nil {
		t.Fatalf("markup.json not created: %v", err)
	}

	if _, err := run(t, "", "init", dir); err == nil {
		t.Error("second init error = nil, want exists error")
	}
	if _, err := run(t, "", "init", "--force", dir); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version output = %q, want %q", out, version)
	}
}

func TestCheckMarkup(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"balanced", `<div id="a"><p>x</p><br/><!--c--></div>`, false},
		{"text only", `plain &amp; text`, false},
		{"self closing element", `<div/>`, false},
		{"unexpected close", `<div></p></div>`, true},
		{"never closed", `<div><span>x</span>`, true},
		{"stray close", `</div>`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkMarkup(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkMarkup(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
