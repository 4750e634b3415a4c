package tag

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/markup/pkg/attribute"
	"github.com/vango-dev/markup/pkg/attributes"
)

type card struct {
	*Node
}

func (c *card) Render() string {
	return `<article class="card">` + c.Node.Render() + `</article>`
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRegistry_CustomConstructor(t *testing.T) {
	r := NewRegistry()
	err := r.Register("card", func(name string, attrs *attributes.Collection, content ...any) (Tag, error) {
		n := NewNode(name, attrs)
		n.Content(content...)
		return &card{Node: n}, nil
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tg, err := r.Create("card", nil, "x")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got, want := tg.Render(), `<article class="card"><card>x</card></article>`; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	other, err := r.Create("span", nil, "y")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := other.(*Node); !ok {
		t.Errorf("Create(span) = %T, want *Node", other)
	}
}

func TestRegistry_RegisterRejectsBadEntries(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("", Generic); !errors.Is(err, attribute.ErrContractViolation) {
		t.Errorf("Register(\"\") error = %v, want ErrContractViolation", err)
	}
	if err := r.Register("div", nil); !errors.Is(err, attribute.ErrContractViolation) {
		t.Errorf("Register(nil) error = %v, want ErrContractViolation", err)
	}
}

func TestRegistry_ContractViolations(t *testing.T) {
	r := NewRegistry()

	_ = r.Register("nil-result", func(string, *attributes.Collection, ...any) (Tag, error) {
		return nil, nil
	})
	_ = r.Register("typed-nil", func(string, *attributes.Collection, ...any) (Tag, error) {
		var n *Node
		return n, nil
	})
	_ = r.Register("wrong-name", func(_ string, attrs *attributes.Collection, content ...any) (Tag, error) {
		return Generic("other", attrs, content...)
	})

	for _, name := range []string{"nil-result", "typed-nil", "wrong-name"} {
		t.Run(name, func(t *testing.T) {
			if _, err := r.Create(name, nil); !errors.Is(err, attribute.ErrContractViolation) {
				t.Errorf("Create(%q) error = %v, want ErrContractViolation", name, err)
			}
		})
	}
}

func TestRegistry_CreateInvalidAttribute(t *testing.T) {
	_, err := Default().Create("div", []attributes.Attr{attributes.A("on click", "x")})
	if !errors.Is(err, attribute.ErrInvalidName) {
		t.Errorf("Create() error = %v, want ErrInvalidName", err)
	}
}

func TestRegistry_Factory(t *testing.T) {
	attrs := attribute.NewRegistry()
	lower, err := attribute.Kind("lowercase")
	if err != nil {
		t.Fatalf("Kind() error = %v", err)
	}
	_ = attrs.Register("data-mode", lower)

	r := NewRegistry(WithFactory(attributes.NewFactory(attrs)))
	if r.Factory().Registry() != attrs {
		t.Fatal("Factory().Registry() is not the configured registry")
	}

	tg, err := r.Create("div", []attributes.Attr{attributes.A("data-mode", "Dark DARK Wide")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got, want := tg.Render(), `<div data-mode="dark wide"/>`; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	_ = r.Register("card", Generic)
	r.Unregister("card")
	r.Unregister(Wildcard)

	if diff := cmp.Diff([]string{CommentName, Wildcard}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_LogsOverrides(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRegistry(WithLogger(logger))

	_ = r.Register("card", Generic)
	_ = r.Register("card", NewWith())

	out := buf.String()
	if !strings.Contains(out, "tag constructor registered") || !strings.Contains(out, "tag constructor replaced") {
		t.Errorf("log output = %q", out)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := NewRegistry()
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			return r.Register("card", Generic)
		})
		g.Go(func() error {
			_, err := r.Create("card", nil, "a")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent use error = %v", err)
	}
}
