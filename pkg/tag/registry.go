package tag

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attributes"
)

// Wildcard is the registry entry used when no exact name matches.
const Wildcard = "*"

// Constructor creates a tag named name that owns attrs.
type Constructor func(name string, attrs *attributes.Collection, content ...any) (Tag, error)

// Generic constructs plain nodes.
func Generic(name string, attrs *attributes.Collection, content ...any) (Tag, error) {
	return NewWith()(name, attrs, content...)
}

// NewWith returns a constructor building nodes with the given options.
func NewWith(opts ...Option) Constructor {
	return func(name string, attrs *attributes.Collection, content ...any) (Tag, error) {
		n := NewNode(name, attrs, opts...)
		n.Content(content...)
		return n, nil
	}
}

func newComment(_ string, _ *attributes.Collection, content ...any) (Tag, error) {
	return NewComment(content...), nil
}

// Registry maps tag names to constructors. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	ctors   map[string]Constructor
	factory *attributes.Factory
	logger  *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFactory sets the factory used to build attribute collections.
func WithFactory(f *attributes.Factory) RegistryOption {
	return func(r *Registry) {
		r.factory = f
	}
}

// WithLogger sets the logger used to report registrations.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates a registry with the generic wildcard and the comment
// constructor.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		ctors: map[string]Constructor{
			Wildcard:    Generic,
			CommentName: newComment,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.factory == nil {
		r.factory = attributes.DefaultFactory()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, backed by the default
// attribute factory.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Factory returns the attribute factory of r.
func (r *Registry) Factory() *attributes.Factory {
	return r.factory
}

// Register maps name to ctor, replacing any previous entry.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" {
		return errors.New(errors.CodeContractViolation).
			WithDetail("cannot register a constructor under an empty tag name")
	}
	if ctor == nil {
		return errors.New(errors.CodeContractViolation).
			WithDetailf("nil constructor for tag %q", name)
	}

	r.mu.Lock()
	_, replaced := r.ctors[name]
	r.ctors[name] = ctor
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("tag constructor replaced", "name", name)
	} else {
		r.logger.Debug("tag constructor registered", "name", name)
	}
	return nil
}

// Unregister removes the entry for name. The wildcard cannot be removed.
func (r *Registry) Unregister(name string) {
	if name == Wildcard {
		return
	}
	r.mu.Lock()
	delete(r.ctors, name)
	r.mu.Unlock()
}

// Resolve returns the constructor for name, falling back to the wildcard.
func (r *Registry) Resolve(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ctor, ok := r.ctors[name]; ok {
		return ctor, true
	}
	ctor, ok := r.ctors[Wildcard]
	return ctor, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Create builds a tag through the constructor registered for name. The
// attributes are collected in order through the registry's factory.
func (r *Registry) Create(name string, attrs []attributes.Attr, content ...any) (Tag, error) {
	ctor, ok := r.Resolve(name)
	if !ok {
		return nil, errors.New(errors.CodeContractViolation).
			WithDetailf("no constructor for tag %q and no wildcard entry", name)
	}

	coll, err := r.factory.New(attrs...)
	if err != nil {
		return nil, err
	}

	t, err := ctor(name, coll, content...)
	if err != nil {
		return nil, err
	}
	if isNil(t) {
		return nil, errors.New(errors.CodeContractViolation).
			WithDetailf("constructor for tag %q returned nil", name)
	}
	if t.Name() != name {
		return nil, errors.New(errors.CodeContractViolation).
			WithDetailf("constructor for tag %q produced tag %q", name, t.Name())
	}
	return t, nil
}

func isNil(t Tag) bool {
	if t == nil {
		return true
	}
	rv := reflect.ValueOf(t)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
