package attribute

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/vango-dev/markup/internal/errors"
)

// Wildcard is the registry entry used when no exact name matches.
const Wildcard = "*"

// Constructor creates an attribute named name with the given raw values.
type Constructor func(name string, values ...any) (Attribute, error)

// Generic constructs plain attributes with no preprocessing.
func Generic(name string, values ...any) (Attribute, error) {
	v, err := New(name, values...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// kinds are the built-in constructors addressable by name from
// configuration.
var kinds = map[string]Constructor{
	"generic":   Generic,
	"tokens":    NewWith(TokenList),
	"lowercase": NewWith(Chain(Lowercase, TokenList)),
}

// Kind returns the built-in constructor with the given kind name.
func Kind(kind string) (Constructor, error) {
	ctor, ok := kinds[kind]
	if !ok {
		return nil, errors.New(errors.CodeUnknownKind).
			WithDetailf("unknown attribute kind %q", kind).
			WithSuggestion("Use one of: generic, lowercase, tokens")
	}
	return ctor, nil
}

// Registry maps attribute names to constructors. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	ctors  map[string]Constructor
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report registrations.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates a registry whose only entry is the generic wildcard.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		ctors: map[string]Constructor{Wildcard: Generic},
	}
	for _, opt := range opts {
		opt(r)
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

// Default returns the process-wide registry. Besides the wildcard it maps
// class to a token list and rel to a lower-cased token list.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.ctors["class"] = kinds["tokens"]
		defaultRegistry.ctors["rel"] = kinds["lowercase"]
	})
	return defaultRegistry
}

// Register maps name to ctor, replacing any previous entry. Use Wildcard
// to change the fallback.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" {
		return errors.New(errors.CodeContractViolation).
			WithDetail("cannot register a constructor under an empty name")
	}
	if ctor == nil {
		return errors.New(errors.CodeContractViolation).
			WithDetailf("nil constructor for attribute %q", name)
	}

	r.mu.Lock()
	_, replaced := r.ctors[name]
	r.ctors[name] = ctor
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("attribute constructor replaced", "name", name)
	} else {
		r.logger.Debug("attribute constructor registered", "name", name)
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

// Create builds an attribute through the constructor registered for name.
func (r *Registry) Create(name string, values ...any) (Attribute, error) {
	ctor, ok := r.Resolve(name)
	if !ok {
		return nil, errors.New(errors.CodeContractViolation).
			WithDetailf("no constructor for attribute %q and no wildcard entry", name)
	}

	a, err := ctor(name, values...)
	if err != nil {
		return nil, err
	}
	if isNil(a) {
		return nil, errors.New(errors.CodeContractViolation).
			WithDetailf("constructor for attribute %q returned nil", name)
	}
	if a.Name() != name {
		return nil, errors.New(errors.CodeContractViolation).
			WithDetailf("constructor for attribute %q produced attribute %q", name, a.Name())
	}
	return a, nil
}

func isNil(a Attribute) bool {
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
