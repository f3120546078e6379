package method

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/simspace/object"
	"github.com/viant/simspace/params"
	"github.com/viant/simspace/space"
)

var (
	// ErrUnregistered indicates no constructor exists for a method name and
	// element type.
	ErrUnregistered = errors.New("method: not registered")

	// ErrDuplicate indicates a second registration for the same key.
	ErrDuplicate = errors.New("method: already registered")
)

// UnregisteredError details an ErrUnregistered lookup.
type UnregisteredError struct {
	Type object.ElementType
	Name string
}

func (e *UnregisteredError) Error() string {
	return fmt.Sprintf("method: %q is not registered for %s", e.Name, e.Type)
}

// Is reports ErrUnregistered.
func (e *UnregisteredError) Is(target error) bool { return target == ErrUnregistered }

type key struct {
	typ  object.ElementType
	name string
}

// Registry maps (element type, method name) to constructors.
type Registry struct {
	mu      sync.RWMutex
	entries map[key]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[key]any{}}
}

// Default is the registry built-in methods register with.
var Default = NewRegistry()

// Register associates name with fn for element type T.
func Register[T object.Numeric](r *Registry, name string, fn CreateFunc[T]) error {
	if name == "" || fn == nil {
		return fmt.Errorf("method: invalid registration %q", name)
	}
	k := key{typ: object.TypeOf[T](), name: name}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[k]; ok {
		return fmt.Errorf("%w: %q for %s", ErrDuplicate, name, k.typ)
	}
	r.entries[k] = fn
	return nil
}

// MustRegister is Register for init functions; it panics on error.
func MustRegister[T object.Numeric](r *Registry, name string, fn CreateFunc[T]) {
	if err := Register(r, name, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the constructor for (T, name).
func Lookup[T object.Numeric](r *Registry, name string) (CreateFunc[T], error) {
	k := key{typ: object.TypeOf[T](), name: name}
	r.mu.RLock()
	entry, ok := r.entries[k]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnregisteredError{Type: k.typ, Name: name}
	}
	fn, ok := entry.(CreateFunc[T])
	if !ok {
		// Named element types share a tag with float32/float64 but not a
		// constructor signature.
		return nil, &UnregisteredError{Type: k.typ, Name: name}
	}
	return fn, nil
}

// Create resolves (T, name) and builds the index. Resolution happens
// before the constructor sees the dataset.
func Create[T object.Numeric](r *Registry, name string, printProgress bool, spaceType string, sp space.Space[T], data object.Vector, p *params.Set) (Index[T], error) {
	fn, err := Lookup[T](r, name)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, fmt.Errorf("method: %s: nil space", name)
	}
	idx, err := fn(printProgress, spaceType, sp, data, p)
	if err != nil {
		return nil, fmt.Errorf("method: create %s: %w", name, err)
	}
	if idx == nil {
		return nil, fmt.Errorf("method: create %s: constructor returned nil", name)
	}
	return idx, nil
}

// Has reports whether name is registered for element type t.
func (r *Registry) Has(t object.ElementType, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key{typ: t, name: name}]
	return ok
}

// Names lists method names registered for element type t, sorted.
func (r *Registry) Names(t object.ElementType) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for k := range r.entries {
		if k.typ == t {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)
	return names
}
