package macro

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrDuplicateMacro = errors.New("macro already registered")

// Registry maps invocation names to expanders.
type Registry struct {
	byName map[string]Expander
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Expander)}
}

// DefaultRegistry returns a registry with the built-in expanders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register("sort", ExpanderFunc(ExpandSort)); err != nil {
		panic(fmt.Errorf("default registry: %w", err))
	}
	return r
}

func (r *Registry) Register(name string, e Expander) error {
	if name == "" {
		return errors.New("macro name is empty")
	}
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateMacro)
	}
	r.byName[name] = e
	return nil
}

// Alias makes alias invoke the expander registered as name.
func (r *Registry) Alias(alias, name string) error {
	e, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("unknown macro %q", name)
	}
	if alias == name {
		return nil
	}
	return r.Register(alias, e)
}

func (r *Registry) Lookup(name string) (Expander, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.byName))
}
