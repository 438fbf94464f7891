package engine

import (
	"sort"

	apperrors "github.com/agbru/basecalc/internal/errors"
)

// Engine is the common interface of all calculator implementations.
type Engine interface {
	// Name returns the engine's unique registry name.
	Name() string

	// Description returns a one-line human-readable description.
	Description() string

	// Compute evaluates z1 <op> z2 in the given base with the given alphabet
	// and returns the result as a digit string in the same base and alphabet.
	// op is one of '+', '-', '*'. Inputs must already satisfy the validation
	// rules of package radix.
	Compute(base int, alphabet, z1, z2 string, op byte) (string, error)
}

// Registry holds the available engines in a stable order.
type Registry struct {
	engines []Engine
	byName  map[string]Engine
}

// NewRegistry creates a registry populated with all built-in engines.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Engine)}
	r.register(NewBinary(false))
	r.register(NewBinary(true))
	r.register(NewNaive())
	return r
}

func (r *Registry) register(e Engine) {
	r.engines = append(r.engines, e)
	r.byName[e.Name()] = e
}

// Get returns the engine with the given name.
//
// Returns:
//   - Engine: The matching engine, or nil if the name is unknown.
//   - error: A ConfigError listing the valid names when the name is unknown.
func (r *Registry) Get(name string) (Engine, error) {
	if e, ok := r.byName[name]; ok {
		return e, nil
	}
	return nil, apperrors.NewConfigError("unknown engine %q (available: %v)", name, r.Names())
}

// All returns the engines in registration order.
func (r *Registry) All() []Engine {
	out := make([]Engine, len(r.engines))
	copy(out, r.engines)
	return out
}

// Names returns the sorted engine names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
