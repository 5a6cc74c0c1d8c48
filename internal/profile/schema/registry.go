package schema

import "fmt"

// Registry caches generated schemas by name. It is constructed once in main,
// populated during startup, and passed by reference to anything that needs
// schema lookup. Population is single-threaded (startup phase); after that
// the registry is read-only, so concurrent readers need no lock.
type Registry struct {
	schemas map[string]*TableSchema
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*TableSchema)}
}

// Register generates and caches the schema for name. Registering the same
// name twice returns the cached definition instead of regenerating it.
func (r *Registry) Register(name string, entity interface{}, opts Options) (*TableSchema, error) {
	if ts, ok := r.schemas[name]; ok {
		return ts, nil
	}
	ts, err := Generate(name, entity, opts)
	if err != nil {
		return nil, err
	}
	r.schemas[name] = ts
	r.order = append(r.order, name)
	return ts, nil
}

// Get returns the registered schema or an error for unknown names.
func (r *Registry) Get(name string) (*TableSchema, error) {
	ts, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("schema %q is not registered", name)
	}
	return ts, nil
}

// Names returns the registered schema names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
