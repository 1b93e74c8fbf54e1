package variables

import (
	"sort"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lablang.variables'.
func tracer() tracing.Trace {
	return tracing.Select("lablang.variables")
}

// Temp is the name of the variable which receives the results of all
// test commands.
const Temp = "TEMP"

// Store maps variable names to raw values.
type Store struct {
	vars map[string]string
}

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{vars: make(map[string]string)}
}

// Set binds a variable to a value, overwriting a previous binding.
func (s *Store) Set(name, value string) {
	tracer().P("var", name).Debugf("= %s", value)
	s.vars[name] = value
}

// Get returns the raw value of a variable.
func (s *Store) Get(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Has is a predicate: is a variable bound?
func (s *Store) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Len returns the number of variables bound.
func (s *Store) Len() int {
	return len(s.vars)
}

// Names returns the names of all bound variables in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vars))
	for n := range s.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of all bindings.
func (s *Store) Snapshot() map[string]string {
	m := make(map[string]string, len(s.vars))
	for n, v := range s.vars {
		m[n] = v
	}
	return m
}

// Resolve reads a variable and types its value.
//
// If the value is an identifier, it is taken as the name of another
// variable and resolution continues with that variable. String values are
// returned without quotes and with escape sequences replaced. Numbers and
// values of unknown type are returned as they are.
//
// Errors returned are of kind lablang.UndefinedVariable and
// lablang.VariableCycle. They do not carry source context; callers will
// want to add it.
func (s *Store) Resolve(name string) (string, lablang.ValueType, error) {
	var visited map[string]bool
	for {
		value, ok := s.vars[name]
		if !ok {
			return "", lablang.Unknown, lablang.NewError(lablang.UndefinedVariable,
				"Variable `%s` does not exist.", name)
		}
		switch t := lablang.Classify(value); t {
		case lablang.IdentifierType:
			if visited == nil {
				visited = make(map[string]bool)
			}
			visited[name] = true
			if visited[value] {
				tracer().P("var", name).Errorf("cyclic reference to %s", value)
				return "", lablang.Unknown, lablang.NewError(lablang.VariableCycle,
					"Variable `%s` refers back to itself via `%s`.", value, name).
					WithNote("A variable holding an identifier is read as a reference to that variable")
			}
			name = value
		case lablang.StringType:
			return lablang.StringPayload(value), t, nil
		default:
			return value, t, nil
		}
	}
}
