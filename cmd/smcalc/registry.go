package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/edp1096/sparsecalc"
)

const (
	firstName byte = 'A'
	lastName  byte = 'J'
)

var (
	errInvalidName    = errors.New("invalid matrix name")
	errMatrixNotFound = errors.New("matrix does not exist")
)

// Registry maps single-letter names A-J to the matrices the user created.
type Registry struct {
	matrices map[byte]*sparsecalc.Matrix
}

func NewRegistry() *Registry {
	return &Registry{matrices: make(map[byte]*sparsecalc.Matrix)}
}

func parseName(s string) (byte, error) {
	if len(s) != 1 || s[0] < firstName || s[0] > lastName {
		return 0, fmt.Errorf("%w: %q (use %c-%c)", errInvalidName, s, firstName, lastName)
	}
	return s[0], nil
}

func (r *Registry) Get(name byte) (*sparsecalc.Matrix, error) {
	m, ok := r.matrices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %c", errMatrixNotFound, name)
	}
	return m, nil
}

// Put stores m under name. A matrix already stored there is destroyed and
// replaced is true.
func (r *Registry) Put(name byte, m *sparsecalc.Matrix) (replaced bool) {
	if old, ok := r.matrices[name]; ok {
		if old != m {
			old.Destroy()
		}
		replaced = true
	}
	r.matrices[name] = m
	return replaced
}

// Names returns the occupied names in order.
func (r *Registry) Names() []byte {
	names := make([]byte, 0, len(r.matrices))
	for name := range r.matrices {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Release destroys every stored matrix.
func (r *Registry) Release() {
	for name, m := range r.matrices {
		m.Destroy()
		delete(r.matrices, name)
	}
}
