package component

import "github.com/canopy-ui/canopy/internal/errors"

// cell guards a props or state value against reentrant access. The engine is
// single-threaded per root, so the guard catches logic errors rather than
// races: a handler that re-enters its own instance while the value is
// borrowed is a fatal fault, not a wait.
type cell[T comparable] struct {
	value    T
	borrowed bool
	label    string
	owner    string
}

func newCell[T comparable](value T, label, owner string) *cell[T] {
	return &cell[T]{value: value, label: label, owner: owner}
}

// get returns a copy of the value.
func (c *cell[T]) get() T {
	if c.borrowed {
		panic(errors.ReentrantAccess(c.label, c.owner))
	}
	return c.value
}

// set replaces the value.
func (c *cell[T]) set(value T) {
	if c.borrowed {
		panic(errors.ReentrantAccess(c.label, c.owner))
	}
	c.value = value
}

// mutate passes the value to fn by pointer. The cell stays borrowed for the
// duration of the call, so fn must not reach back into the owning instance.
func (c *cell[T]) mutate(fn func(*T)) {
	if c.borrowed {
		panic(errors.ReentrantAccess(c.label, c.owner))
	}
	c.borrowed = true
	defer func() { c.borrowed = false }()
	fn(&c.value)
}
