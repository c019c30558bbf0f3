package dispatch

import "sync/atomic"

// IDSource generates handler IDs for one application root. IDs are
// monotonically increasing and never reused, so an ID observed by a backend
// stays valid as a routing token for the root's whole lifetime even after
// its primitive is unmounted.
type IDSource struct {
	counter atomic.Uint64
}

// NewIDSource creates an IDSource starting at 1.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next unique ID.
func (s *IDSource) Next() ID {
	return ID(s.counter.Add(1))
}
