package component

import (
	"github.com/canopy-ui/canopy/pkg/dispatch"
	"github.com/canopy-ui/canopy/pkg/vdom"
)

// binding records the handler a mounted primitive registered under its
// message identifier. Exactly one field is set per binding.
type binding[P, S comparable] struct {
	click  vdom.ClickHandler[P, S]
	change vdom.ChangeHandler[P, S]
	sel    vdom.SelectHandler[P, S]
}

// registry maps message identifiers to the handlers of one instance.
// Entries accumulate for the life of the instance: identifiers are never
// reissued, and bindings outlive the primitives that registered them so a
// message already in flight when its primitive is replaced still lands on
// the handler the sender observed.
type registry[P, S comparable] struct {
	bindings map[dispatch.ID]binding[P, S]
}

func newRegistry[P, S comparable]() *registry[P, S] {
	return &registry[P, S]{}
}

func (r *registry[P, S]) bind(id dispatch.ID, b binding[P, S]) {
	if r.bindings == nil {
		r.bindings = make(map[dispatch.ID]binding[P, S])
	}
	r.bindings[id] = b
}

func (r *registry[P, S]) click(id dispatch.ID) (vdom.ClickHandler[P, S], bool) {
	b, ok := r.bindings[id]
	if !ok || b.click == nil {
		return nil, false
	}
	return b.click, true
}

func (r *registry[P, S]) change(id dispatch.ID) (vdom.ChangeHandler[P, S], bool) {
	b, ok := r.bindings[id]
	if !ok || b.change == nil {
		return nil, false
	}
	return b.change, true
}

func (r *registry[P, S]) selection(id dispatch.ID) (vdom.SelectHandler[P, S], bool) {
	b, ok := r.bindings[id]
	if !ok || b.sel == nil {
		return nil, false
	}
	return b.sel, true
}

func (r *registry[P, S]) size() int {
	return len(r.bindings)
}
