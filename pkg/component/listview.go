package component

import (
	"github.com/canopy-ui/canopy/pkg/renderer"
	"github.com/canopy-ui/canopy/pkg/vdom"
)

// rowSource adapts a List node to the pull interface the backend consumes.
// Rows are never diffed: each time the backend asks for an index, the row's
// nodes are computed fresh from the owner's live props and state and
// materialized from scratch.
type rowSource[P, S comparable] struct {
	owner *Instance[P, S]
	key   vdom.Key

	// node is the List node at materialization time, consulted only for
	// lists nested inside rows, which no cache ever holds.
	node vdom.VNode[P, S]
}

// current returns the committed List node, so count and row function track
// the owner's latest render rather than the one that created the primitive.
// Once the entry is evicted the list is empty; the backend may still race a
// final query during teardown and gets zero rows.
func (rs *rowSource[P, S]) current() vdom.VNode[P, S] {
	if entry, ok := rs.owner.cache.get(rs.key); ok && entry.node.Kind == vdom.KindList {
		return entry.node
	}
	if rs.owner.scratch {
		return rs.node
	}
	return vdom.VNode[P, S]{Kind: vdom.KindList}
}

// RowCount implements renderer.RowSource.
func (rs *rowSource[P, S]) RowCount() int {
	return rs.current().Count
}

// RowContent implements renderer.RowSource. The returned handles belong to
// the backend row; none are cached and no patches will ever target them.
func (rs *rowSource[P, S]) RowContent(index int) []renderer.Handle {
	node := rs.current()
	if node.Item == nil {
		return nil
	}
	props := rs.owner.props.get()
	state := rs.owner.state.get()
	nodes := node.Item(index, props, state)

	// Materializing goes through a scratch instance so handlers inside rows
	// still register and schedule messages. The scratch registry is dropped
	// right here, which leaves those messages unowned: they reach the owner
	// only through forwarding, never through direct handler lookup.
	scratch := &Instance[P, S]{
		def:      rs.owner.def,
		props:    rs.owner.props,
		state:    rs.owner.state,
		registry: newRegistry[P, S](),
		cache:    newCache[P, S](),
		env:      rs.owner.env,
		mounted:  true,
		scratch:  true,
	}
	handles := make([]renderer.Handle, len(nodes))
	for idx, n := range nodes {
		handles[idx] = scratch.materialize(vdom.Key(idx), n)
	}
	rs.owner.env.metrics.RecordRow()
	return handles
}
