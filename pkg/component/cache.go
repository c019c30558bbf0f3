package component

import (
	"github.com/canopy-ui/canopy/pkg/renderer"
	"github.com/canopy-ui/canopy/pkg/vdom"
)

// cacheEntry pairs a node from the last committed render with the backend
// handle it materialized into. For Custom nodes the cached child is the live
// mounted instance, not the blueprint from the latest render output.
type cacheEntry[P, S comparable] struct {
	key    vdom.Key
	node   vdom.VNode[P, S]
	handle renderer.Handle
}

// nodeCache holds the committed output of an instance's last render, in
// output order. After every render its key set equals the key set of the
// render output exactly.
type nodeCache[P, S comparable] struct {
	ordered []*cacheEntry[P, S]
	byKey   map[vdom.Key]*cacheEntry[P, S]
}

func newCache[P, S comparable]() *nodeCache[P, S] {
	return &nodeCache[P, S]{byKey: make(map[vdom.Key]*cacheEntry[P, S])}
}

func (c *nodeCache[P, S]) get(key vdom.Key) (*cacheEntry[P, S], bool) {
	e, ok := c.byKey[key]
	return e, ok
}

// put adds a freshly inserted entry at the end of the order. The commit pass
// after patching establishes the real order.
func (c *nodeCache[P, S]) put(key vdom.Key, node vdom.VNode[P, S], handle renderer.Handle) {
	e := &cacheEntry[P, S]{key: key, node: node, handle: handle}
	c.byKey[key] = e
	c.ordered = append(c.ordered, e)
}

func (c *nodeCache[P, S]) remove(key vdom.Key) {
	e, ok := c.byKey[key]
	if !ok {
		return
	}
	delete(c.byKey, key)
	for i, o := range c.ordered {
		if o == e {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			break
		}
	}
}

// entries returns the committed output as a diffable collection.
func (c *nodeCache[P, S]) entries() []vdom.Entry[P, S] {
	out := make([]vdom.Entry[P, S], len(c.ordered))
	for i, e := range c.ordered {
		out[i] = vdom.Entry[P, S]{Key: e.key, Node: e.node}
	}
	return out
}

// handles returns the backend handles in committed output order.
func (c *nodeCache[P, S]) handles() []renderer.Handle {
	out := make([]renderer.Handle, len(c.ordered))
	for i, e := range c.ordered {
		out[i] = e.handle
	}
	return out
}

func (c *nodeCache[P, S]) clear() {
	c.ordered = nil
	c.byKey = make(map[vdom.Key]*cacheEntry[P, S])
}
