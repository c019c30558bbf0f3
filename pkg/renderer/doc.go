// Package renderer defines the backend capability the engine renders through.
//
// The engine never draws anything itself: it lowers node descriptions into
// calls on a Renderer, which a platform backend implements with real
// primitives (labels, buttons, text fields, selectors, list rows) and
// geometry. Handles returned by the Renderer are opaque to the engine; it
// only stores them and hands them back.
//
// The fire/change/select callbacks passed to the Create and Set methods are
// the event-origination points. A backend may invoke them from a platform
// input thread; they do nothing but enqueue a message on the serialized
// dispatch context, so no engine state is touched off-loop.
//
// List primitives are pull-based: the backend decides when to call RowCount
// and RowContent (including for row reuse), and receives freshly materialized
// primitives each time.
package renderer
