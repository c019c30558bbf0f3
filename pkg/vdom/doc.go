// Package vdom provides the node description model and the diff engine.
//
// A VNode is a closed tagged union describing one renderable unit and its
// event bindings: labels, static text, buttons, text inputs, selectors,
// lists, and nested custom components. VNodes are pure data; a component's
// render function produces a collection of keyed entries from props and
// state, and the engine reconciles that collection against the previously
// rendered one.
//
// # Diffing
//
// Diff compares two entry collections and returns the ordered patch
// operations transforming the first into the second. Two reconciliation
// strategies sit behind the single entry point: StrategyKeyed matches
// entries by their stable numeric key regardless of order (the default —
// positional matching silently breaks element identity under reordering),
// and StrategyPositional matches by collection index.
//
// Nodes of different kinds under the same key are always replaced wholesale;
// there is no cross-kind morphing. Custom nodes backed by the same component
// definition are updated in place so nested state survives; a definition
// change replaces the instance. List nodes are opaque to the diff — their
// rows are pulled lazily by the backend and never reconciled here.
//
// Handlers are compared by function pointer identity, never by invocation.
package vdom
