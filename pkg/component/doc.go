// Package component implements the instance lifecycle of the reconciliation
// engine: mounting a component definition onto a renderer, re-rendering it
// when props or state change, and routing dispatched messages to the handlers
// its nodes registered.
//
// A component is described once by a Def and instantiated many times with
// New. New returns a blueprint: an unmounted instance that carries the
// definition and initial props and nothing else. A blueprint becomes live
// either by mounting it directly as a root,
//
//	inst := component.New(counterDef, counterProps{Start: 3})
//	inst.Mount(backend, loop, window)
//
// or by embedding it in another component's render output as a Custom node,
// in which case the parent mounts it during reconciliation and pushes fresh
// props into it on later renders.
//
// Each render invokes Def.Render with the current props and state, diffs the
// keyed output against the cached output of the previous render, and applies
// the resulting patches to the renderer. Instances whose props and state are
// unchanged since the last committed render skip the cycle entirely.
//
// Message routing follows ownership: an instance that registered the handler
// for a message's identifier invokes it locally, and any other message is
// forwarded to every directly embedded child. Custom payloads go to children
// first and are then offered to the instance's own Reduce function.
package component
