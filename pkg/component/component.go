package component

import (
	"github.com/canopy-ui/canopy/internal/errors"
	"github.com/canopy-ui/canopy/pkg/vdom"
)

// Def describes a component type: how it renders and, optionally, how it
// reduces custom message payloads into state. A Def is declared once and
// shared by every instance of the component; instances compare definitions
// by pointer, so two distinct Def values are two distinct component types
// even when their fields match.
type Def[P, S comparable] struct {
	// Name identifies the component in logs and fault messages.
	Name string

	// Render computes the keyed node collection for the given props and
	// state. It must be pure: same inputs, same output, no side effects.
	Render func(props P, state S) []vdom.Entry[P, S]

	// Reduce folds a custom message payload into state and reports whether
	// the instance should re-render. Nil means the component ignores custom
	// payloads it does not forward.
	Reduce func(props P, state *S, value any) bool
}

// Reducer adapts a typed reducer to the dynamic signature Def.Reduce expects.
// Payloads that are not of type M are ignored and do not trigger a render.
func Reducer[M any, P, S comparable](fn func(props P, state *S, msg M) bool) func(P, *S, any) bool {
	return func(props P, state *S, value any) bool {
		msg, ok := value.(M)
		if !ok {
			return false
		}
		return fn(props, state, msg)
	}
}

// New returns an unmounted instance of def holding the given initial props
// and the zero state. The result is a blueprint until it is mounted, either
// directly with Mount or by a parent reconciling it out of a Custom node.
func New[P, S comparable](def *Def[P, S], props P) *Instance[P, S] {
	if def == nil || def.Render == nil {
		name := ""
		if def != nil {
			name = def.Name
		}
		panic(errors.InvalidDefinition(name))
	}
	var state S
	return &Instance[P, S]{
		def:      def,
		props:    newCell(props, "props", def.Name),
		state:    newCell(state, "state", def.Name),
		registry: newRegistry[P, S](),
		cache:    newCache[P, S](),
	}
}

// Embed wraps a child component blueprint in a Custom node typed for the
// parent's render output. The parent's props and state types are given
// explicitly; the child's are inferred:
//
//	vdom.Keyed(2, component.Embed[appProps, appState](counterDef, counterProps{}))
func Embed[PP, PS, P, S comparable](def *Def[P, S], props P) vdom.VNode[PP, PS] {
	return vdom.Custom[PP, PS](New(def, props))
}
