package vdom

import (
	"slices"

	"github.com/canopy-ui/canopy/internal/errors"
)

// Strategy selects how entries are matched between two collections.
type Strategy uint8

const (
	// StrategyKeyed matches entries by their stable Key, order-insensitive.
	// This is the default: it preserves element identity under reordering.
	StrategyKeyed Strategy = iota

	// StrategyPositional matches entries by collection index, ignoring the
	// Key field. Reordering is invisible to it and breaks identity.
	StrategyPositional
)

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyKeyed:
		return "Keyed"
	case StrategyPositional:
		return "Positional"
	default:
		return "Unknown"
	}
}

// Diff compares two entry collections and returns the ordered patches
// transforming prev into next. The intersection is processed in next's
// collection order; a second pass emits removals for keys present only in
// prev. Value-equal collections produce no patches.
//
// Duplicate keys in next are a construction bug and raise a fatal fault.
func Diff[P, S comparable](prev, next []Entry[P, S], strategy Strategy) []Patch[P, S] {
	prev = Normalize(prev, strategy)
	next = Normalize(next, strategy)

	prevByKey := make(map[Key]VNode[P, S], len(prev))
	for _, e := range prev {
		prevByKey[e.Key] = e.Node
	}

	var patches []Patch[P, S]
	nextKeys := make(map[Key]struct{}, len(next))

	for _, e := range next {
		if _, dup := nextKeys[e.Key]; dup {
			panic(errors.DuplicateKey(int(e.Key)))
		}
		nextKeys[e.Key] = struct{}{}

		if old, ok := prevByKey[e.Key]; ok {
			diffNodes(e.Key, old, e.Node, &patches)
		} else {
			patches = append(patches, Patch[P, S]{Op: PatchInsert, Key: e.Key, Node: e.Node})
		}
	}

	// Removal pass, in prev collection order.
	for _, e := range prev {
		if _, ok := nextKeys[e.Key]; !ok {
			patches = append(patches, Patch[P, S]{Op: PatchRemove, Key: e.Key})
		}
	}

	return patches
}

// Normalize rewrites entry keys to collection indices under positional
// matching and returns keyed collections unchanged. The input slice is not
// mutated. Callers that cache diffed collections should store the normalized
// form so keys in later patches resolve against it.
func Normalize[P, S comparable](entries []Entry[P, S], strategy Strategy) []Entry[P, S] {
	if strategy != StrategyPositional {
		return entries
	}
	out := make([]Entry[P, S], len(entries))
	for i, e := range entries {
		out[i] = Entry[P, S]{Key: Key(i), Node: e.Node}
	}
	return out
}

// diffNodes compares two nodes under the same key and appends field-level
// patches. A kind change is always a wholesale replace.
func diffNodes[P, S comparable](key Key, prev, next VNode[P, S], patches *[]Patch[P, S]) {
	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch[P, S]{Op: PatchReplace, Key: key, Node: next})
		return
	}

	switch prev.Kind {
	case KindLabel, KindText:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch[P, S]{Op: PatchSetText, Key: key, Text: next.Text})
		}

	case KindButton:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch[P, S]{Op: PatchSetText, Key: key, Text: next.Text})
		}
		if !sameFunc(prev.Click, next.Click) {
			*patches = append(*patches, Patch[P, S]{Op: PatchSetHandler, Key: key, Node: next})
		}

	case KindTextInput:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch[P, S]{Op: PatchSetText, Key: key, Text: next.Text})
		}
		if !sameFunc(prev.Change, next.Change) {
			*patches = append(*patches, Patch[P, S]{Op: PatchSetHandler, Key: key, Node: next})
		}

	case KindSelect:
		if !slices.Equal(prev.Options, next.Options) {
			*patches = append(*patches, Patch[P, S]{Op: PatchSetOptions, Key: key, Options: next.Options})
		}
		if !sameFunc(prev.Select, next.Select) {
			*patches = append(*patches, Patch[P, S]{Op: PatchSetHandler, Key: key, Node: next})
		}

	case KindList:
		// Opaque: rows are pulled lazily from the committed node and the
		// owner's live props/state, so there is nothing to patch.

	case KindCustom:
		a, b := prev.Child, next.Child
		if a == nil || b == nil {
			panic(errors.MissingChild())
		}
		if !a.SameTypeAs(b) {
			*patches = append(*patches, Patch[P, S]{Op: PatchReplace, Key: key, Node: next})
		} else if !a.EqualTo(b) {
			*patches = append(*patches, Patch[P, S]{Op: PatchUpdateProps, Key: key, Node: next})
		}
	}
}
