package vdom

import (
	"fmt"

	"github.com/canopy-ui/canopy/internal/errors"
)

// Label creates a dynamic text node.
func Label[P, S comparable](text string) VNode[P, S] {
	return VNode[P, S]{Kind: KindLabel, Text: text}
}

// Labelf creates a formatted label node.
func Labelf[P, S comparable](format string, args ...any) VNode[P, S] {
	return Label[P, S](fmt.Sprintf(format, args...))
}

// Text creates a static text node.
func Text[P, S comparable](text string) VNode[P, S] {
	return VNode[P, S]{Kind: KindText, Text: text}
}

// Button creates a button node. click may be nil for an inert button.
func Button[P, S comparable](text string, click ClickHandler[P, S]) VNode[P, S] {
	return VNode[P, S]{Kind: KindButton, Text: text, Click: click}
}

// TextInput creates a text field node with an initial value. change may be
// nil for a display-only field.
func TextInput[P, S comparable](value string, change ChangeHandler[P, S]) VNode[P, S] {
	return VNode[P, S]{Kind: KindTextInput, Text: value, Change: change}
}

// Select creates a selector node over options. selected may be nil.
func Select[P, S comparable](options []string, selected SelectHandler[P, S]) VNode[P, S] {
	return VNode[P, S]{Kind: KindSelect, Options: options, Select: selected}
}

// List creates a list node whose rows are pulled lazily by the backend.
func List[P, S comparable](count int, item ItemRender[P, S]) VNode[P, S] {
	return VNode[P, S]{Kind: KindList, Count: count, Item: item}
}

// Custom creates a nested component node. child is the blueprint instance
// embedding the concrete component type; a nil child is a construction bug.
func Custom[P, S comparable](child Child) VNode[P, S] {
	if child == nil {
		panic(errors.MissingChild())
	}
	return VNode[P, S]{Kind: KindCustom, Child: child}
}

// Keyed wraps a node as an entry with an explicit stable key.
func Keyed[P, S comparable](key Key, node VNode[P, S]) Entry[P, S] {
	return Entry[P, S]{Key: key, Node: node}
}

// Items wraps nodes as entries keyed by their position. Suitable for
// positional reconciliation or for keyed collections that never reorder.
func Items[P, S comparable](nodes ...VNode[P, S]) []Entry[P, S] {
	entries := make([]Entry[P, S], len(nodes))
	for i, node := range nodes {
		entries[i] = Entry[P, S]{Key: Key(i), Node: node}
	}
	return entries
}
