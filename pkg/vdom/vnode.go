package vdom

import (
	"reflect"
	"slices"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindLabel     Kind = iota // Dynamic text line
	KindText                  // Static text
	KindButton                // Pressable button
	KindTextInput             // Editable text field
	KindSelect                // Option selector
	KindList                  // Bulk row list (delegated to the backend)
	KindCustom                // Nested component
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "Label"
	case KindText:
		return "Text"
	case KindButton:
		return "Button"
	case KindTextInput:
		return "TextInput"
	case KindSelect:
		return "Select"
	case KindList:
		return "List"
	case KindCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Key is the stable numeric reconciliation key of an entry. Under keyed
// reconciliation keys carry identity across renders regardless of order;
// under positional reconciliation they are the collection index.
type Key int

// ClickHandler fires on a button press. It mutates state and always
// requests a re-render afterwards.
type ClickHandler[P, S comparable] func(props P, state *S)

// ChangeHandler fires with the new text of an input field. It returns
// whether a re-render is warranted.
type ChangeHandler[P, S comparable] func(props P, state *S, text string) bool

// SelectHandler fires with the chosen option index. It returns whether a
// re-render is warranted.
type SelectHandler[P, S comparable] func(props P, state *S, index int) bool

// ItemRender computes the node collection for one list row from the owning
// component's live props and state.
type ItemRender[P, S comparable] func(index int, props P, state S) []VNode[P, S]

// Child is the type-erased surface the diff needs from a nested component
// instance. The full mounting capability is implemented by the component
// package; the diff only compares identity and props.
type Child interface {
	// ComponentName names the concrete component type, for logs and faults.
	ComponentName() string

	// SameTypeAs reports whether other is backed by the same component
	// definition. Same type means update in place; different type means
	// replace.
	SameTypeAs(other Child) bool

	// EqualTo reports whether other is the same type with equal props.
	EqualTo(other Child) bool
}

// VNode is a closed tagged union describing one renderable unit and its
// event bindings. Which fields are meaningful depends on Kind. VNodes are
// pure data; they do nothing on their own.
type VNode[P, S comparable] struct {
	Kind    Kind
	Text    string              // Label/Text/Button text, TextInput initial value
	Options []string            // Select options
	Click   ClickHandler[P, S]  // Button
	Change  ChangeHandler[P, S] // TextInput
	Select  SelectHandler[P, S] // Select
	Count   int                 // List row count
	Item    ItemRender[P, S]    // List per-row render
	Child   Child               // Custom nested instance
}

// Entry is one keyed element of a render output collection.
type Entry[P, S comparable] struct {
	Key  Key
	Node VNode[P, S]
}

// Equal reports field-level value equality. Handler fields compare by
// function pointer identity; Custom nodes compare by definition identity
// plus props equality. Two value-equal nodes diff to zero patches.
func (v VNode[P, S]) Equal(o VNode[P, S]) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindLabel, KindText:
		return v.Text == o.Text
	case KindButton:
		return v.Text == o.Text && sameFunc(v.Click, o.Click)
	case KindTextInput:
		return v.Text == o.Text && sameFunc(v.Change, o.Change)
	case KindSelect:
		return slices.Equal(v.Options, o.Options) && sameFunc(v.Select, o.Select)
	case KindList:
		return v.Count == o.Count && sameFunc(v.Item, o.Item)
	case KindCustom:
		return sameChild(v.Child, o.Child)
	default:
		return false
	}
}

// sameFunc compares two function values by code pointer. Handlers are never
// invoked to compare them.
func sameFunc(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	aNil := !av.IsValid() || av.IsNil()
	bNil := !bv.IsValid() || bv.IsNil()
	if aNil || bNil {
		return aNil == bNil
	}
	return av.Pointer() == bv.Pointer()
}

func sameChild(a, b Child) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.SameTypeAs(b) && a.EqualTo(b)
}
