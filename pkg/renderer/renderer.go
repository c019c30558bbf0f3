package renderer

// Handle identifies one backend primitive. The engine treats handles as
// opaque values: it stores them per cache entry and passes them back to the
// Renderer that produced them.
type Handle any

// RowSource is the pull-based row contract handed to the backend for a list
// primitive. The backend calls it whenever it needs a row's content, e.g. on
// first display or on cell reuse; the engine recomputes the row from the
// owning component's live props and state on every call.
type RowSource interface {
	// RowCount returns the current number of rows.
	RowCount() int

	// RowContent materializes the primitives for one row.
	RowContent(index int) []Handle
}

// Renderer is the capability the engine consumes to create, update, and
// arrange primitives. Implementations live outside the engine.
type Renderer interface {
	// CreateGroup creates an empty container primitive. Each component
	// instance renders into its own group.
	CreateGroup() Handle

	// CreateLabel creates a label primitive showing text.
	CreateLabel(text string) Handle

	// CreateText creates a static text primitive.
	CreateText(text string) Handle

	// CreateButton creates a button primitive. fire is invoked on press;
	// it is nil when the button has no click handler.
	CreateButton(text string, fire func()) Handle

	// CreateTextInput creates a text field primitive with an initial value.
	// change is invoked with the new text on edits; nil when unhandled.
	CreateTextInput(value string, change func(text string)) Handle

	// CreateSelect creates a selector primitive over options. selected is
	// invoked with the chosen index; nil when unhandled.
	CreateSelect(options []string, selected func(index int)) Handle

	// CreateList creates a list primitive driven by rows. The backend owns
	// caching and recycling policy.
	CreateList(rows RowSource) Handle

	// UpdateText replaces the text of a label, static text, button, or
	// text field primitive.
	UpdateText(h Handle, text string)

	// UpdateOptions replaces the options of a selector primitive.
	UpdateOptions(h Handle, options []string)

	// SetButtonAction rebinds a button's press callback. A nil fire clears it.
	SetButtonAction(h Handle, fire func())

	// SetInputAction rebinds a text field's change callback.
	SetInputAction(h Handle, change func(text string))

	// SetSelectAction rebinds a selector's selection callback.
	SetSelectAction(h Handle, selected func(index int))

	// Mount attaches child to parent.
	Mount(parent, child Handle)

	// Unmount detaches h from its parent.
	Unmount(h Handle)

	// Layout arranges children inside parent top-to-bottom with uniform
	// padding on all sides. No other layout policy is in scope.
	Layout(children []Handle, parent Handle, padding float64)
}
