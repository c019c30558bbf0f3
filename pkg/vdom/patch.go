package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetOptions  PatchOp = 0x02 // Replace selector options
	PatchSetHandler  PatchOp = 0x03 // Rebind an event handler
	PatchUpdateProps PatchOp = 0x04 // Push new props into a nested instance
	PatchReplace     PatchOp = 0x05 // Unmount and remount under the same key
	PatchInsert      PatchOp = 0x06 // Mount a new primitive
	PatchRemove      PatchOp = 0x07 // Unmount and evict
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetOptions:
		return "SetOptions"
	case PatchSetHandler:
		return "SetHandler"
	case PatchUpdateProps:
		return "UpdateProps"
	case PatchReplace:
		return "Replace"
	case PatchInsert:
		return "Insert"
	case PatchRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// Patch represents a single operation to apply against the renderer.
type Patch[P, S comparable] struct {
	Op      PatchOp
	Key     Key         // Target entry
	Text    string      // For SetText
	Options []string    // For SetOptions
	Node    VNode[P, S] // For SetHandler/UpdateProps/Replace/Insert
}
