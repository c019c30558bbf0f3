package errors

import "fmt"

// Fault constructors. Each produces an *EngineError carrying a stable code;
// callers deliver the fault by panicking with the returned value.

// CacheMiss reports a patch operation that targeted a key with no cache entry.
func CacheMiss(key int, op string) *EngineError {
	return &EngineError{
		Code:     "CY001",
		Category: CategoryCache,
		Message:  fmt.Sprintf("patch %s targets key %d with no cached primitive", op, key),
		Suggestion: "this means the diff and the cache disagree; check for duplicate " +
			"keys in the component's render output",
	}
}

// ReentrantAccess reports a conflicting borrow of a props or state cell.
func ReentrantAccess(cell, owner string) *EngineError {
	return &EngineError{
		Code:     "CY002",
		Category: CategoryReentrancy,
		Message:  fmt.Sprintf("reentrant access to %s cell of %s", cell, owner),
		Suggestion: "a handler or render function re-entered the instance while its " +
			"state was already borrowed; do not call render or dispatch from inside " +
			"a handler body",
	}
}

// ForeignChild reports a Custom node whose child is not an engine instance.
func ForeignChild(name string) *EngineError {
	return &EngineError{
		Code:     "CY003",
		Category: CategoryDowncast,
		Message:  fmt.Sprintf("custom node child %q is not an engine component instance", name),
		Suggestion: "build Custom nodes with component.Embed so the nested instance " +
			"implements the full mounting capability",
	}
}

// DuplicateKey reports two entries with the same key in one render output.
func DuplicateKey(key int) *EngineError {
	return &EngineError{
		Code:       "CY004",
		Category:   CategoryConstruction,
		Message:    fmt.Sprintf("render output contains key %d more than once", key),
		Suggestion: "keys identify primitives across renders and must be unique within one output",
	}
}

// NotMounted reports an operation that requires a mounted instance.
func NotMounted(op, name string) *EngineError {
	return &EngineError{
		Code:       "CY005",
		Category:   CategoryLifecycle,
		Message:    fmt.Sprintf("%s called on unmounted instance of %s", op, name),
		Suggestion: "call Mount before dispatching messages or pushing props",
	}
}

// MissingChild reports a Custom node built without a nested instance.
func MissingChild() *EngineError {
	return &EngineError{
		Code:       "CY006",
		Category:   CategoryConstruction,
		Message:    "custom node has no nested instance",
		Suggestion: "pass the blueprint returned by component.New to vdom.Custom",
	}
}

// AlreadyMounted reports a second mount of a live instance.
func AlreadyMounted(name string) *EngineError {
	return &EngineError{
		Code:     "CY007",
		Category: CategoryLifecycle,
		Message:  fmt.Sprintf("instance of %s is already mounted", name),
		Suggestion: "an instance binds to exactly one backend container; create a new " +
			"instance with component.New to mount the same definition again",
	}
}

// InvalidDefinition reports a component definition that cannot render.
func InvalidDefinition(name string) *EngineError {
	return &EngineError{
		Code:       "CY008",
		Category:   CategoryConstruction,
		Message:    fmt.Sprintf("component definition %q has no render function", name),
		Suggestion: "set Render on the Def before passing it to component.New",
	}
}
