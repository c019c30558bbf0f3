package errors

import "fmt"

// Category represents the type of fault.
type Category string

const (
	CategoryCache        Category = "cache"
	CategoryReentrancy   Category = "reentrancy"
	CategoryDowncast     Category = "downcast"
	CategoryConstruction Category = "construction"
	CategoryLifecycle    Category = "lifecycle"
)

// EngineError is a structured engine fault with a stable code and a
// suggestion. Instances are created through the constructors in registry.go
// and delivered by panicking.
type EngineError struct {
	// Code is a unique fault identifier (e.g. "CY001").
	Code string

	// Category is the fault type (cache, reentrancy, etc.).
	Category Category

	// Message is a short description of the fault.
	Message string

	// Detail is a longer explanation, if any.
	Detail string

	// Suggestion is a hint on how to fix the construction bug.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *EngineError) Unwrap() error {
	return e.Wrapped
}

// WithDetail returns a copy of the error with the detail set.
func (e *EngineError) WithDetail(format string, args ...any) *EngineError {
	clone := *e
	clone.Detail = fmt.Sprintf(format, args...)
	return &clone
}

// WithWrapped returns a copy of the error wrapping err.
func (e *EngineError) WithWrapped(err error) *EngineError {
	clone := *e
	clone.Wrapped = err
	return &clone
}
