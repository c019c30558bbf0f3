// Package errors defines the structured fault values used by the engine.
//
// Every fault carries a stable code (e.g. "CY002"), a category, a short
// message, and a suggestion for fixing the construction bug that caused it.
// Faults are raised by panicking with an *EngineError: they signal invariant
// violations (cache misses, reentrant state access, foreign child
// implementations, duplicate keys) that can only arise from incorrect
// component code, never from user input. The render/dispatch cycle makes no
// attempt to recover from them.
//
// Expected empty outcomes — a message ID owned by no local handler, two
// type-erased payloads that cannot be compared — are not faults and never
// pass through this package.
package errors
