// Package dispatch defines the message envelope and the serialized delivery
// loop that routes user actions back to the component instances owning their
// handlers.
//
// A Message pairs a generated numeric handler ID with a payload: Click,
// Change (new text), Select (chosen index), or Custom (an application-defined
// type-erased value). Payloads are value-comparable except Custom, which is
// deliberately never equal to any payload — type erasure blocks structural
// comparison, and false is the conservative answer.
//
// # Serialized delivery
//
// The engine assumes one logical thread of control. Backends may produce
// messages from platform input callbacks on arbitrary threads; Loop is the
// bridge: Schedule enqueues from anywhere, Run delivers one message at a
// time, in order, exactly once, on a single goroutine. All engine state is
// only ever touched from that goroutine.
//
// IDs come from an IDSource created per mounted root and threaded through
// instance construction. The source is monotonic and never reclaims an ID,
// even after the owning primitive is unmounted.
package dispatch
