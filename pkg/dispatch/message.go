package dispatch

// ID identifies a registered handler. IDs are unique within one application
// root for its whole lifetime and are never reissued.
type ID uint64

// Message is the envelope delivered through the serialized dispatch context.
type Message struct {
	ID      ID
	Payload Payload
}

// Equal reports value equality of two messages. Messages carrying Custom
// payloads are never equal.
func (m Message) Equal(o Message) bool {
	if m.ID != o.ID {
		return false
	}
	if m.Payload == nil || o.Payload == nil {
		return m.Payload == nil && o.Payload == nil
	}
	return m.Payload.Equal(o.Payload)
}

// Payload is the closed set of message payloads.
type Payload interface {
	// Kind returns the payload discriminator name.
	Kind() string

	// Equal reports value equality with another payload.
	Equal(other Payload) bool
}

// Click is a button press. It carries no data.
type Click struct{}

// Kind implements Payload.
func (Click) Kind() string { return "click" }

// Equal implements Payload.
func (Click) Equal(other Payload) bool {
	_, ok := other.(Click)
	return ok
}

// Change carries the new text of an edited input field.
type Change struct {
	Text string
}

// Kind implements Payload.
func (Change) Kind() string { return "change" }

// Equal implements Payload.
func (c Change) Equal(other Payload) bool {
	o, ok := other.(Change)
	return ok && o.Text == c.Text
}

// Select carries the chosen index of a selector.
type Select struct {
	Index int
}

// Kind implements Payload.
func (Select) Kind() string { return "select" }

// Equal implements Payload.
func (s Select) Equal(other Payload) bool {
	o, ok := other.(Select)
	return ok && o.Index == s.Index
}

// Custom carries an application-defined value routed to component reducers.
type Custom struct {
	Value any
}

// Kind implements Payload.
func (Custom) Kind() string { return "custom" }

// Equal implements Payload. Custom payloads are never equal to anything,
// including themselves: the value is type-erased, so structural comparison
// is not available and false is the conservative answer.
func (Custom) Equal(Payload) bool { return false }

// Scheduler enqueues a message for serialized delivery. Renderer backends
// call it from their input callbacks.
type Scheduler interface {
	Schedule(msg Message)
}

// Sink receives delivered messages. The root component instance is the
// usual sink.
type Sink interface {
	Dispatch(msg Message)
}
