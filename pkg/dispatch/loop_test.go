package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// recordingSink collects delivered messages and signals each delivery.
type recordingSink struct {
	mu        sync.Mutex
	messages  []Message
	delivered chan struct{}
}

func newRecordingSink(capacity int) *recordingSink {
	return &recordingSink{delivered: make(chan struct{}, capacity)}
}

func (s *recordingSink) Dispatch(msg Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	s.delivered <- struct{}{}
}

func (s *recordingSink) snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func waitDeliveries(t *testing.T, sink *recordingSink, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-sink.delivered:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func TestLoopDeliversInOrder(t *testing.T) {
	sink := newRecordingSink(16)
	loop := NewLoop(sink, WithBuffer(16), WithLogger(slog.Default()))
	defer loop.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	for i := 1; i <= 10; i++ {
		loop.Schedule(Message{ID: ID(i), Payload: Click{}})
	}

	waitDeliveries(t, sink, 10)

	got := sink.snapshot()
	if len(got) != 10 {
		t.Fatalf("delivered %d messages, want 10", len(got))
	}
	for i, msg := range got {
		if msg.ID != ID(i+1) {
			t.Errorf("delivery %d has ID %d, want %d", i, msg.ID, i+1)
		}
	}
}

func TestLoopDropsAfterClose(t *testing.T) {
	sink := newRecordingSink(1)
	loop := NewLoop(sink, WithBuffer(1))

	loop.Close()
	loop.Schedule(Message{ID: 1, Payload: Click{}})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	loop.Run(ctx)

	if got := sink.snapshot(); len(got) != 0 {
		t.Errorf("delivered %d messages after close, want 0", len(got))
	}
}

func TestLoopCloseIdempotent(t *testing.T) {
	loop := NewLoop(newRecordingSink(1))
	loop.Close()
	loop.Close()
}

func TestLoopRunStopsOnContextCancel(t *testing.T) {
	sink := newRecordingSink(1)
	loop := NewLoop(sink)
	defer loop.Close()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(stopped)
	}()

	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}
