package comptest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/canopy-ui/canopy/pkg/dispatch"
	"github.com/canopy-ui/canopy/pkg/renderer"
)

// InlineScheduler delivers scheduled messages synchronously to a bound sink.
// It stands in for a dispatch.Loop in tests, so handler effects are visible
// as soon as the triggering call returns.
type InlineScheduler struct {
	sink dispatch.Sink
}

// Bind sets the sink messages are delivered to. Messages scheduled before
// Bind are dropped, matching a loop that has not started.
func (s *InlineScheduler) Bind(sink dispatch.Sink) {
	s.sink = sink
}

// Schedule implements dispatch.Scheduler.
func (s *InlineScheduler) Schedule(msg dispatch.Message) {
	if s.sink != nil {
		s.sink.Dispatch(msg)
	}
}

// QuietLogger returns a logger that discards everything.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Harness bundles the fake backend and the inline scheduler for one test.
type Harness struct {
	T         *testing.T
	Renderer  *FakeRenderer
	Scheduler *InlineScheduler

	window renderer.Handle
}

// NewHarness creates a harness with an empty backend.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	r := NewFakeRenderer()
	return &Harness{
		T:         t,
		Renderer:  r,
		Scheduler: &InlineScheduler{},
		window:    r.CreateGroup(),
	}
}

// Window returns the backend container roots mount into.
func (h *Harness) Window() renderer.Handle {
	h.Renderer.prim(h.window).Mounted = true
	return h.window
}

// ClickButton fires the mounted button carrying the given text.
func (h *Harness) ClickButton(text string) {
	h.T.Helper()
	for _, p := range h.Renderer.ByKind(KindButton) {
		if p.Text == text {
			p.Fire()
			return
		}
	}
	h.T.Fatalf("no mounted button with text %q", text)
}

// TypeInto edits the nth mounted text input.
func (h *Harness) TypeInto(index int, text string) {
	h.T.Helper()
	inputs := h.Renderer.ByKind(KindInput)
	if index >= len(inputs) {
		h.T.Fatalf("no mounted input at index %d (have %d)", index, len(inputs))
	}
	inputs[index].Edit(text)
}

// Pick chooses an option on the nth mounted select.
func (h *Harness) Pick(index, option int) {
	h.T.Helper()
	selects := h.Renderer.ByKind(KindSelect)
	if index >= len(selects) {
		h.T.Fatalf("no mounted select at index %d (have %d)", index, len(selects))
	}
	selects[index].Choose(option)
}

// LabelTexts returns the texts of all mounted labels in creation order.
func (h *Harness) LabelTexts() []string {
	var out []string
	for _, p := range h.Renderer.ByKind(KindLabel) {
		out = append(out, p.Text)
	}
	return out
}

// ExpectLabel fails the test unless some mounted label carries the text.
func (h *Harness) ExpectLabel(text string) {
	h.T.Helper()
	for _, p := range h.Renderer.ByKind(KindLabel) {
		if p.Text == text {
			return
		}
	}
	h.T.Fatalf("no mounted label with text %q, have %v", text, h.LabelTexts())
}
