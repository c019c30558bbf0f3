package comptest

import (
	"testing"

	"github.com/canopy-ui/canopy/pkg/dispatch"
)

func TestFakeRendererTracksMountState(t *testing.T) {
	f := NewFakeRenderer()
	group := f.CreateGroup()
	label := f.CreateLabel("hello")

	f.Mount(group, label)
	if got := f.ByKind(KindLabel); len(got) != 1 || got[0].Text != "hello" {
		t.Fatalf("ByKind(label) = %v, want one label %q", got, "hello")
	}

	f.Unmount(label)
	if got := f.ByKind(KindLabel); len(got) != 0 {
		t.Errorf("ByKind(label) after unmount = %v, want none", got)
	}
	if children := f.prim(group).children; len(children) != 0 {
		t.Errorf("group children after unmount = %d, want 0", len(children))
	}
}

func TestFakeRendererUpdatesAreVisible(t *testing.T) {
	f := NewFakeRenderer()
	h := f.CreateLabel("a")
	f.UpdateText(h, "b")
	if got := f.prim(h).Text; got != "b" {
		t.Errorf("text = %q, want %q", got, "b")
	}
}

type captureSink struct {
	got []dispatch.Message
}

func (s *captureSink) Dispatch(msg dispatch.Message) {
	s.got = append(s.got, msg)
}

func TestInlineSchedulerDeliversSynchronously(t *testing.T) {
	sched := &InlineScheduler{}
	sched.Schedule(dispatch.Message{ID: 1, Payload: dispatch.Click{}})

	sink := &captureSink{}
	sched.Bind(sink)
	sched.Schedule(dispatch.Message{ID: 2, Payload: dispatch.Click{}})

	if len(sink.got) != 1 || sink.got[0].ID != 2 {
		t.Fatalf("delivered = %v, want only message 2", sink.got)
	}
}
