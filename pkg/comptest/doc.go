// Package comptest provides testing helpers for engine components.
//
// The package reduces boilerplate when testing component behavior end to
// end: a FakeRenderer that records every primitive the engine creates, an
// InlineScheduler that delivers messages synchronously instead of through a
// dispatch loop, and a Harness that drives backend callbacks the way a user
// would.
//
// # Quick Start
//
//	func TestCounter_Increment(t *testing.T) {
//	    h := comptest.NewHarness(t)
//	    inst := component.New(counterDef, counterProps{})
//	    inst.Mount(h.Renderer, h.Scheduler, h.Window(), component.WithLogger(comptest.QuietLogger()))
//	    h.Scheduler.Bind(inst)
//
//	    h.ClickButton("+")
//	    h.ExpectLabel("count: 1")
//	}
//
// Backend callbacks fire synchronously: ClickButton schedules a Click
// message, the InlineScheduler hands it straight to the bound sink, and the
// resulting render completes before ClickButton returns.
package comptest
