package component

import (
	"testing"

	"github.com/canopy-ui/canopy/pkg/comptest"
	"github.com/canopy-ui/canopy/pkg/vdom"
)

type todoState struct{ N int }

func addTodo(_ unit, s *todoState)  { s.N++ }
func noteDone(_ unit, s *todoState) {}

func todoRow(index int, _ unit, s todoState) []vdom.VNode[unit, todoState] {
	return []vdom.VNode[unit, todoState]{
		vdom.Labelf[unit, todoState]("todo %d of %d", index, s.N),
		vdom.Button[unit, todoState]("done", noteDone),
	}
}

var todoDef = &Def[unit, todoState]{
	Name: "todos",
	Render: func(_ unit, s todoState) []vdom.Entry[unit, todoState] {
		return vdom.Items(
			vdom.Button[unit, todoState]("add", addTodo),
			vdom.List[unit, todoState](s.N, todoRow),
		)
	},
}

func listSource(t *testing.T, h *comptest.Harness) *comptest.Primitive {
	t.Helper()
	lists := h.Renderer.ByKind(comptest.KindList)
	if len(lists) != 1 {
		t.Fatalf("mounted lists = %d, want 1", len(lists))
	}
	return lists[0]
}

func TestListRowCountTracksCommittedState(t *testing.T) {
	h, _ := mountRoot(t, todoDef, unit{})
	list := listSource(t, h)

	if got := list.Rows().RowCount(); got != 0 {
		t.Fatalf("RowCount = %d, want 0", got)
	}

	h.ClickButton("add")
	h.ClickButton("add")
	if got := list.Rows().RowCount(); got != 2 {
		t.Errorf("RowCount after two adds = %d, want 2", got)
	}
}

func TestListRowsMaterializeFreshEachPull(t *testing.T) {
	h, _ := mountRoot(t, todoDef, unit{})
	h.ClickButton("add")
	list := listSource(t, h)

	first := list.Rows().RowContent(0)
	if len(first) != 2 {
		t.Fatalf("row handles = %d, want 2", len(first))
	}
	label := first[0].(*comptest.Primitive)
	if label.Kind != comptest.KindLabel || label.Text != "todo 0 of 1" {
		t.Errorf("row[0] = %s %q, want label %q", label.Kind, label.Text, "todo 0 of 1")
	}

	second := list.Rows().RowContent(0)
	if second[0].(*comptest.Primitive) == label {
		t.Errorf("second pull reused a primitive; rows must be rebuilt per request")
	}
}

type archiveState struct{ Archived bool }

func archive(_ unit, s *archiveState) { s.Archived = true }

func archiveRow(index int, _ unit, _ archiveState) []vdom.VNode[unit, archiveState] {
	return []vdom.VNode[unit, archiveState]{vdom.Labelf[unit, archiveState]("item %d", index)}
}

var archiveDef = &Def[unit, archiveState]{
	Name: "archive",
	Render: func(_ unit, s archiveState) []vdom.Entry[unit, archiveState] {
		entries := []vdom.Entry[unit, archiveState]{
			vdom.Keyed(0, vdom.Button[unit, archiveState]("archive", archive)),
		}
		if !s.Archived {
			entries = append(entries, vdom.Keyed(1, vdom.List[unit, archiveState](3, archiveRow)))
		}
		return entries
	},
}

func TestListRowCountZeroAfterEviction(t *testing.T) {
	h, _ := mountRoot(t, archiveDef, unit{})
	rows := listSource(t, h).Rows()
	if got := rows.RowCount(); got != 3 {
		t.Fatalf("RowCount = %d, want 3", got)
	}

	// The backend may query a retained source after the entry is gone; it
	// must see an empty list, not the last committed count.
	h.ClickButton("archive")
	if got := rows.RowCount(); got != 0 {
		t.Errorf("RowCount after eviction = %d, want 0", got)
	}
}

func TestListRowHandlersHaveNoOwner(t *testing.T) {
	h, inst := mountRoot(t, todoDef, unit{})
	h.ClickButton("add")
	list := listSource(t, h)
	owned := inst.registry.size()

	row := list.Rows().RowContent(0)
	button := row[1].(*comptest.Primitive)
	if button.Kind != comptest.KindButton {
		t.Fatalf("row[1] = %s, want button", button.Kind)
	}

	// The row button schedules a real message, but its handler lives in a
	// registry that was thrown away after materialization. The message is
	// broadcast and dies unowned.
	ops := len(h.Renderer.Ops)
	button.Fire()
	if got := inst.registry.size(); got != owned {
		t.Errorf("registry size = %d after row pull, want %d", got, owned)
	}
	if got := len(h.Renderer.Ops); got != ops {
		t.Errorf("unowned row message touched the backend: %v", h.Renderer.Ops[ops:])
	}
}
