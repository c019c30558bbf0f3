package vdom

import (
	"testing"

	"github.com/canopy-ui/canopy/internal/errors"
)

type diffProps struct{ Title string }

type diffState struct{ Count int }

func clickInc(_ diffProps, s *diffState) { s.Count++ }

func clickDec(_ diffProps, s *diffState) { s.Count-- }

func changeNoop(_ diffProps, _ *diffState, _ string) bool { return false }

func itemEmpty(_ int, _ diffProps, _ diffState) []VNode[diffProps, diffState] { return nil }

func itemAlso(_ int, _ diffProps, _ diffState) []VNode[diffProps, diffState] { return nil }

// fakeChild stands in for a nested component instance.
type fakeChild struct {
	name  string
	props int
}

func (f *fakeChild) ComponentName() string { return f.name }

func (f *fakeChild) SameTypeAs(other Child) bool {
	o, ok := other.(*fakeChild)
	return ok && o.name == f.name
}

func (f *fakeChild) EqualTo(other Child) bool {
	o, ok := other.(*fakeChild)
	return ok && o.name == f.name && o.props == f.props
}

func TestDiffEmptyCollections(t *testing.T) {
	patches := Diff[diffProps, diffState](nil, nil, StrategyKeyed)
	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffInsertsInOrder(t *testing.T) {
	next := []Entry[diffProps, diffState]{
		Keyed(Key(0), Button("Increment", clickInc)),
		Keyed(Key(1), Label[diffProps, diffState]("0")),
	}

	patches := Diff(nil, next, StrategyKeyed)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d", len(patches))
	}
	if patches[0].Op != PatchInsert || patches[0].Key != 0 {
		t.Errorf("patches[0] = %v key %d, want Insert key 0", patches[0].Op, patches[0].Key)
	}
	if patches[1].Op != PatchInsert || patches[1].Key != 1 {
		t.Errorf("patches[1] = %v key %d, want Insert key 1", patches[1].Op, patches[1].Key)
	}
}

func TestDiffLabelTextChange(t *testing.T) {
	prev := Items(Label[diffProps, diffState]("0"))
	next := Items(Label[diffProps, diffState]("1"))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetText {
		t.Errorf("Op = %v, want SetText", patches[0].Op)
	}
	if patches[0].Text != "1" {
		t.Errorf("Text = %q, want 1", patches[0].Text)
	}
}

func TestDiffUnchangedCollection(t *testing.T) {
	build := func() []Entry[diffProps, diffState] {
		return Items(
			Button("Increment", clickInc),
			Label[diffProps, diffState]("0"),
			Select[diffProps, diffState]([]string{"a", "b"}, nil),
		)
	}

	patches := Diff(build(), build(), StrategyKeyed)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches for value-equal collections, got %d", len(patches))
	}
}

func TestDiffReplaceOnKindChange(t *testing.T) {
	prev := Items(Label[diffProps, diffState]("hi"))
	next := Items(Button("hi", clickInc))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 1 {
		t.Fatalf("Expected exactly 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchReplace {
		t.Errorf("Op = %v, want Replace", patches[0].Op)
	}
	if patches[0].Node.Kind != KindButton {
		t.Errorf("replacement Kind = %v, want Button", patches[0].Node.Kind)
	}
}

func TestDiffKeyedUpdateAndRemoval(t *testing.T) {
	prev := []Entry[diffProps, diffState]{
		Keyed(Key(0), Label[diffProps, diffState]("a")),
		Keyed(Key(1), Label[diffProps, diffState]("b")),
	}
	next := []Entry[diffProps, diffState]{
		Keyed(Key(1), Label[diffProps, diffState]("b2")),
	}

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d", len(patches))
	}
	if patches[0].Op != PatchSetText || patches[0].Key != 1 || patches[0].Text != "b2" {
		t.Errorf("patches[0] = %v key %d %q, want SetText key 1 b2",
			patches[0].Op, patches[0].Key, patches[0].Text)
	}
	if patches[1].Op != PatchRemove || patches[1].Key != 0 {
		t.Errorf("patches[1] = %v key %d, want Remove key 0", patches[1].Op, patches[1].Key)
	}
}

func TestDiffKeyedOrderInsensitive(t *testing.T) {
	prev := []Entry[diffProps, diffState]{
		Keyed(Key(1), Label[diffProps, diffState]("a")),
		Keyed(Key(2), Label[diffProps, diffState]("b")),
	}
	next := []Entry[diffProps, diffState]{
		Keyed(Key(2), Label[diffProps, diffState]("b")),
		Keyed(Key(1), Label[diffProps, diffState]("a")),
	}

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches under keyed reorder, got %d", len(patches))
	}
}

func TestDiffPositionalIgnoresKeys(t *testing.T) {
	prev := []Entry[diffProps, diffState]{
		Keyed(Key(9), Label[diffProps, diffState]("a")),
		Keyed(Key(3), Label[diffProps, diffState]("b")),
	}
	next := []Entry[diffProps, diffState]{
		Keyed(Key(5), Label[diffProps, diffState]("a")),
		Keyed(Key(7), Label[diffProps, diffState]("b")),
	}

	patches := Diff(prev, next, StrategyPositional)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffPositionalShrink(t *testing.T) {
	prev := Items(
		Label[diffProps, diffState]("a"),
		Label[diffProps, diffState]("b"),
		Label[diffProps, diffState]("c"),
	)
	next := Items(
		Label[diffProps, diffState]("a"),
		Label[diffProps, diffState]("b"),
	)

	patches := Diff(prev, next, StrategyPositional)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchRemove || patches[0].Key != 2 {
		t.Errorf("patch = %v key %d, want Remove key 2", patches[0].Op, patches[0].Key)
	}
}

func TestDiffEmptyNextRemovesEverything(t *testing.T) {
	prev := Items(
		Label[diffProps, diffState]("a"),
		Button("b", clickInc),
	)

	patches := Diff(prev, nil, StrategyKeyed)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d", len(patches))
	}
	for i, p := range patches {
		if p.Op != PatchRemove {
			t.Errorf("patches[%d].Op = %v, want Remove", i, p.Op)
		}
	}
}

func TestDiffButtonHandlerChange(t *testing.T) {
	prev := Items(Button("go", clickInc))
	next := Items(Button("go", clickDec))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetHandler {
		t.Errorf("Op = %v, want SetHandler", patches[0].Op)
	}
}

func TestDiffButtonTextAndHandlerChange(t *testing.T) {
	prev := Items(Button("go", clickInc))
	next := Items(Button("stop", clickDec))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d", len(patches))
	}
	if patches[0].Op != PatchSetText || patches[1].Op != PatchSetHandler {
		t.Errorf("ops = %v, %v; want SetText, SetHandler", patches[0].Op, patches[1].Op)
	}
}

func TestDiffTextInputValueChange(t *testing.T) {
	prev := Items(TextInput("old", changeNoop))
	next := Items(TextInput("new", changeNoop))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetText || patches[0].Text != "new" {
		t.Errorf("patch = %v %q, want SetText new", patches[0].Op, patches[0].Text)
	}
}

func TestDiffSelectOptionsChange(t *testing.T) {
	prev := Items(Select[diffProps, diffState]([]string{"a", "b"}, nil))
	next := Items(Select[diffProps, diffState]([]string{"a", "b", "c"}, nil))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetOptions {
		t.Errorf("Op = %v, want SetOptions", patches[0].Op)
	}
	if len(patches[0].Options) != 3 {
		t.Errorf("Options = %v, want 3 entries", patches[0].Options)
	}
}

func TestDiffListIsOpaque(t *testing.T) {
	prev := Items(List(10, itemEmpty))
	next := Items(List(25, itemAlso))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches for list nodes, got %d", len(patches))
	}
}

func TestDiffCustomSameTypePropsChange(t *testing.T) {
	prev := Items(Custom[diffProps, diffState](&fakeChild{name: "Counter", props: 1}))
	next := Items(Custom[diffProps, diffState](&fakeChild{name: "Counter", props: 2}))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchUpdateProps {
		t.Errorf("Op = %v, want UpdateProps", patches[0].Op)
	}
}

func TestDiffCustomSameTypeEqualProps(t *testing.T) {
	prev := Items(Custom[diffProps, diffState](&fakeChild{name: "Counter", props: 1}))
	next := Items(Custom[diffProps, diffState](&fakeChild{name: "Counter", props: 1}))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffCustomTypeChangeReplaces(t *testing.T) {
	prev := Items(Custom[diffProps, diffState](&fakeChild{name: "Counter", props: 1}))
	next := Items(Custom[diffProps, diffState](&fakeChild{name: "Timer", props: 1}))

	patches := Diff(prev, next, StrategyKeyed)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchReplace {
		t.Errorf("Op = %v, want Replace", patches[0].Op)
	}
}

func TestDiffDuplicateKeyFaults(t *testing.T) {
	next := []Entry[diffProps, diffState]{
		Keyed(Key(0), Label[diffProps, diffState]("a")),
		Keyed(Key(0), Label[diffProps, diffState]("b")),
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on duplicate key")
		}
		err, ok := r.(*errors.EngineError)
		if !ok {
			t.Fatalf("panic value %T, want *errors.EngineError", r)
		}
		if err.Code != "CY004" {
			t.Errorf("Code = %s, want CY004", err.Code)
		}
	}()

	Diff(nil, next, StrategyKeyed)
}

func TestDiffIdempotent(t *testing.T) {
	render := func() []Entry[diffProps, diffState] {
		return Items(
			Button("Increment", clickInc),
			Labelf[diffProps, diffState]("%d", 0),
			List(3, itemEmpty),
			Custom[diffProps, diffState](&fakeChild{name: "Counter", props: 1}),
		)
	}

	if patches := Diff(render(), render(), StrategyKeyed); len(patches) != 0 {
		t.Errorf("diff of identical render outputs = %d patches, want 0", len(patches))
	}
	if patches := Diff(render(), render(), StrategyPositional); len(patches) != 0 {
		t.Errorf("positional diff of identical outputs = %d patches, want 0", len(patches))
	}
}
