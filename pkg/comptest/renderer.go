package comptest

import (
	"fmt"

	"github.com/canopy-ui/canopy/pkg/renderer"
)

// Primitive kinds recorded by the FakeRenderer.
const (
	KindGroup  = "group"
	KindLabel  = "label"
	KindText   = "text"
	KindButton = "button"
	KindInput  = "input"
	KindSelect = "select"
	KindList   = "list"
)

// Primitive is one backend object created through the FakeRenderer. Handles
// returned by the renderer are *Primitive values, so tests can inspect any
// handle the engine holds.
type Primitive struct {
	ID      int
	Kind    string
	Text    string
	Options []string
	Mounted bool

	fire     func()
	change   func(string)
	selected func(int)
	rows     renderer.RowSource

	children []*Primitive
}

// LayoutCall records one Layout invocation.
type LayoutCall struct {
	Parent   renderer.Handle
	Children []renderer.Handle
	Padding  float64
}

// FakeRenderer implements renderer.Renderer against in-memory primitives
// and records everything the engine does to them.
type FakeRenderer struct {
	Prims   []*Primitive
	Ops     []string
	Layouts []LayoutCall

	nextID int
}

// NewFakeRenderer creates an empty fake backend.
func NewFakeRenderer() *FakeRenderer {
	return &FakeRenderer{}
}

func (f *FakeRenderer) create(kind string) *Primitive {
	f.nextID++
	p := &Primitive{ID: f.nextID, Kind: kind}
	f.Prims = append(f.Prims, p)
	f.Ops = append(f.Ops, fmt.Sprintf("create %s #%d", kind, p.ID))
	return p
}

func (f *FakeRenderer) CreateGroup() renderer.Handle {
	return f.create(KindGroup)
}

func (f *FakeRenderer) CreateLabel(text string) renderer.Handle {
	p := f.create(KindLabel)
	p.Text = text
	return p
}

func (f *FakeRenderer) CreateText(text string) renderer.Handle {
	p := f.create(KindText)
	p.Text = text
	return p
}

func (f *FakeRenderer) CreateButton(text string, fire func()) renderer.Handle {
	p := f.create(KindButton)
	p.Text = text
	p.fire = fire
	return p
}

func (f *FakeRenderer) CreateTextInput(value string, change func(string)) renderer.Handle {
	p := f.create(KindInput)
	p.Text = value
	p.change = change
	return p
}

func (f *FakeRenderer) CreateSelect(options []string, selected func(int)) renderer.Handle {
	p := f.create(KindSelect)
	p.Options = options
	p.selected = selected
	return p
}

func (f *FakeRenderer) CreateList(rows renderer.RowSource) renderer.Handle {
	p := f.create(KindList)
	p.rows = rows
	return p
}

func (f *FakeRenderer) UpdateText(h renderer.Handle, text string) {
	p := f.prim(h)
	p.Text = text
	f.Ops = append(f.Ops, fmt.Sprintf("text #%d %q", p.ID, text))
}

func (f *FakeRenderer) UpdateOptions(h renderer.Handle, options []string) {
	p := f.prim(h)
	p.Options = options
	f.Ops = append(f.Ops, fmt.Sprintf("options #%d %v", p.ID, options))
}

func (f *FakeRenderer) SetButtonAction(h renderer.Handle, fire func()) {
	p := f.prim(h)
	p.fire = fire
	f.Ops = append(f.Ops, fmt.Sprintf("rebind #%d", p.ID))
}

func (f *FakeRenderer) SetInputAction(h renderer.Handle, change func(string)) {
	p := f.prim(h)
	p.change = change
	f.Ops = append(f.Ops, fmt.Sprintf("rebind #%d", p.ID))
}

func (f *FakeRenderer) SetSelectAction(h renderer.Handle, selected func(int)) {
	p := f.prim(h)
	p.selected = selected
	f.Ops = append(f.Ops, fmt.Sprintf("rebind #%d", p.ID))
}

func (f *FakeRenderer) Mount(parent, child renderer.Handle) {
	pp, cp := f.prim(parent), f.prim(child)
	cp.Mounted = true
	pp.children = append(pp.children, cp)
	f.Ops = append(f.Ops, fmt.Sprintf("mount #%d into #%d", cp.ID, pp.ID))
}

func (f *FakeRenderer) Unmount(h renderer.Handle) {
	p := f.prim(h)
	p.Mounted = false
	for _, parent := range f.Prims {
		for i, c := range parent.children {
			if c == p {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
	}
	f.Ops = append(f.Ops, fmt.Sprintf("unmount #%d", p.ID))
}

func (f *FakeRenderer) Layout(children []renderer.Handle, parent renderer.Handle, padding float64) {
	f.Layouts = append(f.Layouts, LayoutCall{Parent: parent, Children: children, Padding: padding})
	f.Ops = append(f.Ops, fmt.Sprintf("layout #%d n=%d", f.prim(parent).ID, len(children)))
}

func (f *FakeRenderer) prim(h renderer.Handle) *Primitive {
	p, ok := h.(*Primitive)
	if !ok {
		panic(fmt.Sprintf("comptest: foreign handle %T", h))
	}
	return p
}

// ByKind returns the mounted primitives of one kind in creation order.
func (f *FakeRenderer) ByKind(kind string) []*Primitive {
	var out []*Primitive
	for _, p := range f.Prims {
		if p.Mounted && p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Rows returns the row source behind a list primitive.
func (p *Primitive) Rows() renderer.RowSource {
	return p.rows
}

// Fire invokes the button callback, as the backend would on a click.
func (p *Primitive) Fire() {
	if p.fire != nil {
		p.fire()
	}
}

// Edit invokes the input callback with the typed text.
func (p *Primitive) Edit(text string) {
	if p.change != nil {
		p.change(text)
	}
}

// Choose invokes the select callback with the chosen index.
func (p *Primitive) Choose(index int) {
	if p.selected != nil {
		p.selected(index)
	}
}
