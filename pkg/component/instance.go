package component

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/canopy-ui/canopy/internal/errors"
	"github.com/canopy-ui/canopy/pkg/dispatch"
	"github.com/canopy-ui/canopy/pkg/metrics"
	"github.com/canopy-ui/canopy/pkg/renderer"
	"github.com/canopy-ui/canopy/pkg/vdom"
)

// env is the root-level machinery an instance tree shares: the renderer the
// tree draws into, the scheduler its handlers feed, and the settings fixed
// at mount time. Children inherit the parent's env unchanged.
type env struct {
	r        renderer.Renderer
	sched    dispatch.Scheduler
	ids      *dispatch.IDSource
	logger   *slog.Logger
	metrics  *metrics.Collector
	strategy vdom.Strategy
	padding  float64
}

// child is the capability surface a parent requires of an embedded instance,
// type-erased over the child's props and state types. Every value built by
// New satisfies it; a vdom.Child from anywhere else is a fatal fault.
type child interface {
	vdom.Child
	Dispatch(msg dispatch.Message)
	mount(e *env)
	unmount()
	handle() renderer.Handle
	updatePropsFrom(other vdom.Child)
}

// asChild asserts that a Custom node's child was built by this package.
func asChild(c vdom.Child) child {
	m, ok := c.(child)
	if !ok {
		name := "nil"
		if c != nil {
			name = c.ComponentName()
		}
		panic(errors.ForeignChild(name))
	}
	return m
}

// Instance is one live (or not yet mounted) occurrence of a component
// definition. It owns the component's props and state, the cache of its last
// committed render, and the handler registry its primitives populate.
//
// An Instance is not safe for concurrent use. All calls must come from the
// single goroutine driving the root, normally a dispatch.Loop.
type Instance[P, S comparable] struct {
	def      *Def[P, S]
	props    *cell[P]
	state    *cell[S]
	registry *registry[P, S]
	cache    *nodeCache[P, S]

	env     *env
	group   renderer.Handle
	mounted bool

	// scratch marks a short-lived instance used only to materialize list
	// rows; its cache is always empty and its registry is discarded.
	scratch bool

	// inputs of the last committed render, for skipping no-op cycles
	lastProps P
	lastState S
	hasLast   bool
}

// ComponentName returns the definition name.
func (i *Instance[P, S]) ComponentName() string {
	return i.def.Name
}

// SameTypeAs reports whether other is an instance of the same definition.
// Identity is the definition pointer, so renaming a Def or building an
// identical one elsewhere still yields a distinct type.
func (i *Instance[P, S]) SameTypeAs(other vdom.Child) bool {
	o, ok := other.(*Instance[P, S])
	return ok && o.def == i.def
}

// EqualTo reports whether other is an instance of the same definition with
// equal props. State is deliberately excluded: props are the parent's view
// of the child, and only the parent's view drives reconciliation.
func (i *Instance[P, S]) EqualTo(other vdom.Child) bool {
	o, ok := other.(*Instance[P, S])
	return ok && o.def == i.def && o.props.get() == i.props.get()
}

// Mount attaches the instance to a backend container and performs its first
// render. The instance becomes the root of a tree: children embedded in its
// render output are mounted recursively with the same settings.
func (i *Instance[P, S]) Mount(r renderer.Renderer, sched dispatch.Scheduler, parent renderer.Handle, opts ...Option) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	i.mount(&env{
		r:        r,
		sched:    sched,
		ids:      config.IDs,
		logger:   config.Logger,
		metrics:  config.Metrics,
		strategy: config.Strategy,
		padding:  config.Padding,
	})
	r.Mount(parent, i.group)
}

// Dispatch implements dispatch.Sink. It routes a message by ownership: a
// payload whose identifier this instance registered is handled locally, and
// anything else is forwarded to every directly embedded child. Custom
// payloads have no owner; they go to all children first and are then offered
// to this instance's own Reduce.
func (i *Instance[P, S]) Dispatch(msg dispatch.Message) {
	if !i.mounted {
		panic(errors.NotMounted("Dispatch", i.def.Name))
	}
	switch p := msg.Payload.(type) {
	case dispatch.Click:
		if h, ok := i.registry.click(msg.ID); ok {
			i.invokeClick(h)
			i.render()
			return
		}
		i.forward(msg)
	case dispatch.Change:
		if h, ok := i.registry.change(msg.ID); ok {
			if i.invokeChange(h, p.Text) {
				i.render()
			}
			return
		}
		i.forward(msg)
	case dispatch.Select:
		if h, ok := i.registry.selection(msg.ID); ok {
			if i.invokeSelect(h, p.Index) {
				i.render()
			}
			return
		}
		i.forward(msg)
	case dispatch.Custom:
		i.forward(msg)
		if i.def.Reduce != nil {
			props := i.props.get()
			rerender := false
			i.state.mutate(func(s *S) {
				rerender = i.def.Reduce(props, s, p.Value)
			})
			if rerender {
				i.render()
			}
		}
	default:
		i.env.logger.Warn("dropping message with unknown payload",
			"component", i.def.Name, "message_id", uint64(msg.ID))
	}
}

// UpdateProps replaces the instance's props and re-renders. Pushing props
// equal to the current ones is a no-op.
func (i *Instance[P, S]) UpdateProps(props P) {
	if !i.mounted {
		panic(errors.NotMounted("UpdateProps", i.def.Name))
	}
	i.props.set(props)
	i.render()
}

// Render runs one render cycle against the current props and state. Mount,
// UpdateProps, and Dispatch trigger cycles on their own; Render exists for
// collaborators that changed an external input the component reads through
// its props closure. Rendering twice with unchanged inputs applies nothing.
func (i *Instance[P, S]) Render() {
	if !i.mounted {
		panic(errors.NotMounted("Render", i.def.Name))
	}
	i.render()
}

// mount makes a blueprint live inside the given environment.
func (i *Instance[P, S]) mount(e *env) {
	if i.mounted {
		panic(errors.AlreadyMounted(i.def.Name))
	}
	i.env = e
	i.group = e.r.CreateGroup()
	i.mounted = true
	e.metrics.InstanceMounted()
	e.logger.Debug("mounted component", "component", i.def.Name)
	i.render()
}

// unmount tears down the instance and every child under it. The backend
// handles of its primitives are released; its handler bindings are not,
// since their identifiers may still be in flight.
func (i *Instance[P, S]) unmount() {
	if !i.mounted {
		return
	}
	for _, entry := range i.cache.ordered {
		if entry.node.Kind == vdom.KindCustom {
			asChild(entry.node.Child).unmount()
		}
		i.env.r.Unmount(entry.handle)
	}
	i.cache.clear()
	i.mounted = false
	i.hasLast = false
	i.env.metrics.InstanceUnmounted()
	i.env.logger.Debug("unmounted component", "component", i.def.Name)
}

func (i *Instance[P, S]) handle() renderer.Handle {
	return i.group
}

// updatePropsFrom pulls props out of a blueprint produced by the parent's
// latest render. The blueprint itself is discarded.
func (i *Instance[P, S]) updatePropsFrom(other vdom.Child) {
	o, ok := other.(*Instance[P, S])
	if !ok {
		panic(errors.ForeignChild(other.ComponentName()))
	}
	i.UpdateProps(o.props.get())
}

// render is one full cycle: read inputs, skip if unchanged, otherwise diff
// the fresh output against the cache, apply the patches, commit the new
// output, and lay the children out if anything changed.
func (i *Instance[P, S]) render() {
	start := time.Now()
	props := i.props.get()
	state := i.state.get()

	if i.hasLast && props == i.lastProps && state == i.lastState {
		i.env.metrics.RecordRenderSkipped()
		return
	}

	next := vdom.Normalize(i.def.Render(props, state), i.env.strategy)
	patches := vdom.Diff(i.cache.entries(), next, i.env.strategy)
	for _, p := range patches {
		i.apply(p)
	}
	i.commit(next)
	i.lastProps, i.lastState, i.hasLast = props, state, true

	if len(patches) > 0 {
		i.env.r.Layout(i.cache.handles(), i.group, i.env.padding)
	}
	i.env.metrics.RecordRender(time.Since(start))
	i.env.logger.Debug("rendered component",
		"component", i.def.Name, "patches", len(patches), "duration", time.Since(start))
}

// apply performs one patch against the cache and the renderer.
func (i *Instance[P, S]) apply(p vdom.Patch[P, S]) {
	i.env.metrics.RecordPatch(p.Op.String())
	switch p.Op {
	case vdom.PatchInsert:
		h := i.materialize(p.Key, p.Node)
		i.env.r.Mount(i.group, h)
		i.cache.put(p.Key, p.Node, h)
	case vdom.PatchReplace:
		entry := i.mustEntry(p.Key, "Replace")
		if entry.node.Kind == vdom.KindCustom {
			asChild(entry.node.Child).unmount()
		}
		i.env.r.Unmount(entry.handle)
		entry.node = p.Node
		entry.handle = i.materialize(p.Key, p.Node)
		i.env.r.Mount(i.group, entry.handle)
	case vdom.PatchSetText:
		entry := i.mustEntry(p.Key, "SetText")
		i.env.r.UpdateText(entry.handle, p.Text)
		entry.node.Text = p.Text
	case vdom.PatchSetOptions:
		entry := i.mustEntry(p.Key, "SetOptions")
		i.env.r.UpdateOptions(entry.handle, p.Options)
		entry.node.Options = p.Options
	case vdom.PatchSetHandler:
		entry := i.mustEntry(p.Key, "SetHandler")
		i.rebind(entry, p.Node)
	case vdom.PatchUpdateProps:
		entry := i.mustEntry(p.Key, "UpdateProps")
		asChild(entry.node.Child).updatePropsFrom(p.Node.Child)
	case vdom.PatchRemove:
		entry := i.mustEntry(p.Key, "Remove")
		if entry.node.Kind == vdom.KindCustom {
			asChild(entry.node.Child).unmount()
		}
		i.env.r.Unmount(entry.handle)
		i.cache.remove(p.Key)
	}
}

// commit reorders the cache to match the freshly applied output and adopts
// the new node values. Custom entries keep their cached node, which carries
// the live mounted child rather than the output's blueprint.
func (i *Instance[P, S]) commit(next []vdom.Entry[P, S]) {
	ordered := make([]*cacheEntry[P, S], len(next))
	byKey := make(map[vdom.Key]*cacheEntry[P, S], len(next))
	for idx, e := range next {
		entry, ok := i.cache.get(e.Key)
		if !ok {
			panic(errors.CacheMiss(int(e.Key), "commit"))
		}
		if entry.node.Kind != vdom.KindCustom {
			entry.node = e.Node
		}
		ordered[idx] = entry
		byKey[e.Key] = entry
	}
	i.cache.ordered = ordered
	i.cache.byKey = byKey
}

func (i *Instance[P, S]) mustEntry(key vdom.Key, op string) *cacheEntry[P, S] {
	entry, ok := i.cache.get(key)
	if !ok {
		panic(errors.CacheMiss(int(key), op))
	}
	return entry
}

// materialize turns a node into a backend primitive, registering handlers
// and mounting embedded children as it goes.
func (i *Instance[P, S]) materialize(key vdom.Key, node vdom.VNode[P, S]) renderer.Handle {
	switch node.Kind {
	case vdom.KindLabel:
		return i.env.r.CreateLabel(node.Text)
	case vdom.KindText:
		return i.env.r.CreateText(node.Text)
	case vdom.KindButton:
		return i.env.r.CreateButton(node.Text, i.clickAction(node.Click))
	case vdom.KindTextInput:
		return i.env.r.CreateTextInput(node.Text, i.changeAction(node.Change))
	case vdom.KindSelect:
		return i.env.r.CreateSelect(node.Options, i.selectAction(node.Select))
	case vdom.KindList:
		return i.env.r.CreateList(&rowSource[P, S]{owner: i, key: key, node: node})
	case vdom.KindCustom:
		c := asChild(node.Child)
		c.mount(i.env)
		return c.handle()
	default:
		panic(fmt.Sprintf("materialize: unknown node kind %s", node.Kind))
	}
}

// rebind swaps a primitive's backend action for one carrying the node's new
// handler under a fresh identifier.
func (i *Instance[P, S]) rebind(entry *cacheEntry[P, S], node vdom.VNode[P, S]) {
	switch entry.node.Kind {
	case vdom.KindButton:
		i.env.r.SetButtonAction(entry.handle, i.clickAction(node.Click))
		entry.node.Click = node.Click
	case vdom.KindTextInput:
		i.env.r.SetInputAction(entry.handle, i.changeAction(node.Change))
		entry.node.Change = node.Change
	case vdom.KindSelect:
		i.env.r.SetSelectAction(entry.handle, i.selectAction(node.Select))
		entry.node.Select = node.Select
	}
}

// clickAction registers h under a fresh identifier and returns the backend
// callback that schedules the corresponding message.
func (i *Instance[P, S]) clickAction(h vdom.ClickHandler[P, S]) func() {
	if h == nil {
		return nil
	}
	id := i.env.ids.Next()
	i.registry.bind(id, binding[P, S]{click: h})
	sched := i.env.sched
	return func() {
		sched.Schedule(dispatch.Message{ID: id, Payload: dispatch.Click{}})
	}
}

func (i *Instance[P, S]) changeAction(h vdom.ChangeHandler[P, S]) func(string) {
	if h == nil {
		return nil
	}
	id := i.env.ids.Next()
	i.registry.bind(id, binding[P, S]{change: h})
	sched := i.env.sched
	return func(text string) {
		sched.Schedule(dispatch.Message{ID: id, Payload: dispatch.Change{Text: text}})
	}
}

func (i *Instance[P, S]) selectAction(h vdom.SelectHandler[P, S]) func(int) {
	if h == nil {
		return nil
	}
	id := i.env.ids.Next()
	i.registry.bind(id, binding[P, S]{sel: h})
	sched := i.env.sched
	return func(index int) {
		sched.Schedule(dispatch.Message{ID: id, Payload: dispatch.Select{Index: index}})
	}
}

func (i *Instance[P, S]) invokeClick(h vdom.ClickHandler[P, S]) {
	props := i.props.get()
	i.state.mutate(func(s *S) {
		h(props, s)
	})
}

func (i *Instance[P, S]) invokeChange(h vdom.ChangeHandler[P, S], text string) bool {
	props := i.props.get()
	rerender := false
	i.state.mutate(func(s *S) {
		rerender = h(props, s, text)
	})
	return rerender
}

func (i *Instance[P, S]) invokeSelect(h vdom.SelectHandler[P, S], index int) bool {
	props := i.props.get()
	rerender := false
	i.state.mutate(func(s *S) {
		rerender = h(props, s, index)
	})
	return rerender
}

// forward hands msg to every directly embedded child in output order. All
// children receive it even after one claims ownership, so siblings reacting
// to the same broadcast each get their turn.
func (i *Instance[P, S]) forward(msg dispatch.Message) {
	for _, entry := range i.cache.ordered {
		if entry.node.Kind != vdom.KindCustom {
			continue
		}
		i.env.metrics.RecordForward()
		asChild(entry.node.Child).Dispatch(msg)
	}
}
