package soda

import (
	"reflect"
	"time"

	errs "github.com/soda-dev/soda/internal/errors"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// Instance is a mounted component. It owns exactly one root node for its
// lifetime; the node may be replaced in place when the root tag changes.
//
// Instance implements vdom.Ctx and is what a component body receives.
type Instance struct {
	r      *Renderer
	id     InstanceID
	comp   vdom.Component
	compID uintptr
	key    string
	attrs  vdom.Attrs
	parent *Instance
	svg    bool

	root     *dom.Node
	last     *vdom.Element
	children []InstanceID

	slots  []*slot
	cursor int

	// pending holds effect work deferred during the first render.
	pending []func()

	rendered  bool
	rendering bool
	patching  bool
	committed bool
	dirty     bool
	disposed  bool
}

var _ vdom.Ctx = (*Instance)(nil)

func newInstance(r *Renderer, el *vdom.Element, parent *Instance, svg bool) *Instance {
	r.nextID++
	return &Instance{
		r:      r,
		id:     r.nextID,
		comp:   el.Comp,
		compID: componentID(el.Comp),
		key:    el.Key,
		attrs:  el.Attrs,
		parent: parent,
		svg:    svg,
	}
}

// ID returns the instance id.
func (inst *Instance) ID() InstanceID { return inst.id }

// Attrs returns the attributes the instance was last rendered with.
func (inst *Instance) Attrs() vdom.Attrs { return inst.attrs }

// SetAttrs replaces the attributes used by the next render.
func (inst *Instance) SetAttrs(attrs vdom.Attrs) { inst.attrs = attrs }

// Root returns the instance's root node.
func (inst *Instance) Root() *dom.Node { return inst.root }

// Element returns the element tree produced by the last render.
func (inst *Instance) Element() *vdom.Element { return inst.last }

// Children returns the ids of the instances this instance mounted.
func (inst *Instance) Children() []InstanceID {
	out := make([]InstanceID, len(inst.children))
	copy(out, inst.children)
	return out
}

// HookCount returns the number of hook slots.
func (inst *Instance) HookCount() int { return len(inst.slots) }

// Disposed reports whether the instance was unmounted.
func (inst *Instance) Disposed() bool { return inst.disposed }

// Update re-renders the instance and patches its live tree, then disposes
// child instances whose root nodes were detached. It runs synchronously.
//
// Calling Update while the instance's own body is running, or while its tree
// is being patched, marks it dirty instead; the render is repeated once the
// current one finishes.
func (inst *Instance) Update() error {
	if inst.disposed {
		return errs.Errorf("E022", "instance %d", inst.id).Wrap(ErrDisposed)
	}
	if inst.rendering || inst.patching || inst.root == nil {
		inst.dirty = true
		return nil
	}

	for pass := 0; ; pass++ {
		if pass == inst.r.maxRerenders {
			return errs.Errorf("E024", "instance %d re-rendered %d times", inst.id, pass).Wrap(ErrRenderLoop)
		}
		inst.dirty = false
		if err := inst.r.update(inst); err != nil {
			return err
		}
		if !inst.dirty || inst.disposed {
			return nil
		}
	}
}

// update runs one render and patch pass for inst.
func (r *Renderer) update(inst *Instance) (err error) {
	start := time.Now()
	span := r.startSpan("soda.update", inst.id)
	defer func() {
		endSpan(span, err)
		r.metrics.updated(start, err)
	}()

	el, err := inst.render()
	if err != nil {
		return err
	}
	if !el.IsHost() {
		return errs.Errorf("E021", "instance %d returned %s", inst.id, describe(el)).Wrap(ErrInvalidRoot)
	}

	if err := r.commit(inst, el); err != nil {
		return err
	}
	r.flushCommits()

	if r.debug {
		r.logger.Debug("updated", "instance_id", inst.id, "children", len(inst.children))
	}
	return nil
}

// commit patches inst's live tree to el and sweeps detached children.
// Deferred effects of instances mounted meanwhile stay queued until the
// outermost commit returns.
func (r *Renderer) commit(inst *Instance, el *vdom.Element) error {
	r.patching++
	inst.patching = true
	defer func() {
		inst.patching = false
		r.patching--
	}()

	root, err := r.patch(inst.root, el, inst.last, inst, inst.svg)
	if err != nil {
		return err
	}
	r.setRoot(inst, root)
	inst.last = el
	r.sweep(inst)
	return nil
}

// render runs the component body with inst as the current instance and
// checks that every hook slot from the previous render was used.
func (inst *Instance) render() (el *vdom.Element, err error) {
	r := inst.r
	prev := r.current
	r.current = inst
	inst.cursor = 0
	inst.rendering = true

	defer func() {
		inst.rendering = false
		r.current = prev
	}()
	defer func() {
		if rec := recover(); rec != nil {
			hp, ok := rec.(*hookPanic)
			if !ok {
				panic(rec)
			}
			err = hp.err
		}
	}()

	el = inst.comp(inst)

	if inst.rendered && inst.cursor != len(inst.slots) {
		return nil, errs.Errorf("E001", "instance %d: %d hooks called, previous render called %d",
			inst.id, inst.cursor, len(inst.slots)).Wrap(ErrHookOrder)
	}
	inst.rendered = true
	return el, nil
}

func (inst *Instance) dropChild(id InstanceID) {
	for i, c := range inst.children {
		if c == id {
			inst.children = append(inst.children[:i], inst.children[i+1:]...)
			return
		}
	}
}

// componentID identifies a component function. Closures created by the same
// function literal share an id.
func componentID(c vdom.Component) uintptr {
	if c == nil {
		return 0
	}
	return reflect.ValueOf(c).Pointer()
}
