package soda

import (
	"fmt"
	"reflect"

	errs "github.com/soda-dev/soda/internal/errors"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

type slotKind uint8

const (
	slotState slotKind = iota
	slotEffect
	slotRef
)

func (k slotKind) String() string {
	switch k {
	case slotState:
		return "State"
	case slotEffect:
		return "Effect"
	case slotRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// slot is one unit of per-instance hook state, addressed by call order.
type slot struct {
	kind slotKind

	// State and Ref
	value any

	// Effect
	deps    Deps
	ran     bool
	cleanup Cleanup
}

// hookPanic carries a hook error out of a component body. It is recovered
// by Instance.render and returned as an error.
type hookPanic struct {
	err error
}

func (p *hookPanic) Error() string { return p.err.Error() }
func (p *hookPanic) Unwrap() error { return p.err }

// use returns the next hook slot of the instance currently rendering,
// creating it on the first render.
func use(c vdom.Ctx, kind slotKind) (inst *Instance, s *slot, created bool) {
	inst, ok := c.(*Instance)
	if !ok || inst == nil || inst.r.current != inst {
		panic(&hookPanic{err: errs.Errorf("E002", "%s called with %s", kind, ctxString(c)).
			Wrap(ErrHookOutsideRender)})
	}

	i := inst.cursor
	inst.cursor++

	if i < len(inst.slots) {
		s = inst.slots[i]
		if s.kind != kind {
			panic(&hookPanic{err: errs.Errorf("E001", "instance %d: expected %s hook at index %d, got %s",
				inst.id, s.kind, i, kind).Wrap(ErrHookOrder)})
		}
		return inst, s, false
	}
	if inst.rendered {
		panic(&hookPanic{err: errs.Errorf("E001", "instance %d: extra %s hook at index %d",
			inst.id, kind, i).Wrap(ErrHookOrder)})
	}

	s = &slot{kind: kind}
	inst.slots = append(inst.slots, s)
	return inst, s, true
}

func ctxString(c vdom.Ctx) string {
	if c == nil {
		return "nil context"
	}
	if inst, ok := c.(*Instance); ok && inst == nil {
		return "nil instance"
	}
	return fmt.Sprintf("context of instance %d", c.ID())
}

// SetFunc stores a new state value. Unless skipUpdate is true or the
// equality function reports the values equal, the owning instance is
// updated before SetFunc returns. It returns next.
type SetFunc[T any] func(next T, skipUpdate ...bool) T

// State returns the value of the state slot for this call position and a
// setter. initial is stored on the first render only.
//
// equal, when given, suppresses the update if it reports prev and next
// equal; the value is stored either way.
func State[T any](c vdom.Ctx, initial T, equal ...func(prev, next T) bool) (T, SetFunc[T]) {
	inst, s, created := use(c, slotState)
	if created {
		s.value = initial
	}

	value, ok := s.value.(T)
	if !ok && s.value != nil {
		panic(&hookPanic{err: errs.Errorf("E001", "instance %d: state slot holds %T, want %s",
			inst.id, s.value, reflect.TypeOf(&initial).Elem()).Wrap(ErrHookOrder)})
	}

	var eq func(prev, next T) bool
	if len(equal) > 0 {
		eq = equal[0]
	}

	set := func(next T, skipUpdate ...bool) T {
		if inst.disposed {
			return next
		}
		prev, _ := s.value.(T)
		s.value = next
		if len(skipUpdate) > 0 && skipUpdate[0] {
			return next
		}
		if eq != nil && eq(prev, next) {
			return next
		}
		if err := inst.Update(); err != nil {
			inst.r.handleError(err)
		}
		return next
	}
	return value, set
}

// Cleanup is returned by an effect to release what it set up.
type Cleanup func()

// Deps lists the values an effect depends on.
//
//   - nil: the effect runs after every render
//   - Deps{}: the effect runs once, at first commit
//   - otherwise: the effect runs when any value differs from the previous
//     render's (== for comparable values, identity for maps, slices, funcs
//     and channels)
type Deps []any

// Effect runs fn according to deps. Before fn runs again, the cleanup it
// returned last time is called. Cleanups also run when the instance is
// unmounted.
//
// During an instance's first render, fn is deferred until the instance's
// root node is attached.
func Effect(c vdom.Ctx, fn func() Cleanup, deps Deps) {
	inst, s, _ := use(c, slotEffect)
	if deps != nil {
		deps = append(Deps{}, deps...)
	}

	run := func() {
		if inst.disposed || !s.due(deps) {
			return
		}
		if s.cleanup != nil {
			cleanup := s.cleanup
			s.cleanup = nil
			cleanup()
		}
		s.deps = deps
		s.ran = true
		s.cleanup = fn()
	}

	if !inst.committed {
		inst.pending = append(inst.pending, run)
		return
	}
	run()
}

func (s *slot) due(deps Deps) bool {
	switch {
	case !s.ran:
		return true
	case deps == nil:
		return true
	case len(deps) == 0:
		return false
	case len(deps) != len(s.deps):
		return true
	}
	for i := range deps {
		if !sameValue(deps[i], s.deps[i]) {
			return true
		}
	}
	return false
}

// sameValue compares dependency values by identity.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return safeEqual(a, b)
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ta.Kind() == reflect.Slice && va.Len() != vb.Len() {
			return false
		}
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// safeEqual compares comparable types whose values may still hold
// uncomparable dynamic types (interface fields), treating a panic as unequal.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// RefCarrier holds the host node of the element carrying its ref attribute.
type RefCarrier struct {
	Node *dom.Node
}

// Ref returns a carrier that persists across renders. Pass it as the ref
// attribute of a host element to have the renderer store the node in it.
func Ref(c vdom.Ctx) *RefCarrier {
	_, s, created := use(c, slotRef)
	if created {
		s.value = &RefCarrier{}
	}
	return s.value.(*RefCarrier)
}
