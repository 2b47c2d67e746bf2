// Package soda is a retained-mode renderer for vdom element trees.
//
// A Renderer mounts a component element onto a host dom.Node and keeps the
// resulting instances. Components are plain functions of a vdom.Ctx that
// return a host element; hooks give them state across renders:
//
//	func Counter(c vdom.Ctx) *vdom.Element {
//		count, setCount := soda.State(c, 0)
//		return vdom.Div(
//			vdom.OnClick(func() { setCount(count + 1) }),
//			vdom.Textf("Count: %d", count),
//		)
//	}
//
//	r := soda.New(dom.NewDocument())
//	id, err := r.Render(vdom.H(Counter, nil), r.Document().Body())
//
// Updating an instance re-runs its component, diffs the new element tree
// against the previous one and patches the live nodes in place. Child
// instances whose root nodes fell out of the tree are disposed, running
// their effect cleanups.
//
// A Renderer is single-threaded. Every update, including the one a state
// setter triggers, runs to completion before returning.
package soda
