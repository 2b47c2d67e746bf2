// Package vtest provides testing helpers for soda components.
//
// A Harness mounts a component element on an in-memory document, lets the
// test drive it through clicks and updates, and records the host mutations
// each step made.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, vdom.H(Counter, nil))
//	    h.ExpectHTML("<div>Count: 0</div>")
//
//	    div := h.Find("div")
//	    h.Click(div)
//	    h.ExpectHTML("<div>Count: 1</div>")
//	    h.ExpectMutations(1)
//	}
//
// # Render Assertions
//
// For components that need no interaction, RenderToString returns the HTML
// of a single render:
//
//	html := vtest.RenderToString(vdom.H(Greeting, vdom.Attrs{"name": "soda"}))
package vtest
