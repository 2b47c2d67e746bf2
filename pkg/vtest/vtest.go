package vtest

import (
	"strings"
	"testing"

	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/soda"
	"github.com/soda-dev/soda/pkg/vdom"
)

// Harness mounts a component element on a fresh document and records the
// host mutations made after the initial render.
type Harness struct {
	t        testing.TB
	renderer *soda.Renderer
	doc      *dom.Document
	id       soda.InstanceID
	rec      *dom.Recorder
	errs     []error
}

// Mount renders el into the body of a new document. Errors from updates
// that have no caller, such as those triggered by a state setter inside an
// event handler, are collected; see Errors.
//
// Example:
//
//	h := vtest.Mount(t, vdom.H(Counter, nil))
//	h.Click(h.Find("button"))
//	h.ExpectHTML("<div><button>Count: 1</button></div>")
func Mount(t testing.TB, el *vdom.Element, opts ...soda.Option) *Harness {
	t.Helper()

	h := &Harness{t: t, doc: dom.NewDocument()}
	opts = append([]soda.Option{
		soda.WithErrorHandler(func(err error) { h.errs = append(h.errs, err) }),
	}, opts...)
	h.renderer = soda.New(h.doc, opts...)

	id, err := h.renderer.Render(el, h.doc.Body())
	if err != nil {
		t.Fatalf("render: %v", err)
		return h
	}
	h.id = id
	h.rec = dom.NewRecorder(h.doc)
	return h
}

// Renderer returns the renderer that mounted the element.
func (h *Harness) Renderer() *soda.Renderer { return h.renderer }

// Document returns the host document.
func (h *Harness) Document() *dom.Document { return h.doc }

// Body returns the element the component was mounted into.
func (h *Harness) Body() *dom.Node { return h.doc.Body() }

// ID returns the id of the mounted instance.
func (h *Harness) ID() soda.InstanceID { return h.id }

// Instance returns the mounted instance, or nil once it was unmounted.
func (h *Harness) Instance() *soda.Instance {
	inst, _ := h.renderer.Instance(h.id)
	return inst
}

// HTML returns the body's inner HTML.
func (h *Harness) HTML() string { return h.doc.Body().InnerHTML() }

// Text returns the body's text content.
func (h *Harness) Text() string { return h.doc.Body().TextContent() }

// Update re-renders the mounted instance and fails the test on error.
func (h *Harness) Update() {
	h.t.Helper()
	if err := h.renderer.Update(h.id); err != nil {
		h.t.Fatalf("update: %v", err)
	}
}

// Unmount removes the mounted instance and fails the test on error.
func (h *Harness) Unmount() {
	h.t.Helper()
	if err := h.renderer.Unmount(h.id); err != nil {
		h.t.Fatalf("unmount: %v", err)
	}
}

// Click dispatches a click event at node.
func (h *Harness) Click(node *dom.Node) {
	h.t.Helper()
	if node == nil {
		h.t.Fatalf("click: nil node")
		return
	}
	node.Click()
}

// Find returns the first element with the given tag in document order and
// fails the test if there is none.
func (h *Harness) Find(tag string) *dom.Node {
	h.t.Helper()
	nodes := FindAll(h.doc.Body(), tag)
	if len(nodes) == 0 {
		h.t.Fatalf("no <%s> element in:\n%s", tag, truncate(h.HTML(), 500))
		return nil
	}
	return nodes[0]
}

// FindAll returns every element with the given tag in document order.
func (h *Harness) FindAll(tag string) []*dom.Node {
	return FindAll(h.doc.Body(), tag)
}

// Mutations returns the recorder collecting mutations since Mount or the
// last ResetMutations.
func (h *Harness) Mutations() *dom.Recorder { return h.rec }

// ResetMutations discards the recorded mutations.
func (h *Harness) ResetMutations() { h.rec.Reset() }

// Errors returns the errors reported by updates that had no caller.
func (h *Harness) Errors() []error { return h.errs }

// ExpectHTML asserts that the body's inner HTML equals want.
func (h *Harness) ExpectHTML(want string) {
	h.t.Helper()
	if got := h.HTML(); got != want {
		h.t.Errorf("html mismatch:\n got: %s\nwant: %s", got, want)
	}
}

// ExpectContains asserts that the body's inner HTML contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	html := h.HTML()
	if !strings.Contains(html, expected) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the body's inner HTML does not contain
// unexpected.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.t.Helper()
	html := h.HTML()
	if strings.Contains(html, unexpected) {
		h.t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectMutations asserts how many host mutations were recorded.
func (h *Harness) ExpectMutations(n int) {
	h.t.Helper()
	if got := h.rec.Len(); got != n {
		h.t.Errorf("expected %d mutations, got %d:\n%s", n, got, h.rec)
	}
}

// FindAll returns every element below root (root included) with the given
// tag, in document order.
func FindAll(root *dom.Node, tag string) []*dom.Node {
	var out []*dom.Node
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		if n.IsElement() && strings.EqualFold(n.TagName(), tag) {
			out = append(out, n)
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(n.ChildAt(i))
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// RenderToString mounts el on a throwaway document and returns the HTML it
// produced. It returns "" if rendering fails.
//
// Example:
//
//	html := vtest.RenderToString(vdom.H(Greeting, vdom.Attrs{"name": "soda"}))
func RenderToString(el *vdom.Element) string {
	doc := dom.NewDocument()
	r := soda.New(doc, soda.WithErrorHandler(func(error) {}))
	if _, err := r.Render(el, doc.Body()); err != nil {
		return ""
	}
	return doc.Body().InnerHTML()
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
