package soda

import (
	"testing"

	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// newTestRenderer returns a renderer whose error handler fails the test.
func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	base := []Option{WithErrorHandler(func(err error) {
		t.Errorf("unexpected update error: %v", err)
	})}
	return New(dom.NewDocument(), append(base, opts...)...)
}

func mustRender(t *testing.T, r *Renderer, comp vdom.Component, attrs vdom.Attrs) *Instance {
	t.Helper()
	id, err := r.Render(vdom.H(comp, attrs), r.Document().Body())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	inst, ok := r.Instance(id)
	if !ok {
		t.Fatalf("instance %d not registered", id)
	}
	return inst
}

func mustUpdate(t *testing.T, inst *Instance) {
	t.Helper()
	if err := inst.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func bodyHTML(r *Renderer) string {
	return r.Document().Body().InnerHTML()
}

func expectHTML(t *testing.T, r *Renderer, want string) {
	t.Helper()
	if got := bodyHTML(r); got != want {
		t.Errorf("html mismatch:\n got: %s\nwant: %s", got, want)
	}
}
