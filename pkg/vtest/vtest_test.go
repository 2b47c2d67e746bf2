package vtest_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/soda"
	"github.com/soda-dev/soda/pkg/vdom"
	"github.com/soda-dev/soda/pkg/vtest"
)

// recordingT captures failures instead of failing the enclosing test.
type recordingT struct {
	testing.TB
	failures []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func counter(c vdom.Ctx) *vdom.Element {
	count, setCount := soda.State(c, 0)
	return vdom.Div(
		vdom.Button(vdom.OnClick(func() { setCount(count + 1) }), "+"),
		vdom.Span(vdom.Textf("Count: %d", count)),
	)
}

func greeting(c vdom.Ctx) *vdom.Element {
	return vdom.P(vdom.Class("greeting"), "Hello, ", c.Attrs()["name"])
}

func TestMount(t *testing.T) {
	h := vtest.Mount(t, vdom.H(counter, nil))

	h.ExpectHTML("<div><button>+</button><span>Count: 0</span></div>")
	if h.Instance() == nil {
		t.Fatal("expected a live instance")
	}
	if h.Instance().ID() != h.ID() {
		t.Errorf("Instance().ID() = %d, want %d", h.Instance().ID(), h.ID())
	}
	if h.Renderer().Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Renderer().Len())
	}
	if h.Mutations().Len() != 0 {
		t.Errorf("expected no mutations right after mount, got %d", h.Mutations().Len())
	}
}

func TestHarness_Click(t *testing.T) {
	h := vtest.Mount(t, vdom.H(counter, nil))

	h.Click(h.Find("button"))
	h.Click(h.Find("button"))

	h.ExpectContains("Count: 2")
	h.ExpectNotContains("Count: 0")
	h.ExpectMutations(2)
	if got := h.Mutations().Count(dom.MutationCharacterData); got != 2 {
		t.Errorf("characterData mutations = %d, want 2", got)
	}
	if len(h.Errors()) != 0 {
		t.Errorf("unexpected errors: %v", h.Errors())
	}

	h.ResetMutations()
	h.Update()
	h.ExpectMutations(0)
}

func TestHarness_Unmount(t *testing.T) {
	h := vtest.Mount(t, vdom.H(counter, nil))
	h.Unmount()

	h.ExpectHTML("")
	if h.Instance() != nil {
		t.Error("expected instance to be gone after Unmount")
	}
}

func TestHarness_FindAll(t *testing.T) {
	list := func(c vdom.Ctx) *vdom.Element {
		return vdom.Ul(vdom.Range([]string{"a", "b", "c"}, func(s string, _ int) *vdom.Element {
			return vdom.Li(vdom.Key(s), s)
		}))
	}
	h := vtest.Mount(t, vdom.H(list, nil))

	items := h.FindAll("li")
	if len(items) != 3 {
		t.Fatalf("FindAll(li) = %d nodes, want 3", len(items))
	}
	if items[2].TextContent() != "c" {
		t.Errorf("third item = %q, want c", items[2].TextContent())
	}
	if got := len(vtest.FindAll(h.Body(), "ul")); got != 1 {
		t.Errorf("FindAll(ul) = %d, want 1", got)
	}
}

func TestHarness_Text(t *testing.T) {
	h := vtest.Mount(t, vdom.H(greeting, vdom.Attrs{"name": "soda"}))
	if got := h.Text(); got != "Hello, soda" {
		t.Errorf("Text() = %q, want %q", got, "Hello, soda")
	}
}

func TestHarness_CollectsUpdateErrors(t *testing.T) {
	broken := func(c vdom.Ctx) *vdom.Element {
		n, set := soda.State(c, 0)
		if n > 0 {
			// One hook fewer than the first render.
			return vdom.Div("broken")
		}
		soda.Ref(c)
		return vdom.Div(vdom.OnClick(func() { set(n + 1) }), "ok")
	}
	h := vtest.Mount(t, vdom.H(broken, nil))
	h.Click(h.Find("div"))

	if len(h.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want one error", h.Errors())
	}
	if !strings.Contains(h.Errors()[0].Error(), "E001") {
		t.Errorf("error = %v, want E001", h.Errors()[0])
	}
}

func TestExpectations_Fail(t *testing.T) {
	h := vtest.Mount(t, vdom.H(greeting, vdom.Attrs{"name": "soda"}))

	rt := &recordingT{TB: t}
	failing := vtest.Mount(rt, vdom.H(greeting, vdom.Attrs{"name": "soda"}))
	failing.ExpectHTML("<p>nope</p>")
	failing.ExpectContains("missing")
	failing.ExpectNotContains("Hello")
	failing.ExpectMutations(3)
	failing.Find("table")

	if len(rt.failures) != 5 {
		t.Errorf("recorded %d failures, want 5: %v", len(rt.failures), rt.failures)
	}

	h.ExpectHTML(`<p class="greeting">Hello, soda</p>`)
}

func TestMount_RenderError(t *testing.T) {
	rt := &recordingT{TB: t}
	vtest.Mount(rt, vdom.Div())

	if len(rt.failures) != 1 || !strings.Contains(rt.failures[0], "render") {
		t.Errorf("failures = %v, want one render failure", rt.failures)
	}
}

func TestRenderToString(t *testing.T) {
	html := vtest.RenderToString(vdom.H(greeting, vdom.Attrs{"name": "soda"}))
	if html != `<p class="greeting">Hello, soda</p>` {
		t.Errorf("RenderToString() = %q", html)
	}

	if html := vtest.RenderToString(vdom.Div()); html != "" {
		t.Errorf("RenderToString(host element) = %q, want empty", html)
	}
}
