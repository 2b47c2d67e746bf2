package soda

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/soda-dev/soda/pkg/vdom"
)

func TestState(t *testing.T) {
	r := newTestRenderer(t)

	var set SetFunc[int]
	renders := 0
	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		renders++
		n, setN := State(c, 5)
		set = setN
		return vdom.Div(vdom.Textf("n=%d", n))
	}, nil)

	expectHTML(t, r, "<div>n=5</div>")

	if got := set(7); got != 7 {
		t.Errorf("set(7) returned %d", got)
	}
	expectHTML(t, r, "<div>n=7</div>")
	if renders != 2 {
		t.Errorf("renders = %d, want 2", renders)
	}
}

func TestState_SkipUpdate(t *testing.T) {
	r := newTestRenderer(t)

	var set SetFunc[int]
	renders := 0
	inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		renders++
		n, setN := State(c, 1)
		set = setN
		return vdom.Div(vdom.Textf("%d", n))
	}, nil)

	set(9, true)
	if renders != 1 {
		t.Errorf("renders = %d after skipped update, want 1", renders)
	}
	expectHTML(t, r, "<div>1</div>")

	set(10, false)
	expectHTML(t, r, "<div>10</div>")

	set(11, true)
	mustUpdate(t, inst)
	expectHTML(t, r, "<div>11</div>")
}

func TestState_EqualSuppressesUpdate(t *testing.T) {
	r := newTestRenderer(t)

	var set SetFunc[string]
	renders := 0
	inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		renders++
		s, setS := State(c, "a", strings.EqualFold)
		set = setS
		return vdom.Div(s)
	}, nil)

	set("A")
	if renders != 1 {
		t.Errorf("renders = %d, want 1 when equal reports true", renders)
	}

	// The value is stored even when the update is suppressed.
	mustUpdate(t, inst)
	expectHTML(t, r, "<div>A</div>")

	set("b")
	if renders != 3 {
		t.Errorf("renders = %d, want 3", renders)
	}
	expectHTML(t, r, "<div>b</div>")
}

func TestState_Multiple(t *testing.T) {
	r := newTestRenderer(t)

	var setA, setB, setC SetFunc[string]
	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		a, sa := State(c, "a")
		b, sb := State(c, "b")
		cc, sc := State(c, "c")
		setA, setB, setC = sa, sb, sc
		return vdom.Div(a, b, cc)
	}, nil)
	expectHTML(t, r, "<div>abc</div>")

	setA("A", true)
	setB("B", true)
	setC("C")
	expectHTML(t, r, "<div>ABC</div>")
}

func TestState_SetAfterUnmount(t *testing.T) {
	r := newTestRenderer(t)

	var set SetFunc[int]
	renders := 0
	inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		renders++
		_, set = State(c, 0)
		return vdom.Div()
	}, nil)

	if err := r.Unmount(inst.ID()); err != nil {
		t.Fatalf("Unmount() error = %v", err)
	}
	if got := set(3); got != 3 {
		t.Errorf("set(3) returned %d", got)
	}
	if renders != 1 {
		t.Errorf("renders = %d, want 1", renders)
	}
}

func TestState_SetDuringRender(t *testing.T) {
	r := newTestRenderer(t)

	renders := 0
	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		renders++
		n, set := State(c, 0)
		if n < 3 {
			set(n + 1)
		}
		return vdom.Div(vdom.Textf("%d", n))
	}, nil)

	expectHTML(t, r, "<div>3</div>")
	if renders != 4 {
		t.Errorf("renders = %d, want 4", renders)
	}
}

func TestState_RenderLoop(t *testing.T) {
	var got []error
	r := newTestRenderer(t,
		WithMaxRerenders(5),
		WithErrorHandler(func(err error) { got = append(got, err) }),
	)

	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		n, set := State(c, 0)
		set(n + 1)
		return vdom.Div()
	}, nil)

	if len(got) != 1 || !errors.Is(got[0], ErrRenderLoop) {
		t.Fatalf("errors = %v, want one ErrRenderLoop", got)
	}
}

func TestHookOrder(t *testing.T) {
	tests := []struct {
		name   string
		before func(c vdom.Ctx)
		after  func(c vdom.Ctx)
	}{
		{
			name:   "extra hook",
			before: func(c vdom.Ctx) { State(c, 0) },
			after:  func(c vdom.Ctx) { State(c, 0); State(c, 1) },
		},
		{
			name:   "missing hook",
			before: func(c vdom.Ctx) { State(c, 0); Ref(c) },
			after:  func(c vdom.Ctx) { State(c, 0) },
		},
		{
			name:   "kind changed",
			before: func(c vdom.Ctx) { State(c, 0) },
			after:  func(c vdom.Ctx) { Ref(c) },
		},
		{
			name:   "state type changed",
			before: func(c vdom.Ctx) { State(c, 0) },
			after:  func(c vdom.Ctx) { State(c, "zero") },
		},
		{
			name:   "effect swapped with state",
			before: func(c vdom.Ctx) { Effect(c, func() Cleanup { return nil }, nil); State(c, 0) },
			after:  func(c vdom.Ctx) { State(c, 0); Effect(c, func() Cleanup { return nil }, nil) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t)
			first := true
			inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
				if first {
					tt.before(c)
				} else {
					tt.after(c)
				}
				return vdom.Div()
			}, nil)

			first = false
			err := inst.Update()
			if !errors.Is(err, ErrHookOrder) {
				t.Fatalf("Update() error = %v, want ErrHookOrder", err)
			}
			if !strings.HasPrefix(err.Error(), "E001") {
				t.Errorf("error = %q, want E001 prefix", err)
			}
		})
	}
}

func TestHookOutsideRender(t *testing.T) {
	r := newTestRenderer(t)

	var saved vdom.Ctx
	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		saved = c
		return vdom.Div()
	}, nil)

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, ErrHookOutsideRender) {
			t.Fatalf("recovered %v, want ErrHookOutsideRender", rec)
		}
	}()
	State(saved, 0)
}

func TestHookWithForeignContext(t *testing.T) {
	r := newTestRenderer(t)

	var parent vdom.Ctx
	child := func(c vdom.Ctx) *vdom.Element {
		State(parent, 0)
		return vdom.Span()
	}
	_, err := r.Render(vdom.H(func(c vdom.Ctx) *vdom.Element {
		parent = c
		return vdom.Div(vdom.H(child, nil))
	}, nil), r.Document().Body())

	if !errors.Is(err, ErrHookOutsideRender) {
		t.Fatalf("Render() error = %v, want ErrHookOutsideRender", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after failed render, want 0", r.Len())
	}
}

func TestEffect_Cadence(t *testing.T) {
	r := newTestRenderer(t)

	var every, once, onDep int
	dep := 1
	inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		Effect(c, func() Cleanup { every++; return nil }, nil)
		Effect(c, func() Cleanup { once++; return nil }, Deps{})
		Effect(c, func() Cleanup { onDep++; return nil }, Deps{dep})
		return vdom.Div()
	}, nil)

	check := func(step string, wantEvery, wantOnce, wantDep int) {
		t.Helper()
		if every != wantEvery || once != wantOnce || onDep != wantDep {
			t.Errorf("%s: runs = (%d, %d, %d), want (%d, %d, %d)",
				step, every, once, onDep, wantEvery, wantOnce, wantDep)
		}
	}

	check("mount", 1, 1, 1)

	mustUpdate(t, inst)
	mustUpdate(t, inst)
	check("same deps", 3, 1, 1)

	dep = 2
	mustUpdate(t, inst)
	check("changed dep", 4, 1, 2)
}

func TestEffect_DepsLengthChange(t *testing.T) {
	r := newTestRenderer(t)

	deps := Deps{1}
	runs := 0
	inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		Effect(c, func() Cleanup { runs++; return nil }, deps)
		return vdom.Div()
	}, nil)

	deps = Deps{1, 2}
	mustUpdate(t, inst)
	if runs != 2 {
		t.Errorf("runs = %d, want 2 after deps grew", runs)
	}
}

func TestEffect_MultipleDeps(t *testing.T) {
	r := newTestRenderer(t)

	var output string
	var setB SetFunc[string]
	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		a, _ := State(c, "a")
		b, sb := State(c, "b")
		cc, _ := State(c, "c")
		setB = sb
		Effect(c, func() Cleanup { output = a + b + cc; return nil }, Deps{b})
		return vdom.Div()
	}, nil)

	if output != "abc" {
		t.Errorf("output = %q after mount", output)
	}
	setB("B")
	if output != "aBc" {
		t.Errorf("output = %q, want aBc", output)
	}
}

func TestEffect_CleanupBeforeRerun(t *testing.T) {
	r := newTestRenderer(t)

	var log []string
	run := 0
	inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		Effect(c, func() Cleanup {
			run++
			n := run
			log = append(log, "run "+strconv.Itoa(n))
			return func() { log = append(log, "cleanup "+strconv.Itoa(n)) }
		}, nil)
		return vdom.Div()
	}, nil)

	mustUpdate(t, inst)
	if err := r.Unmount(inst.ID()); err != nil {
		t.Fatalf("Unmount() error = %v", err)
	}

	want := []string{"run 1", "cleanup 1", "run 2", "cleanup 2"}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestEffect_DeferredUntilAttached(t *testing.T) {
	r := newTestRenderer(t)
	body := r.Document().Body()

	var order []string
	attached := map[string]bool{}

	child := func(c vdom.Ctx) *vdom.Element {
		ref := Ref(c)
		Effect(c, func() Cleanup {
			order = append(order, "child")
			attached["child"] = body.Contains(ref.Node)
			return nil
		}, Deps{})
		return vdom.Span(vdom.Ref(ref))
	}

	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		ref := Ref(c)
		Effect(c, func() Cleanup {
			order = append(order, "parent a")
			attached["parent"] = body.Contains(ref.Node)
			return nil
		}, Deps{})
		Effect(c, func() Cleanup {
			order = append(order, "parent b")
			return nil
		}, Deps{})
		return vdom.Div(vdom.Ref(ref), vdom.H(child, nil))
	}, nil)

	want := "child,parent a,parent b"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("effect order = %q, want %q", got, want)
	}
	if !attached["child"] || !attached["parent"] {
		t.Errorf("effects ran before their roots were attached: %v", attached)
	}
}

func TestEffect_SetStateAtMount(t *testing.T) {
	r := newTestRenderer(t)

	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		loaded, setLoaded := State(c, false)
		Effect(c, func() Cleanup {
			setLoaded(true)
			return nil
		}, Deps{})
		if !loaded {
			return vdom.Div("loading")
		}
		return vdom.Div("loaded")
	}, nil)

	expectHTML(t, r, "<div>loaded</div>")
}

func TestRef(t *testing.T) {
	r := newTestRenderer(t)

	var refs []*RefCarrier
	inst := mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		ref := Ref(c)
		refs = append(refs, ref)
		return vdom.Div(vdom.Div(vdom.Ref(ref), "Soda"))
	}, nil)
	mustUpdate(t, inst)

	if refs[0] != refs[1] {
		t.Error("Ref returned a different carrier on the second render")
	}
	node := refs[0].Node
	if node == nil {
		t.Fatal("ref node not set")
	}
	if got := node.Parent().InnerHTML(); got != "<div>Soda</div>" {
		t.Errorf("ref parent InnerHTML = %q", got)
	}
}

func TestRef_Input(t *testing.T) {
	r := newTestRenderer(t)

	var ref *RefCarrier
	mustRender(t, r, func(c vdom.Ctx) *vdom.Element {
		ref = Ref(c)
		return vdom.Input(vdom.Type("text"), vdom.Ref(ref), vdom.Value("Soda"))
	}, nil)

	if got := ref.Node.GetAttribute("value"); got != "Soda" {
		t.Errorf("value = %q, want Soda", got)
	}
}

func TestSameValue(t *testing.T) {
	m := map[string]int{}
	s := []int{1, 2}
	p := &struct{}{}
	fn := func() {}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", 1, int64(1), false},
		{"nil", nil, nil, true},
		{"nil and value", nil, 0, false},
		{"same map", m, m, true},
		{"other map", m, map[string]int{}, false},
		{"same slice", s, s, true},
		{"resliced", s, s[:1], false},
		{"same pointer", p, p, true},
		{"same func", fn, fn, true},
		{"struct with slice field", struct{ v any }{s}, struct{ v any }{s}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameValue(tt.a, tt.b); got != tt.want {
				t.Errorf("sameValue(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
