package dom

import (
	"reflect"
	"testing"
)

func TestDispatchOrder(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("button")
	_ = doc.Body().AppendChild(outer)
	_ = outer.AppendChild(inner)

	var got []string
	record := func(name string) *Listener {
		return NewListener(func(e *Event) { got = append(got, name) })
	}

	outer.AddEventListener("click", record("outer-capture"), true)
	outer.AddEventListener("click", record("outer-bubble"), false)
	inner.AddEventListener("click", record("inner-bubble"), false)
	inner.AddEventListener("click", record("inner-capture"), true)

	inner.Click()

	want := []string{"outer-capture", "inner-capture", "inner-bubble", "outer-bubble"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestStopPropagation(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("button")
	_ = outer.AppendChild(inner)

	outerCalled := false
	outer.AddEventListener("click", NewListener(func(e *Event) { outerCalled = true }), false)
	inner.AddEventListener("click", NewListener(func(e *Event) { e.StopPropagation() }), false)

	inner.Click()
	if outerCalled {
		t.Error("outer listener should not run after StopPropagation")
	}
}

func TestListenerIdentity(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("button")

	calls := 0
	l := NewListener(func(e *Event) { calls++ })
	n.AddEventListener("click", l, true)
	n.AddEventListener("click", l, true)
	if n.ListenerCount("click") != 1 {
		t.Errorf("ListenerCount = %d, want 1", n.ListenerCount("click"))
	}

	n.Click()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Capture flag must match to remove.
	n.RemoveEventListener("click", l, false)
	if n.ListenerCount("click") != 1 {
		t.Error("listener removed with wrong capture flag")
	}
	n.RemoveEventListener("click", l, true)
	if n.ListenerCount("click") != 0 {
		t.Error("listener not removed")
	}

	n.Click()
	if calls != 1 {
		t.Errorf("calls = %d, want 1 after removal", calls)
	}
}

func TestRebindDuringDispatch(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("button")

	calls := 0
	var second *Listener
	first := NewListener(func(e *Event) {
		calls++
		n.RemoveEventListener("click", second, true)
	})
	second = NewListener(func(e *Event) { calls++ })
	n.AddEventListener("click", first, true)
	n.AddEventListener("click", second, true)

	n.Click()
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (snapshot taken before dispatch)", calls)
	}
}

func TestPreventDefault(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("a")
	n.AddEventListener("click", NewListener(func(e *Event) { e.PreventDefault() }), false)

	if n.Click() {
		t.Error("Click() should return false when default is prevented")
	}
}
