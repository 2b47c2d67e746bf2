package dom

// Listener is an event callback. Listeners are identified by pointer: adding
// the same *Listener twice for one type and phase registers it once.
type Listener struct {
	Fn func(*Event)
}

// NewListener wraps fn in a Listener.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{Fn: fn}
}

// Phase is the event dispatch phase.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

// Event is dispatched through the tree by Node.DispatchEvent.
type Event struct {
	Type          string
	Bubbles       bool
	Detail        any
	Target        *Node
	CurrentTarget *Node
	Phase         Phase

	stopped   bool
	prevented bool
}

// NewEvent returns a bubbling event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ, Bubbles: true}
}

// StopPropagation prevents the event from reaching further nodes. Listeners
// on the current node still run.
func (e *Event) StopPropagation() { e.stopped = true }

// PreventDefault marks the event as canceled.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }

type listenerKey struct {
	typ     string
	capture bool
}

// AddEventListener registers l for events of type typ. capture selects the
// capture phase.
func (n *Node) AddEventListener(typ string, l *Listener, capture bool) {
	if l == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[listenerKey][]*Listener)
	}
	key := listenerKey{typ: typ, capture: capture}
	for _, existing := range n.listeners[key] {
		if existing == l {
			return
		}
	}
	n.listeners[key] = append(n.listeners[key], l)
}

// RemoveEventListener unregisters l. The capture flag must match the one
// used when adding.
func (n *Node) RemoveEventListener(typ string, l *Listener, capture bool) {
	key := listenerKey{typ: typ, capture: capture}
	list := n.listeners[key]
	for i, existing := range list {
		if existing == l {
			n.listeners[key] = append(list[:i:i], list[i+1:]...)
			if len(n.listeners[key]) == 0 {
				delete(n.listeners, key)
			}
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for typ in both
// phases.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[listenerKey{typ, true}]) + len(n.listeners[listenerKey{typ, false}])
}

// DispatchEvent dispatches ev with n as the target: capture phase from the
// root down, then the target, then (if ev.Bubbles) the bubble phase back up.
// It returns false if a listener called PreventDefault.
//
// Panics raised by listeners propagate to the caller.
func (n *Node) DispatchEvent(ev *Event) bool {
	ev.Target = n
	ev.stopped = false

	var path []*Node
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}

	ev.Phase = PhaseCapturing
	for i := len(path) - 1; i >= 0 && !ev.stopped; i-- {
		path[i].invoke(ev, true)
	}

	if !ev.stopped {
		ev.Phase = PhaseAtTarget
		n.invoke(ev, true)
		n.invoke(ev, false)
	}

	if ev.Bubbles {
		ev.Phase = PhaseBubbling
		for i := 0; i < len(path) && !ev.stopped; i++ {
			path[i].invoke(ev, false)
		}
	}

	ev.Phase = PhaseNone
	ev.CurrentTarget = nil
	return !ev.prevented
}

// Click dispatches a click event at n.
func (n *Node) Click() bool {
	return n.DispatchEvent(NewEvent("click"))
}

func (n *Node) invoke(ev *Event, capture bool) {
	list := n.listeners[listenerKey{typ: ev.Type, capture: capture}]
	if len(list) == 0 {
		return
	}
	// Listeners may be rebound while the event is being handled.
	snapshot := make([]*Listener, len(list))
	copy(snapshot, list)

	ev.CurrentTarget = n
	for _, l := range snapshot {
		if l.Fn != nil {
			l.Fn(ev)
		}
	}
}
