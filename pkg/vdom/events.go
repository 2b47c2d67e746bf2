package vdom

// EventHandler binds a handler to a host event. Event is the attribute key
// ("onclick"); the renderer strips the "on" prefix to get the event name.
//
// Handler may be a func(*dom.Event), a func() or a *dom.Listener. Passing the
// same *dom.Listener across renders keeps the host registration untouched;
// plain funcs are re-bound on every update.
type EventHandler struct {
	Event   string
	Handler any
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) EventHandler { return event("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) EventHandler { return event("mouseup", handler) }

// OnMouseMove handles mousemove events.
func OnMouseMove(handler any) EventHandler { return event("mousemove", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }

// OnMouseOver handles mouseover events.
func OnMouseOver(handler any) EventHandler { return event("mouseover", handler) }

// OnMouseOut handles mouseout events.
func OnMouseOut(handler any) EventHandler { return event("mouseout", handler) }

// OnContextMenu handles contextmenu (right-click) events.
func OnContextMenu(handler any) EventHandler { return event("contextmenu", handler) }

// OnWheel handles wheel (scroll wheel) events.
func OnWheel(handler any) EventHandler { return event("wheel", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("keyup", handler) }

// OnKeyPress handles keypress events (deprecated, but still supported).
func OnKeyPress(handler any) EventHandler { return event("keypress", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// OnFocusIn handles focusin events (bubbles, unlike focus).
func OnFocusIn(handler any) EventHandler { return event("focusin", handler) }

// OnFocusOut handles focusout events (bubbles, unlike blur).
func OnFocusOut(handler any) EventHandler { return event("focusout", handler) }

// OnSelect handles select events (text selection).
func OnSelect(handler any) EventHandler { return event("select", handler) }

// OnInvalid handles invalid events (form validation).
func OnInvalid(handler any) EventHandler { return event("invalid", handler) }

// OnReset handles form reset events.
func OnReset(handler any) EventHandler { return event("reset", handler) }

// Pointer events

// OnPointerDown handles pointerdown events.
func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }

// OnPointerUp handles pointerup events.
func OnPointerUp(handler any) EventHandler { return event("pointerup", handler) }

// OnPointerMove handles pointermove events.
func OnPointerMove(handler any) EventHandler { return event("pointermove", handler) }

// OnPointerEnter handles pointerenter events.
func OnPointerEnter(handler any) EventHandler { return event("pointerenter", handler) }

// OnPointerLeave handles pointerleave events.
func OnPointerLeave(handler any) EventHandler { return event("pointerleave", handler) }

// OnPointerCancel handles pointercancel events.
func OnPointerCancel(handler any) EventHandler { return event("pointercancel", handler) }

// Scroll events

// OnScroll handles scroll events.
func OnScroll(handler any) EventHandler { return event("scroll", handler) }

// OnScrollEnd handles scrollend events.
func OnScrollEnd(handler any) EventHandler { return event("scrollend", handler) }
