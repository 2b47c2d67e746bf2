package soda

import (
	"fmt"
	"sort"
	"strings"

	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// applyAttrs brings node's attributes, style properties and listeners from
// prev to next. Keys are visited in sorted order; a value is written only
// when it changed.
func (r *Renderer) applyAttrs(node *dom.Node, next, prev vdom.Attrs) {
	if len(next) == 0 && len(prev) == 0 {
		return
	}

	keys := make([]string, 0, len(next)+len(prev))
	for k := range next {
		keys = append(keys, k)
	}
	for k := range prev {
		if _, ok := next[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		nv, ov := next[k], prev[k]
		switch {
		case k == "key":
		case k == "ref":
			setRef(node, nv)
		case k == "style":
			r.applyStyle(node, nv, ov)
		case isEventKey(k) && (isHandler(nv) || isHandler(ov)):
			r.applyListener(node, strings.ToLower(k[2:]), nv, ov)
		default:
			setAttr(node, hostAttrName(node, k), nv, ov)
		}
	}
}

func isEventKey(k string) bool {
	return len(k) > 2 && strings.HasPrefix(k, "on")
}

// hostAttrName resolves key through the translation table. SVG elements
// keep the case of untranslated names (viewBox).
func hostAttrName(node *dom.Node, key string) string {
	name := vdom.TranslateAttr(key)
	if node.Namespace() == dom.SVGNamespace && name == strings.ToLower(key) {
		return key
	}
	return name
}

func setRef(node *dom.Node, v any) {
	switch ref := v.(type) {
	case *RefCarrier:
		if ref != nil {
			ref.Node = node
		}
	case func(*dom.Node):
		ref(node)
	}
}

// setAttr writes a plain attribute. nil and false remove it, true sets it
// empty, anything else is formatted with fmt.
func setAttr(node *dom.Node, name string, nv, ov any) {
	next, set := attrValue(nv)
	prev, was := attrValue(ov)
	if set == was && next == prev {
		return
	}
	if !set {
		node.RemoveAttribute(name)
		return
	}
	node.SetAttribute(name, next)
}

func attrValue(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// applyStyle sets the style properties that changed and removes the ones
// that are gone. Non-map style values are plain attributes.
func (r *Renderer) applyStyle(node *dom.Node, nv, ov any) {
	next, nextIsMap := styleMap(nv)
	prev, prevIsMap := styleMap(ov)

	var plainOld any
	if !prevIsMap {
		plainOld = ov
	}

	names := make([]string, 0, len(next)+len(prev))
	for name := range prev {
		if _, ok := next[name]; !ok {
			names = append(names, name)
		}
	}
	for name := range next {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, keep := next[name]
		if !keep {
			node.RemoveStyleProperty(name)
			continue
		}
		if old, had := prev[name]; !had || old != value {
			node.SetStyleProperty(name, value)
		}
	}

	if nextIsMap {
		setAttr(node, "style", nil, plainOld)
		return
	}
	setAttr(node, "style", nv, plainOld)
}

func styleMap(v any) (map[string]string, bool) {
	switch s := v.(type) {
	case vdom.Style:
		return s, true
	case map[string]string:
		return s, true
	default:
		return nil, false
	}
}

// applyListener rebinds the listener for event when the handler changed.
// Handlers are compared by reference: *dom.Listener by pointer, and funcs
// are never equal.
func (r *Renderer) applyListener(node *dom.Node, event string, nv, ov any) {
	bound := r.listeners[node][event]
	if bound != nil {
		if l, ok := nv.(*dom.Listener); ok && l == bound {
			return
		}
		node.RemoveEventListener(event, bound, true)
		delete(r.listeners[node], event)
		if len(r.listeners[node]) == 0 {
			delete(r.listeners, node)
		}
	}

	l := toListener(nv)
	if l == nil {
		return
	}
	node.AddEventListener(event, l, true)
	if r.listeners[node] == nil {
		r.listeners[node] = make(map[string]*dom.Listener)
	}
	r.listeners[node][event] = l
}

func isHandler(v any) bool {
	switch v.(type) {
	case *dom.Listener, func(*dom.Event), func():
		return true
	default:
		return false
	}
}

func toListener(v any) *dom.Listener {
	switch h := v.(type) {
	case *dom.Listener:
		return h
	case func(*dom.Event):
		if h != nil {
			return dom.NewListener(h)
		}
	case func():
		if h != nil {
			return dom.NewListener(func(*dom.Event) { h() })
		}
	}
	return nil
}
