package vdom

import (
	"fmt"
	"strconv"
)

// H creates an Element. tag is a host tag name or a Component.
//
// Children may be:
//   - *Element: kept as is (nil is skipped)
//   - []*Element: kept as a single keyed sequence (KindList)
//   - []any: spliced into the children one level deep
//   - any other value: a scalar, rendered as text
//
// A "key" attribute is also copied to Element.Key.
//
// Example:
//
//	H("div", Attrs{"onClick": inc}, "Count: ", count)
//	H(Counter, Attrs{"start": 3})
func H(tag any, attrs Attrs, children ...any) *Element {
	el := newElement(tag)
	if attrs == nil {
		attrs = Attrs{}
	}
	el.Attrs = attrs
	if key, ok := attrs["key"]; ok && key != nil {
		el.Key = keyString(key)
	}
	el.Children = appendChildren(el.Children, children, true)
	return el
}

// CreateElement is an alias for H.
func CreateElement(tag any, attrs Attrs, children ...any) *Element {
	return H(tag, attrs, children...)
}

// newElement resolves the tag once, at construction time.
func newElement(tag any) *Element {
	switch t := tag.(type) {
	case string:
		return &Element{Kind: KindHost, Tag: t, Children: make([]*Element, 0)}
	case Component:
		if t == nil {
			panic("vdom: nil component tag")
		}
		return &Element{Kind: KindComponent, Comp: t}
	case func(Ctx) *Element:
		if t == nil {
			panic("vdom: nil component tag")
		}
		return &Element{Kind: KindComponent, Comp: t}
	default:
		panic(fmt.Sprintf("vdom: invalid element tag of type %T", tag))
	}
}

// appendChildren normalizes child arguments. splice controls whether []any
// arguments are flattened; nested []any inside a spliced slice are not.
func appendChildren(dst []*Element, children []any, splice bool) []*Element {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Element:
			if v != nil {
				dst = append(dst, v)
			}
		case []*Element:
			dst = append(dst, List(v...))
		case Component:
			dst = append(dst, H(v, nil))
		case func(Ctx) *Element:
			dst = append(dst, H(v, nil))
		case []any:
			if splice {
				dst = appendChildren(dst, v, false)
			} else {
				dst = append(dst, Text(fmt.Sprint(v)))
			}
		case Attr, Attrs, EventHandler:
			// Attributes are only meaningful in the tag factories.
			continue
		default:
			dst = append(dst, Text(scalarString(v)))
		}
	}
	return dst
}

// createElement builds a host element from the variadic arguments used by
// the tag factories (Div, Span, ...). Arguments can be Attr, Attrs,
// EventHandler, or any child accepted by H.
func createElement(tag string, args []any) *Element {
	el := &Element{
		Kind:     KindHost,
		Tag:      tag,
		Attrs:    make(Attrs),
		Children: make([]*Element, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if !v.IsEmpty() {
				el.Attrs[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					el.Attrs[a.Key] = a.Value
				}
			}
		case Attrs:
			for k, val := range v {
				el.Attrs[k] = val
			}
		case EventHandler:
			el.Attrs[v.Event] = v.Handler
		default:
			el.Children = appendChildren(el.Children, []any{arg}, true)
		}
	}

	if key, ok := el.Attrs["key"]; ok && key != nil {
		el.Key = keyString(key)
	}
	return el
}

// scalarString converts a scalar child to its text form.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return scalarString(key)
}
