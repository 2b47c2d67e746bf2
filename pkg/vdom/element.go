package vdom

import (
	"fmt"
	"strings"
)

// Kind is the element type discriminator.
type Kind uint8

const (
	KindHost      Kind = iota // <div>, <button>, etc.
	KindComponent             // Nested component
	KindText                  // Scalar child rendered as a text node
	KindList                  // Keyed sequence of elements
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindHost:
		return "Host"
	case KindComponent:
		return "Component"
	case KindText:
		return "Text"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// InstanceID identifies a mounted component instance within a renderer.
type InstanceID uint64

// Attrs holds attributes, event handlers and the special key/ref/style entries.
type Attrs map[string]any

// Style maps CSS property names to values for the "style" attribute.
type Style map[string]string

// Ctx is the render context handed to a component body.
// Hooks take it as their first argument to find the instance they belong to.
type Ctx interface {
	// ID returns the instance id.
	ID() InstanceID

	// Attrs returns the attributes the instance was rendered with.
	Attrs() Attrs

	// Update re-renders the instance and patches its live tree.
	Update() error
}

// Component is a function that renders an Element tree for an instance.
type Component func(c Ctx) *Element

// Element is an immutable description of a node to render.
// It is produced fresh on every render and never mutated afterwards.
type Element struct {
	Kind     Kind       // Element type
	Tag      string     // Host tag name (KindHost)
	Comp     Component  // Component function (KindComponent)
	Attrs    Attrs      // Attributes and event handlers
	Children []*Element // Host children, or list items for KindList
	Text     string     // Scalar value (KindText)
	Key      string     // Reconciliation key
}

// IsHost reports whether e describes a host node.
func (e *Element) IsHost() bool { return e != nil && e.Kind == KindHost }

// IsComponent reports whether e describes a nested component.
func (e *Element) IsComponent() bool { return e != nil && e.Kind == KindComponent }

// IsText reports whether e is a scalar child.
func (e *Element) IsText() bool { return e != nil && e.Kind == KindText }

// IsList reports whether e is a keyed sequence.
func (e *Element) IsList() bool { return e != nil && e.Kind == KindList }

// Attr returns the attribute value for key, or nil.
func (e *Element) Attr(key string) any {
	if e == nil || e.Attrs == nil {
		return nil
	}
	return e.Attrs[key]
}

// String returns a compact description of the tree, for debugging.
func (e *Element) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e *Element) writeTo(b *strings.Builder) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	switch e.Kind {
	case KindText:
		fmt.Fprintf(b, "%q", e.Text)
		return
	case KindComponent:
		b.WriteString("<component")
	case KindList:
		b.WriteString("[")
		for i, item := range e.Children {
			if i > 0 {
				b.WriteString(" ")
			}
			item.writeTo(b)
		}
		b.WriteString("]")
		return
	default:
		b.WriteString("<" + e.Tag)
	}
	if e.Key != "" {
		fmt.Fprintf(b, " key=%q", e.Key)
	}
	b.WriteString(">")
	for _, child := range e.Children {
		child.writeTo(b)
	}
	if e.Kind == KindHost {
		b.WriteString("</" + e.Tag + ">")
	}
}
