package dom

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a reference node is not a child of the
	// node being mutated.
	ErrNotFound = errors.New("dom: node not found")

	// ErrHierarchy is returned when a mutation would produce an invalid tree,
	// such as inserting a node into its own subtree or adding children to a
	// text node.
	ErrHierarchy = errors.New("dom: hierarchy request")
)

// NodeType distinguishes element and text nodes.
type NodeType uint8

const (
	ElementNode NodeType = 1
	TextNode    NodeType = 3
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Attribute is a name/value pair returned by Node.Attributes.
type Attribute struct {
	Name  string
	Value string
}

// Node is an element or text node.
type Node struct {
	doc      *Document
	typ      NodeType
	tag      string
	ns       string
	value    string
	parent   *Node
	children []*Node
	attrs    map[string]string
	style    map[string]string

	listeners map[listenerKey][]*Listener
}

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// IsElement reports whether n is an element node.
func (n *Node) IsElement() bool { return n != nil && n.typ == ElementNode }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n != nil && n.typ == TextNode }

// TagName returns the element's tag name, or "" for text nodes.
func (n *Node) TagName() string { return n.tag }

// Namespace returns the element's namespace URI.
func (n *Node) Namespace() string { return n.ns }

// OwnerDocument returns the document that created n.
func (n *Node) OwnerDocument() *Document { return n.doc }

// Parent returns the parent node, or nil if n is detached.
func (n *Node) Parent() *Node { return n.parent }

// ChildNodes returns a copy of the child list.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// ChildAt returns the i-th child, or nil if i is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node { return n.ChildAt(0) }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node { return n.ChildAt(len(n.children) - 1) }

// NextSibling returns the node following n in its parent, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.parent.IndexOf(n) + 1)
}

// IndexOf returns the position of child in n, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// AppendChild appends child, detaching it from its current parent first.
func (n *Node) AppendChild(child *Node) error {
	return n.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil ref appends.
func (n *Node) InsertBefore(child, ref *Node) error {
	if err := n.checkInsert(child); err != nil {
		return err
	}
	if ref != nil && ref.parent != n {
		return fmt.Errorf("insert before <%s>: %w", n.tag, ErrNotFound)
	}
	if child == ref {
		return nil
	}
	child.detach()

	idx := len(n.children)
	if ref != nil {
		idx = n.IndexOf(ref)
	}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	child.parent = n

	n.notify(MutationRecord{Type: MutationChildList, Target: n, Added: []*Node{child}})
	return nil
}

// RemoveChild removes child from n.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil || child.parent != n {
		return fmt.Errorf("remove child of <%s>: %w", n.tag, ErrNotFound)
	}
	child.detach()
	return nil
}

// ReplaceChild replaces oldChild with newChild at the same position.
func (n *Node) ReplaceChild(newChild, oldChild *Node) error {
	if oldChild == nil || oldChild.parent != n {
		return fmt.Errorf("replace child of <%s>: %w", n.tag, ErrNotFound)
	}
	if newChild == oldChild {
		return nil
	}
	if err := n.checkInsert(newChild); err != nil {
		return err
	}
	if newChild.parent != nil {
		newChild.detach()
	}

	idx := n.IndexOf(oldChild)
	n.children[idx] = newChild
	newChild.parent = n
	oldChild.parent = nil

	n.notify(MutationRecord{
		Type:    MutationChildList,
		Target:  n,
		Added:   []*Node{newChild},
		Removed: []*Node{oldChild},
	})
	return nil
}

func (n *Node) checkInsert(child *Node) error {
	if child == nil {
		return fmt.Errorf("insert nil into <%s>: %w", n.tag, ErrHierarchy)
	}
	if n.typ != ElementNode {
		return fmt.Errorf("insert into %s node: %w", n.typ, ErrHierarchy)
	}
	if child.Contains(n) {
		return fmt.Errorf("insert <%s> into its own subtree: %w", child.tag, ErrHierarchy)
	}
	return nil
}

// detach removes n from its parent, if any.
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	idx := p.IndexOf(n)
	p.children = append(p.children[:idx], p.children[idx+1:]...)
	n.parent = nil
	p.notify(MutationRecord{Type: MutationChildList, Target: p, Removed: []*Node{n}})
}

// Attributes

// GetAttribute returns the attribute value, or "" if absent.
func (n *Node) GetAttribute(name string) string {
	return n.attrs[name]
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// SetAttribute sets an attribute. It is a no-op on text nodes.
func (n *Node) SetAttribute(name, value string) {
	if n.typ != ElementNode {
		return
	}
	old := n.attrs[name]
	n.attrs[name] = value
	n.notify(MutationRecord{Type: MutationAttributes, Target: n, Name: name, OldValue: old})
}

// RemoveAttribute removes an attribute if present.
func (n *Node) RemoveAttribute(name string) {
	old, ok := n.attrs[name]
	if !ok {
		return
	}
	delete(n.attrs, name)
	n.notify(MutationRecord{Type: MutationAttributes, Target: n, Name: name, OldValue: old})
}

// Attributes returns the attributes sorted by name.
func (n *Node) Attributes() []Attribute {
	out := make([]Attribute, 0, len(n.attrs))
	for name, value := range n.attrs {
		out = append(out, Attribute{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Style

// StyleProperty returns a style property value, or "".
func (n *Node) StyleProperty(name string) string {
	return n.style[name]
}

// SetStyleProperty sets a single style property. It is a no-op on text nodes.
func (n *Node) SetStyleProperty(name, value string) {
	if n.typ != ElementNode {
		return
	}
	old := n.style[name]
	n.style[name] = value
	n.notify(MutationRecord{Type: MutationStyle, Target: n, Name: name, OldValue: old})
}

// RemoveStyleProperty removes a style property if present.
func (n *Node) RemoveStyleProperty(name string) {
	old, ok := n.style[name]
	if !ok {
		return
	}
	delete(n.style, name)
	n.notify(MutationRecord{Type: MutationStyle, Target: n, Name: name, OldValue: old})
}

// StyleText returns the style properties as a CSS declaration list sorted
// by property name.
func (n *Node) StyleText() string {
	if len(n.style) == 0 {
		return ""
	}
	names := make([]string, 0, len(n.style))
	for name := range n.style {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + n.style[name]
	}
	return strings.Join(parts, "; ")
}

// Text

// NodeValue returns the text of a text node, or "" for elements.
func (n *Node) NodeValue() string { return n.value }

// SetNodeValue updates the text of a text node. It is a no-op on elements.
func (n *Node) SetNodeValue(value string) {
	if n.typ != TextNode {
		return
	}
	old := n.value
	n.value = value
	n.notify(MutationRecord{Type: MutationCharacterData, Target: n, OldValue: old})
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.value
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.children {
		if c.typ == TextNode {
			b.WriteString(c.value)
		} else {
			c.writeText(b)
		}
	}
}

// notify reports r if n is connected to the document body. Subtrees that
// are still detached produce no records.
func (n *Node) notify(r MutationRecord) {
	if n.doc == nil || len(n.doc.observers) == 0 {
		return
	}
	if n.doc.body.Contains(n) {
		n.doc.notify(r)
	}
}
