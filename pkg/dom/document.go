package dom

import "strings"

// Namespaces understood by the document.
const (
	HTMLNamespace = "http://www.w3.org/1999/xhtml"
	SVGNamespace  = "http://www.w3.org/2000/svg"
)

// Document creates nodes and dispatches mutation records.
// It is not safe for concurrent use.
type Document struct {
	body      *Node
	observers []*observer
}

// NewDocument returns an empty document with a body element.
func NewDocument() *Document {
	d := &Document{}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the document's body element.
func (d *Document) Body() *Node {
	return d.body
}

// CreateElement creates an HTML element. The tag name is lower-cased.
func (d *Document) CreateElement(tag string) *Node {
	return d.newElement(HTMLNamespace, strings.ToLower(tag))
}

// CreateElementNS creates an element in the given namespace. The tag name
// is kept as given.
func (d *Document) CreateElementNS(ns, tag string) *Node {
	if ns == "" || ns == HTMLNamespace {
		return d.CreateElement(tag)
	}
	return d.newElement(ns, tag)
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(text string) *Node {
	return &Node{doc: d, typ: TextNode, value: text}
}

func (d *Document) newElement(ns, tag string) *Node {
	return &Node{
		doc:   d,
		typ:   ElementNode,
		tag:   tag,
		ns:    ns,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}
