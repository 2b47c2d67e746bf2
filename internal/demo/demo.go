package demo

import (
	"sort"
	"strings"

	"github.com/soda-dev/soda/internal/errors"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// Demo is an application the CLI can render and interact with.
type Demo struct {
	Name        string
	Description string

	// New returns a fresh root element together with the interaction that
	// step i performs on the document body.
	New func() (root *vdom.Element, step StepFunc)
}

// StepFunc performs one simulated interaction and describes it.
type StepFunc func(body *dom.Node, i int) (string, error)

var demos = map[string]Demo{
	"counter": {
		Name:        "counter",
		Description: "A div that counts its clicks",
		New:         newCounter,
	},
	"todo": {
		Name:        "todo",
		Description: "A todo list with keyed items, refs and SVG icons",
		New:         newTodo,
	},
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, error) {
	d, ok := demos[strings.ToLower(name)]
	if !ok {
		return Demo{}, errors.Errorf("E140", "%q", name).
			WithDetail("Available demos: " + strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// findAll returns the elements under root matching pred, in document order.
func findAll(root *dom.Node, pred func(*dom.Node) bool) []*dom.Node {
	var out []*dom.Node
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		if n.IsElement() && pred(n) {
			out = append(out, n)
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(n.ChildAt(i))
		}
	}
	walk(root)
	return out
}

func byTag(tag string) func(*dom.Node) bool {
	return func(n *dom.Node) bool { return n.TagName() == tag }
}

func byClass(class string) func(*dom.Node) bool {
	return func(n *dom.Node) bool {
		for _, c := range strings.Fields(n.GetAttribute("class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func first(root *dom.Node, what string, pred func(*dom.Node) bool) (*dom.Node, error) {
	nodes := findAll(root, pred)
	if len(nodes) == 0 {
		return nil, errors.Errorf("E040", "no %s in document", what).Wrap(dom.ErrNotFound)
	}
	return nodes[0], nil
}
