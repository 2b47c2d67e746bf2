package soda

import (
	"strings"

	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// patch reconciles the live node against el, using old (the element node
// was last patched or built from) as the baseline. It returns the live node
// for el, which differs from node when the tag changed.
func (r *Renderer) patch(node *dom.Node, el, old *vdom.Element, inst *Instance, svg bool) (*dom.Node, error) {
	if !node.IsElement() || !strings.EqualFold(node.TagName(), el.Tag) {
		return r.replace(node, el, inst, svg)
	}

	var oldAttrs vdom.Attrs
	var oldChildren []*vdom.Element
	if old.IsHost() {
		oldAttrs = old.Attrs
		oldChildren = old.Children
	}

	r.applyAttrs(node, el.Attrs, oldAttrs)
	if err := r.patchChildren(node, el.Children, oldChildren, inst, svg || el.Tag == "svg"); err != nil {
		return nil, err
	}
	return node, nil
}

// replace builds a fresh subtree for el and puts it in node's place. If node
// was the instance root, the root is updated; the instance keeps its id.
func (r *Renderer) replace(node *dom.Node, el *vdom.Element, inst *Instance, svg bool) (*dom.Node, error) {
	fresh, err := r.build(el, inst, svg)
	if err != nil {
		return nil, err
	}
	if parent := node.Parent(); parent != nil {
		if err := parent.ReplaceChild(fresh, node); err != nil {
			return nil, hostError("replace node", err)
		}
	}
	r.forget(node)
	if inst.root == node {
		r.setRoot(inst, fresh)
	}
	return fresh, nil
}

// patchChildren walks the new children against the live child nodes. pos
// tracks the live position, which drifts from i once a list contributed
// more or fewer than one node, or a nil child contributed none. Live nodes
// past the last child are removed.
func (r *Renderer) patchChildren(node *dom.Node, children, oldChildren []*vdom.Element, inst *Instance, svg bool) error {
	pos := 0
	for i, child := range children {
		if child == nil {
			continue
		}
		var oldChild *vdom.Element
		if i < len(oldChildren) {
			oldChild = oldChildren[i]
		}
		live := node.ChildAt(pos)

		switch {
		case child.IsList():
			var oldItems []*vdom.Element
			if oldChild.IsList() {
				oldItems = oldChild.Children
			}
			n, err := r.patchList(node, pos, child.Children, oldItems, inst, svg)
			if err != nil {
				return err
			}
			pos += n
			continue

		case child.IsText():
			if live.IsText() {
				if live.NodeValue() != child.Text {
					live.SetNodeValue(child.Text)
				}
				break
			}
			if err := node.InsertBefore(r.doc.CreateTextNode(child.Text), live); err != nil {
				return hostError("insert text", err)
			}

		case child.IsComponent():
			if err := r.patchComponent(node, live, child, inst, svg); err != nil {
				return err
			}

		case live == nil || !live.IsElement():
			fresh, err := r.build(child, inst, svg)
			if err != nil {
				return err
			}
			if err := node.InsertBefore(fresh, live); err != nil {
				return hostError("insert element", err)
			}

		case r.childByRoot(inst, live) != nil:
			if _, err := r.replace(live, child, inst, svg); err != nil {
				return err
			}

		default:
			if !oldChild.IsHost() {
				oldChild = nil
			}
			if _, err := r.patch(live, child, oldChild, inst, svg); err != nil {
				return err
			}
		}
		pos++
	}

	for node.ChildCount() > pos {
		if err := r.removeNode(node, node.ChildAt(pos)); err != nil {
			return err
		}
	}
	return nil
}

// patchComponent handles a component child at the position of live. If
// live is the root of a child instance of the same component with the same
// key, that instance receives the new attributes and is updated. Otherwise
// the component is mounted fresh and spliced in place of live.
func (r *Renderer) patchComponent(node, live *dom.Node, el *vdom.Element, inst *Instance, svg bool) error {
	if child := r.childByRoot(inst, live); child != nil && child.matches(el) {
		child.attrs = el.Attrs
		return child.Update()
	}

	fresh, err := r.build(el, inst, svg)
	if err != nil {
		return err
	}
	if live == nil {
		if err := node.AppendChild(fresh); err != nil {
			return hostError("append component", err)
		}
		return nil
	}
	if err := node.ReplaceChild(fresh, live); err != nil {
		return hostError("replace with component", err)
	}
	r.forget(live)
	return nil
}

// matches reports whether el renders the same component under the same
// key as inst, so the instance can be kept.
func (inst *Instance) matches(el *vdom.Element) bool {
	return inst.compID == componentID(el.Comp) && inst.key == el.Key
}

// childByRoot returns the child instance of inst whose root is node.
func (r *Renderer) childByRoot(inst *Instance, node *dom.Node) *Instance {
	if node == nil {
		return nil
	}
	child := r.roots[node]
	if child == nil || child.parent != inst || child.disposed {
		return nil
	}
	return child
}

// setRoot records node as inst's root node.
func (r *Renderer) setRoot(inst *Instance, node *dom.Node) {
	if inst.root != nil && r.roots[inst.root] == inst {
		delete(r.roots, inst.root)
	}
	inst.root = node
	if node != nil {
		r.roots[node] = inst
	}
}

// forget drops listener bookkeeping for node and its descendants.
func (r *Renderer) forget(node *dom.Node) {
	if node == nil || len(r.listeners) == 0 {
		return
	}
	delete(r.listeners, node)
	for i := 0; i < node.ChildCount(); i++ {
		r.forget(node.ChildAt(i))
	}
}
