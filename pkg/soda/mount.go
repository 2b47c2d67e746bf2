package soda

import (
	errs "github.com/soda-dev/soda/internal/errors"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// mount creates an instance for the component element el, renders it and
// builds its subtree detached. The caller attaches inst.root and then calls
// flushCommits to run the deferred effects.
func (r *Renderer) mount(el *vdom.Element, parent *Instance, svg bool) (*Instance, error) {
	r.building++
	defer func() { r.building-- }()

	inst := newInstance(r, el, parent, svg)
	r.instances[inst.id] = inst
	r.metrics.mounted()

	tree, err := inst.render()
	if err != nil {
		r.dispose(inst)
		return nil, err
	}
	if !tree.IsHost() {
		r.dispose(inst)
		return nil, errs.Errorf("E021", "instance %d returned %s", inst.id, describe(tree)).Wrap(ErrInvalidRoot)
	}

	root, err := r.build(tree, inst, svg)
	if err != nil {
		r.dispose(inst)
		return nil, err
	}
	r.setRoot(inst, root)
	inst.last = tree
	r.uncommitted = append(r.uncommitted, inst)

	if r.debug {
		r.logger.Debug("mounted", "instance_id", inst.id, "tag", tree.Tag, "hooks", len(inst.slots))
	}
	return inst, nil
}

// build creates the live subtree for el. Nested components are mounted and
// recorded as children of owner. A list element is not a node; use
// buildChildren for those.
func (r *Renderer) build(el *vdom.Element, owner *Instance, svg bool) (*dom.Node, error) {
	r.building++
	defer func() { r.building-- }()

	switch el.Kind {
	case vdom.KindComponent:
		child, err := r.mount(el, owner, svg)
		if err != nil {
			return nil, err
		}
		owner.children = append(owner.children, child.id)
		return child.root, nil

	case vdom.KindText:
		return r.doc.CreateTextNode(el.Text), nil

	case vdom.KindHost:
		svg = svg || el.Tag == "svg"
		var node *dom.Node
		if svg {
			node = r.doc.CreateElementNS(dom.SVGNamespace, el.Tag)
		} else {
			node = r.doc.CreateElement(el.Tag)
		}
		r.applyAttrs(node, el.Attrs, nil)
		if err := r.buildChildren(node, el.Children, owner, svg); err != nil {
			return nil, err
		}
		return node, nil

	default:
		return nil, errs.Errorf("E021", "cannot build %s as a single node", describe(el)).Wrap(ErrInvalidRoot)
	}
}

// buildChildren appends the nodes for children to parent. List children
// contribute one node per item.
func (r *Renderer) buildChildren(parent *dom.Node, children []*vdom.Element, owner *Instance, svg bool) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.IsList() {
			if err := r.buildChildren(parent, child.Children, owner, svg); err != nil {
				return err
			}
			continue
		}
		node, err := r.build(child, owner, svg)
		if err != nil {
			return err
		}
		if err := parent.AppendChild(node); err != nil {
			return hostError("append child", err)
		}
	}
	return nil
}

// flushCommits marks mounted instances as committed and runs their
// deferred effects, children before parents. It does nothing while a
// subtree is still being built or an instance tree is being patched.
func (r *Renderer) flushCommits() {
	if r.building > 0 || r.patching > 0 {
		return
	}
	for len(r.uncommitted) > 0 {
		inst := r.uncommitted[0]
		r.uncommitted = r.uncommitted[1:]
		if inst.disposed || inst.committed {
			continue
		}

		inst.committed = true
		pending := inst.pending
		inst.pending = nil
		for _, run := range pending {
			run()
		}

		if inst.dirty && !inst.disposed {
			if err := inst.Update(); err != nil {
				r.handleError(err)
			}
		}
	}
}
