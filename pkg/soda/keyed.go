package soda

import (
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/vdom"
)

// patchList reconciles list items against the live children of node that
// the previous items produced, one node per item starting at index start.
// It returns the number of nodes the list occupies afterwards.
//
// It is a single two-cursor sweep: items whose keys line up are patched in
// place, a new key is inserted before the old cursor, and an old key that no
// longer appears is removed. Reorders of more than one key are rebuilt
// rather than moved. A matched component item keeps its instance, which is
// updated with the item's attributes (see patchItem).
func (r *Renderer) patchList(node *dom.Node, start int, items, oldItems []*vdom.Element, inst *Instance, svg bool) (int, error) {
	items = flatten(items)
	oldItems = flatten(oldItems)

	end := min(start+len(oldItems), node.ChildCount())
	live := make([]*dom.Node, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		live = append(live, node.ChildAt(i))
	}
	// Nodes after the list stay put; new items go before them.
	tail := node.ChildAt(end)

	// remaining counts the keys of items[ni:].
	remaining := make(map[string]int, len(items))
	for _, item := range items {
		remaining[item.Key]++
	}

	oi, ni := 0, 0
	for ni < len(items) || oi < len(live) {
		if ni >= len(items) {
			if err := r.removeNode(node, live[oi]); err != nil {
				return 0, err
			}
			oi++
			continue
		}

		item := items[ni]
		if oi >= len(live) {
			fresh, err := r.build(item, inst, svg)
			if err != nil {
				return 0, err
			}
			if err := node.InsertBefore(fresh, tail); err != nil {
				return 0, hostError("append list item", err)
			}
			remaining[item.Key]--
			ni++
			continue
		}

		var old *vdom.Element
		if oi < len(oldItems) {
			old = oldItems[oi]
		}

		switch {
		case old != nil && old.Key == item.Key:
			if err := r.patchItem(live[oi], item, old, inst, svg); err != nil {
				return 0, err
			}
			remaining[item.Key]--
			oi++
			ni++

		case old == nil || remaining[old.Key] == 0:
			if err := r.removeNode(node, live[oi]); err != nil {
				return 0, err
			}
			oi++

		default:
			fresh, err := r.build(item, inst, svg)
			if err != nil {
				return 0, err
			}
			if err := node.InsertBefore(fresh, live[oi]); err != nil {
				return 0, hostError("insert list item", err)
			}
			remaining[item.Key]--
			ni++
		}
	}
	return len(items), nil
}

// patchItem updates one matched list item in place, or replaces its node
// when the item changed kind or component.
func (r *Renderer) patchItem(live *dom.Node, item, old *vdom.Element, inst *Instance, svg bool) error {
	owner := r.childByRoot(inst, live)

	switch {
	case item.IsComponent():
		if owner != nil && owner.matches(item) {
			owner.attrs = item.Attrs
			return owner.Update()
		}

	case item.IsText():
		if live.IsText() {
			if live.NodeValue() != item.Text {
				live.SetNodeValue(item.Text)
			}
			return nil
		}

	case item.IsHost():
		if owner == nil && live.IsElement() {
			if !old.IsHost() {
				old = nil
			}
			_, err := r.patch(live, item, old, inst, svg)
			return err
		}
	}

	_, err := r.replace(live, item, inst, svg)
	return err
}

func (r *Renderer) removeNode(parent, child *dom.Node) error {
	if err := parent.RemoveChild(child); err != nil {
		return hostError("remove node", err)
	}
	r.forget(child)
	return nil
}

// flatten splices nested lists and drops nil items.
func flatten(items []*vdom.Element) []*vdom.Element {
	nested := false
	for _, item := range items {
		if item == nil || item.IsList() {
			nested = true
			break
		}
	}
	if !nested {
		return items
	}

	out := make([]*vdom.Element, 0, len(items))
	for _, item := range items {
		switch {
		case item == nil:
		case item.IsList():
			out = append(out, flatten(item.Children)...)
		default:
			out = append(out, item)
		}
	}
	return out
}
