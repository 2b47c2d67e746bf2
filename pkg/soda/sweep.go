package soda

// sweep disposes the child instances of inst whose root node is no longer
// inside inst's root subtree.
func (r *Renderer) sweep(inst *Instance) {
	kept := inst.children[:0]
	var swept []*Instance
	for _, id := range inst.children {
		child, ok := r.instances[id]
		if !ok {
			continue
		}
		if child.root != nil && inst.root != nil && inst.root.Contains(child.root) {
			kept = append(kept, id)
			continue
		}
		swept = append(swept, child)
	}
	inst.children = kept

	for _, child := range swept {
		r.dispose(child)
	}
	if r.debug && len(swept) > 0 {
		r.logger.Debug("swept", "instance_id", inst.id, "disposed", len(swept), "children", len(kept))
	}
}

// dispose runs inst's effect cleanups in reverse hook order, then disposes
// its children and removes it from the registry.
func (r *Renderer) dispose(inst *Instance) {
	if inst.disposed {
		return
	}
	inst.disposed = true
	inst.pending = nil

	for i := len(inst.slots) - 1; i >= 0; i-- {
		s := inst.slots[i]
		if s.kind != slotEffect || s.cleanup == nil {
			continue
		}
		cleanup := s.cleanup
		s.cleanup = nil
		cleanup()
	}

	children := inst.children
	inst.children = nil
	for _, id := range children {
		if child, ok := r.instances[id]; ok {
			r.dispose(child)
		}
	}

	if inst.root != nil {
		if inst.root.Parent() == nil {
			r.forget(inst.root)
		}
		if r.roots[inst.root] == inst {
			delete(r.roots, inst.root)
		}
	}
	delete(r.instances, inst.id)
	r.metrics.disposed()

	if r.debug {
		r.logger.Debug("disposed", "instance_id", inst.id)
	}
}
