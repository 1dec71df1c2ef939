package jemi

// Copy deep-copies the sibling chain starting at root and returns the head
// of the new chain. Scalars are copied by value, strings by reference.
// If the arena runs out part way, Copy returns Nil and the partial copy
// stays unreachable until the next Reset.
func (a *Arena) Copy(root Node) Node {
	if a.slot(root) == nil {
		return Nil
	}
	return a.node(a.copyChain(root.ref))
}

// CopyValue deep-copies the single value n, ignoring its siblings.
func (a *Arena) CopyValue(n Node) Node {
	if a.slot(n) == nil {
		return Nil
	}
	return a.node(a.copyValue(n.ref))
}

func (a *Arena) copyChain(ref uint32) uint32 {
	var head, tail uint32
	for steps := 0; ref != 0 && steps < len(a.slots); steps++ {
		c := a.copyValue(ref)
		if c == 0 {
			return 0
		}
		if head == 0 {
			head = c
		} else {
			a.slots[tail-1].next = c
		}
		tail = c
		ref = a.slots[ref-1].next
	}
	return head
}

// copyValue returns the link of a fresh copy of the node at ref, or 0.
// A cyclic graph cannot recurse forever: every level consumes a slot.
func (a *Arena) copyValue(ref uint32) uint32 {
	src := a.slots[ref-1]
	n := a.Allocate(src.typ)
	if n.IsNil() {
		return 0
	}
	dst := &a.slots[n.ref-1]
	dst.word, dst.str = src.word, src.str
	if src.typ.IsContainer() {
		dst.word = 0
		if kids := uint32(src.word); kids != 0 {
			c := a.copyChain(kids)
			if c == 0 {
				return 0
			}
			dst.word = uint64(c)
		}
	}
	return n.ref
}
