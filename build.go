package jemi

// Array allocates an array whose children are elems in order.
// Nil and stale elements are skipped; each element is spliced as a whole
// chain, so a List can be passed where several elements are wanted.
func (a *Arena) Array(elems ...Node) Node {
	return a.container(TypeArray, elems)
}

// Object allocates an object whose children are elems in order. elems must
// alternate string keys and values; see Validate.
func (a *Arena) Object(elems ...Node) Node {
	return a.container(TypeObject, elems)
}

// List links elems into a sibling chain with no owning container and
// returns its head.
func (a *Arena) List(elems ...Node) Node {
	return a.node(a.chain(elems))
}

func (a *Arena) container(t Type, elems []Node) Node {
	n := a.Allocate(t)
	s := a.slot(n)
	if s == nil {
		return Nil
	}
	s.word = uint64(a.chain(elems))
	return n
}

// chain splices elems end to end and returns the head link.
func (a *Arena) chain(elems []Node) uint32 {
	var head, tail uint32
	for _, e := range elems {
		if a.slot(e) == nil || e.ref == tail {
			continue
		}
		if head == 0 {
			head = e.ref
		} else {
			a.slots[tail-1].next = e.ref
		}
		tail = a.last(e.ref)
	}
	return head
}

// AppendArray splices items onto the end of array's children and returns
// array. Nothing happens when array is not an array or items is Nil.
func (a *Arena) AppendArray(array, items Node) Node {
	if s := a.slot(array); s != nil && s.typ == TypeArray {
		a.appendChildren(s, array, items)
	}
	return array
}

// AppendObject splices items, normally a key and value built with List,
// onto the end of object's children and returns object.
func (a *Arena) AppendObject(object, items Node) Node {
	if s := a.slot(object); s != nil && s.typ == TypeObject {
		a.appendChildren(s, object, items)
	}
	return object
}

// AppendMember allocates a string node for key and appends it with value
// to object. The object is left unchanged when value is Nil or the key
// cannot be allocated.
func (a *Arena) AppendMember(object Node, key string, value Node) Node {
	s := a.slot(object)
	if s == nil || s.typ != TypeObject || a.slot(value) == nil || value.ref == object.ref {
		return object
	}
	k := a.String(key)
	if k.IsNil() {
		return object
	}
	a.slots[k.ref-1].next = value.ref
	a.appendChildren(s, object, k)
	return object
}

// AppendList splices items onto the end of the chain headed by list and
// returns the head of the combined chain.
func (a *Arena) AppendList(list, items Node) Node {
	if a.slot(list) == nil {
		if a.slot(items) == nil {
			return Nil
		}
		return items
	}
	if a.slot(items) != nil {
		if tail := a.last(list.ref); tail != items.ref {
			a.slots[tail-1].next = items.ref
		}
	}
	return list
}

func (a *Arena) appendChildren(s *Slot, owner, items Node) {
	if a.slot(items) == nil || items.ref == owner.ref {
		return
	}
	head := uint32(s.word)
	if head == 0 {
		s.word = uint64(items.ref)
		return
	}
	if tail := a.last(head); tail != items.ref {
		a.slots[tail-1].next = items.ref
	}
}
