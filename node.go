package jemi

import "math"

// Valid reports whether n refers to a live node of the current epoch.
func (a *Arena) Valid(n Node) bool { return a.slot(n) != nil }

// Type returns n's tag, or TypeInvalid for Nil and stale handles.
func (a *Arena) Type(n Node) Type {
	if s := a.slot(n); s != nil {
		return s.typ
	}
	return TypeInvalid
}

// Next returns n's sibling.
func (a *Arena) Next(n Node) Node {
	if s := a.slot(n); s != nil {
		return a.node(s.next)
	}
	return Nil
}

// Children returns the head of a container's children chain.
func (a *Arena) Children(n Node) Node {
	if s := a.slot(n); s != nil && s.typ.IsContainer() {
		return a.node(uint32(s.word))
	}
	return Nil
}

// Len returns the number of children of a container. For an object this
// counts keys and values separately.
func (a *Arena) Len(n Node) int {
	return a.Count(a.Children(n))
}

// Count returns the length of the sibling chain starting at head.
func (a *Arena) Count(head Node) int {
	if a.slot(head) == nil {
		return 0
	}
	count := 0
	for ref := head.ref; ref != 0 && count < len(a.slots); ref = a.slots[ref-1].next {
		count++
	}
	return count
}

func (a *Arena) FloatValue(n Node) (float64, bool) {
	if s := a.slot(n); s != nil && s.typ == TypeFloat {
		return math.Float64frombits(s.word), true
	}
	return 0, false
}

func (a *Arena) IntegerValue(n Node) (int64, bool) {
	if s := a.slot(n); s != nil && s.typ == TypeInteger {
		return int64(s.word), true
	}
	return 0, false
}

func (a *Arena) StringValue(n Node) (string, bool) {
	if s := a.slot(n); s != nil && s.typ == TypeString {
		return s.str, true
	}
	return "", false
}

func (a *Arena) BoolValue(n Node) (bool, bool) {
	if s := a.slot(n); s != nil && (s.typ == TypeTrue || s.typ == TypeFalse) {
		return s.typ == TypeTrue, true
	}
	return false, false
}

// SetFloat rewrites a float node in place. It reports false, and changes
// nothing, when n is not a live float node.
func (a *Arena) SetFloat(n Node, v float64) bool {
	s := a.slot(n)
	if s == nil || s.typ != TypeFloat {
		return false
	}
	s.word = math.Float64bits(v)
	return true
}

// SetInteger rewrites an integer node in place.
func (a *Arena) SetInteger(n Node, v int64) bool {
	s := a.slot(n)
	if s == nil || s.typ != TypeInteger {
		return false
	}
	s.word = uint64(v)
	return true
}

// SetString points a string node at str.
func (a *Arena) SetString(n Node, str string) bool {
	s := a.slot(n)
	if s == nil || s.typ != TypeString {
		return false
	}
	s.str = str
	return true
}

// SetBool retags a true or false node.
func (a *Arena) SetBool(n Node, b bool) bool {
	s := a.slot(n)
	if s == nil || (s.typ != TypeTrue && s.typ != TypeFalse) {
		return false
	}
	s.typ = TypeFalse
	if b {
		s.typ = TypeTrue
	}
	return true
}
