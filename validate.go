package jemi

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrStale        = errors.New("stale node handle")
	ErrOddObject    = errors.New("object key has no value")
	ErrKeyNotString = errors.New("object key is not a string")
	ErrCycle        = errors.New("node graph contains a cycle")
	ErrNonFinite    = errors.New("float is not finite")
)

// Validate reports the first structural problem in the chain starting at
// root that would make Emit produce malformed JSON. Nil validates as the
// empty chain. Emit itself never validates.
func (a *Arena) Validate(root Node) error {
	if root.IsNil() {
		return nil
	}
	if a.slot(root) == nil {
		return errors.WithStack(ErrStale)
	}
	return a.validateChain(root.ref, false, 0)
}

func (a *Arena) validateChain(ref uint32, object bool, depth int) error {
	if depth > len(a.slots) {
		return errors.Wrapf(ErrCycle, "nesting deeper than %d", len(a.slots))
	}
	i := 0
	for ; ref != 0; ref = a.slots[ref-1].next {
		if i >= len(a.slots) {
			return errors.Wrapf(ErrCycle, "chain at depth %d longer than %d nodes", depth, len(a.slots))
		}
		s := &a.slots[ref-1]
		if object && i&1 == 0 && s.typ != TypeString {
			return errors.Wrapf(ErrKeyNotString, "key %d at depth %d is %s", i/2, depth, s.typ)
		}
		switch s.typ {
		case TypeObject, TypeArray:
			if err := a.validateChain(uint32(s.word), s.typ == TypeObject, depth+1); err != nil {
				return err
			}
		case TypeFloat:
			if v := math.Float64frombits(s.word); math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Wrapf(ErrNonFinite, "element %d at depth %d is %v", i, depth, v)
			}
		}
		i++
	}
	if object && i&1 == 1 {
		return errors.Wrapf(ErrOddObject, "object at depth %d has %d children", depth, i)
	}
	return nil
}
