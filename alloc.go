package jemi

import (
	"math"
	"unsafe"
)

// Type is the tag that selects how a node's payload is read.
type Type uint8

const (
	TypeInvalid Type = iota // zeroed or free slot
	TypeObject
	TypeArray
	TypeFloat
	TypeInteger
	TypeString
	TypeTrue
	TypeFalse
	TypeNull
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeObject:  "object",
	TypeArray:   "array",
	TypeFloat:   "float",
	TypeInteger: "integer",
	TypeString:  "string",
	TypeTrue:    "true",
	TypeFalse:   "false",
	TypeNull:    "null",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "invalid"
}

func (t Type) valid() bool { return t > TypeInvalid && t <= TypeNull }

// IsContainer reports whether nodes of type t own a children chain.
func (t Type) IsContainer() bool { return t == TypeObject || t == TypeArray }

// Float allocates a float node.
func (a *Arena) Float(v float64) Node {
	n := a.Allocate(TypeFloat)
	if s := a.slot(n); s != nil {
		s.word = math.Float64bits(v)
	}
	return n
}

// Integer allocates a signed 64-bit integer node.
func (a *Arena) Integer(v int64) Node {
	n := a.Allocate(TypeInteger)
	if s := a.slot(n); s != nil {
		s.word = uint64(v)
	}
	return n
}

// String allocates a string node. The node borrows str; nothing is copied.
func (a *Arena) String(str string) Node {
	n := a.Allocate(TypeString)
	if s := a.slot(n); s != nil {
		s.str = str
	}
	return n
}

// Bytes allocates a string node that borrows b without copying it.
// Later writes to b show up in the emitted text.
func (a *Arena) Bytes(b []byte) Node {
	if len(b) == 0 {
		return a.String("")
	}
	return a.String(unsafe.String(unsafe.SliceData(b), len(b)))
}

// True allocates a true node.
func (a *Arena) True() Node { return a.Allocate(TypeTrue) }

// False allocates a false node.
func (a *Arena) False() Node { return a.Allocate(TypeFalse) }

// Bool allocates a true or false node.
func (a *Arena) Bool(b bool) Node {
	if b {
		return a.True()
	}
	return a.False()
}

// Null allocates a null node.
func (a *Arena) Null() Node { return a.Allocate(TypeNull) }
