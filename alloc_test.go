package jemi

import (
	"math"
	"testing"
)

func TestScalarConstructors(t *testing.T) {
	a := NewArena(make([]Slot, 16))

	tests := []struct {
		name string
		node Node
		typ  Type
		want string
	}{
		{"float", a.Float(1.0), TypeFloat, "1.000000"},
		{"integer", a.Integer(-42), TypeInteger, "-42"},
		{"string", a.String("red"), TypeString, `"red"`},
		{"true", a.True(), TypeTrue, "true"},
		{"false", a.False(), TypeFalse, "false"},
		{"bool true", a.Bool(true), TypeTrue, "true"},
		{"bool false", a.Bool(false), TypeFalse, "false"},
		{"null", a.Null(), TypeNull, "null"},
		{"empty string", a.String(""), TypeString, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.IsNil() {
				t.Fatal("constructor returned Nil")
			}
			if got := a.Type(tt.node); got != tt.typ {
				t.Errorf("Type() = %v, want %v", got, tt.typ)
			}
			if got := a.Render(tt.node); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if !a.Next(tt.node).IsNil() {
				t.Error("fresh node has a sibling")
			}
		})
	}
}

func TestScalarConstructorsExhausted(t *testing.T) {
	a := NewArena(nil)
	for name, n := range map[string]Node{
		"float":   a.Float(1),
		"integer": a.Integer(1),
		"string":  a.String("x"),
		"bytes":   a.Bytes([]byte("x")),
		"true":    a.True(),
		"false":   a.False(),
		"bool":    a.Bool(true),
		"null":    a.Null(),
		"array":   a.Array(),
		"object":  a.Object(),
	} {
		if !n.IsNil() {
			t.Errorf("%s on an empty arena = %v, want Nil", name, n)
		}
	}
}

func TestBytesBorrows(t *testing.T) {
	a := NewArena(make([]Slot, 2))
	buf := []byte("abc")
	n := a.Bytes(buf)
	buf[1] = 'X'
	if got := a.Render(n); got != `"aXc"` {
		t.Errorf("Render() = %q, want %q", got, `"aXc"`)
	}
	if got := a.Render(a.Bytes(nil)); got != `""` {
		t.Errorf("Render(Bytes(nil)) = %q, want %q", got, `""`)
	}
}

func TestValueAccessors(t *testing.T) {
	a := NewArena(make([]Slot, 8))
	f := a.Float(2.5)
	i := a.Integer(math.MinInt64)
	s := a.String("s")
	b := a.False()

	if v, ok := a.FloatValue(f); !ok || v != 2.5 {
		t.Errorf("FloatValue() = %v, %v", v, ok)
	}
	if v, ok := a.IntegerValue(i); !ok || v != math.MinInt64 {
		t.Errorf("IntegerValue() = %v, %v", v, ok)
	}
	if v, ok := a.StringValue(s); !ok || v != "s" {
		t.Errorf("StringValue() = %v, %v", v, ok)
	}
	if v, ok := a.BoolValue(b); !ok || v {
		t.Errorf("BoolValue() = %v, %v", v, ok)
	}

	// Accessors check the tag before reading the payload
	if _, ok := a.FloatValue(i); ok {
		t.Error("FloatValue on an integer node should fail")
	}
	if _, ok := a.IntegerValue(f); ok {
		t.Error("IntegerValue on a float node should fail")
	}
	if _, ok := a.StringValue(Nil); ok {
		t.Error("StringValue(Nil) should fail")
	}
	if _, ok := a.BoolValue(s); ok {
		t.Error("BoolValue on a string node should fail")
	}
}

func TestSetters(t *testing.T) {
	a := NewArena(make([]Slot, 8))
	f := a.Float(0)
	i := a.Integer(0)
	s := a.String("before")
	b := a.True()

	if !a.SetFloat(f, 1.5) || a.Render(f) != "1.500000" {
		t.Errorf("SetFloat: got %q", a.Render(f))
	}
	if !a.SetInteger(i, math.MaxInt64) || a.Render(i) != "9223372036854775807" {
		t.Errorf("SetInteger: got %q", a.Render(i))
	}
	if !a.SetString(s, "after") || a.Render(s) != `"after"` {
		t.Errorf("SetString: got %q", a.Render(s))
	}
	if !a.SetBool(b, false) || a.Type(b) != TypeFalse {
		t.Errorf("SetBool(false): type %v", a.Type(b))
	}
	if !a.SetBool(b, true) || a.Type(b) != TypeTrue {
		t.Errorf("SetBool(true): type %v", a.Type(b))
	}

	// Mismatched tags are left untouched
	if a.SetFloat(i, 3) || a.SetInteger(f, 3) || a.SetString(b, "x") || a.SetBool(s, true) {
		t.Error("setter applied to a node of the wrong type")
	}
	if a.SetFloat(Nil, 1) {
		t.Error("SetFloat(Nil) should fail")
	}
	if got := a.Render(i); got != "9223372036854775807" {
		t.Errorf("integer changed by mismatched setter: %q", got)
	}
}
