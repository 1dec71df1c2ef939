package jemi

import (
	"fmt"
	"testing"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"empty arena", 0},
		{"single slot", 1},
		{"small arena", 30},
		{"larger arena", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(make([]Slot, tt.capacity))
			if a.Capacity() != tt.capacity {
				t.Errorf("Capacity() = %d, want %d", a.Capacity(), tt.capacity)
			}
			if a.Available() != tt.capacity {
				t.Errorf("Available() = %d, want %d", a.Available(), tt.capacity)
			}
			if a.InUse() != 0 {
				t.Errorf("InUse() = %d, want 0", a.InUse())
			}
		})
	}
}

func TestArenaExhaustion(t *testing.T) {
	for _, capacity := range []int{1, 2, 7, 60} {
		t.Run(fmt.Sprintf("capacity-%d", capacity), func(t *testing.T) {
			a := NewArena(make([]Slot, capacity))
			seen := map[uint32]bool{}
			for i := 0; i < capacity; i++ {
				n := a.Integer(int64(i))
				if n.IsNil() {
					t.Fatalf("allocation %d returned Nil", i)
				}
				if seen[n.ref] {
					t.Fatalf("slot %d handed out twice", n.ref)
				}
				seen[n.ref] = true
			}
			if a.Available() != 0 {
				t.Errorf("Available() = %d, want 0", a.Available())
			}
			if n := a.Null(); !n.IsNil() {
				t.Errorf("allocation past capacity = %v, want Nil", n)
			}
			if a.Exhaustions() != 1 {
				t.Errorf("Exhaustions() = %d, want 1", a.Exhaustions())
			}
		})
	}
}

func TestArenaExhaustionKeepsLiveNodes(t *testing.T) {
	a := NewArena(make([]Slot, 3))
	x := a.Integer(7)
	arr := a.Array(x)
	s := a.String("kept")
	if a.True() != Nil {
		t.Fatal("expected Nil after capacity")
	}
	if got := a.Render(a.List(arr, s)); got != `[7],"kept"` {
		t.Errorf("Render = %q, want %q", got, `[7],"kept"`)
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena(make([]Slot, 10))
	for i := 0; i < 4; i++ {
		a.Float(float64(i))
	}
	if a.Available() != 6 {
		t.Errorf("Available() before Reset = %d, want 6", a.Available())
	}

	epoch := a.Epoch()
	a.Reset()
	if a.Available() != 10 {
		t.Errorf("Available() after Reset = %d, want 10", a.Available())
	}
	if a.InUse() != 0 {
		t.Errorf("InUse() after Reset = %d, want 0", a.InUse())
	}
	if a.Epoch() == epoch {
		t.Error("Reset did not advance the epoch")
	}

	// Exhaust, reset, exhaust again
	for i := 0; i < 11; i++ {
		a.Null()
	}
	a.Reset()
	if a.Available() != 10 {
		t.Errorf("Available() after exhausting and Reset = %d, want 10", a.Available())
	}
}

func TestArenaResetZeroesSlots(t *testing.T) {
	slots := make([]Slot, 4)
	a := NewArena(slots)
	a.String("payload")
	a.Float(3.5)
	a.Reset()
	for i, s := range slots {
		if s.typ != TypeInvalid || s.word != 0 || s.str != "" {
			t.Errorf("slot %d not zeroed: %+v", i, s)
		}
	}
}

func TestArenaAllocationOrder(t *testing.T) {
	a := NewArena(make([]Slot, 3))
	for want := uint32(1); want <= 3; want++ {
		if n := a.Null(); n.ref != want {
			t.Errorf("allocation returned slot %d, want %d", n.ref, want)
		}
	}
}

func TestArenaAllocateInvalidType(t *testing.T) {
	a := NewArena(make([]Slot, 2))
	if n := a.Allocate(TypeInvalid); !n.IsNil() {
		t.Error("Allocate(TypeInvalid) should return Nil")
	}
	if n := a.Allocate(Type(200)); !n.IsNil() {
		t.Error("Allocate(200) should return Nil")
	}
	if a.Available() != 2 {
		t.Errorf("Available() = %d, want 2", a.Available())
	}
}

func TestStaleHandle(t *testing.T) {
	a := NewArena(make([]Slot, 4))
	old := a.Integer(1)
	a.Reset()
	fresh := a.Integer(2)

	if old.ref != fresh.ref {
		t.Fatalf("expected the same slot to be reused, got %d and %d", old.ref, fresh.ref)
	}
	if a.Valid(old) {
		t.Error("handle from before Reset should be stale")
	}
	if a.SetInteger(old, 99) {
		t.Error("SetInteger through a stale handle should fail")
	}
	if v, _ := a.IntegerValue(fresh); v != 2 {
		t.Errorf("fresh node = %d, want 2", v)
	}
	if got := a.Render(old); got != "" {
		t.Errorf("Render(stale) = %q, want empty", got)
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena(make([]Slot, 8))
	n := a.Null()

	a.Release()

	if a.Capacity() != 0 {
		t.Errorf("Capacity() after Release = %d, want 0", a.Capacity())
	}
	if a.Valid(n) {
		t.Error("handle should be stale after Release")
	}
	if !a.Null().IsNil() {
		t.Error("allocation after Release should return Nil")
	}

	// Test panic on use after release
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on Reset after Release()")
		}
	}()
	a.Reset()
}

func TestArenaInitAfterRelease(t *testing.T) {
	a := NewArena(make([]Slot, 2))
	a.Release()
	a.Init(make([]Slot, 5))
	if a.Available() != 5 {
		t.Errorf("Available() after Init = %d, want 5", a.Available())
	}
	a.Reset()
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeObject, "object"},
		{TypeArray, "array"},
		{TypeFloat, "float"},
		{TypeInteger, "integer"},
		{TypeString, "string"},
		{TypeTrue, "true"},
		{TypeFalse, "false"},
		{TypeNull, "null"},
		{TypeInvalid, "invalid"},
		{Type(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func BenchmarkArenaAllocate(b *testing.B) {
	a := NewArena(make([]Slot, 1024))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if a.Integer(int64(i)).IsNil() {
			a.Reset()
		}
	}
}

func BenchmarkArenaReset(b *testing.B) {
	for _, size := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("slots-%d", size), func(b *testing.B) {
			a := NewArena(make([]Slot, size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.Reset()
			}
		})
	}
}
