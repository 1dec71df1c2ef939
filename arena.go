// Package jemi builds JSON documents out of a fixed, caller-supplied node
// arena and streams them through a byte sink.
// Typical usage: create one arena at startup, build a document, emit it,
// then Reset() before building the next one.
package jemi

import (
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// maxSlots is the largest arena that node handles can address.
const maxSlots = math.MaxUint32 - 1

// Slot is one node's storage inside an arena. Callers only allocate slots
// (e.g. `var pool [64]jemi.Slot`) and hand them to NewArena.
type Slot struct {
	typ  Type
	next uint32 // sibling link while live, freelist link while free (index+1, 0 ends)
	word uint64 // float bits, int64 bits or children link, selected by typ
	str  string // borrowed string payload
}

// Node is a handle to a slot issued by an Arena. The zero Node is Nil.
// Handles issued before a Reset are stale and behave like Nil.
type Node struct {
	ref   uint32 // slot index + 1
	epoch uint32
}

// Nil is the "no value" node returned when the arena is exhausted.
var Nil Node

// IsNil reports whether n is the zero handle.
func (n Node) IsNil() bool { return n.ref == 0 }

// Arena is a fixed-capacity node allocator with a freelist threaded
// through its slots. Not goroutine-safe; use SafeArena for concurrent access.
type Arena struct {
	slots    []Slot
	free     uint32 // freelist head (index+1), 0 when empty
	epoch    uint32
	inUse    int
	released bool

	exhausted   bool // already reported for this epoch
	exhaustions uint64

	logger log.Logger
	prom   *PrometheusMetrics

	scratch [floatBufLen]byte
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger used for exhaustion and lifecycle events.
func WithLogger(l log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithPrometheus reports allocation activity to m.
func WithPrometheus(m *PrometheusMetrics) Option {
	return func(a *Arena) { a.prom = m }
}

// NewArena creates an Arena over the caller's slots and resets it.
// The arena takes over the slots' contents but never their storage.
func NewArena(slots []Slot, opts ...Option) *Arena {
	a := &Arena{logger: log.NewNopLogger()}
	for _, o := range opts {
		o(a)
	}
	a.Init(slots)
	return a
}

// Init points the arena at a new backing store and resets it.
// Every handle issued from the previous store becomes stale.
func (a *Arena) Init(slots []Slot) {
	if len(slots) > maxSlots {
		slots = slots[:maxSlots]
	}
	a.slots = slots
	a.released = false
	a.prom.setCapacity(len(slots))
	level.Debug(a.logger).Log("msg", "node arena initialized", "capacity", len(slots))
	a.Reset()
}

// Reset zeroes every slot and relinks all of them into the freelist in slot
// order. Handles issued before the call become stale.
func (a *Arena) Reset() {
	if a.released {
		panic("jemi: use after Release()")
	}
	clear(a.slots)
	n := len(a.slots)
	for i := 0; i < n-1; i++ {
		a.slots[i].next = uint32(i + 2)
	}
	a.free = 0
	if n > 0 {
		a.free = 1
	}
	a.nextEpoch()
	a.inUse = 0
	a.exhausted = false
	a.prom.observeReset()
}

// Release detaches the backing store. Allocation afterwards yields Nil and
// Reset panics until Init is called again.
func (a *Arena) Release() {
	a.slots = nil
	a.free = 0
	a.inUse = 0
	a.released = true
	a.nextEpoch()
	a.prom.setCapacity(0)
	level.Debug(a.logger).Log("msg", "node arena released")
}

// Allocate pops one slot from the freelist and tags it with t.
// It returns Nil when the freelist is empty or t is not a node type.
func (a *Arena) Allocate(t Type) Node {
	if !t.valid() {
		return Nil
	}
	if a.free == 0 {
		a.exhaust()
		return Nil
	}
	ref := a.free
	s := &a.slots[ref-1]
	a.free = s.next
	*s = Slot{typ: t}
	a.inUse++
	a.prom.observeAlloc(a.inUse)
	return Node{ref: ref, epoch: a.epoch}
}

// Available counts the free slots by walking the freelist.
func (a *Arena) Available() int {
	count := 0
	for ref := a.free; ref != 0 && count <= len(a.slots); ref = a.slots[ref-1].next {
		count++
	}
	return count
}

// Capacity returns the number of slots in the backing store.
func (a *Arena) Capacity() int { return len(a.slots) }

// InUse returns the number of slots handed out since the last reset.
func (a *Arena) InUse() int { return a.inUse }

// Epoch identifies the current reset generation.
func (a *Arena) Epoch() uint32 { return a.epoch }

func (a *Arena) exhaust() {
	a.exhaustions++
	a.prom.observeExhaustion()
	if a.exhausted {
		return
	}
	a.exhausted = true
	level.Debug(a.logger).Log("msg", "node arena exhausted", "capacity", len(a.slots), "epoch", a.epoch)
}

func (a *Arena) nextEpoch() {
	a.epoch++
	if a.epoch == 0 {
		a.epoch = 1
	}
}

// slot resolves a live handle, or returns nil for Nil and stale handles.
func (a *Arena) slot(n Node) *Slot {
	if n.ref == 0 || n.epoch != a.epoch || int(n.ref) > len(a.slots) {
		return nil
	}
	s := &a.slots[n.ref-1]
	if s.typ == TypeInvalid {
		return nil
	}
	return s
}

// node wraps a raw link in a handle of the current epoch.
func (a *Arena) node(ref uint32) Node {
	if ref == 0 {
		return Nil
	}
	return Node{ref: ref, epoch: a.epoch}
}

// last follows sibling links from ref to the end of its chain. The walk is
// bounded by the capacity so a malformed cyclic chain cannot hang it.
func (a *Arena) last(ref uint32) uint32 {
	for steps := 0; steps < len(a.slots); steps++ {
		next := a.slots[ref-1].next
		if next == 0 {
			break
		}
		ref = next
	}
	return ref
}
