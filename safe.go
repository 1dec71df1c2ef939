package jemi

import (
	"io"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Building happens inside Do so a whole document is assembled under one lock.
// Sinks passed to Emit must not call back into the SafeArena.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena over slots.
func NewSafeArena(slots []Slot, opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(slots, opts...)}
}

// Do runs fn with exclusive access to the underlying arena. Handles must
// not be used outside Do once another goroutine may Reset.
func (s *SafeArena) Do(fn func(a *Arena)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.a)
}

// Reset thread-safely returns every slot to the freelist.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely detaches the backing store.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Emit thread-safely emits root to sink.
func (s *SafeArena) Emit(root Node, sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Emit(root, sink)
}

// EmitTo thread-safely emits root to w.
func (s *SafeArena) EmitTo(root Node, w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EmitTo(root, w)
}

// Render thread-safely renders root as a string.
func (s *SafeArena) Render(root Node) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Render(root)
}

// Validate thread-safely validates root.
func (s *SafeArena) Validate(root Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Validate(root)
}
