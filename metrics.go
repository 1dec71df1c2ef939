package jemi

// Utilization returns the ratio of slots in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.InUse()) / float64(capacity)
}

// Exhaustions returns the number of allocations refused since creation.
func (a *Arena) Exhaustions() uint64 {
	return a.exhaustions
}

// Metrics returns a snapshot of arena statistics. It walks the freelist.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Capacity:    a.Capacity(),
		InUse:       a.InUse(),
		Available:   a.Available(),
		Utilization: a.Utilization(),
		Epoch:       a.Epoch(),
		Exhaustions: a.Exhaustions(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Capacity    int     // Slots in the backing store
	InUse       int     // Slots allocated since the last reset
	Available   int     // Slots on the freelist
	Utilization float64 // Ratio of used to total slots (0.0-1.0)
	Epoch       uint32  // Reset generation
	Exhaustions uint64  // Refused allocations
}

// Thread-safe metrics for SafeArena

// Available thread-safely counts the free slots.
func (s *SafeArena) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Available()
}

// InUse thread-safely returns the number of allocated slots.
func (s *SafeArena) InUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.InUse()
}

// Capacity thread-safely returns the number of slots.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of slots in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
