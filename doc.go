// Package jemi builds and emits JSON without a heap allocator.
//
// # Overview
//
// Every node comes from a fixed slice of slots that the caller supplies once.
// Nodes are never freed one at a time; the whole arena is reclaimed with
// Reset. This is particularly useful for:
//
//   - Firmware-style services with a hard memory ceiling
//   - Hot paths that must not create garbage per document
//   - Reusable templates that are mutated and snapshotted repeatedly
//
// # Basic Usage
//
//	var pool [64]jemi.Slot
//	a := jemi.NewArena(pool[:])
//
//	root := a.Object(
//	    a.String("colors"),
//	    a.Array(a.Float(255), a.Float(0), a.Float(255)),
//	)
//	a.Emit(root, jemi.SinkFunc(func(c byte) { os.Stdout.Write([]byte{c}) }))
//
//	// Reclaim everything before the next document
//	a.Reset()
//
// # Handles
//
// Builders return Node handles rather than pointers. Nil is the "no value"
// handle returned when the arena is full; every builder accepts it and
// skips it, so a failed allocation degrades the output instead of
// corrupting it. Reset advances the arena epoch and older handles become
// stale: they behave exactly like Nil.
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access, use SafeArena:
//
//	s := jemi.NewSafeArena(pool[:])
//	s.Do(func(a *jemi.Arena) {
//	    root := a.Array(a.Integer(1), a.Integer(2))
//	    a.Emit(root, sink)
//	    a.Reset()
//	})
//
// # Memory Layout
//
// A Slot is 32 bytes on 64-bit platforms: a one-byte tag, a 32-bit sibling
// link, a 64-bit payload word and a string header. The payload word holds
// float bits, integer bits or the link to a container's first child,
// selected by the tag.
//
//	slots: [obj|next=0|kids=2] [key|next=3] [arr|next=0|kids=4] [1.0|next=5] ...
//
// Free slots are chained through the same sibling link, so the arena needs
// no storage beyond the caller's slice. Links are slot index + 1, 0 ends
// a chain.
//
// # Performance
//
//   - Allocate, Reset per slot, setters: O(1)
//   - Append: O(length of the target chain), it walks to the tail
//   - Available: O(free slots), prefer InUse on hot paths
//   - Emit: O(nodes), no heap allocation
//
// # Output Format
//
// Output is compact JSON. Floats render with exactly six decimals (%f),
// integers as plain decimals, strings between quotes with no escaping.
// Use Validate to catch odd object children, non-string keys, cycles and
// non-finite floats before emitting.
//
// # Important Notes
//
//   - String nodes borrow their bytes; the caller's data must outlive them
//   - No individual deallocation - use Reset() for bulk cleanup
//   - A node has one sibling link, so it can sit in one chain at a time
//   - Available() walks the freelist and is meant for introspection
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Free slots: %d\n", m.Available)
//
// NewPrometheusMetrics exports the same counters to a Prometheus registry.
package jemi
