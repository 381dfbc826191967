// Package weakref provides an ordered collection of weakly held
// references, used as the subscriber storage behind weak event
// surfaces. An entry does not keep its target alive: once the target
// is collected, the entry is skipped and eventually evicted.
package weakref

import (
	"iter"
	"weak"
)

func NewCollection[T any]() *CollectionImp[T] {
	return &CollectionImp[T]{}
}

// CollectionImp holds weak references in insertion order. Duplicate
// targets are allowed and yield duplicate entries. Dead entries are
// evicted lazily while traversing, never by a background sweep.
//
// CollectionImp is not safe for concurrent use; it is owned by a
// single event surface and mutated on one goroutine at a time.
type CollectionImp[T any] struct {
	entries []weak.Pointer[T]
}

// Add appends a weak reference to target. A nil target is ignored.
func (c *CollectionImp[T]) Add(target *T) {
	if target == nil {
		return
	}
	c.entries = append(c.entries, weak.Make(target))
}

// Remove removes the first entry whose live target is target. Entries
// whose target was already collected are not considered a match.
// Removing a nil, absent or collected target is a silent no-op.
func (c *CollectionImp[T]) Remove(target *T) {
	if target == nil {
		return
	}
	for i, e := range c.entries {
		if e.Value() == target {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of stored entries, dead ones included until
// the next traversal evicts them.
func (c *CollectionImp[T]) Len() int {
	return len(c.entries)
}

// Live returns a restartable sequence of the currently live targets in
// insertion order. Every pass compacts the underlying storage, so dead
// entries are dropped even when the consumer stops early and the
// collection does not grow unbounded across subscribe/raise cycles.
func (c *CollectionImp[T]) Live() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		kept := c.entries[:0]
		stopped := false
		for _, e := range c.entries {
			target := e.Value()
			if target == nil {
				continue
			}
			kept = append(kept, e)
			if !stopped && !yield(target) {
				stopped = true
			}
		}
		c.entries = kept
	}
}
