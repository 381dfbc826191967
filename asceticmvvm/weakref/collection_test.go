package weakref

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// collect runs the garbage collector enough for weak references to
// unreachable targets to be cleared.
func collect() {
	runtime.GC()
	runtime.GC()
}

func drain[T any](c *CollectionImp[T]) []*T {
	var out []*T
	for v := range c.Live() {
		out = append(out, v)
	}
	return out
}

//go:noinline
func addTransient(c *CollectionImp[int]) {
	c.Add(new(int))
}

func TestCollection_LivePreservesInsertionOrder(t *testing.T) {
	c := NewCollection[int]()
	first, second, third := new(int), new(int), new(int)
	c.Add(first)
	c.Add(second)
	c.Add(third)

	assert.Equal(t, []*int{first, second, third}, drain(c))
	runtime.KeepAlive(first)
	runtime.KeepAlive(second)
	runtime.KeepAlive(third)
}

func TestCollection_DuplicateAddYieldsDuplicateEntries(t *testing.T) {
	c := NewCollection[int]()
	target := new(int)
	c.Add(target)
	c.Add(target)

	assert.Equal(t, []*int{target, target}, drain(c))
	assert.Equal(t, 2, c.Len())
	runtime.KeepAlive(target)
}

func TestCollection_AddNilIsIgnored(t *testing.T) {
	c := NewCollection[int]()
	c.Add(nil)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_RemoveFirstMatchOnly(t *testing.T) {
	c := NewCollection[int]()
	target := new(int)
	c.Add(target)
	c.Add(target)
	c.Remove(target)

	assert.Equal(t, []*int{target}, drain(c))
	runtime.KeepAlive(target)
}

func TestCollection_RemoveUnknownIsSilent(t *testing.T) {
	c := NewCollection[int]()
	kept := new(int)
	c.Add(kept)

	c.Remove(new(int))
	c.Remove(nil)

	assert.Equal(t, []*int{kept}, drain(c))
	runtime.KeepAlive(kept)
}

func TestCollection_DeadEntriesSkippedAndEvicted(t *testing.T) {
	c := NewCollection[int]()
	kept := new(int)
	c.Add(kept)
	addTransient(c)
	collect()

	assert.Equal(t, []*int{kept}, drain(c))
	assert.Equal(t, 1, c.Len(), "dead entry should be evicted by the traversal")
	runtime.KeepAlive(kept)
}

func TestCollection_EarlyBreakStillCompacts(t *testing.T) {
	c := NewCollection[int]()
	first := new(int)
	c.Add(first)
	addTransient(c)
	last := new(int)
	c.Add(last)
	collect()

	for range c.Live() {
		break
	}

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []*int{first, last}, drain(c))
	runtime.KeepAlive(first)
	runtime.KeepAlive(last)
}

func TestCollection_StorageDoesNotGrowAcrossCycles(t *testing.T) {
	c := NewCollection[int]()
	for i := 0; i < 100; i++ {
		addTransient(c)
		collect()
		drain(c)
	}
	assert.Equal(t, 0, c.Len())
}
