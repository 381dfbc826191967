package notify

import (
	"container/list"
	"sync"

	"github.com/krew-solutions/ascetic-mvvm-go/asceticmvvm/option"
)

// DefaultArgsCacheSize bounds the args cache of managers built with
// NewManager. View models rarely expose more distinct property names.
const DefaultArgsCacheSize = 512

type argsEntry struct {
	name string
	args PropertyChangedArgs
}

func NewArgsCache(size int) *ArgsCache {
	return &ArgsCache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

// ArgsCache is a bounded lookup-or-create table of canonical
// PropertyChangedArgs values keyed by property name, evicting the
// least recently used name when full. Unlike the manager it guards
// itself with a mutex: the cache is context-independent and may be
// shared.
type ArgsCache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

// Lookup returns the canonical args value for propertyName, creating
// and caching it on first use.
func (c *ArgsCache) Lookup(propertyName string) PropertyChangedArgs {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[propertyName]; ok {
		c.order.MoveToBack(elem)
		return elem.Value.(argsEntry).args
	}
	args := PropertyChangedArgs{PropertyName: propertyName}
	elem := c.order.PushBack(argsEntry{name: propertyName, args: args})
	c.items[propertyName] = elem
	if len(c.items) > c.size {
		front := c.order.Front()
		c.order.Remove(front)
		delete(c.items, front.Value.(argsEntry).name)
	}
	return args
}

// Peek returns the cached args for propertyName without creating an
// entry or refreshing its recency.
func (c *ArgsCache) Peek(propertyName string) option.Option[PropertyChangedArgs] {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[propertyName]
	if !ok {
		return option.Nothing[PropertyChangedArgs]()
	}
	return option.Some(elem.Value.(argsEntry).args)
}

// Len returns the number of cached property names.
func (c *ArgsCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
