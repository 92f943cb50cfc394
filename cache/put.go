package cache

import (
	"unsafe"

	"github.com/gramework/rehashdict/dict"
	"github.com/kirillDanshin/dlog"
)

// Put stores value under key, overwriting any existing entry. If the
// cache is at capacity and key is new, it evicts one entry first via
// evictOne.
func (c *Cache) Put(key string, value interface{}) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if existing, ok := c.d.Find(key); ok {
		e := (*entry)(existing.Ptr())
		e.value = value
		e.lastAccess = nowNano()
		return nil
	}

	if c.capacity > 0 && c.d.Len() >= c.capacity {
		c.evictOne()
	}

	e := &entry{value: value, lastAccess: nowNano()}
	return c.d.Add(key, dict.PtrValue(unsafe.Pointer(e)))
}

// evictOne samples evictionSampleSize random keys and removes the one
// with the oldest lastAccess, an approximate LRU policy cheap enough to
// run on every insert into a full cache.
func (c *Cache) evictOne() {
	var (
		victim  string
		oldest  int64
		found   bool
		sampled int
	)
	c.d.SomeKeys(evictionSampleSize, func(key string, v dict.Value) {
		sampled++
		e := (*entry)(v.Ptr())
		if !found || e.lastAccess < oldest {
			victim, oldest, found = key, e.lastAccess, true
		}
	})
	if !found {
		return
	}
	if err := c.d.Delete(victim); err != nil {
		dlog.D("cache: evict %s failed: %v", victim, err)
		return
	}
	dlog.D("cache: evicted %s (sampled %d)", victim, sampled)
}
