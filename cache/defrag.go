package cache

import (
	"unsafe"

	"github.com/gramework/rehashdict/dict"
	"github.com/kirillDanshin/dlog"
)

// Defrag runs one ScanWithDefrag pass starting at cursor, relocating each
// entry to a freshly allocated copy — standing in for what a real
// allocator-aware defragmenter would do when compacting memory. Relocated
// keys are recorded on defragQueue for a caller to inspect. Returns the
// cursor to resume from; a full pass completes when it returns 0.
func (c *Cache) Defrag(cursor uint64) uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	next := c.d.ScanWithDefrag(cursor, func(key string, v dict.Value) (string, dict.Value, bool) {
		old := (*entry)(v.Ptr())
		fresh := &entry{value: old.value, lastAccess: old.lastAccess}
		c.defragQueue.PushBack(key)
		return key, dict.PtrValue(unsafe.Pointer(fresh)), true
	})
	if next == 0 {
		dlog.D("cache: defrag pass complete, relocated %d entries", c.defragQueue.Len())
	}
	return next
}

// DrainDefragLog pops and returns every key recorded by Defrag since the
// last drain.
func (c *Cache) DrainDefragLog() []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	keys := make([]string, 0, c.defragQueue.Len())
	for n := c.defragQueue.Front(); n != nil; {
		next := n.Next()
		keys = append(keys, n.Value())
		c.defragQueue.Remove(n)
		n = next
	}
	return keys
}
