package cache

import (
	"sync"
	"time"

	"github.com/gramework/rehashdict/dict"
	"github.com/gramework/rehashdict/list"
	"github.com/gramework/utils/nocopy"
)

// entry is what Cache stores as each key's dict.Value: the caller's value
// plus the bookkeeping Put/Get need for sampling-based eviction and
// defrag.
type entry struct {
	value      interface{}
	lastAccess int64 // UnixNano, updated on Get and Put
}

// Cache is a bounded key/value cache built on dict.Dictionary[string].
// Unlike the core Dictionary (never thread-safe, per spec §5), Cache adds
// its own mutex — it is a layer above the core, not the core itself.
type Cache struct {
	d        *dict.Dictionary[string]
	capacity int
	lock     sync.RWMutex

	// defragQueue records keys ScanWithDefrag relocated during Defrag
	// calls since the last DrainDefragLog, for a caller to inspect.
	defragQueue *list.List[string]

	nocopy nocopy.NoCopy
}

func nowNano() int64 { return time.Now().UnixNano() }
