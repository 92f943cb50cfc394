package cache

import (
	"sync"

	"github.com/gramework/rehashdict/dict"
	"github.com/gramework/rehashdict/list"
)

// New returns an empty Cache bounded to capacity entries. capacity <= 0
// means unbounded.
func New(capacity int) *Cache {
	return &Cache{
		d:           dict.NewStringDict(),
		capacity:    capacity,
		lock:        sync.RWMutex{},
		defragQueue: list.New[string](),
	}
}
