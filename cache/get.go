package cache

// Get a key from the cache, refreshing its recency for eviction purposes.
func (c *Cache) Get(key string) (interface{}, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	v, ok := c.d.Find(key)
	if !ok {
		return nil, ErrNotFound
	}
	e := (*entry)(v.Ptr())
	e.lastAccess = nowNano()
	return e.value, nil
}
