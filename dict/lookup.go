package dict

// Find hashes key, probes T0, then (only while rehashing) probes T1,
// returning the first match. Every lookup piggybacks one rehash step.
func (d *Dictionary[K]) Find(key K) (Value, bool) {
	d.piggybackRehash()
	return d.lookupValue(key)
}

// FetchValue is Find without the found flag; absent keys report the zero
// Value, which IsZero() reports as true.
func (d *Dictionary[K]) FetchValue(key K) Value {
	v, _ := d.Find(key)
	return v
}

// Contains reports whether key is present, without exposing its value.
func (d *Dictionary[K]) Contains(key K) bool {
	_, ok := d.Find(key)
	return ok
}

func (d *Dictionary[K]) lookupValue(key K) (Value, bool) {
	if !d.t[0].isInitialized() {
		return Value{}, false
	}
	h := d.hash(key)
	if v, ok := d.searchTable(0, h, key); ok {
		return v, true
	}
	if d.IsRehashing() {
		if v, ok := d.searchTable(1, h, key); ok {
			return v, true
		}
	}
	return Value{}, false
}

func (d *Dictionary[K]) searchTable(ti int, h uint64, key K) (Value, bool) {
	tbl := &d.t[ti]
	if !tbl.isInitialized() {
		return Value{}, false
	}
	idx := int(h & tbl.mask())
	s := &tbl.buckets[idx]
	switch s.state {
	case bucketBare:
		if d.typ.equal(s.bare, key) {
			return Value{}, true
		}
	case bucketChain:
		for e := s.head; e != nil; e = e.next {
			if d.typ.equal(e.key, key) {
				return e.value, true
			}
		}
	}
	return Value{}, false
}

// FindByIdentity looks up a key by raw identity (Go's built-in ==) instead
// of the TypeDescriptor's KeysEqual, bypassing key comparison entirely.
// This is the collaborator a defragmenter uses after relocating a key's
// backing storage: oldKey is still the same Go value (e.g. the same
// pointer) even though what it points to has moved, so identity still
// matches while byte-wise comparison of moved data might not yet.
func (d *Dictionary[K]) FindByIdentity(oldKey K, hash uint64) (Value, bool) {
	d.piggybackRehash()
	if v, ok := d.searchTableIdentity(0, hash, oldKey); ok {
		return v, true
	}
	if d.IsRehashing() {
		if v, ok := d.searchTableIdentity(1, hash, oldKey); ok {
			return v, true
		}
	}
	return Value{}, false
}

func (d *Dictionary[K]) searchTableIdentity(ti int, h uint64, key K) (Value, bool) {
	tbl := &d.t[ti]
	if !tbl.isInitialized() {
		return Value{}, false
	}
	idx := int(h & tbl.mask())
	s := &tbl.buckets[idx]
	switch s.state {
	case bucketBare:
		if s.bare == key {
			return Value{}, true
		}
	case bucketChain:
		for e := s.head; e != nil; e = e.next {
			if e.key == key {
				return e.value, true
			}
		}
	}
	return Value{}, false
}
