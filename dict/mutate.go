package dict

// InsertPosition is the token find-position-for-insert hands back so a
// caller can finish the insert later without repeating the search (spec
// §4.1/§6). It is only valid until the next mutation on the same
// Dictionary.
type InsertPosition struct {
	tableIdx  int
	bucketIdx int
	valid     bool
}

type foundLocation[K comparable] struct {
	bare bool
	node *entry[K]
}

// FindPositionForInsert searches for key; if present, reports its current
// value and exists=true. If absent, it returns a token identifying where a
// new entry belongs (always in T1 while rehashing, to avoid creating a
// duplicate that migration would later have to resolve). Piggybacks one
// rehash step and checks the growth trigger, matching every other insert
// path.
func (d *Dictionary[K]) FindPositionForInsert(key K) (pos InsertPosition, existing Value, exists bool) {
	_, existingValue, found, ti, bi := d.locateForInsert(key)
	if found {
		return InsertPosition{}, existingValue, true
	}
	return InsertPosition{tableIdx: ti, bucketIdx: bi, valid: true}, Value{}, false
}

// InsertAtPosition completes an insert previously located by
// FindPositionForInsert, applying the §3 shape rules (dup key, pick bare vs.
// chained shape) and splicing at the chain head.
func (d *Dictionary[K]) InsertAtPosition(key K, pos InsertPosition, value Value) error {
	if !pos.valid {
		return ErrKeyExists
	}
	d.insertNew(pos.tableIdx, pos.bucketIdx, key, value)
	return nil
}

// Add inserts (key, value); returns ErrKeyExists if key is already present.
func (d *Dictionary[K]) Add(key K, value Value) error {
	pos, _, exists := d.FindPositionForInsert(key)
	if exists {
		return ErrKeyExists
	}
	return d.InsertAtPosition(key, pos, value)
}

// AddRaw inserts key with a zero Value if absent, returning the existing
// value (and existed=true) if it was already present.
func (d *Dictionary[K]) AddRaw(key K) (existing Value, existed bool) {
	pos, existingValue, exists := d.FindPositionForInsert(key)
	if exists {
		return existingValue, true
	}
	_ = d.InsertAtPosition(key, pos, Value{})
	return Value{}, false
}

// AddOrFind returns key's existing value if present (created=false), or
// creates it with a zero Value and returns created=true.
func (d *Dictionary[K]) AddOrFind(key K) (value Value, created bool) {
	existing, existed := d.AddRaw(key)
	return existing, !existed
}

// Replace sets key's value, inserting it if absent. Reports inserted=true
// when the key was newly created, false when an existing value was
// overwritten. When overwriting, the new value is installed before the old
// one is freed via the TypeDescriptor — correct even when old and new are
// the same reference-counted value.
func (d *Dictionary[K]) Replace(key K, value Value) (inserted bool) {
	loc, _, exists, ti, bi := d.locateForInsert(key)
	if exists {
		if loc.bare {
			// A bare (no_value) entry has nothing to replace value-wise.
			return false
		}
		old := loc.node.value
		loc.node.value = value
		d.destroyValue(old)
		return false
	}
	d.insertNew(ti, bi, key, value)
	return true
}

func (d *Dictionary[K]) locateForInsert(key K) (loc foundLocation[K], existing Value, exists bool, insertTable, insertBucket int) {
	d.piggybackRehash()
	_ = d.growIfNeeded()

	h := d.hash(key)
	if l, v, ok := d.locateInTable(0, h, key); ok {
		return l, v, true, 0, 0
	}
	if d.IsRehashing() {
		if l, v, ok := d.locateInTable(1, h, key); ok {
			return l, v, true, 1, 0
		}
	}

	ti := 0
	if d.IsRehashing() {
		ti = 1
	}
	idx := int(h & d.t[ti].mask())
	return foundLocation[K]{}, Value{}, false, ti, idx
}

func (d *Dictionary[K]) locateInTable(ti int, h uint64, key K) (foundLocation[K], Value, bool) {
	tbl := &d.t[ti]
	if !tbl.isInitialized() {
		return foundLocation[K]{}, Value{}, false
	}
	idx := int(h & tbl.mask())
	s := &tbl.buckets[idx]
	switch s.state {
	case bucketBare:
		if d.typ.equal(s.bare, key) {
			return foundLocation[K]{bare: true}, Value{}, true
		}
	case bucketChain:
		for e := s.head; e != nil; e = e.next {
			if d.typ.equal(e.key, key) {
				return foundLocation[K]{node: e}, e.value, true
			}
		}
	}
	return foundLocation[K]{}, Value{}, false
}

// insertNew applies the §3 shape rules: bare shape when the TypeDescriptor
// allows it and the destination bucket is empty, otherwise a chained node
// spliced at the head (most-recently-inserted-first, the same locality bet
// the C original makes).
func (d *Dictionary[K]) insertNew(ti, bi int, key K, value Value) {
	if d.typ.DupKey != nil {
		key = d.typ.DupKey(key)
	}
	tbl := &d.t[ti]
	s := &tbl.buckets[bi]

	if d.typ.NoValue && d.typ.KeysAreOdd && s.state == bucketEmpty {
		s.state = bucketBare
		s.bare = key
		tbl.used++
		return
	}

	if s.state == bucketBare {
		// The bucket's bare key gains a chain node so the new entry can
		// link in front of it.
		s.head = &entry[K]{key: s.bare}
		var zero K
		s.bare = zero
	}

	e := &entry[K]{key: key}
	if !d.typ.NoValue {
		e.value = value
		if d.typ.EntryMetaBytes > 0 {
			e.meta = make([]byte, d.typ.EntryMetaBytes)
		}
	}
	e.next = s.head
	s.state = bucketChain
	s.head = e
	tbl.used++
}
