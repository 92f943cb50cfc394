package dict

// UnlinkedEntry is a detached entry: its key and value are intact but it no
// longer lives in any bucket. FreeUnlinked must be called on it exactly
// once to run the TypeDescriptor's destructors, or never if the caller
// wants to keep the key/value alive for reuse elsewhere.
type UnlinkedEntry[K comparable] struct {
	key   K
	value Value
	bare  bool
	valid bool
}

// Key returns the detached entry's key.
func (u UnlinkedEntry[K]) Key() K { return u.key }

// Value returns the detached entry's value (zero for a bare, no_value
// entry).
func (u UnlinkedEntry[K]) Value() Value { return u.value }

// Unlink detaches key's entry, leaving its key/value intact, and reports
// whether it was present.
func (d *Dictionary[K]) Unlink(key K) (UnlinkedEntry[K], bool) {
	d.piggybackRehash()
	h := d.hash(key)
	if u, ok := d.unlinkFromTable(0, h, key); ok {
		return u, true
	}
	if d.IsRehashing() {
		if u, ok := d.unlinkFromTable(1, h, key); ok {
			return u, true
		}
	}
	return UnlinkedEntry[K]{}, false
}

func (d *Dictionary[K]) unlinkFromTable(ti int, h uint64, key K) (UnlinkedEntry[K], bool) {
	tbl := &d.t[ti]
	if !tbl.isInitialized() {
		return UnlinkedEntry[K]{}, false
	}
	idx := int(h & tbl.mask())
	s := &tbl.buckets[idx]
	switch s.state {
	case bucketBare:
		if d.typ.equal(s.bare, key) {
			u := UnlinkedEntry[K]{key: s.bare, bare: true, valid: true}
			*s = slot[K]{}
			tbl.used--
			return u, true
		}
	case bucketChain:
		var prev *entry[K]
		for e := s.head; e != nil; e = e.next {
			if d.typ.equal(e.key, key) {
				if prev == nil {
					s.head = e.next
					if s.head == nil {
						s.state = bucketEmpty
					}
				} else {
					prev.next = e.next
				}
				tbl.used--
				return UnlinkedEntry[K]{key: e.key, value: e.value, valid: true}, true
			}
			prev = e
		}
	}
	return UnlinkedEntry[K]{}, false
}

// FreeUnlinked runs the TypeDescriptor's destructors over a previously
// unlinked entry.
func (d *Dictionary[K]) FreeUnlinked(u UnlinkedEntry[K]) {
	if !u.valid {
		return
	}
	d.destroyKey(u.key)
	if !u.bare {
		d.destroyValue(u.value)
	}
}

// Delete removes key, running destructors; reports ErrKeyNotFound if
// absent. Idempotent-delete law: Delete; Delete returns nil then
// ErrKeyNotFound.
func (d *Dictionary[K]) Delete(key K) error {
	u, ok := d.Unlink(key)
	if !ok {
		return ErrKeyNotFound
	}
	d.FreeUnlinked(u)
	return nil
}

// LinkedEntry is the result of TwoPhaseUnlinkFind: a found entry plus
// enough positional information to detach it without repeating the
// lookup. Rehashing is paused from TwoPhaseUnlinkFind until the matching
// TwoPhaseUnlinkFree.
type LinkedEntry[K comparable] struct {
	dict      *Dictionary[K]
	tableIdx  int
	bucketIdx int
	prev      *entry[K]
	node      *entry[K]
	bare      bool
	bareKey   K
	valid     bool
}

// Key returns the found entry's key.
func (l LinkedEntry[K]) Key() K {
	if l.bare {
		return l.bareKey
	}
	return l.node.key
}

// Value returns the found entry's value (zero for a bare entry).
func (l LinkedEntry[K]) Value() Value {
	if l.bare || l.node == nil {
		return Value{}
	}
	return l.node.value
}

// Found reports whether TwoPhaseUnlinkFind actually located an entry.
func (l LinkedEntry[K]) Found() bool { return l.valid }

// TwoPhaseUnlinkFind looks up key once and pauses rehashing so the caller
// can inspect the entry before deciding to detach it. If key isn't found,
// the pause is released immediately and the returned LinkedEntry reports
// Found() == false.
func (d *Dictionary[K]) TwoPhaseUnlinkFind(key K) LinkedEntry[K] {
	d.piggybackRehash()
	d.pauseRehashing()

	h := d.hash(key)
	if le, ok := d.findLinked(0, h, key); ok {
		le.dict = d
		return le
	}
	if d.IsRehashing() {
		if le, ok := d.findLinked(1, h, key); ok {
			le.dict = d
			return le
		}
	}
	d.resumeRehashing()
	return LinkedEntry[K]{}
}

func (d *Dictionary[K]) findLinked(ti int, h uint64, key K) (LinkedEntry[K], bool) {
	tbl := &d.t[ti]
	if !tbl.isInitialized() {
		return LinkedEntry[K]{}, false
	}
	idx := int(h & tbl.mask())
	s := &tbl.buckets[idx]
	switch s.state {
	case bucketBare:
		if d.typ.equal(s.bare, key) {
			return LinkedEntry[K]{tableIdx: ti, bucketIdx: idx, bare: true, bareKey: s.bare, valid: true}, true
		}
	case bucketChain:
		var prev *entry[K]
		for e := s.head; e != nil; e = e.next {
			if d.typ.equal(e.key, key) {
				return LinkedEntry[K]{tableIdx: ti, bucketIdx: idx, prev: prev, node: e, valid: true}, true
			}
			prev = e
		}
	}
	return LinkedEntry[K]{}, false
}

// TwoPhaseUnlinkFree detaches and destroys the entry found by
// TwoPhaseUnlinkFind, resuming rehashing. Calling it with a LinkedEntry
// whose Found() is false is a no-op.
func (d *Dictionary[K]) TwoPhaseUnlinkFree(l LinkedEntry[K]) {
	if !l.valid {
		return
	}
	tbl := &l.dict.t[l.tableIdx]
	s := &tbl.buckets[l.bucketIdx]

	var key K
	var value Value
	if l.bare {
		key = s.bare
		*s = slot[K]{}
	} else {
		key = l.node.key
		value = l.node.value
		if l.prev == nil {
			s.head = l.node.next
			if s.head == nil {
				s.state = bucketEmpty
			}
		} else {
			l.prev.next = l.node.next
		}
	}
	tbl.used--

	l.dict.destroyKey(key)
	if !l.bare {
		l.dict.destroyValue(value)
	}
	l.dict.resumeRehashing()
}
