package dict

// ScanFunc is called once per visited entry during a Scan.
type ScanFunc[K comparable] func(key K, value Value)

// DefragFunc is called once per visited entry during a ScanWithDefrag. It
// may return a replacement key/value to install in place (e.g. after
// copying a string's backing bytes to a fresh allocation elsewhere), or
// ok=false to leave the entry untouched.
type DefragFunc[K comparable] func(key K, value Value) (newKey K, newValue Value, ok bool)

// Scan visits a slice of the dictionary using the bit-reversed cursor
// algorithm from spec §4.1: cursor 0 starts a scan, and the returned
// cursor is passed back in to continue. A full scan (cursor eventually
// returns to 0) visits every key present for the whole scan's duration at
// least once, even across concurrent inserts/deletes/resizes, at the cost
// of possibly revisiting some keys. Scan piggybacks a rehash step.
func (d *Dictionary[K]) Scan(cursor uint64, fn ScanFunc[K]) uint64 {
	return d.scan(cursor, func(s *slot[K]) {
		switch s.state {
		case bucketBare:
			fn(s.bare, Value{})
		case bucketChain:
			for e := s.head; e != nil; e = e.next {
				fn(e.key, e.value)
			}
		}
	})
}

// ScanWithDefrag is Scan, but gives defrag a chance to relocate each
// visited entry's key/value in place.
func (d *Dictionary[K]) ScanWithDefrag(cursor uint64, defrag DefragFunc[K]) uint64 {
	return d.scan(cursor, func(s *slot[K]) {
		switch s.state {
		case bucketBare:
			if nk, _, ok := defrag(s.bare, Value{}); ok {
				s.bare = nk
			}
		case bucketChain:
			for e := s.head; e != nil; e = e.next {
				if nk, nv, ok := defrag(e.key, e.value); ok {
					e.key = nk
					e.value = nv
				}
			}
		}
	})
}

func (d *Dictionary[K]) scan(cursor uint64, visit func(s *slot[K])) uint64 {
	d.piggybackRehash()

	if !d.t[0].isInitialized() {
		return 0
	}

	if !d.IsRehashing() {
		tbl := &d.t[0]
		visit(&tbl.buckets[cursor&tbl.mask()])
		return reverseIncrement(cursor, tbl.mask())
	}

	// While rehashing, the smaller table's mask governs the cursor's bit
	// width; every bucket of the larger table that the smaller table's
	// bucket could have migrated into or out of must also be visited,
	// since a key may already have moved there.
	t0, t1 := &d.t[0], &d.t[1]
	small, large := t0, t1
	if t1.exponent < t0.exponent {
		small, large = t1, t0
	}

	smallIdx := cursor & small.mask()
	visit(&small.buckets[smallIdx])
	for rem := smallIdx; rem < uint64(large.bucketCount()); rem += uint64(small.bucketCount()) {
		visit(&large.buckets[rem])
	}

	return reverseIncrement(cursor, small.mask())
}

// reverseIncrement implements Redis's reverse-binary cursor increment: it
// increments the cursor as if its bits were reversed, which produces the
// property that a bucket doesn't get skipped across a resize between two
// Scan calls, regardless of whether the table grew or shrank in between.
func reverseIncrement(v, mask uint64) uint64 {
	v |= ^mask
	v = reverseBits64(v)
	v++
	v = reverseBits64(v)
	return v
}

func reverseBits64(v uint64) uint64 {
	var r uint64
	for i := 0; i < 64; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
