package dict

// RandomKey returns a uniformly-ish random present key by picking a
// random non-empty bucket and then a random position within its chain.
// Reports ok=false on an empty dictionary.
func (d *Dictionary[K]) RandomKey() (key K, value Value, ok bool) {
	d.piggybackRehash()
	if d.Len() == 0 {
		return key, Value{}, false
	}

	for {
		ti := 0
		if d.IsRehashing() {
			// Pick T1 with probability equal to its share of the two
			// tables' combined bucket count.
			if d.prng.Uint64()%uint64(d.t[0].bucketCount()+d.t[1].bucketCount()) >= uint64(d.t[0].bucketCount()) {
				ti = 1
			}
		}
		tbl := &d.t[ti]
		if !tbl.isInitialized() || tbl.bucketCount() == 0 {
			continue
		}
		idx := d.prng.Uint64() % uint64(tbl.bucketCount())
		s := &tbl.buckets[idx]
		switch s.state {
		case bucketBare:
			return s.bare, Value{}, true
		case bucketChain:
			n := 0
			for e := s.head; e != nil; e = e.next {
				n++
			}
			pick := int(d.prng.Uint64() % uint64(n))
			e := s.head
			for i := 0; i < pick; i++ {
				e = e.next
			}
			return e.key, e.value, true
		}
	}
}

// SomeKeysFunc is called once per key collected by SomeKeys.
type SomeKeysFunc[K comparable] func(key K, value Value)

// SomeKeys collects up to count keys via reservoir sampling over a walk
// bounded to 10*count buckets (spec §4.1), so it is cheap even against a
// huge, mostly-empty table. It may return fewer than count keys if the
// dictionary holds fewer, or if the bound is hit first.
func (d *Dictionary[K]) SomeKeys(count int, fn SomeKeysFunc[K]) {
	d.piggybackRehash()
	if count <= 0 || d.Len() == 0 {
		return
	}

	type kv struct {
		key K
		val Value
	}
	reservoir := make([]kv, 0, count)
	seen := 0
	maxSteps := 10 * count
	steps := 0

	walkTable := func(tbl *table[K], start int) bool {
		if !tbl.isInitialized() {
			return true
		}
		for i := start; i < len(tbl.buckets); i++ {
			s := &tbl.buckets[i]
			visit := func(k K, v Value) {
				seen++
				if len(reservoir) < count {
					reservoir = append(reservoir, kv{k, v})
				} else {
					j := int(d.prng.Uint64() % uint64(seen))
					if j < count {
						reservoir[j] = kv{k, v}
					}
				}
			}
			switch s.state {
			case bucketBare:
				visit(s.bare, Value{})
			case bucketChain:
				for e := s.head; e != nil; e = e.next {
					visit(e.key, e.value)
				}
			}
			steps++
			if steps >= maxSteps {
				return false
			}
		}
		return true
	}

	// T0 buckets below the rehash cursor are already migrated and empty.
	start0 := 0
	if d.IsRehashing() {
		start0 = d.rehashIdx
	}
	if !walkTable(&d.t[0], start0) {
		for _, item := range reservoir {
			fn(item.key, item.val)
		}
		return
	}
	if d.IsRehashing() {
		walkTable(&d.t[1], 0)
	}
	for _, item := range reservoir {
		fn(item.key, item.val)
	}
}

// FairRandomKey returns a random present key with better fairness than
// RandomKey across chains of different lengths: it samples a batch of
// fairSampleBatch (default 15) candidate buckets, picks one uniformly
// among all the individual entries those buckets together hold, and
// returns it. This trades a bounded amount of extra work for a result
// much closer to uniform over entries rather than over buckets.
func (d *Dictionary[K]) FairRandomKey() (key K, value Value, ok bool) {
	d.piggybackRehash()
	if d.Len() == 0 {
		return key, Value{}, false
	}

	type candidate struct {
		key K
		val Value
	}
	var pool []candidate

	batch := d.fairSampleBatch
	for b := 0; b < batch; b++ {
		ti := 0
		if d.IsRehashing() && d.prng.Uint64()%2 == 1 {
			ti = 1
		}
		tbl := &d.t[ti]
		if !tbl.isInitialized() || tbl.bucketCount() == 0 {
			continue
		}
		idx := d.prng.Uint64() % uint64(tbl.bucketCount())
		s := &tbl.buckets[idx]
		switch s.state {
		case bucketBare:
			pool = append(pool, candidate{s.bare, Value{}})
		case bucketChain:
			for e := s.head; e != nil; e = e.next {
				pool = append(pool, candidate{e.key, e.value})
			}
		}
	}

	if len(pool) == 0 {
		return d.RandomKey()
	}
	pick := pool[d.prng.Uint64()%uint64(len(pool))]
	return pick.key, pick.val, true
}
