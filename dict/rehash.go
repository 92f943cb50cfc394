package dict

import "time"

// Expand allocates (or starts rehashing toward) a table sized to hold at
// least n elements. Requesting the current size is a no-op error; shrinking
// below the current used count is rejected.
func (d *Dictionary[K]) Expand(n int) error {
	err := d.expandTo(n)
	if err == errOutOfMemoryInternal {
		return ErrOutOfMemory
	}
	return err
}

// TryExpand is Expand, but distinguishes allocation failure from other
// invalid-argument errors by also returning ErrOutOfMemory — kept as a
// distinct entry point because spec §6/§7 name it as a separate operation,
// even though this implementation's failure modes are identical to Expand's.
func (d *Dictionary[K]) TryExpand(n int) error {
	return d.Expand(n)
}

// errOutOfMemoryInternal is never produced in practice: expandTo does not
// return it, because make() panics on allocation failure instead of
// returning an error. Expand still maps it to ErrOutOfMemory.
var errOutOfMemoryInternal = ErrOutOfMemory

func (d *Dictionary[K]) expandTo(n int) error {
	if d.IsRehashing() {
		return ErrRehashing
	}
	if n < d.t[0].used {
		return ErrInvalidSize
	}
	targetExp := nextExponent(n)
	if !d.t[0].isInitialized() {
		d.t[0] = newTable[K](targetExp)
		return nil
	}
	if targetExp == d.t[0].exponent {
		return ErrSameSize
	}
	d.t[1] = newTable[K](targetExp)
	d.rehashIdx = 0
	return nil
}

// ResizeToMinimal shrinks toward the smallest exponent that fits the
// current used count (floored at the initial size). Forbidden while
// rehashing or when the resize mode isn't ResizeEnable.
func (d *Dictionary[K]) ResizeToMinimal() error {
	if d.IsRehashing() {
		return ErrRehashing
	}
	if d.resizeMode != ResizeEnable {
		return ErrInvalidSize
	}
	n := d.t[0].used
	if n < (1 << uint(initialExponent)) {
		n = 1 << uint(initialExponent)
	}
	return d.expandTo(n)
}

// growIfNeeded implements the growth trigger from spec §4.1, checked on
// every insert path. The ENABLE/AVOID predicates are intentionally
// preserved as-is rather than unified (see DESIGN.md's Open Question note).
func (d *Dictionary[K]) growIfNeeded() error {
	if d.IsRehashing() {
		return nil
	}
	size := d.t[0].bucketCount()
	if size == 0 {
		return d.expandTo(1 << uint(initialExponent))
	}

	used := d.t[0].used
	shouldGrow := false
	switch d.resizeMode {
	case ResizeEnable:
		shouldGrow = used >= size
	case ResizeAvoid:
		shouldGrow = used/size > ForceResizeRatio
	case ResizeForbid:
		shouldGrow = false
	}
	if !shouldGrow {
		return nil
	}

	target := used + 1
	if d.typ.ExpandAllowed != nil {
		targetExp := nextExponent(target)
		if !d.typ.ExpandAllowed(used, 1<<uint(targetExp)) {
			return nil
		}
	}
	return d.expandTo(target)
}

// RehashStep advances the in-progress rehash by up to n non-empty buckets,
// bounded by visiting at most 10*n empty buckets before yielding (spec
// §4.1). It reports whether rehashing is still in progress afterward. A
// no-op (returns false) when idle; a no-op (returns true) while paused or
// while the current resize mode blocks progress (dictRehash's own gating,
// distinct from the grow trigger in growIfNeeded — see DESIGN.md).
func (d *Dictionary[K]) RehashStep(n int) bool {
	if !d.IsRehashing() {
		return false
	}
	if d.pauseRehash > 0 {
		return true
	}
	if d.resizeMode == ResizeForbid {
		return true
	}
	if d.resizeMode == ResizeAvoid {
		s0, s1 := uint64(d.t[0].bucketCount()), uint64(d.t[1].bucketCount())
		if (s1 > s0 && s1/s0 < ForceResizeRatio) || (s1 < s0 && s0/s1 < ForceResizeRatio) {
			return true
		}
	}
	maxEmptyVisits := 10 * n
	emptyVisits := 0
	for ; n > 0; n-- {
		if d.t[0].used == 0 {
			d.finishRehash()
			return false
		}
		bc := d.t[0].bucketCount()
		for d.rehashIdx < bc && d.t[0].buckets[d.rehashIdx].state == bucketEmpty {
			d.rehashIdx++
			emptyVisits++
			if emptyVisits >= maxEmptyVisits {
				return true
			}
		}
		if d.rehashIdx >= bc {
			// Defensive: used>0 implies a non-empty bucket remains below bc.
			d.finishRehash()
			return false
		}
		d.migrateBucket(d.rehashIdx)
		d.rehashIdx++
	}
	return d.IsRehashing()
}

// RehashMilliseconds runs RehashStep in batches of 100 until rehashing
// finishes or the millisecond budget elapses, then reports how many batches
// ran.
func (d *Dictionary[K]) RehashMilliseconds(ms int) int {
	if ms <= 0 {
		return 0
	}
	deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
	batches := 0
	for d.IsRehashing() {
		d.RehashStep(100)
		batches++
		if time.Now().After(deadline) {
			break
		}
	}
	return batches
}

// piggybackRehash advances rehashing by a single step unless paused. Every
// lookup, insert, delete, and sampling operation calls this to amortize
// migration across the workload (spec §4.1).
func (d *Dictionary[K]) piggybackRehash() {
	if d.pauseRehash > 0 {
		return
	}
	if d.IsRehashing() {
		d.RehashStep(1)
	}
}

func (d *Dictionary[K]) finishRehash() {
	d.t[0] = d.t[1]
	d.t[1] = newTable[K](uninitializedExponent)
	d.rehashIdx = -1
}

func (d *Dictionary[K]) migrateBucket(i int) {
	src := &d.t[0].buckets[i]
	switch src.state {
	case bucketEmpty:
		return
	case bucketBare:
		d.placeInT1(src.bare, Value{}, nil, i)
		d.t[0].used--
	case bucketChain:
		for e := src.head; e != nil; {
			next := e.next
			e.next = nil
			d.placeInT1(e.key, e.value, e, i)
			d.t[0].used--
			e = next
		}
	}
	*src = slot[K]{}
}

// destIndexT1 computes the destination bucket in T1 for a key currently
// sitting in T0's bucket bucketIdx. When T1 is smaller than T0 (a shrink),
// the cheaper rehash_cursor & T1.mask equivalence from spec §4.1 is used
// instead of rehashing the key.
func (d *Dictionary[K]) destIndexT1(key K, bucketIdx int) int {
	if d.t[1].exponent < d.t[0].exponent {
		return bucketIdx & int(d.t[1].mask())
	}
	return int(d.hash(key) & d.t[1].mask())
}

// placeInT1 inserts a migrating key (with its value, and an already
// allocated node to reuse when one exists) into T1 at the head of its
// destination chain, applying the no_value/bare-shape rules from spec
// §4.1 step 3.
func (d *Dictionary[K]) placeInT1(key K, value Value, carryNode *entry[K], bucketIdx int) {
	idx := d.destIndexT1(key, bucketIdx)
	dst := &d.t[1].buckets[idx]

	bareEligible := d.typ.NoValue && d.typ.KeysAreOdd
	if dst.state == bucketEmpty && bareEligible {
		dst.state = bucketBare
		dst.bare = key
		d.t[1].used++
		return
	}

	if dst.state == bucketBare {
		// The destination's bare key gains a chain node so the migrating
		// entry can link in front of it.
		dst.head = &entry[K]{key: dst.bare}
		var zero K
		dst.bare = zero
	}

	var node *entry[K]
	if carryNode != nil {
		node = carryNode
		node.key = key
		node.value = value
	} else {
		node = &entry[K]{key: key, value: value}
	}
	node.next = dst.head
	dst.state = bucketChain
	dst.head = node
	d.t[1].used++
}
