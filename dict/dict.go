package dict

// Dictionary is the incrementally rehashing hash table from spec §2. It
// holds two tables (t[0] is the live table in steady state, t[1] exists only
// while a rehash is in flight), a rehash cursor, and a pause counter shared
// across safe iteration, scanning, and two-phase deletion.
type Dictionary[K comparable] struct {
	typ  *TypeDescriptor[K]
	t    [2]table[K]
	seed [16]byte

	rehashIdx   int // -1 when idle, else next T0 bucket index to migrate
	pauseRehash int

	resizeMode ResizeMode
	prng       PRNG
	meta       []byte

	fairSampleBatch int
}

// New creates an empty Dictionary. Both tables start uninitialized; the
// first insert triggers allocation of T0 at the initial exponent.
func New[K comparable](typ *TypeDescriptor[K]) *Dictionary[K] {
	return NewWithMeta[K](typ, 0)
}

// NewWithMeta is New plus a caller-sized trailing metadata block on the
// Dictionary itself (spec §3's "opaque trailing metadata region").
func NewWithMeta[K comparable](typ *TypeDescriptor[K], metaBytes int) *Dictionary[K] {
	if typ.HashKey == nil {
		panic("dict: TypeDescriptor.HashKey is required")
	}
	d := &Dictionary[K]{
		typ:             typ,
		rehashIdx:       -1,
		resizeMode:      ResizeEnable,
		prng:            newSplitmix64(),
		fairSampleBatch: 15,
	}
	d.t[0] = newTable[K](uninitializedExponent)
	d.t[1] = newTable[K](uninitializedExponent)
	if metaBytes > 0 {
		d.meta = make([]byte, metaBytes)
	}
	return d
}

// Meta returns the Dictionary's trailing metadata block (nil if none was
// requested at construction).
func (d *Dictionary[K]) Meta() []byte { return d.meta }

// SetPRNG overrides the sampling generator (e.g. to a deterministic one in
// tests).
func (d *Dictionary[K]) SetPRNG(p PRNG) { d.prng = p }

// SetFairSampleBatch overrides FairRandomKey's internal batch size (default
// 15, the tunable named in spec §9's Open Questions).
func (d *Dictionary[K]) SetFairSampleBatch(n int) {
	if n > 0 {
		d.fairSampleBatch = n
	}
}

// SetResizeMode sets the growth policy (spec §4.1 / §6).
func (d *Dictionary[K]) SetResizeMode(m ResizeMode) { d.resizeMode = m }

// ResizeMode returns the current growth policy.
func (d *Dictionary[K]) ResizeMode() ResizeMode { return d.resizeMode }

// SetHashSeed installs a new 16-byte hash seed (spec §6). It does not
// rehash existing entries; callers that need that should create a fresh
// Dictionary and re-insert.
func (d *Dictionary[K]) SetHashSeed(seed [16]byte) { d.seed = seed }

// HashSeed returns the current hash seed.
func (d *Dictionary[K]) HashSeed() [16]byte { return d.seed }

// Len reports the number of logically present keys (T0.used + T1.used).
func (d *Dictionary[K]) Len() int { return d.t[0].used + d.t[1].used }

// IsRehashing reports whether a rehash is currently in progress.
func (d *Dictionary[K]) IsRehashing() bool { return d.rehashIdx != -1 }

// Release drains both tables through the TypeDescriptor's destructors. The
// Dictionary must not be used afterward.
func (d *Dictionary[K]) Release() {
	d.Empty(nil)
}

// Empty drains both tables through the TypeDescriptor's destructors,
// invoking yield (if non-nil) every 65536 buckets so an embedder can
// cooperatively yield during a full clear (spec §5).
func (d *Dictionary[K]) Empty(yield func()) {
	const yieldEvery = 65536
	visited := 0
	for ti := range d.t {
		tbl := &d.t[ti]
		for i := range tbl.buckets {
			d.destroyBucket(&tbl.buckets[i])
			visited++
			if yield != nil && visited%yieldEvery == 0 {
				yield()
			}
		}
		*tbl = newTable[K](uninitializedExponent)
	}
	d.rehashIdx = -1
	d.pauseRehash = 0
}

func (d *Dictionary[K]) destroyBucket(s *slot[K]) {
	switch s.state {
	case bucketBare:
		d.destroyKey(s.bare)
	case bucketChain:
		for e := s.head; e != nil; {
			next := e.next
			d.destroyKey(e.key)
			if !d.typ.NoValue {
				d.destroyValue(e.value)
			}
			e = next
		}
	}
	*s = slot[K]{}
}

func (d *Dictionary[K]) destroyKey(k K) {
	if d.typ.FreeKey != nil {
		d.typ.FreeKey(k)
	}
}

func (d *Dictionary[K]) destroyValue(v Value) {
	if d.typ.FreeValue != nil && !v.IsZero() {
		d.typ.FreeValue(v)
	}
}

func (d *Dictionary[K]) hash(key K) uint64 {
	return d.typ.HashKey(key, d.seed)
}

// pauseRehashing increments the shared pause counter (safe iterators, scan,
// and two-phase unlink-find all do this for their duration).
func (d *Dictionary[K]) pauseRehashing() { d.pauseRehash++ }

// resumeRehashing decrements the pause counter. Going negative is a caller
// contract violation (spec §5/§7) and is treated as a programmer error.
func (d *Dictionary[K]) resumeRehashing() {
	if d.pauseRehash <= 0 {
		panic("dict: rehash pause counter underflow")
	}
	d.pauseRehash--
}
