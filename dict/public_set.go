package dict

import "github.com/cespare/xxhash/v2"

// NewSet returns a Dictionary[string] configured as a value-less set:
// NoValue and KeysAreOdd are both set, so entries take the bare (no
// allocation beyond the key itself) shape from spec §3 whenever their
// bucket is empty at insert time; otherwise they join the bucket's chain.
func NewSet() *Dictionary[string] {
	return New[string](&TypeDescriptor[string]{
		HashKey: func(key string, seed [16]byte) uint64 {
			return xxhash.Sum64String(key) ^ seedMix(seed)
		},
		DupKey: func(key string) string {
			b := make([]byte, len(key))
			copy(b, key)
			return string(b)
		},
		NoValue:    true,
		KeysAreOdd: true,
	})
}

// AddToSet inserts key; reports whether it was newly added.
func (d *Dictionary[K]) AddToSet(key K) (added bool) {
	_, existed := d.AddRaw(key)
	return !existed
}
