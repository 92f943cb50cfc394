package dict

import "github.com/cespare/xxhash/v2"

// NewStringDict returns a Dictionary[string] hashed with xxhash, copying
// keys on insert (DupKey) so callers may reuse mutable buffers when
// passing keys in.
func NewStringDict() *Dictionary[string] {
	return New[string](&TypeDescriptor[string]{
		HashKey: func(key string, seed [16]byte) uint64 {
			return xxhash.Sum64String(key) ^ seedMix(seed)
		},
		DupKey: func(key string) string {
			b := make([]byte, len(key))
			copy(b, key)
			return string(b)
		},
	})
}

func seedMix(seed [16]byte) uint64 {
	var h uint64
	for i := 0; i < 16; i += 8 {
		var v uint64
		for j := 0; j < 8; j++ {
			v = v<<8 | uint64(seed[i+j])
		}
		h ^= v
	}
	return h
}
