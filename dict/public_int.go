package dict

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// NewIntDict returns a Dictionary[int64] hashed with xxhash over the
// key's 8 little-endian bytes. Keys are plain int64s, so no DupKey is set;
// each entry stores its value in a Value cell as usual.
func NewIntDict() *Dictionary[int64] {
	return New[int64](&TypeDescriptor[int64]{
		HashKey: func(key int64, seed [16]byte) uint64 {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], uint64(key))
			return xxhash.Sum64(buf[:]) ^ seedMix(seed)
		},
	})
}
