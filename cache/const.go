package cache

import "errors"

var (
	// ErrNotFound error occurred in .Get() when key was not found
	ErrNotFound = errors.New("Key not found")
)

// evictionSampleSize is how many random candidates Put samples when the
// cache is full, evicting the stalest of them — the same sampling-based
// approximate-LRU trick Redis's maxmemory policy uses, built here on
// Dictionary.SomeKeys instead of a real recency list.
const evictionSampleSize = 5
