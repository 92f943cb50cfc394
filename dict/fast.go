package dict

// The teacher's hashmap_fast.go hand-wrote mapaccess1_fast32/64/faststr
// and mapassign_fast32/64/faststr: separate, manually specialized copies
// of the generic map algorithm for each concrete key kind, because its
// reflection-driven TypeDescriptor equivalent (runtimer.MapType) couldn't
// be specialized by the Go compiler itself. Go generics monomorphize
// Dictionary[K] per K automatically, so that specialization already
// happens for free at compile time — there is no separate fast path left
// to hand-write. What remains, as thin sugar, is convenience accessors
// for the common string-keyed case.

// GetString is Find for a Dictionary[string]: it returns the stored Value
// and whether key was present (the zero Value and false when absent).
func GetString(d *Dictionary[string], key string) (value Value, ok bool) {
	return d.Find(key)
}

// SetString is Replace for a Dictionary[string], provided so call sites
// reading `dict.SetString(d, k, v)` read the same as `dict.GetString`.
func SetString(d *Dictionary[string], key string, value Value) (inserted bool) {
	return d.Replace(key, value)
}
