// Package store is a thin Get/Put wrapper around dict.Dictionary[string],
// the same role the teacher's hashmap.Map played for its own Store.
package store

import (
	"unsafe"

	"github.com/gramework/rehashdict/dict"
	"github.com/gramework/utils/nocopy"
)

// Store holds arbitrary values keyed by string. The zero value is ready
// to use, same as the teacher's hashmap.Map-backed Store.
type Store struct {
	d *dict.Dictionary[string]

	nocopy nocopy.NoCopy
}

func (s *Store) dict() *dict.Dictionary[string] {
	if s.d == nil {
		s.d = dict.NewStringDict()
	}
	return s.d
}

// Put stores or replaces the value at key.
func (s *Store) Put(key string, v interface{}) {
	box := &v
	s.dict().Replace(key, dict.PtrValue(unsafe.Pointer(box)))
}

// Get returns the value at key, if present.
func (s *Store) Get(key string) (v interface{}, ok bool) {
	val, found := s.dict().Find(key)
	if !found {
		return nil, false
	}
	box := (*interface{})(val.Ptr())
	return *box, true
}
