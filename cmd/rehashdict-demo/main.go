// Command rehashdict-demo exercises dict.Dictionary end to end: build a
// string-keyed dictionary, look values up by pointer, replace one, and
// walk it with a cursor — the same kind of smoke test the teacher's m.go
// ran against hashmap.Map.
package main

import (
	"log"
	"unsafe"

	"github.com/gramework/rehashdict/dict"
	"github.com/kirillDanshin/dlog"
)

func main() {
	d := dict.NewStringDict()

	seed := map[string]string{"1": "1", "2": "2"}
	for k, v := range seed {
		s := v
		if err := d.Add(k, dict.PtrValue(unsafe.Pointer(&s))); err != nil {
			log.Fatalf("error: %s", err)
		}
	}

	dlog.D(derefString(d, "1"))

	s3 := "3"
	if err := d.Add("3", dict.PtrValue(unsafe.Pointer(&s3))); err != nil {
		log.Fatalf("error: %s", err)
	}
	dlog.D(derefString(d, "3"))

	notOne := "not a 1"
	d.Replace("1", dict.PtrValue(unsafe.Pointer(&notOne)))
	dlog.D(derefString(d, "1"))

	v, ok := d.Find("1")
	dlog.D(derefValue(v), ok)

	v, ok = d.Find("345345")
	dlog.D(derefValue(v), ok)

	var cursor uint64
	for {
		cursor = d.Scan(cursor, func(key string, v dict.Value) {
			dlog.D(key, derefValue(v))
		})
		if cursor == 0 {
			break
		}
	}

	var buf []byte
	buf = d.RenderStats(buf)
	dlog.D(string(buf))
}

func derefString(d *dict.Dictionary[string], key string) string {
	v, ok := d.Find(key)
	if !ok {
		return ""
	}
	return derefValue(v)
}

func derefValue(v dict.Value) string {
	if v.IsZero() {
		return ""
	}
	return *(*string)(v.Ptr())
}
