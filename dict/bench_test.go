package dict

import (
	"fmt"
	"testing"
)

func BenchmarkFind_0(b *testing.B)    { benchmarkFind(b, 0) }
func BenchmarkFind_16(b *testing.B)   { benchmarkFind(b, 16) }
func BenchmarkFind_256(b *testing.B)  { benchmarkFind(b, 256) }
func BenchmarkFind_4096(b *testing.B) { benchmarkFind(b, 4096) }

func benchmarkFind(b *testing.B, keys int) {
	d := NewStringDict()
	for i := 0; i < keys; i++ {
		_ = d.Add(fmt.Sprint(i), Int64Value(int64(i)))
	}
	key := fmt.Sprint(keys + 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Find(key)
	}
}

func BenchmarkRehashStep_1024(b *testing.B) { benchmarkRehashStep(b, 1024) }
func BenchmarkRehashStep_8192(b *testing.B) { benchmarkRehashStep(b, 8192) }

func benchmarkRehashStep(b *testing.B, keys int) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		d := New[int](intType())
		for k := 0; k < keys; k++ {
			_ = d.Add(k, Value{})
		}
		for d.IsRehashing() {
			d.RehashStep(32)
		}
		_ = d.Expand(keys * 4)
		b.StartTimer()
		for d.IsRehashing() {
			d.RehashStep(32)
		}
	}
}

func BenchmarkScan_1024(b *testing.B) { benchmarkScan(b, 1024) }

func benchmarkScan(b *testing.B, keys int) {
	d := New[int](intType())
	for i := 0; i < keys; i++ {
		_ = d.Add(i, Value{})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var cursor uint64
		for {
			cursor = d.Scan(cursor, func(key int, v Value) {})
			if cursor == 0 {
				break
			}
		}
	}
}
