package dict

import "fmt"

// histogramBuckets is the number of discrete chain-length buckets tracked
// before everything longer is folded into the overflow bucket.
const histogramBuckets = 50

// TableStats summarizes one table's occupancy for RenderStats (spec
// §4.1's statistics operation).
type TableStats struct {
	BucketCount    int
	Used           int
	NonEmpty       int
	MaxChainLength int
	// Histogram[i] counts buckets with chain length i, for i in
	// [0, histogramBuckets-2]; Histogram[histogramBuckets-1] is an
	// overflow bucket for chain length >= histogramBuckets-1.
	Histogram [histogramBuckets]int
}

// AverageChainLength returns Used/NonEmpty, or 0 if no bucket is
// occupied.
func (s TableStats) AverageChainLength() float64 {
	if s.NonEmpty == 0 {
		return 0
	}
	return float64(s.Used) / float64(s.NonEmpty)
}

// Stats computes TableStats for T0 and, while rehashing, T1.
func (d *Dictionary[K]) Stats() (t0 TableStats, t1 TableStats, rehashing bool) {
	return computeStats(&d.t[0]), computeStats(&d.t[1]), d.IsRehashing()
}

func computeStats[K comparable](tbl *table[K]) TableStats {
	st := TableStats{}
	if !tbl.isInitialized() {
		return st
	}
	st.BucketCount = tbl.bucketCount()
	st.Used = tbl.used
	for i := range tbl.buckets {
		s := &tbl.buckets[i]
		var chainLen int
		switch s.state {
		case bucketBare:
			chainLen = 1
		case bucketChain:
			for e := s.head; e != nil; e = e.next {
				chainLen++
			}
		default:
			st.Histogram[0]++
			continue
		}
		st.NonEmpty++
		if chainLen > st.MaxChainLength {
			st.MaxChainLength = chainLen
		}
		bucket := chainLen
		if bucket >= histogramBuckets {
			bucket = histogramBuckets - 1
		}
		st.Histogram[bucket]++
	}
	return st
}

// RenderStats writes a human-readable rendering of the dictionary's
// occupancy to buf, matching the shape of the C original's
// dictGetStatsHL: bucket count, used count, non-empty bucket count,
// max/average chain length, and a chain-length histogram.
func (d *Dictionary[K]) RenderStats(buf []byte) []byte {
	t0, t1, rehashing := d.Stats()
	buf = appendTableStats(buf, "table 0", t0)
	if rehashing {
		buf = appendTableStats(buf, "table 1 (rehashing)", t1)
	}
	return buf
}

func appendTableStats(buf []byte, label string, st TableStats) []byte {
	buf = fmt.Appendf(buf, "%s: %d buckets, %d used, %d non-empty, max chain %d, avg chain %.2f\n",
		label, st.BucketCount, st.Used, st.NonEmpty, st.MaxChainLength, st.AverageChainLength())
	for i, count := range st.Histogram {
		if count == 0 {
			continue
		}
		if i == histogramBuckets-1 {
			buf = fmt.Appendf(buf, "  chains >= %d: %d\n", i, count)
		} else {
			buf = fmt.Appendf(buf, "  chains of length %d: %d\n", i, count)
		}
	}
	return buf
}
