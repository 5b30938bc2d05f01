// Package pairs implements paired-end analysis: reverse-complement
// overlap detection between mates and quality-guided base correction
// in the overlapping region.
package pairs

import "github.com/biostrand/fastp/fastqio"

// Overlap describes the best-scoring alignment found between a read
// pair's mates after reverse-complementing r2.
type Overlap struct {
	Overlapped bool
	Offset     int
	Len        int
	Diff       int
}

// Analyze searches for the best overlap between r1 and r2 under the
// given minimum overlap length, absolute mismatch ceiling, and mismatch
// fraction ceiling. It tries r2's reverse complement starting at or
// after r1's first base (offset >= 0) and starting before it
// (offset < 0), picking the candidate with the fewest mismatches,
// breaking ties toward the longer overlap.
func Analyze(r1, r2 *fastqio.Record, minOverlap, diffLimit int, diffPercentLimit float64) Overlap {
	len1, len2 := len(r1.Seq), len(r2.Seq)
	seq1 := r1.Seq
	rc2 := reverseComplement(r2.Seq)

	best := Overlap{Diff: -1}

	for offset := 0; offset < len1; offset++ {
		overlapLen := len1 - offset
		if overlapLen > len2 {
			overlapLen = len2
		}
		if overlapLen < minOverlap {
			continue
		}
		diff := countDiff(seq1[offset:], rc2[:overlapLen], overlapLen)
		limit := diffLimit
		if pct := int(float64(overlapLen) * diffPercentLimit); pct < limit {
			limit = pct
		}
		if diff > limit {
			continue
		}
		if best.Diff < 0 || diff < best.Diff || (diff == best.Diff && overlapLen > best.Len) {
			best = Overlap{Overlapped: true, Offset: offset, Len: overlapLen, Diff: diff}
		}
	}

	for offsetPos := 1; offsetPos < len2; offsetPos++ {
		overlapLen := len2 - offsetPos
		if overlapLen > len1 {
			overlapLen = len1
		}
		if overlapLen < minOverlap {
			continue
		}
		diff := countDiff(rc2[offsetPos:], seq1[:overlapLen], overlapLen)
		limit := diffLimit
		if pct := int(float64(overlapLen) * diffPercentLimit); pct < limit {
			limit = pct
		}
		if diff > limit {
			continue
		}
		if best.Diff < 0 || diff < best.Diff || (diff == best.Diff && overlapLen > best.Len) {
			best = Overlap{Overlapped: true, Offset: -offsetPos, Len: overlapLen, Diff: diff}
		}
	}

	if best.Diff < 0 {
		return Overlap{}
	}
	return best
}

func countDiff(a, b []byte, n int) int {
	d := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

func reverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i, b := range seq {
		out[n-1-i] = complement(b)
	}
	return out
}

func complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return 'N'
	}
}
