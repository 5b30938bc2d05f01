package transform

import "github.com/biostrand/fastp/fastqio"

const (
	tailAllowOneMismatchForEach = 8
	tailMaxMismatch             = 5
)

// TrimPolyG trims a poly-G run from the 3' end of rec, scanning inward
// from the last base. minLen is the minimum run length required before
// any trim is applied. Returns the number of trimmed bases.
func TrimPolyG(rec *fastqio.Record, minLen int) (trimmedBases int, ok bool) {
	pos, lastIdx := scanTailRun(rec.Seq, 'G', minLen)
	if lastIdx < minLen || pos >= len(rec.Seq) {
		return 0, false
	}
	trimmedBases = len(rec.Seq) - pos
	rec.Truncate(pos)
	return trimmedBases, true
}

// scanTailRun walks from the 3' end looking for a run of target,
// tolerating sparse mismatches. It returns the leftmost matching
// position seen before the scan stopped, and the final loop index.
func scanTailRun(seq []byte, target byte, minLen int) (firstMatchPos, lastIdx int) {
	rlen := len(seq)
	mismatch := 0
	firstMatchPos = rlen
	for checkIdx := 0; checkIdx < rlen; checkIdx++ {
		lastIdx = checkIdx
		idx := rlen - 1 - checkIdx
		if seq[idx] != target {
			mismatch++
		} else {
			firstMatchPos = idx
		}
		allowed := (checkIdx + 1) / tailAllowOneMismatchForEach
		if mismatch > tailMaxMismatch || (mismatch > allowed && checkIdx >= minLen-1) {
			break
		}
	}
	return firstMatchPos, lastIdx
}
