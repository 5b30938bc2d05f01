package transform

import "github.com/biostrand/fastp/fastqio"

// TrimPolyX trims a run of any single repeated base from the 3' end of
// rec (the target base is whichever base sits at the very end), the
// same tolerance rules as TrimPolyG. Returns the number of trimmed
// bases.
func TrimPolyX(rec *fastqio.Record, minLen int) (trimmedBases int, ok bool) {
	if len(rec.Seq) == 0 {
		return 0, false
	}
	target := rec.Seq[len(rec.Seq)-1]
	pos, lastIdx := scanTailRun(rec.Seq, target, minLen)
	if lastIdx < minLen || pos >= len(rec.Seq) {
		return 0, false
	}
	trimmedBases = len(rec.Seq) - pos
	rec.Truncate(pos)
	return trimmedBases, true
}
