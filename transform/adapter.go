package transform

import (
	"github.com/biostrand/fastp/fastqio"
	farm "github.com/dgryski/go-farm"
)

const (
	adapterMatchReq          = 4
	adapterMismatchBudgetLen = 8
)

// TrimBySequence searches rec for the given adapter, trying an exact
// window (with sparse Hamming mismatches allowed), then one insertion in
// the read, then one insertion in the adapter. On a hit it truncates
// rec's seq and qual and returns the number of trimmed bases. adapter
// shorter than adapterMatchReq is never searched.
func TrimBySequence(rec *fastqio.Record, adapter []byte) (trimmedBases int, ok bool) {
	alen := len(adapter)
	if alen < adapterMatchReq {
		return 0, false
	}
	rdata := rec.Seq
	rlen := len(rdata)

	start := 0
	switch {
	case alen >= 16:
		start = -4
	case alen >= 12:
		start = -3
	case alen >= 8:
		start = -2
	}

	pos, found := findExactWindow(rdata, adapter, start, rlen, alen)
	if !found {
		pos, found = findOneInsertionInRead(rdata, adapter, rlen, alen)
	}
	if !found {
		pos, found = findOneInsertionInAdapter(rdata, adapter, rlen, alen)
	}
	if !found {
		return 0, false
	}

	if pos < 0 {
		trimmedBases = len(rec.Seq)
		rec.Clear()
		return trimmedBases, true
	}
	trimmedBases = len(rec.Seq) - pos
	rec.Truncate(pos)
	return trimmedBases, true
}

func findExactWindow(rdata, adata []byte, start, rlen, alen int) (int, bool) {
	endPos := rlen - adapterMatchReq
	for p := start; p < endPos; p++ {
		cmplen := rlen - p
		if cmplen > alen {
			cmplen = alen
		}
		allowed := cmplen / adapterMismatchBudgetLen
		loopStart := 0
		if -p > loopStart {
			loopStart = -p
		}
		if !hammingWithinBudget(rdata, adata, p, loopStart, cmplen, allowed) {
			continue
		}
		return p, true
	}
	return 0, false
}

// hammingWithinBudget compares adata[i] against rdata[i+pos] for i in
// [loopStart, cmplen), short-circuiting once the mismatch budget is
// exceeded. When the budget is zero the window must match exactly, so a
// cheap fingerprint comparison rules out almost all candidates before
// the byte-by-byte loop runs.
func hammingWithinBudget(rdata, adata []byte, pos, loopStart, cmplen, allowed int) bool {
	if allowed == 0 {
		a := adata[loopStart:cmplen]
		r := rdata[loopStart+pos : cmplen+pos]
		if farm.Hash64(a) != farm.Hash64(r) {
			return false
		}
	}
	mismatch := 0
	for i := loopStart; i < cmplen; i++ {
		if adata[i] != rdata[i+pos] {
			mismatch++
			if mismatch > allowed {
				return false
			}
		}
	}
	return true
}

func findOneInsertionInRead(rdata, adata []byte, rlen, alen int) (int, bool) {
	limit := rlen - adapterMatchReq - 1
	for p := 0; p < limit; p++ {
		cmplen := rlen - p - 1
		if cmplen > alen {
			cmplen = alen
		}
		allowed := budgetMinusOne(cmplen)
		if matchWithOneInsertion(rdata[p:], adata, cmplen, allowed) {
			return p, true
		}
	}
	return 0, false
}

func findOneInsertionInAdapter(rdata, adata []byte, rlen, alen int) (int, bool) {
	limit := rlen - adapterMatchReq
	for p := 0; p < limit; p++ {
		cmplen := rlen - p
		if cmplen > alen-1 {
			cmplen = alen - 1
		}
		allowed := budgetMinusOne(cmplen)
		if matchWithOneInsertion(adata, rdata[p:], cmplen, allowed) {
			return p, true
		}
	}
	return 0, false
}

func budgetMinusOne(cmplen int) int {
	b := cmplen / adapterMismatchBudgetLen
	if b > 0 {
		return b - 1
	}
	return 0
}
