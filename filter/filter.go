package filter

import (
	"github.com/grailbio/base/log"

	"github.com/biostrand/fastp/fastqio"
	"github.com/biostrand/fastp/options"
	"github.com/biostrand/fastp/pairs"
	"github.com/biostrand/fastp/transform"
)

// Filter holds the resolved configuration and applies it to records.
// A Filter is safe for concurrent use by multiple workers: it carries
// no mutable state of its own.
type Filter struct {
	opt options.Options
}

// New constructs a Filter from opt.
func New(opt options.Options) *Filter {
	return &Filter{opt: opt}
}

// TrimPair applies overlap analysis, optional correction, and
// overlap-inferred adapter trimming to a mate pair, then runs
// TrimRecord on each mate. report accumulates the pack-local counters.
func (f *Filter) TrimPair(r1, r2 *fastqio.Record, report *Report) {
	o := f.opt
	res := pairs.Analyze(r1, r2, o.OverlapLenRequire, o.OverlapDiffLimit, float64(o.OverlapDiffPercentLimit)/100.0)
	if res.Overlapped {
		report.addOverlapDiff(res.Diff)
		log.Debug.Printf("pe overlap: offset=%d len=%d diff=%d", res.Offset, res.Len, res.Diff)
	}
	if o.Correction && res.Overlapped && res.Len >= o.OverlapLenRequire {
		pairs.Correct(r1, r2, res.Offset, res.Len)
	}

	noExplicitAdapter := !o.DisableAdapterTrimming && o.AdapterSequence == "" && o.AdapterSequenceR2 == ""
	if noExplicitAdapter && res.Overlapped {
		f.trimReadThrough(r1, r2, res, report)
	}

	f.TrimRecord(r1, false, report)
	f.TrimRecord(r2, true, report)
}

// trimReadThrough trims the adapter-contaminated tail(s) implied by the
// overlap geometry: the r1 suffix beyond the overlap, and, when r2
// extends past r1's start (offset < 0), the r2 prefix beyond it too.
func (f *Filter) trimReadThrough(r1, r2 *fastqio.Record, res pairs.Overlap, report *Report) {
	if res.Offset >= 0 {
		off := res.Offset
		if len(r1.Seq) > off+res.Len {
			trimmed := len(r1.Seq) - (off + res.Len)
			report.AdapterTrimmedBases += uint64(trimmed)
			r1.Truncate(off + res.Len)
			report.AdapterTrimmedReads++
		}
		return
	}
	k := -res.Offset
	if len(r1.Seq) > res.Len {
		trimmed := len(r1.Seq) - res.Len
		report.AdapterTrimmedBases += uint64(trimmed)
		r1.Truncate(res.Len)
		report.AdapterTrimmedReads++
	}
	if len(r2.Seq) > k {
		newLen := len(r2.Seq) - k
		report.AdapterTrimmedBases += uint64(len(r2.Seq) - newLen)
		r2.Truncate(newLen)
		report.AdapterTrimmedReads++
	}
}

// TrimRecord applies, in order, explicit adapter trimming, poly-X,
// poly-G, sliding-window quality cutting, and static front/tail/max-len
// trimming to a single record. isR2 selects the R2-specific adapter and
// static-trim settings.
func (f *Filter) TrimRecord(rec *fastqio.Record, isR2 bool, report *Report) {
	o := f.opt

	front, tail, maxLen := o.TrimFront1, o.TrimTail1, o.MaxLen1
	adapter := o.AdapterSequence
	if isR2 {
		front, tail, maxLen = o.TrimFront2, o.TrimTail2, o.MaxLen2
		adapter = o.AdapterSequenceR2
	}

	if !o.DisableAdapterTrimming && adapter != "" {
		if n, ok := transform.TrimBySequence(rec, []byte(adapter)); ok {
			report.AdapterTrimmedReads++
			report.AdapterTrimmedBases += uint64(n)
		}
	}

	if o.TrimPolyX {
		if n, ok := transform.TrimPolyX(rec, o.PolyXMinLen); ok {
			report.PolyXTrimmedReads++
			report.PolyXTrimmedBases += uint64(n)
		}
	}
	if o.TrimPolyG && !o.DisableTrimPolyG {
		if n, ok := transform.TrimPolyG(rec, o.PolyGMinLen); ok {
			report.PolyGTrimmedReads++
			report.PolyGTrimmedBases += uint64(n)
		}
	}

	transform.CutQuality(rec, transform.WindowConfig{
		CutFront:     o.CutFront,
		CutFrontSize: o.CutFrontWindowSize,
		CutFrontQual: o.CutFrontMeanQuality,
		CutRight:     o.CutRight,
		CutRightSize: o.CutRightWindowSize,
		CutRightQual: o.CutRightMeanQuality,
		CutTail:      o.CutTail,
		CutTailSize:  o.CutTailWindowSize,
		CutTailQual:  o.CutTailMeanQuality,
	})

	start := front
	if start > len(rec.Seq) {
		start = len(rec.Seq)
	}
	end := len(rec.Seq) - tail
	if end < 0 {
		end = 0
	}
	if maxLen > 0 && start+maxLen < end {
		end = start + maxLen
	}
	if start >= end {
		rec.Clear()
		return
	}
	rec.Seq = rec.Seq[start:end]
	rec.Qual = rec.Qual[start:end]
}

// PassFilters evaluates the pass/fail predicates in the order the
// upstream tool uses, stopping and incrementing exactly one failure
// counter at the first predicate that fails.
func (f *Filter) PassFilters(rec *fastqio.Record, report *Report) bool {
	o := f.opt

	if len(rec.Seq) < o.LengthRequired {
		report.FailedTooShort++
		return false
	}

	nCount := 0
	for _, b := range rec.Seq {
		if b == 'N' || b == 'n' {
			nCount++
		}
	}
	if nCount > o.NBaseLimit {
		report.FailedNExcess++
		return false
	}

	if o.AverageQual > 0 && avgPhred(rec.Qual) < float64(o.AverageQual) {
		report.FailedLowAverageQual++
		return false
	}

	low := 0
	for _, q := range rec.Qual {
		v := 0
		if q >= 33 {
			v = int(q) - 33
		}
		if byte(v) < o.QualifiedQualityPhred {
			low++
		}
	}
	pct := 100.0
	if len(rec.Qual) > 0 {
		pct = float64(low) * 100.0 / float64(len(rec.Qual))
	}
	if pct > float64(o.UnqualifiedPercentLimit) {
		report.FailedLowQuality++
		return false
	}

	return true
}

func avgPhred(q []byte) float64 {
	if len(q) == 0 {
		return 0
	}
	sum := 0
	for _, b := range q {
		if b >= 33 {
			sum += int(b) - 33
		}
	}
	return float64(sum) / float64(len(q))
}
