// Package filter composes the per-record transforms and the pair
// analyzer into the single pass/fail decision point the pipeline
// drives, and owns the additive Report counters.
package filter

// Report accumulates the counters produced while filtering one pack (or,
// after merging, an entire run). All fields except PEOverlapAvgDiff are
// simple sums; PEOverlapAvgDiff is a running mean weighted by
// PEOverlapCount.
type Report struct {
	TotalReads  uint64
	PassedReads uint64

	FailedTooShort       uint64
	FailedLowQuality     uint64
	FailedNExcess        uint64
	FailedLowAverageQual uint64

	AdapterTrimmedReads uint64
	AdapterTrimmedBases uint64
	PolyGTrimmedReads   uint64
	PolyGTrimmedBases   uint64
	PolyXTrimmedReads   uint64
	PolyXTrimmedBases   uint64

	PEOverlapAvgDiff float64
	PEOverlapCount   uint64
}

// Merge folds other into r: additive counters sum, and the overlap-diff
// mean is recombined as a weighted average over both counts.
func (r *Report) Merge(other *Report) {
	r.TotalReads += other.TotalReads
	r.PassedReads += other.PassedReads
	r.FailedTooShort += other.FailedTooShort
	r.FailedLowQuality += other.FailedLowQuality
	r.FailedNExcess += other.FailedNExcess
	r.FailedLowAverageQual += other.FailedLowAverageQual
	r.AdapterTrimmedReads += other.AdapterTrimmedReads
	r.AdapterTrimmedBases += other.AdapterTrimmedBases
	r.PolyGTrimmedReads += other.PolyGTrimmedReads
	r.PolyGTrimmedBases += other.PolyGTrimmedBases
	r.PolyXTrimmedReads += other.PolyXTrimmedReads
	r.PolyXTrimmedBases += other.PolyXTrimmedBases

	total := r.PEOverlapCount + other.PEOverlapCount
	if total == 0 {
		return
	}
	sum := r.PEOverlapAvgDiff*float64(r.PEOverlapCount) + other.PEOverlapAvgDiff*float64(other.PEOverlapCount)
	r.PEOverlapAvgDiff = sum / float64(total)
	r.PEOverlapCount = total
}

// addOverlapDiff folds one more observed diff into the running mean.
func (r *Report) addOverlapDiff(diff int) {
	prev := r.PEOverlapAvgDiff * float64(r.PEOverlapCount)
	r.PEOverlapCount++
	r.PEOverlapAvgDiff = (prev + float64(diff)) / float64(r.PEOverlapCount)
}
