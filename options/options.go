// Package options holds the single configuration struct consumed by
// package filter, package pipeline, and cmd/fastp.
package options

// Options collects every CLI-recognized knob that shapes filtering,
// trimming, and pipeline execution.
type Options struct {
	// I/O routing.
	In1, In2   string
	Out1, Out2 string
	Stdin      bool
	Stdout     bool

	// Static positional trim.
	TrimFront1, TrimTail1, MaxLen1 int
	TrimFront2, TrimTail2, MaxLen2 int

	// Filter thresholds.
	LengthRequired           int
	QualifiedQualityPhred    byte
	UnqualifiedPercentLimit  byte
	AverageQual              byte
	NBaseLimit               int

	// Sliding-window quality cutting.
	CutFront              bool
	CutTail               bool
	CutRight              bool
	CutFrontWindowSize    int
	CutFrontMeanQuality   byte
	CutTailWindowSize     int
	CutTailMeanQuality    byte
	CutRightWindowSize    int
	CutRightMeanQuality   byte

	// Adapter trimming.
	DisableAdapterTrimming bool
	AdapterSequence        string
	AdapterSequenceR2      string

	// Poly-G trimming.
	TrimPolyG        bool
	PolyGMinLen      int
	DisableTrimPolyG bool

	// Poly-X trimming.
	TrimPolyX   bool
	PolyXMinLen int

	// PE overlap analysis and correction.
	Correction               bool
	OverlapLenRequire        int
	OverlapDiffLimit         int
	OverlapDiffPercentLimit  byte

	// Threading and pipeline sizing.
	Thread       int
	PackSize     int
	QueueDepth   int
	Compression  int

	// External compressor.
	Pigz        bool
	PigzThreads int

	// Reporting (rendering itself is an external collaborator; cmd/fastp
	// parses these into Options, and no code in this module reads them).
	ReportTitle string
	JSON        string
	HTML        string
}

// Default returns an Options populated with the same defaults
// fastp-style tools ship with.
func Default() Options {
	return Options{
		LengthRequired:          15,
		QualifiedQualityPhred:   15,
		UnqualifiedPercentLimit: 40,
		NBaseLimit:              5,
		CutFrontWindowSize:      4,
		CutFrontMeanQuality:     20,
		CutTailWindowSize:       4,
		CutTailMeanQuality:      20,
		CutRightWindowSize:      4,
		CutRightMeanQuality:     20,
		PolyGMinLen:             10,
		PolyXMinLen:             10,
		OverlapLenRequire:       30,
		OverlapDiffLimit:        5,
		OverlapDiffPercentLimit: 20,
		Thread:                  2,
		PackSize:                1000,
		Compression:             4,
		ReportTitle:             "fastp report",
		JSON:                    "fastp.json",
		HTML:                    "fastp.html",
	}
}

// Queue returns the bounded channel capacity between pipeline stages:
// the configured QueueDepth if set, else 2*Thread.
func (o Options) Queue() int {
	if o.QueueDepth > 0 {
		return o.QueueDepth
	}
	return 2 * o.Thread
}

// UsePool reports whether the gzip compression offload pool should run,
// matching the upstream gate: pooled compression only when at least one
// output is gzip-suffixed and the external pigz compressor isn't in use.
func (o Options) UsePool() bool {
	if o.Pigz {
		return false
	}
	return hasGzipSuffix(o.Out1) || hasGzipSuffix(o.Out2)
}

func hasGzipSuffix(path string) bool {
	return len(path) > 3 && path[len(path)-3:] == ".gz"
}
