// Package pipeline wires the reader, worker pool, and ordered writer
// into the streaming, order-preserving run that processes one FASTQ
// input (or one mate pair of inputs) end to end.
package pipeline

import (
	"github.com/biostrand/fastp/fastqio"
	"github.com/biostrand/fastp/filter"
)

// Pack is a contiguous, strictly-ordered run of input records read off
// the input stream(s). Packs carry an increasing ID assigned by the
// reader so the writer can restore read order after out-of-order
// completion by the worker pool. R2 is nil for single-end runs.
type Pack struct {
	ID int64
	R1 []*fastqio.Record
	R2 []*fastqio.Record
}

// Paired reports whether this pack carries mate pairs.
func (p *Pack) Paired() bool {
	return p.R2 != nil
}

// ProcessedPack is the result of running a Pack through a Filter: the
// surviving records (already trimmed) plus the pack-local counters
// observed while filtering it.
type ProcessedPack struct {
	ID     int64
	R1     []*fastqio.Record
	R2     []*fastqio.Record
	Report filter.Report
}
