package pipeline

import (
	"io"

	"github.com/biostrand/fastp/fastqio"
	"github.com/biostrand/fastp/filter"
	"github.com/biostrand/fastp/options"
)

// Run streams r1 (and r2, for paired-end input) through f and writes
// surviving, trimmed records to w1 (and w2), preserving input order.
// It returns the merged Report for the whole run, or the first error
// encountered while reading the input.
//
// Run starts opt.Thread worker goroutines between a single reader and
// a single ordered writer, connected by channels sized to opt.Queue().
func Run(opt options.Options, f *filter.Filter, r1, r2 io.Reader, w1, w2 io.Writer) (filter.Report, error) {
	packCh := make(chan *Pack, opt.Queue())
	procCh := make(chan *ProcessedPack, opt.Queue())
	errc := make(chan error, 1)

	var r2in io.Reader
	if r2 != nil {
		r2in = r2
	}
	go readInput(r1, r2in, opt.PackSize, packCh, errc)

	done := make(chan struct{})
	var report filter.Report
	go func() {
		fw1 := fastqio.NewWriter(w1)
		var fw2 *fastqio.Writer
		if w2 != nil {
			fw2 = fastqio.NewWriter(w2)
		}
		report = writeOutput(procCh, fw1, fw2)
		close(done)
	}()

	threads := opt.Thread
	if threads < 1 {
		threads = 1
	}
	runWorkers(threads, f, packCh, procCh)
	<-done

	select {
	case err := <-errc:
		return report, err
	default:
		return report, nil
	}
}
