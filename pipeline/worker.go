package pipeline

import (
	"sync"

	"github.com/biostrand/fastp/fastqio"
	"github.com/biostrand/fastp/filter"
)

// runWorkers starts n goroutines, each pulling Packs from in, running
// them through f, and sending the resulting ProcessedPacks on out. It
// blocks until in is drained and every worker has exited, then closes
// out.
func runWorkers(n int, f *filter.Filter, in <-chan *Pack, out chan<- *ProcessedPack) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for pack := range in {
				out <- processPack(f, pack)
			}
		}()
	}
	wg.Wait()
	close(out)
}

func processPack(f *filter.Filter, pack *Pack) *ProcessedPack {
	rep := filter.Report{}
	if pack.Paired() {
		return processPaired(f, pack, &rep)
	}
	return processSingle(f, pack, &rep)
}

func processPaired(f *filter.Filter, pack *Pack, rep *filter.Report) *ProcessedPack {
	outR1 := make([]*fastqio.Record, 0, len(pack.R1))
	outR2 := make([]*fastqio.Record, 0, len(pack.R2))
	for i, r1 := range pack.R1 {
		r2 := pack.R2[i]
		rep.TotalReads++
		f.TrimPair(r1, r2, rep)
		ok1 := f.PassFilters(r1, rep)
		ok2 := f.PassFilters(r2, rep)
		if !ok1 || !ok2 {
			continue
		}
		rep.PassedReads++
		outR1 = append(outR1, r1)
		outR2 = append(outR2, r2)
	}
	return &ProcessedPack{ID: pack.ID, R1: outR1, R2: outR2, Report: *rep}
}

func processSingle(f *filter.Filter, pack *Pack, rep *filter.Report) *ProcessedPack {
	outR1 := make([]*fastqio.Record, 0, len(pack.R1))
	for _, r1 := range pack.R1 {
		rep.TotalReads++
		f.TrimRecord(r1, false, rep)
		if !f.PassFilters(r1, rep) {
			continue
		}
		rep.PassedReads++
		outR1 = append(outR1, r1)
	}
	return &ProcessedPack{ID: pack.ID, R1: outR1, Report: *rep}
}
