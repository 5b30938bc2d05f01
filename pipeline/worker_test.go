package pipeline

import (
	"testing"

	"github.com/biostrand/fastp/fastqio"
	"github.com/biostrand/fastp/filter"
	"github.com/biostrand/fastp/options"
)

func TestProcessSingleCountsAndFilters(t *testing.T) {
	o := options.Default()
	o.LengthRequired = 5
	f := filter.New(o)

	pack := &Pack{
		ID: 0,
		R1: []*fastqio.Record{
			{Name: []byte("@a"), Seq: []byte("ACGTACGT"), Plus: []byte("+"), Qual: []byte("IIIIIIII")},
			{Name: []byte("@b"), Seq: []byte("ACG"), Plus: []byte("+"), Qual: []byte("III")},
		},
	}

	pp := processPack(f, pack)
	if pp.Report.TotalReads != 2 {
		t.Errorf("TotalReads: got %d, want 2", pp.Report.TotalReads)
	}
	if pp.Report.PassedReads != 1 {
		t.Errorf("PassedReads: got %d, want 1", pp.Report.PassedReads)
	}
	if pp.Report.FailedTooShort != 1 {
		t.Errorf("FailedTooShort: got %d, want 1", pp.Report.FailedTooShort)
	}
	if len(pp.R1) != 1 || string(pp.R1[0].Name) != "@a" {
		t.Errorf("unexpected surviving records: %+v", pp.R1)
	}
}

func TestRunWorkersClosesOutputAfterDraining(t *testing.T) {
	o := options.Default()
	f := filter.New(o)

	in := make(chan *Pack, 2)
	in <- &Pack{ID: 0, R1: []*fastqio.Record{{Name: []byte("@a"), Seq: []byte("ACGTACGTACGTACGT"), Plus: []byte("+"), Qual: []byte("IIIIIIIIIIIIIIII")}}}
	in <- &Pack{ID: 1, R1: []*fastqio.Record{{Name: []byte("@b"), Seq: []byte("ACGTACGTACGTACGT"), Plus: []byte("+"), Qual: []byte("IIIIIIIIIIIIIIII")}}}
	close(in)

	out := make(chan *ProcessedPack, 2)
	runWorkers(3, f, in, out)

	var got []int64
	for pp := range out {
		got = append(got, pp.ID)
	}
	if len(got) != 2 {
		t.Fatalf("got %d processed packs, want 2", len(got))
	}
}
