package transform

import (
	"testing"

	"github.com/biostrand/fastp/fastqio"
)

func TestTrimPolyG(t *testing.T) {
	rec := &fastqio.Record{
		Seq:  []byte("ACGTACGTACGGGGGGGGGG"),
		Qual: []byte("IIIIIIIIIIIIIIIIIIII"),
	}
	n, ok := TrimPolyG(rec, 10)
	if !ok {
		t.Fatal("expected poly-G trim")
	}
	if got, want := string(rec.Seq), "ACGTACGTAC"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n != 10 {
		t.Errorf("trimmed bases: got %d, want 10", n)
	}
}

func TestTrimPolyGNoRun(t *testing.T) {
	rec := &fastqio.Record{Seq: []byte("ACGTACGTACGTACGTACGT"), Qual: []byte("IIIIIIIIIIIIIIIIIIII")}
	if _, ok := TrimPolyG(rec, 10); ok {
		t.Fatal("expected no trim: no poly-G run present")
	}
}
