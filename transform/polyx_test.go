package transform

import (
	"testing"

	"github.com/biostrand/fastp/fastqio"
)

func TestTrimPolyX(t *testing.T) {
	rec := &fastqio.Record{
		Seq:  []byte("ACGTACGTACTTTTTTTTTT"),
		Qual: []byte("IIIIIIIIIIIIIIIIIIII"),
	}
	n, ok := TrimPolyX(rec, 10)
	if !ok {
		t.Fatal("expected poly-X trim")
	}
	if got, want := string(rec.Seq), "ACGTACGTAC"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n != 10 {
		t.Errorf("trimmed bases: got %d, want 10", n)
	}
}

func TestTrimPolyXEmpty(t *testing.T) {
	rec := &fastqio.Record{}
	if _, ok := TrimPolyX(rec, 10); ok {
		t.Fatal("expected no trim on an empty record")
	}
}
