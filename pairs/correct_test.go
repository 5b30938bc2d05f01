package pairs

import (
	"testing"

	"github.com/biostrand/fastp/fastqio"
)

func TestCorrectNoDisagreementUnchanged(t *testing.T) {
	r1 := &fastqio.Record{Seq: []byte("AAACCCGGG"), Qual: []byte("IIIIIIIII")}
	r2 := &fastqio.Record{Seq: []byte("CCCGGGTTT"), Qual: []byte("IIIIIIIII")}
	Correct(r1, r2, 0, 9)
	if string(r1.Seq) != "AAACCCGGG" || string(r2.Seq) != "CCCGGGTTT" {
		t.Fatalf("expected no changes, got r1=%q r2=%q", r1.Seq, r2.Seq)
	}
}

func TestCorrectFixesLowerQualityMate(t *testing.T) {
	// r1's base disagrees with revcomp(r2's base); r1 has the higher
	// quality, so r2 should be rewritten to match r1.
	r1 := &fastqio.Record{Seq: []byte("A"), Qual: []byte("I")} // Phred 40
	r2 := &fastqio.Record{Seq: []byte("A"), Qual: []byte("#")} // Phred 2; revcomp('A') = 'T' disagrees with r1's 'A'
	Correct(r1, r2, 0, 1)
	if got, want := string(r2.Seq), "T"; got != want {
		t.Errorf("r2.Seq: got %q, want %q", got, want)
	}
	if got, want := r2.Qual[0], r1.Qual[0]; got != want {
		t.Errorf("r2.Qual[0]: got %q, want %q", got, want)
	}
	if got, want := string(r1.Seq), "A"; got != want {
		t.Errorf("r1 should be untouched: got %q, want %q", got, want)
	}
}
