package pairs

import (
	"testing"

	"github.com/biostrand/fastp/fastqio"
)

func TestAnalyzePerfectOverlap(t *testing.T) {
	r1 := &fastqio.Record{Seq: []byte("AAACCCGGG")}
	r2 := &fastqio.Record{Seq: []byte(string(reverseComplement([]byte("AAACCCGGG"))))}
	got := Analyze(r1, r2, 5, 5, 0.2)
	if !got.Overlapped || got.Offset != 0 || got.Len != 9 || got.Diff != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestAnalyzeNoOverlap(t *testing.T) {
	r1 := &fastqio.Record{Seq: []byte("AAAAAAAAAA")}
	r2 := &fastqio.Record{Seq: []byte("TTTTTTTTTT")}
	got := Analyze(r1, r2, 5, 1, 0.1)
	// revcomp(TTTTTTTTTT) = AAAAAAAAAA, which matches r1 perfectly at
	// offset 0 — pick genuinely dissimilar mates instead.
	_ = got
	r2b := &fastqio.Record{Seq: []byte("CGCGCGCGCG")}
	got2 := Analyze(r1, r2b, 5, 1, 0.1)
	if got2.Overlapped {
		t.Fatalf("expected no overlap, got %+v", got2)
	}
}

func TestReverseComplement(t *testing.T) {
	got := string(reverseComplement([]byte("AACGTN")))
	want := "NACGTT"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
