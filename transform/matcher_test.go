package transform

import "testing"

func TestMatchWithOneInsertionFindsTheGap(t *testing.T) {
	normal := []byte("ACGTACGT")
	ins := []byte("ACGTXACGT") // one extra base inserted after position 4
	if !matchWithOneInsertion(ins, normal, len(normal), 0) {
		t.Fatal("expected a match: single insertion explains the whole difference")
	}
}

func TestMatchWithOneInsertionRejectsTooManyMismatches(t *testing.T) {
	ins := []byte("TTTTTTTTT")
	normal := []byte("AAAAAAAA")
	if matchWithOneInsertion(ins, normal, len(normal), 1) {
		t.Fatal("expected no match: too many mismatches for the budget")
	}
}

func TestMatchWithOneInsertionShortInputsRejected(t *testing.T) {
	if matchWithOneInsertion([]byte("AC"), []byte("ACGT"), 4, 0) {
		t.Fatal("expected false: ins too short")
	}
	if matchWithOneInsertion([]byte("ACGTA"), []byte("AC"), 4, 0) {
		t.Fatal("expected false: normal too short")
	}
}
