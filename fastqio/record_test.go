package fastqio

import "testing"

func TestRecordTruncate(t *testing.T) {
	r := &Record{Seq: []byte("ACGTACGT"), Qual: []byte("IIIIIIII")}
	r.Truncate(3)
	if got, want := string(r.Seq), "ACG"; got != want {
		t.Errorf("Seq: got %q, want %q", got, want)
	}
	if got, want := string(r.Qual), "III"; got != want {
		t.Errorf("Qual: got %q, want %q", got, want)
	}
}

func TestRecordClear(t *testing.T) {
	r := &Record{Seq: []byte("ACGT"), Qual: []byte("IIII")}
	r.Clear()
	if !r.Empty() {
		t.Errorf("expected Empty() after Clear()")
	}
	if got, want := cap(r.Seq), 4; got != want {
		t.Errorf("Clear reallocated Seq: cap = %d, want %d", got, want)
	}
}

func TestRecordClone(t *testing.T) {
	r := &Record{Name: []byte("@a"), Seq: []byte("ACGT"), Plus: []byte("+"), Qual: []byte("IIII")}
	c := r.Clone()
	r.Seq[0] = 'T'
	if string(c.Seq) == string(r.Seq) {
		t.Errorf("Clone shares backing array with original")
	}
	if got, want := string(c.Name), "@a"; got != want {
		t.Errorf("Name: got %q, want %q", got, want)
	}
}
