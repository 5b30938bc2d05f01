package fastqio

import "io"

var newline = []byte{'\n'}

// Writer emits Records as four LF-terminated lines. The underlying
// io.Writer may itself be a gzip encoder, or plain bytes routed through
// the compression offload pool (package gzippool) — the Writer doesn't
// know or care which.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter constructs a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write emits rec in FASTQ format.
func (w *Writer) Write(rec *Record) error {
	w.writeLine(rec.Name)
	w.writeLine(rec.Seq)
	w.writeLine(rec.Plus)
	w.writeLine(rec.Qual)
	return w.err
}

func (w *Writer) writeLine(b []byte) {
	if w.err != nil {
		return
	}
	if _, w.err = w.w.Write(b); w.err != nil {
		return
	}
	_, w.err = w.w.Write(newline)
}
