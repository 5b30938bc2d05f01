package pipeline

import (
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"

	"github.com/biostrand/fastp/fastqio"
)

// readInput scans r1 (and, if r2 is non-nil, r2 in lockstep) and sends
// successive Packs of up to packSize records on out, assigning strictly
// increasing IDs starting at 0. The final, possibly short, pack is
// still sent. out is closed before returning. Scanned records are
// cloned before being packed, since the underlying Scanner reuses its
// line buffers on the next Scan call.
//
// A discordant pair stream (one mate ending before the other) or a
// malformed record is fatal: readInput logs and returns the error via
// errc without sending a final partial pack for the records already
// buffered when the error was detected.
func readInput(r1, r2 io.Reader, packSize int, out chan<- *Pack, errc chan<- error) {
	defer close(out)

	if r2 == nil {
		readSingle(r1, packSize, out, errc)
		return
	}
	readPaired(r1, r2, packSize, out, errc)
}

func readSingle(r1 io.Reader, packSize int, out chan<- *Pack, errc chan<- error) {
	sc := fastqio.NewScanner(r1)
	var id int64
	buf := make([]*fastqio.Record, 0, packSize)
	var rec fastqio.Record
	for sc.Scan(&rec) {
		buf = append(buf, rec.Clone())
		if len(buf) == packSize {
			out <- &Pack{ID: id, R1: buf}
			id++
			buf = make([]*fastqio.Record, 0, packSize)
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("fastq read error: %v", err)
		errc <- errors.Wrap(err, "reading single-end fastq")
		return
	}
	if len(buf) > 0 {
		out <- &Pack{ID: id, R1: buf}
	}
}

func readPaired(r1, r2 io.Reader, packSize int, out chan<- *Pack, errc chan<- error) {
	sc := fastqio.NewPairScanner(r1, r2)
	var id int64
	buf1 := make([]*fastqio.Record, 0, packSize)
	buf2 := make([]*fastqio.Record, 0, packSize)
	var rec1, rec2 fastqio.Record
	for sc.Scan(&rec1, &rec2) {
		buf1 = append(buf1, rec1.Clone())
		buf2 = append(buf2, rec2.Clone())
		if len(buf1) == packSize {
			out <- &Pack{ID: id, R1: buf1, R2: buf2}
			id++
			buf1 = make([]*fastqio.Record, 0, packSize)
			buf2 = make([]*fastqio.Record, 0, packSize)
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("fastq read error: %v", err)
		errc <- errors.Wrap(err, "reading paired-end fastq")
		return
	}
	if len(buf1) > 0 {
		out <- &Pack{ID: id, R1: buf1, R2: buf2}
	}
}
