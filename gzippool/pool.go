// Package gzippool offloads gzip compression of output FASTQ packs
// onto a worker pool, so a single writer goroutine isn't stuck paying
// full compression cost serially for every pack. Each pack's bytes are
// compressed independently into its own gzip member and the results
// are drained in ascending (id, which) order, giving a multi-member
// gzip stream that decompresses to the same bytes a direct, unpooled
// gzip.Writer would have been fed.
package gzippool

import (
	"bytes"
	"io"

	"github.com/biogo/store/llrb"
)

// compressFactory creates a fresh compressing io.WriteCloser writing
// to w. Implementations may keep a pointer to their underlying writer
// so Reset can be used instead of allocating one per job, mirroring
// the factory pattern used for bgzf block compression.
type compressFactory interface {
	create(w io.Writer) (io.WriteCloser, error)
}

// which distinguishes R1 from R2 output within the same pack id, so a
// paired-end run's two streams can share one pool.
type Which int

const (
	WhichR1 Which = iota
	WhichR2
)

// job is one pack's worth of uncompressed bytes awaiting compression.
type job struct {
	id    int64
	which Which
	data  []byte
}

// result is a completed job: data replaced by its compressed form.
type result struct {
	id    int64
	which Which
	data  []byte
}

func (r *result) Compare(c llrb.Comparable) int {
	o := c.(*result)
	if r.id != o.id {
		if r.id < o.id {
			return -1
		}
		return 1
	}
	if r.which != o.which {
		if r.which < o.which {
			return -1
		}
		return 1
	}
	return 0
}

// Pool compresses jobs submitted via Submit on a fixed worker count
// and delivers their compressed bytes, in submission order per
// (id, which), to the sink function passed to Run.
type Pool struct {
	jobs   chan job
	level  int
	paired bool
}

// New constructs a Pool compressing at the given gzip level, with a
// job queue of 4*n entries; the workers themselves are started by Run,
// which takes its own worker count. The concrete compressFactory (klauspost/compress, or zlibng
// when built with cgo) is chosen by newFactory, defined per build tag.
// paired selects whether Run should expect a WhichR2 job for every
// pack id in addition to WhichR1.
func New(n, level int, paired bool) *Pool {
	return &Pool{jobs: make(chan job, n*4), level: level, paired: paired}
}

// Submit enqueues data for compression under the given pack id and
// stream. Submit may block if the pool's internal queue is full.
func (p *Pool) Submit(id int64, w Which, data []byte) {
	cp := append([]byte(nil), data...)
	p.jobs <- job{id: id, which: w, data: cp}
}

// Close signals that no more jobs will be submitted.
func (p *Pool) Close() {
	close(p.jobs)
}

// Run starts n workers consuming jobs and reassembles their results
// into ascending (id, which) order, calling sink for each in turn. Run
// blocks until Close has been called and every queued job has drained.
func (p *Pool) Run(n int, sink func(id int64, w Which, compressed []byte)) {
	resCh := make(chan result, n*4)
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			f := newFactory(p.level)
			for j := range p.jobs {
				resCh <- result{id: j.id, which: j.which, data: compressOne(f, j.data)}
			}
			done <- struct{}{}
		}()
	}
	go func() {
		for i := 0; i < n; i++ {
			<-done
		}
		close(resCh)
	}()

	pending := llrb.Tree{}
	var nextID int64
	var nextWhich Which
	flush := func() {
		for pending.Len() > 0 {
			var min *result
			pending.Do(func(c llrb.Comparable) bool {
				min = c.(*result)
				return true
			})
			if min.id != nextID || min.which != nextWhich {
				return
			}
			pending.DeleteMin()
			sink(min.id, min.which, min.data)
			if p.paired && nextWhich == WhichR1 {
				nextWhich = WhichR2
			} else {
				nextWhich = WhichR1
				nextID++
			}
		}
	}
	for r := range resCh {
		rc := r
		pending.Insert(&rc)
		flush()
	}
}

func compressOne(f compressFactory, data []byte) []byte {
	var buf bytes.Buffer
	w, err := f.create(&buf)
	if err != nil {
		panic(err)
	}
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
