package gzippool

import (
	"bytes"
	"io"
)

// DefaultBlockSize is the amount of uncompressed data PoolWriter
// batches into each compression job, chosen to match the bgzf
// uncompressed block convention: large enough to amortize per-member
// gzip overhead, small enough to give the pool many jobs to
// parallelize across workers.
const DefaultBlockSize = 1 << 20

// PoolWriter is an io.WriteCloser that batches written bytes into
// DefaultBlockSize blocks, compresses each block on a Pool, and
// writes the compressed blocks to the underlying writer in the order
// they were submitted. Unlike a single gzip.Writer, PoolWriter
// overlaps compression of block N+1 with the write of block N's
// compressed bytes, trading a small amount of output-ordering
// bookkeeping for real parallelism on multi-core machines.
type PoolWriter struct {
	pool      *Pool
	out       io.Writer
	buf       bytes.Buffer
	nextID    int64
	workersWG chan struct{}
	writeErr  error
}

// NewPoolWriter constructs a PoolWriter over out, with workers
// goroutines compressing at the given gzip level.
func NewPoolWriter(out io.Writer, workers, level int) *PoolWriter {
	pw := &PoolWriter{
		pool:      New(workers, level, false),
		out:       out,
		workersWG: make(chan struct{}),
	}
	go func() {
		pw.pool.Run(workers, func(id int64, w Which, compressed []byte) {
			if pw.writeErr != nil {
				return
			}
			_, pw.writeErr = pw.out.Write(compressed)
		})
		close(pw.workersWG)
	}()
	return pw
}

// Write buffers p, submitting DefaultBlockSize-sized jobs to the pool
// as the buffer fills.
func (pw *PoolWriter) Write(p []byte) (int, error) {
	n, _ := pw.buf.Write(p)
	for pw.buf.Len() >= DefaultBlockSize {
		pw.pool.Submit(pw.nextID, WhichR1, pw.buf.Next(DefaultBlockSize))
		pw.nextID++
	}
	return n, nil
}

// Close flushes any buffered remainder as a final, possibly short,
// job, waits for every queued block to finish compressing and being
// written, and returns the first write error encountered, if any.
func (pw *PoolWriter) Close() error {
	if pw.buf.Len() > 0 {
		pw.pool.Submit(pw.nextID, WhichR1, pw.buf.Bytes())
		pw.nextID++
	}
	pw.pool.Close()
	<-pw.workersWG
	return pw.writeErr
}
