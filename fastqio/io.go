package fastqio

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
)

// Source is an opened, possibly-compressed FASTQ input stream plus the
// underlying file handle (nil for stdin), so the caller can close both.
type Source struct {
	r  io.Reader
	fh file.File
}

// OpenInput opens path (any scheme file.Open recognizes — local path or,
// once the s3file implementation is registered, "s3://...") for reading,
// or returns a Source wrapping os.Stdin when useStdin is set. Gzip input
// (including multi-member streams) is detected transparently via
// github.com/grailbio/base/compress, matching cmd/bio-fusion's readFASTQ.
func OpenInput(ctx context.Context, path string, useStdin bool) (*Source, error) {
	if useStdin || path == "" {
		return &Source{r: os.Stdin}, nil
	}
	fh, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = fh.Reader(ctx)
	if u := compress.NewReaderPath(r, fh.Name()); u != nil {
		r = u
	}
	return &Source{r: r, fh: fh}, nil
}

// Reader returns the (possibly decompressed) byte stream.
func (s *Source) Reader() io.Reader { return s.r }

// Close releases the underlying file handle, if any.
func (s *Source) Close(ctx context.Context) error {
	if s.fh == nil {
		return nil
	}
	return s.fh.Close(ctx)
}

// Sink is an opened FASTQ output stream plus the underlying file handle
// (nil for stdout).
type Sink struct {
	w  io.Writer
	gz *gzip.Writer
	fh file.File
}

// CreateOutput opens path for writing, or wraps os.Stdout when useStdout
// is set. When path ends in ".gz" and direct (non-pooled) compression is
// requested, the returned Sink's Writer is itself a gzip encoder at the
// given level; callers that want pooled compression (package gzippool)
// should pass direct=false and handle raw-byte submission themselves.
func CreateOutput(ctx context.Context, path string, useStdout bool, level int, direct bool) (*Sink, error) {
	if useStdout || path == "" {
		w := io.Writer(os.Stdout)
		if direct && strings.HasSuffix(path, ".gz") {
			gz, _ := gzip.NewWriterLevel(w, level)
			return &Sink{w: gz, gz: gz}, nil
		}
		return &Sink{w: w}, nil
	}
	fh, err := file.Create(ctx, path)
	if err != nil {
		return nil, err
	}
	w := fh.Writer(ctx)
	if direct && strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, err
		}
		return &Sink{w: gz, gz: gz, fh: fh}, nil
	}
	return &Sink{w: w, fh: fh}, nil
}

// Writer returns the byte stream to write FASTQ lines to.
func (s *Sink) Writer() io.Writer { return s.w }

// IsGzip reports whether this Sink writes a direct gzip stream.
func (s *Sink) IsGzip() bool { return s.gz != nil }

// Close flushes and closes the gzip encoder (if any) and the underlying
// file handle (if any).
func (s *Sink) Close(ctx context.Context) error {
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			return err
		}
	}
	if s.fh == nil {
		return nil
	}
	return s.fh.Close(ctx)
}
