package gzippool

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// klauspostFactory is the portable, cgo-free compressFactory. It's
// what newFactory(level) returns on a !cgo build (factory_nocgo.go); a
// cgo build's newFactory returns zlibFactory (factory_cgo.go) instead.
type klauspostFactory struct {
	level int
}

func (f *klauspostFactory) create(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, f.level)
}
