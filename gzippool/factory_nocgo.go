// +build !cgo

package gzippool

func newFactory(level int) compressFactory {
	return &klauspostFactory{level: level}
}
