package fastqio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grailbio/base/errors"
)

var (
	// ErrShort is returned when a truncated FASTQ stream is encountered:
	// end-of-stream in the middle of a 4-line record.
	ErrShort = errors.New("truncated fastq record")
	// ErrInvalid is returned when a record's structural lines ("@" / "+"
	// prefixes) don't parse.
	ErrInvalid = errors.New("invalid fastq record")
	// ErrDiscordant is returned by PairScanner when one mate stream ends
	// before the other.
	ErrDiscordant = errors.New("discordant fastq pairs")
)

const maxScanTokenSize = 1024 * 1024

// Scanner reads FASTQ records one at a time from an underlying byte
// stream. Scanners are not safe for concurrent use; each pipeline
// reader owns exactly one.
//
// Scanner strips a single trailing CR and/or LF from every line; it
// otherwise performs no validation on seq/qual contents.
type Scanner struct {
	b   *bufio.Scanner
	err error
}

// NewScanner constructs a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	b.Buffer(buf, maxScanTokenSize)
	return &Scanner{b: b}
}

func chomp(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line
}

// Scan reads the next record into rec, returning false at end of
// stream or on error; call Err to distinguish the two.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	if !s.scanLine() {
		return false
	}
	name := chomp(s.b.Bytes())
	if len(name) == 0 || name[0] != '@' {
		s.err = ErrInvalid
		return false
	}
	rec.Name = append(rec.Name[:0], name...)

	if !s.scanLineMidRecord() {
		return false
	}
	rec.Seq = append(rec.Seq[:0], chomp(s.b.Bytes())...)

	if !s.scanLineMidRecord() {
		return false
	}
	plus := chomp(s.b.Bytes())
	if len(plus) == 0 || plus[0] != '+' {
		s.err = ErrInvalid
		return false
	}
	rec.Plus = append(rec.Plus[:0], plus...)

	if !s.scanLineMidRecord() {
		return false
	}
	rec.Qual = append(rec.Qual[:0], chomp(s.b.Bytes())...)
	return true
}

// scanLine scans a line when a new record may legitimately begin (EOF
// here is a clean end of stream, not an error).
func (s *Scanner) scanLine() bool {
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = io.EOF
		}
		return false
	}
	return true
}

// scanLineMidRecord scans a line where EOF is fatal: a record was
// begun but not completed.
func (s *Scanner) scanLineMidRecord() bool {
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = ErrShort
		}
		return false
	}
	return true
}

// Err returns the error that stopped scanning, or nil if the stream
// ended cleanly (io.EOF is reported as nil here, matching bufio.Scanner
// convention).
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// PairScanner composes two Scanners to read paired-end FASTQ in
// lockstep, failing fast if one mate stream runs out before the other.
type PairScanner struct {
	s1, s2 *Scanner
}

// NewPairScanner constructs a PairScanner over r1, r2.
func NewPairScanner(r1, r2 io.Reader) *PairScanner {
	return &PairScanner{s1: NewScanner(r1), s2: NewScanner(r2)}
}

// Scan reads the next mate pair into rec1, rec2.
func (p *PairScanner) Scan(rec1, rec2 *Record) bool {
	ok1 := p.s1.Scan(rec1)
	ok2 := p.s2.Scan(rec2)
	if ok1 != ok2 {
		if p.s1.Err() == nil && p.s2.Err() == nil {
			if ok1 {
				p.s1.err = ErrDiscordant
			} else {
				p.s2.err = ErrDiscordant
			}
		}
		return false
	}
	return ok1
}

// Err returns the first non-nil error from either mate stream.
func (p *PairScanner) Err() error {
	if err := p.s1.Err(); err != nil {
		return err
	}
	return p.s2.Err()
}
