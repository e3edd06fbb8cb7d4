// Package fasta contains a streaming parser for FASTA files.  Briefly, FASTA
// files consist of a number of named sequences that may be interrupted by
// newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// spaces and tabs immediately after '>'.  Any text after a space is the
// description.  For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	maxLineSize = 1024 * 1024 * 300 // 300 MB
)

// ErrMalformed is the errors.Cause of every error Scanner reports for input
// that is not valid FASTA.
var ErrMalformed = errors.New("malformed FASTA file")

// Record is one named sequence.
type Record struct {
	Name        string
	Description string
	Seq         []byte
}

// Scanner reads FASTA records one at a time, so that only the current record
// is held in memory.
//
// Example:
//
//	sc := fasta.NewScanner(r)
//	for sc.Scan() {
//	  rec := sc.Record()
//	  ...
//	}
//	if err := sc.Err(); err != nil {
//	  ...
//	}
type Scanner struct {
	sc     *bufio.Scanner
	lineno int
	err    error
	done   bool
	// pending is reported by the Scan after the one that returned the last
	// complete record.
	pending error

	// Header of the record being accumulated, valid iff inRecord.
	inRecord          bool
	name, description string
	seq               []byte

	rec Record
}

// NewScanner creates a Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineSize)
	return &Scanner{sc: sc}
}

// Scan reads the next record.  It returns false at the end of the input or
// on the first error; Err distinguishes the two.  A parse error stops the
// scan, and records after a malformed one are never produced.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	if s.pending != nil {
		s.fail(s.pending)
		return false
	}
	for s.sc.Scan() {
		s.lineno++
		line := bytes.TrimRight(s.sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			name, description := parseHeader(line[1:])
			if name == "" {
				err := errors.Wrapf(ErrMalformed, "line %d: empty sequence name", s.lineno)
				if s.inRecord {
					s.finishRecord()
					s.inRecord = false
					s.pending = err
					return true
				}
				s.fail(err)
				return false
			}
			emit := s.inRecord
			if emit {
				s.finishRecord()
			}
			s.inRecord = true
			s.name, s.description = name, description
			if emit {
				return true
			}
			continue
		}
		if !s.inRecord {
			s.fail(errors.Wrapf(ErrMalformed, "line %d: sequence data before the first '>' header", s.lineno))
			return false
		}
		s.seq = append(s.seq, line...)
	}
	s.done = true
	if err := s.sc.Err(); err != nil {
		if err == bufio.ErrTooLong {
			err = errors.Wrapf(ErrMalformed, "line %d: longer than %d bytes", s.lineno+1, maxLineSize)
		} else {
			err = errors.Wrapf(err, "couldn't read FASTA data after line %d", s.lineno)
		}
		s.fail(err)
		return false
	}
	if s.inRecord {
		s.finishRecord()
		s.inRecord = false
		return true
	}
	return false
}

// Record returns the record read by the last call to Scan.  The caller owns
// the returned Seq slice; the Scanner does not reuse it.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first error encountered, or nil if the input was read
// through the end.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) finishRecord() {
	s.rec = Record{Name: s.name, Description: s.description, Seq: s.seq}
	s.seq = make([]byte, 0, len(s.seq))
}

func (s *Scanner) fail(err error) {
	s.err = err
	s.done = true
	s.rec = Record{}
}

// parseHeader splits the text after '>' into the sequence name and the
// optional description.
func parseHeader(header []byte) (name, description string) {
	header = bytes.TrimLeft(header, " \t")
	if i := bytes.IndexAny(header, " \t"); i >= 0 {
		return string(header[:i]), string(bytes.TrimSpace(header[i+1:]))
	}
	return string(header), ""
}
