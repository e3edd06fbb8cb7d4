// Package fastq contains a streaming parser for FASTQ files, which hold one
// four-line record per read:
//
//	@<id> [description]
//	<sequence>
//	+[anything]
//	<qualities>
package fastq

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024 * 300 // 300 MB

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// A Read is a FASTQ read, comprising an ID line, sequence, line 3
// ("unknown"), and a quality string.
type Read struct {
	ID, Seq, Unk, Qual string
}

// Name returns the read name: the ID line without the leading '@' and
// without anything after the first space or tab.
func (r *Read) Name() string {
	name := strings.TrimPrefix(r.ID, "@")
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}
	return name
}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTQ read
// data. The Scan method returns the next read, returning a boolean
// indicating whether the read succeeded. Scanners are not
// threadsafe.
//
// Scanner requires ID lines to begin with "@" and line 3 to begin with "+".
// Blank lines before an ID line are ignored.
// When qualities are read, their length must match the sequence length.
type Scanner struct {
	b      *bufio.Scanner
	lineno int
	err    error
	fields Field
}

// Field enumerates FASTQ fields. It is used to specify fields to read in
// NewScanner.
type Field uint

const (
	// ID causes the Read.ID field to be filled
	ID Field = 1 << iota
	// Seq causes the Read.Seq field to be filled
	Seq
	// Unk causes the Read.Unk field to be filled
	Unk
	// Qual causes the Read.Qual field to be filled
	Qual
	// All equals ID|Seq|Unk|Qual.
	All = ID | Seq | Unk | Qual
)

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader. Fields is a bitset of the fields to read. A typical value
// would be All or ID|Seq.
func NewScanner(r io.Reader, fields Field) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxLineSize)
	return &Scanner{b: b, fields: fields}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	// Blank lines between records are skipped.
	var id []byte
	for len(id) == 0 {
		if !f.b.Scan() {
			if f.err = f.b.Err(); f.err == nil {
				f.err = errEOF
			}
			return false
		}
		f.lineno++
		id = bytes.TrimRight(f.b.Bytes(), "\r")
	}
	if id[0] != '@' {
		f.err = errors.Wrapf(ErrInvalid, "line %d: expected '@'", f.lineno)
		return false
	}
	if f.fields&ID != 0 {
		read.ID = string(id)
	}
	if !f.scan() {
		return false
	}
	seqLen := len(f.b.Bytes())
	if f.fields&Seq != 0 {
		read.Seq = f.b.Text()
	}
	if !f.scan() {
		return false
	}
	unk := f.b.Bytes()
	if len(unk) == 0 || unk[0] != '+' {
		f.err = errors.Wrapf(ErrInvalid, "line %d: expected '+'", f.lineno)
		return false
	}
	if f.fields&Unk != 0 {
		read.Unk = string(unk)
	}
	if !f.scan() {
		return false
	}
	if f.fields&Qual != 0 {
		if len(f.b.Bytes()) != seqLen {
			f.err = errors.Wrapf(ErrInvalid, "line %d: %d qualities for %d bases", f.lineno, len(f.b.Bytes()), seqLen)
			return false
		}
		read.Qual = f.b.Text()
	}
	return true
}

func (f *Scanner) scan() bool {
	ok := f.b.Scan()
	if !ok {
		if f.err = f.b.Err(); f.err == nil {
			f.err = errors.Wrapf(ErrShort, "after line %d", f.lineno)
		}
		return false
	}
	f.lineno++
	return true
}

// Err returns the scanning error, if any.  Errors caused by malformed input
// have ErrInvalid or ErrShort as their errors.Cause.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}
