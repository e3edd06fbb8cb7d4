// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package window

import (
	"bufio"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/cgwindow/encoding/fasta"
	"github.com/grailbio/cgwindow/encoding/fastq"
	pkgerrors "github.com/pkg/errors"
)

// Format is the file format of the sequences read by Run.
type Format int

const (
	// AutoFormat picks FASTQ if the first non-blank byte of the input is '@',
	// and FASTA otherwise.
	AutoFormat Format = iota
	FASTA
	FASTQ
)

var formatNames = [...]string{
	AutoFormat: "auto",
	FASTA:      "fasta",
	FASTQ:      "fastq",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return Format(f), nil
		}
	}
	return 0, errors.E(errors.Invalid, "unknown sequence format:", s)
}

// source yields named sequences one at a time.
type source interface {
	Scan() bool
	Sequence() (name string, seq []byte)
	Err() error
}

type fastaSource struct {
	sc *fasta.Scanner
}

func (s fastaSource) Scan() bool { return s.sc.Scan() }
func (s fastaSource) Err() error { return s.sc.Err() }

func (s fastaSource) Sequence() (string, []byte) {
	rec := s.sc.Record()
	return rec.Name, rec.Seq
}

type fastqSource struct {
	sc   *fastq.Scanner
	read fastq.Read
}

func (s *fastqSource) Scan() bool { return s.sc.Scan(&s.read) }
func (s *fastqSource) Err() error { return s.sc.Err() }

func (s *fastqSource) Sequence() (string, []byte) {
	return s.read.Name(), []byte(s.read.Seq)
}

// peekLimit bounds the number of blank bytes skipped while detecting the
// format.
const peekLimit = 4096

func newSource(in io.Reader, format Format) source {
	if format == AutoFormat {
		br := bufio.NewReaderSize(in, peekLimit)
		format = detectFormat(br)
		in = br
	}
	if format == FASTQ {
		return &fastqSource{sc: fastq.NewScanner(in, fastq.ID|fastq.Seq|fastq.Qual)}
	}
	return fastaSource{sc: fasta.NewScanner(in)}
}

// detectFormat looks at the first non-blank byte of br without consuming any
// input.
func detectFormat(br *bufio.Reader) Format {
	for n := 1; n <= peekLimit; n++ {
		b, _ := br.Peek(n)
		if len(b) < n {
			// Empty input or a read error; the parser reports the latter.
			return FASTA
		}
		switch b[n-1] {
		case ' ', '\t', '\r', '\n':
			continue
		case '@':
			return FASTQ
		default:
			return FASTA
		}
	}
	return FASTA
}

// isMalformed reports whether err, returned by a source, was caused by
// invalid input rather than by the underlying reader.
func isMalformed(err error) bool {
	switch pkgerrors.Cause(err) {
	case fasta.ErrMalformed, fastq.ErrInvalid, fastq.ErrShort:
		return true
	}
	return false
}
