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

// Package bedgraph reads and writes scored genomic intervals in the bedGraph text
// format: one "chrom\tstart\tend\tscore" line per interval, with 0-based,
// end-exclusive coordinates.
// See https://genome.ucsc.edu/goldenPath/help/bedgraph.html.
package bedgraph

import (
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// Record is a single bedGraph line.
type Record struct {
	Chrom string
	// Start and End define the half-open interval [Start, End).
	Start, End int
	Score      float64
}

// Writer writes bedGraph records.  Output is buffered; Flush must be called
// once all records have been written.
type Writer struct {
	tsvw *tsv.Writer
}

// NewWriter creates a Writer that outputs to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{tsvw: tsv.NewWriter(w)}
}

// WriteTrackLine writes a "track" definition line.  If used, it must precede
// all records.
func (w *Writer) WriteTrackLine(name string) error {
	w.tsvw.WriteString(fmt.Sprintf("track type=bedGraph name=%q", name))
	return w.tsvw.EndLine()
}

// Write appends one record.  The returned error, if any, comes from the
// underlying writer.
func (w *Writer) Write(r Record) error {
	w.tsvw.WriteString(r.Chrom)
	w.tsvw.WriteInt64(int64(r.Start))
	w.tsvw.WriteInt64(int64(r.End))
	// Shortest decimal that parses back to the same float64, without an
	// exponent: 1e-05 is written as "0.00001".
	w.tsvw.WriteFloat64(r.Score, 'f', -1)
	return w.tsvw.EndLine()
}

// Flush writes out any buffered records.
func (w *Writer) Flush() error {
	return w.tsvw.Flush()
}

// row is the tsv.Reader view of a Record.
type row struct {
	Chrom string  `tsv:"chrom"`
	Start int64   `tsv:"start"`
	End   int64   `tsv:"end"`
	Score float64 `tsv:"score"`
}

// ReadRecords reads every record from r.  Track and browser lines are not
// accepted; lines starting with '#' are skipped.
func ReadRecords(r io.Reader) ([]Record, error) {
	tsvReader := tsv.NewReader(r)
	tsvReader.Comment = '#'
	var recs []Record
	for {
		var row row
		if err := tsvReader.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(errors.Invalid, err, "read bedgraph")
		}
		if row.End < row.Start {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("read bedgraph: end %d before start %d on %s", row.End, row.Start, row.Chrom))
		}
		recs = append(recs, Record{Chrom: row.Chrom, Start: int(row.Start), End: int(row.End), Score: row.Score})
	}
	return recs, nil
}
