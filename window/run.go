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
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/cgwindow/encoding/bedgraph"
)

// Opts configures Run.
type Opts struct {
	// WindowSize is the number of bases per window.  It must be positive.
	WindowSize int
	// Kind selects the score computed for each window.
	Kind Kind
	// Format of the input.  The zero value detects it from the first byte.
	Format Format
	// TrackName, if nonempty, causes a bedGraph track line to be written
	// before the records.
	TrackName string
}

// Validate checks that opts can be used by Run.
func (opts Opts) Validate() error {
	if err := ValidateWindowSize(opts.WindowSize); err != nil {
		return err
	}
	if err := validateKind(opts.Kind); err != nil {
		return err
	}
	if opts.Format < AutoFormat || opts.Format > FASTQ {
		return errors.E(errors.Invalid, "unknown sequence format:", opts.Format.String())
	}
	return nil
}

// Stats summarizes a call to Run.
type Stats struct {
	Sequences int
	Windows   int
	Bases     int
}

// Run reads FASTA or FASTQ records from in and writes one bedGraph record per
// window to out, in input order.  Sequences are processed one at a time.  opts is
// validated before anything is read from in.
//
// Run stops at the first error.  Records written before a malformed input
// record or a write failure are not retracted.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Opts) (stats Stats, err error) {
	if err = opts.Validate(); err != nil {
		return
	}
	w := bedgraph.NewWriter(out)
	defer func() {
		if e := w.Flush(); e != nil && err == nil {
			err = errors.E(e, "flush bedgraph output")
		}
	}()
	if opts.TrackName != "" {
		if err = w.WriteTrackLine(opts.TrackName); err != nil {
			return stats, errors.E(err, "write bedgraph track line")
		}
	}
	src := newSource(in, opts.Format)
	for src.Scan() {
		if err = ctx.Err(); err != nil {
			return
		}
		name, seq := src.Sequence()
		var n int
		if n, err = writeWindows(w, name, seq, opts); err != nil {
			return
		}
		log.Debug.Printf("%s: %d bases, %d windows", name, len(seq), n)
		stats.Sequences++
		stats.Windows += n
		stats.Bases += len(seq)
	}
	if e := src.Err(); e != nil {
		if isMalformed(e) {
			err = errors.E(errors.Invalid, e, "read sequence input")
		} else {
			err = errors.E(e, "read sequence input")
		}
	}
	return
}

// writeWindows drains one Iterator over seq and returns the number of records
// written.
func writeWindows(w *bedgraph.Writer, name string, seq []byte, opts Opts) (int, error) {
	it, err := NewIterator(seq, opts.WindowSize, opts.Kind)
	if err != nil {
		return 0, err
	}
	n := 0
	for it.Scan() {
		win := it.Window()
		if err := w.Write(bedgraph.Record{
			Chrom: name,
			Start: win.Start,
			End:   win.End,
			Score: win.Score,
		}); err != nil {
			return n, errors.E(err, "write window of sequence", name)
		}
		n++
	}
	return n, nil
}
