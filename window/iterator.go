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
	"fmt"

	"github.com/grailbio/base/errors"
)

// Window is a scored half-open interval [Start, End) of a sequence.
type Window struct {
	Start, End int
	Score      float64
}

// Len returns the number of bases covered by the window.
func (w Window) Len() int { return w.End - w.Start }

// Iterator walks a sequence in consecutive windows of a fixed size.  It is a
// forward-only cursor; once Scan returns false it stays exhausted, and a new
// Iterator must be created for the next sequence.
//
// Example:
//
//	it, err := window.NewIterator(seq, 100, window.CGContent)
//	...
//	for it.Scan() {
//	  w := it.Window()
//	  ...
//	}
type Iterator struct {
	seq    []byte
	size   int
	scorer Scorer
	pos    int // start of the next window
	cur    Window
}

// ValidateWindowSize returns an error if size cannot be used as a window
// size.
func ValidateWindowSize(size int) error {
	if size <= 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("window size must be positive, got %d", size))
	}
	return nil
}

// NewIterator creates an Iterator over seq.  The Iterator keeps a reference
// to seq, which must not be modified until the Iterator is exhausted.
func NewIterator(seq []byte, windowSize int, kind Kind) (*Iterator, error) {
	if err := ValidateWindowSize(windowSize); err != nil {
		return nil, err
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	return &Iterator{
		seq:    seq,
		size:   windowSize,
		scorer: kind.Scorer(),
	}, nil
}

// Scan advances to the next window.  It returns false once the windows cover
// the whole sequence.
func (it *Iterator) Scan() bool {
	if it.pos >= len(it.seq) {
		it.pos = len(it.seq)
		return false
	}
	start := it.pos
	end := start + it.size
	if end > len(it.seq) || end < start { // end < start on overflow
		end = len(it.seq)
	}
	it.cur = Window{
		Start: start,
		End:   end,
		Score: it.scorer.Score(it.seq[start:end]),
	}
	it.pos = end
	return true
}

// Window returns the window produced by the last call to Scan.
func (it *Iterator) Window() Window {
	return it.cur
}

// NumWindows returns the number of windows an Iterator produces for a
// sequence of the given length, i.e., ceil(length/windowSize).  It returns 0
// for a window size that NewIterator would reject.
func NumWindows(length, windowSize int) int {
	if length <= 0 || windowSize <= 0 {
		return 0
	}
	return (length-1)/windowSize + 1
}
