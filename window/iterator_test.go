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

package window_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/cgwindow/window"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func collect(t *testing.T, seq string, size int, kind window.Kind) []window.Window {
	it, err := window.NewIterator([]byte(seq), size, kind)
	assert.NoError(t, err)
	var windows []window.Window
	for it.Scan() {
		windows = append(windows, it.Window())
	}
	return windows
}

func TestIteratorExample(t *testing.T) {
	expect.EQ(t, collect(t, "ACGCGT", 3, window.CGContent), []window.Window{
		{Start: 0, End: 3, Score: 2.0 / 3},
		{Start: 3, End: 6, Score: 2.0 / 3},
	})
	expect.EQ(t, collect(t, "ACGCGT", 3, window.CpGFrequency), []window.Window{
		{Start: 0, End: 3, Score: 0.5},
		{Start: 3, End: 6, Score: 0.5},
	})
}

func TestIteratorShortLastWindow(t *testing.T) {
	expect.EQ(t, collect(t, "ACGCGTC", 3, window.CGContent), []window.Window{
		{Start: 0, End: 3, Score: 2.0 / 3},
		{Start: 3, End: 6, Score: 2.0 / 3},
		{Start: 6, End: 7, Score: 1},
	})
	// A one-base window has no base pair to score.
	expect.EQ(t, collect(t, "ACGCGTC", 3, window.CpGFrequency), []window.Window{
		{Start: 0, End: 3, Score: 0.5},
		{Start: 3, End: 6, Score: 0.5},
		{Start: 6, End: 7, Score: 0},
	})
	expect.EQ(t, collect(t, "CGCGC", 4, window.CpGFrequency), []window.Window{
		{Start: 0, End: 4, Score: 2.0 / 3},
		{Start: 4, End: 5, Score: 0},
	})
}

func TestIteratorBoundaries(t *testing.T) {
	// Sequence length equal to the window size.
	expect.EQ(t, collect(t, "ACGT", 4, window.CGContent), []window.Window{
		{Start: 0, End: 4, Score: 0.5},
	})
	// Window larger than the sequence.
	expect.EQ(t, collect(t, "ACGT", 100, window.CGContent), []window.Window{
		{Start: 0, End: 4, Score: 0.5},
	})
	expect.EQ(t, len(collect(t, "", 10, window.CGContent)), 0)
}

func TestIteratorExhausted(t *testing.T) {
	it, err := window.NewIterator([]byte("ACGT"), 2, window.CGContent)
	assert.NoError(t, err)
	expect.True(t, it.Scan())
	expect.True(t, it.Scan())
	expect.False(t, it.Scan())
	expect.False(t, it.Scan())
	expect.EQ(t, it.Window(), window.Window{Start: 2, End: 4, Score: 0.5})
}

func TestIteratorInvalidWindowSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := window.NewIterator([]byte("ACGT"), size, window.CGContent)
		expect.True(t, errors.Is(errors.Invalid, err), "size=%d, err=%v", size, err)
	}
}

func TestIteratorInvalidKind(t *testing.T) {
	for _, kind := range []window.Kind{window.Kind(5), window.Kind(-1)} {
		it, err := window.NewIterator([]byte("ACGT"), 2, kind)
		expect.True(t, errors.Is(errors.Invalid, err), "kind=%d, err=%v", kind, err)
		expect.True(t, it == nil)
	}
	expect.True(t, errors.Is(errors.Invalid, window.Opts{WindowSize: 2, Kind: window.Kind(5)}.Validate()))
}

// TestIteratorCoverage checks that the windows tile [0, L) in order, that all
// but the last window have the full size, and that the scores match the
// scorer applied to the window's bases.
func TestIteratorCoverage(t *testing.T) {
	const bases = "ACGTN"
	r := rand.New(rand.NewSource(0))
	for length := 0; length < 64; length++ {
		seq := make([]byte, length)
		for i := range seq {
			seq[i] = bases[r.Intn(len(bases))]
		}
		for size := 1; size <= 20; size++ {
			for _, kind := range []window.Kind{window.CGContent, window.CpGFrequency} {
				windows := collect(t, string(seq), size, kind)
				assert.EQ(t, len(windows), window.NumWindows(length, size), "length=%d size=%d", length, size)
				assert.EQ(t, len(windows), (length+size-1)/size)
				pos := 0
				for i, w := range windows {
					expect.EQ(t, w.Start, pos)
					expect.True(t, w.Start < length)
					if i < len(windows)-1 {
						expect.EQ(t, w.Len(), size)
					} else if length%size != 0 {
						expect.EQ(t, w.Len(), length%size)
					} else {
						expect.EQ(t, w.Len(), size)
					}
					expect.EQ(t, w.Score, kind.Scorer().Score(seq[w.Start:w.End]))
					pos = w.End
				}
				expect.EQ(t, pos, length)
			}
		}
	}
}

func TestNumWindows(t *testing.T) {
	expect.EQ(t, window.NumWindows(0, 3), 0)
	expect.EQ(t, window.NumWindows(1, 3), 1)
	expect.EQ(t, window.NumWindows(3, 3), 1)
	expect.EQ(t, window.NumWindows(4, 3), 2)
	expect.EQ(t, window.NumWindows(6, 3), 2)
	expect.EQ(t, window.NumWindows(6, 0), 0)
	expect.EQ(t, window.NumWindows(6, -2), 0)
}
