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
	"github.com/grailbio/base/errors"
)

// Kind selects the scoring function applied to each window.
type Kind int

const (
	// CGContent scores a window by the fraction of its bases that are 'C' or
	// 'G'.
	CGContent Kind = iota
	// CpGFrequency scores a window by the fraction of its adjacent base pairs
	// that are "CG".
	CpGFrequency
)

var kindNames = [...]string{
	CGContent:    "cg",
	CpGFrequency: "cpg",
}

// String returns the subcommand name of the kind, "cg" or "cpg".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k == CGContent || k == CpGFrequency
}

func validateKind(k Kind) error {
	if !k.valid() {
		return errors.E(errors.Invalid, "unknown score kind:", k.String())
	}
	return nil
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, errors.E(errors.Invalid, "unknown score kind:", s)
}

// Scorer maps the bases of a window to a score.
type Scorer interface {
	Score(seq []byte) float64
}

// Scorer returns the Scorer for k.  It panics on a Kind outside the
// enumeration; NewIterator and Opts.Validate reject such kinds with an error.
func (k Kind) Scorer() Scorer {
	switch k {
	case CGContent:
		return cgContent{}
	case CpGFrequency:
		return cpgFrequency{}
	}
	panic(k)
}

type cgContent struct{}

// Score returns 0 for an empty window.
func (cgContent) Score(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	n := 0
	for _, b := range seq {
		if b == 'C' || b == 'G' {
			n++
		}
	}
	return float64(n) / float64(len(seq))
}

type cpgFrequency struct{}

// Score returns 0 for a window with fewer than two bases, since it has no
// adjacent pairs.
func (cpgFrequency) Score(seq []byte) float64 {
	if len(seq) < 2 {
		return 0
	}
	n := 0
	for i := 0; i < len(seq)-1; i++ {
		if seq[i] == 'C' && seq[i+1] == 'G' {
			n++
		}
	}
	return float64(n) / float64(len(seq)-1)
}
