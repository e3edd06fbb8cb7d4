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

// Package window computes nucleotide composition scores over fixed-size,
// non-overlapping windows of a sequence.
//
// A sequence of length L is split into windows [0,W), [W,2W), ..., the last
// one possibly shorter than W.  Each window is scored with either its CG
// content (fraction of bases that are 'C' or 'G') or its CpG frequency
// (fraction of adjacent base pairs that read "CG").  Run streams the scores
// for every sequence of a FASTA file as bedGraph records.
package window
