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

// Command bio-cgwindow splits every sequence of a FASTA file into fixed-size,
// non-overlapping windows and reports a composition score for each window as
// a bedGraph record on stdout.
//
// Subcommands:
//
//	cg   fraction of bases in the window that are C or G
//	cpg  fraction of adjacent base pairs in the window that are CG
//
// Both take a required -window-size (or -w) flag.  The FASTA input is read
// from stdin unless a path is given; gzip and BGZF input is decompressed
// automatically.  The last window of a sequence is shorter than the window
// size when the sequence length is not a multiple of it.  A window too short
// to hold a base pair scores 0 under cpg.
//
// Usage:
//
//	bio-cgwindow cg -w 1000 < ref.fa > ref.cg.bedgraph
package main
