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

// Package cmd implements the bio-cgwindow command tree.
package cmd

import (
	"context"
	"fmt"
	golog "log"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/cgwindow/window"
	"v.io/x/lib/cmdline"
)

const argsLong = `
[fasta] is the path of the FASTA (or FASTQ) file to read, optionally gzip-
or BGZF-compressed.  If it is omitted or "-", the input is read from stdin.
`

func newCmdScore(ctx context.Context, kind window.Kind, short string) *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     kind.String(),
		Short:    short,
		ArgsName: "[fasta]",
		ArgsLong: argsLong,
	}
	var windowSize int
	cmd.Flags.IntVar(&windowSize, "window-size", 0, "Window size in bases. Required; must be positive")
	cmd.Flags.IntVar(&windowSize, "w", 0, "Shorthand for -window-size")
	outPath := cmd.Flags.String("out", "", `Output bedGraph path. Defaults to stdout.
A path ending in .gz is BGZF-compressed.`)
	format := cmd.Flags.String("format", "auto", "Input format: fasta, fastq, or auto to detect it from the first byte")
	trackName := cmd.Flags.String("track-name", "", "If set, write a bedGraph track line with this name before the records")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) > 1 {
			return fmt.Errorf("%s takes at most one input path, but got %v", kind, argv)
		}
		opts := window.Opts{
			WindowSize: windowSize,
			Kind:       kind,
			TrackName:  *trackName,
		}
		var err error
		if opts.Format, err = window.ParseFormat(*format); err != nil {
			return err
		}
		// Reject bad flags before touching the input.
		if err = opts.Validate(); err != nil {
			return err
		}
		inPath := "-"
		if len(argv) == 1 {
			inPath = argv[0]
		}
		return score(ctx, env, inPath, *outPath, opts)
	})
	return cmd
}

func newCmdRoot(ctx context.Context) *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-cgwindow",
		Short:    "Compute windowed CG content and CpG frequency of DNA sequences",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdScore(ctx, window.CGContent, "Report the fraction of C and G bases per window"),
			newCmdScore(ctx, window.CpGFrequency, "Report the fraction of CG base pairs per window"),
		},
	}
}

// Run parses the command line and runs the selected subcommand.  It exits the
// process with a nonzero status on failure.
func Run() {
	golog.SetFlags(golog.Ldate | golog.Ltime | golog.Lmicroseconds | golog.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot(vcontext.Background()))
}

func logStats(kind window.Kind, stats window.Stats) {
	log.Printf("%s: %d sequences, %d bases, %d windows", kind, stats.Sequences, stats.Bases, stats.Windows)
}
