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

package cmd

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/cgwindow/window"
	"github.com/grailbio/hts/bgzf"
	"github.com/klauspost/compress/gzip"
	"v.io/x/lib/cmdline"
)

// gzipMagic starts every gzip member, including BGZF blocks.
var gzipMagic = []byte{0x1f, 0x8b}

// score runs window.Run from inPath ("-" for stdin) to outPath ("" for
// stdout).
func score(ctx context.Context, env *cmdline.Env, inPath, outPath string, opts window.Opts) (err error) {
	in := env.Stdin
	if inPath != "-" {
		var infile file.File
		if infile, err = file.Open(ctx, inPath); err != nil {
			return errors.E(err, "open sequence input", inPath)
		}
		defer file.CloseAndReport(ctx, infile, &err)
		in = infile.Reader(ctx)
	}
	if in, err = maybeDecompress(in); err != nil {
		return errors.E(err, "open sequence input", inPath)
	}

	out := env.Stdout
	if outPath != "" {
		var outfile file.File
		if outfile, err = file.Create(ctx, outPath); err != nil {
			return errors.E(err, "create bedgraph output", outPath)
		}
		defer file.CloseAndReport(ctx, outfile, &err)
		out = outfile.Writer(ctx)
		if fileio.DetermineType(outPath) == fileio.Gzip {
			bgzfw := bgzf.NewWriter(out, 1)
			// Runs before the file is closed.
			defer func() {
				if e := bgzfw.Close(); e != nil && err == nil {
					err = errors.E(e, "close bedgraph output", outPath)
				}
			}()
			out = bgzfw
		}
	}

	stats, err := window.Run(ctx, in, out, opts)
	if err != nil {
		return err
	}
	logStats(opts.Kind, stats)
	return nil
}

// maybeDecompress returns a reader that yields the decompressed contents of
// r if r starts with a gzip header, and the contents of r otherwise.
// Multi-member streams such as BGZF are read through to the end.
func maybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(magic, gzipMagic) {
		return br, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return zr, nil
}
