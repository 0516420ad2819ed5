// seehuhn.de/go/dxf - a library for reading DXF drawing files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Dxf-inspect shows the structure of a DXF file.
//
// The keys given after the file name select a part of the file, for
// example "blocks DOOR 0" shows the first entity of the block DOOR.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/dxf/tools/dxf-inspect/traverse"
	"seehuhn.de/go/dxf/tools/internal/buildinfo"
	"seehuhn.de/go/dxf/tools/internal/profile"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dxf-inspect \u2014 show the structure of a DXF file\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("dxf-inspect"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect [options] <file.dxf> [key...]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.dxf   DXF file to inspect, or - for stdin\n")
		fmt.Fprintf(os.Stderr, "  key        path to the part of the file to show\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect plan.dxf\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect plan.dxf layers\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect plan.dxf entities 12 features\n")
		fmt.Fprintf(os.Stderr, "  dxf-inspect plan.dxf blocks DOOR 0\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string, keys []string) (err error) {
	prof, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := prof.Stop(); err == nil {
			err = stopErr
		}
	}()

	ctx, err := traverse.Root(fname)
	if err != nil {
		return err
	}
	for _, key := range keys {
		next, err := traverse.Walk(ctx, key)
		var keyErr *traverse.KeyError
		if errors.As(err, &keyErr) {
			fmt.Fprintln(os.Stderr, "available keys:")
			for _, step := range ctx.Next() {
				fmt.Fprintln(os.Stderr, "  "+step.Desc)
			}
		}
		if err != nil {
			return err
		}
		ctx = next
	}
	return ctx.Show(os.Stdout)
}
