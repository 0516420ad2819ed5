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

package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"seehuhn.de/go/dxf/feature"
	"seehuhn.de/go/dxf/loader"
	"seehuhn.de/go/dxf/render"
)

func main() {
	width := flag.Int("width", 1024, "image width in pixels")
	height := flag.Int("height", 0, "image height in pixels (0 to keep the aspect ratio)")
	lineWidth := flag.Float64("line", 1, "line width in pixels")
	segments := flag.Int("segments", 72, "number of segments for a full circle")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Printf("Usage: %s [options] input.dxf output.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outputFile := flag.Arg(1)

	conv := feature.DefaultOptions()
	conv.CircleSegments = *segments
	conv.Flatten = true
	t, err := loader.Open(inputFile, &loader.Options{
		Shape:   loader.ShapeObjectRowTable,
		Convert: conv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}
	features := t.(*loader.ObjectRowTable).Data

	opt := render.DefaultOptions()
	opt.Width = *width
	opt.Height = *height
	opt.LineWidth = *lineWidth
	img := render.Render(features, opt)

	out, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	err = png.Encode(out, img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully rendered %d features of %s to %s\n", len(features), inputFile, outputFile)
}
