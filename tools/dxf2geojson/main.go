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

// Dxf2geojson converts DXF drawings to GeoJSON and related JSON formats.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/dxf/feature"
	"seehuhn.de/go/dxf/geojson"
	"seehuhn.de/go/dxf/loader"
	"seehuhn.de/go/dxf/tools/internal/buildinfo"
	"seehuhn.de/go/dxf/tools/internal/profile"
)

type config struct {
	output    string
	force     bool
	shape     string
	precision int
	bbox      bool
	indent    bool
	compact   bool

	opt *feature.Options
}

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	def := feature.DefaultOptions()
	cfg := config{opt: def}
	var entityTypes, layers string
	flag.StringVar(&cfg.output, "o", "-", "output `file`, or - for stdout")
	flag.BoolVar(&cfg.force, "f", false, "overwrite output file if it exists")
	flag.StringVar(&cfg.shape, "shape", string(loader.ShapeGeoJSONTable), "output `shape`")
	flag.IntVar(&cfg.precision, "precision", 0, "number of `digits` kept after the decimal point (0 for all)")
	flag.BoolVar(&cfg.bbox, "bbox", false, "include a bounding box in GeoJSON output")
	flag.BoolVar(&cfg.indent, "indent", false, "indent the JSON output")
	flag.BoolVar(&cfg.compact, "compact", false, "do not indent the JSON output, even on a terminal")
	flag.IntVar(&def.CircleSegments, "segments", def.CircleSegments, "number of segments for a full circle")
	flag.IntVar(&def.SplineSegmentsPerSpan, "spline-segments", def.SplineSegmentsPerSpan, "number of segments per spline knot span")
	flag.IntVar(&def.MaxBlockInsertionDepth, "max-depth", def.MaxBlockInsertionDepth, "maximal nesting depth of block references")
	flag.BoolVar(&def.NoBlockReferences, "no-blocks", false, "do not expand block references")
	flag.StringVar(&entityTypes, "types", "", "comma-separated list of entity types to convert")
	flag.StringVar(&layers, "layers", "", "comma-separated list of layers to convert")
	flag.BoolVar(&def.IncludeInvisible, "invisible", false, "include invisible entities")
	flag.BoolVar(&def.IncludeFrozenLayers, "frozen", false, "include entities on frozen layers")
	flag.BoolVar(&def.Flatten, "2d", false, "drop z coordinates")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dxf2geojson \u2014 convert DXF drawings to GeoJSON\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("dxf2geojson"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  dxf2geojson [options] <file.dxf>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.dxf   DXF file to convert, or - for stdin\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nShapes:\n")
		for _, s := range loader.Shapes {
			fmt.Fprintf(os.Stderr, "  %s\n", s)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dxf2geojson -o plan.geojson plan.dxf\n")
		fmt.Fprintf(os.Stderr, "  dxf2geojson -layers Walls,Doors -precision 3 plan.dxf\n")
		fmt.Fprintf(os.Stderr, "  dxf2geojson -shape columnar-table plan.dxf\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	def.EntityTypes = splitList(entityTypes)
	def.Layers = splitList(layers)

	if err := run(cfg, flag.Arg(0), *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, fname, cpuprofile, memprofile string) (err error) {
	prof, err := profile.Start(cpuprofile, memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := prof.Stop(); err == nil {
			err = stopErr
		}
	}()

	shape, err := loader.ParseShape(cfg.shape)
	if err != nil {
		return err
	}
	opt := &loader.Options{Shape: shape, Convert: cfg.opt}

	var table loader.Table
	if fname == "-" {
		table, err = loader.Read(os.Stdin, opt)
	} else {
		table, err = loader.Open(fname, opt)
	}
	if err != nil {
		return err
	}

	data, err := encode(table, cfg)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	indent := cfg.indent
	if cfg.output == "-" {
		indent = indent || !cfg.compact && term.IsTerminal(int(os.Stdout.Fd()))
	} else {
		if !cfg.force {
			if _, err := os.Stat(cfg.output); !os.IsNotExist(err) {
				return fmt.Errorf("output file %q already exists", cfg.output)
			}
		}
		fd, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer fd.Close()
		out = fd
	}

	if indent {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}

// encode converts a loaded table to JSON.
func encode(table loader.Table, cfg config) ([]byte, error) {
	switch table := table.(type) {
	case *loader.GeoJSONTable:
		return json.Marshal(geojson.FeatureCollection{
			Features:  table.Features,
			Precision: cfg.precision,
			BBox:      cfg.bbox,
		})
	case *loader.ObjectRowTable:
		rows := make([]geojson.Feature, len(table.Data))
		for i, f := range table.Data {
			rows[i] = geojson.Feature{Feature: f, Precision: cfg.precision}
		}
		return json.Marshal(rows)
	default:
		return json.Marshal(table)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
