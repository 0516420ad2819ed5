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

package traverse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/columnar"
	"seehuhn.de/go/dxf/feature"
	"seehuhn.de/go/dxf/geojson"
)

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

type blocksCtx struct {
	doc  *dxf.Document
	conv *feature.Converter
}

func (c *blocksCtx) Next() []Step {
	return []Step{
		{
			Match: regexp.MustCompile(`^.+$`),
			Desc:  "block name",
			Next: func(key string) (Context, error) {
				b := c.doc.Blocks[key]
				if b == nil {
					return nil, &KeyError{Key: key, Ctx: "block name"}
				}
				return &entityListCtx{entities: b.Entities, conv: c.conv}, nil
			},
		},
	}
}

func (c *blocksCtx) Show(w io.Writer) error {
	width := lineWidth()
	for _, name := range sortedKeys(c.doc.Blocks) {
		b := c.doc.Blocks[name]
		line := fmt.Sprintf("%-24s base=(%g, %g) entities=%d", b.Name, b.BasePoint.X, b.BasePoint.Y, len(b.Entities))
		fmt.Fprintln(w, clip(line, width))
	}
	return nil
}

type entityListCtx struct {
	entities []dxf.Entity
	conv     *feature.Converter
}

func (c *entityListCtx) Next() []Step {
	return []Step{
		{
			Match: intRegexp,
			Desc:  "entity index",
			Next: func(key string) (Context, error) {
				i, err := index(key, len(c.entities), "entity index")
				if err != nil {
					return nil, err
				}
				return &entityCtx{e: c.entities[i], conv: c.conv}, nil
			},
		},
	}
}

func (c *entityListCtx) Show(w io.Writer) error {
	width := lineWidth()
	for i, e := range c.entities {
		base := e.Common()
		line := fmt.Sprintf("%5d %-10s %-16s %s", i, e.Type(), base.Layer, base.Handle)
		fmt.Fprintln(w, clip(line, width))
	}
	return nil
}

type entityCtx struct {
	e    dxf.Entity
	conv *feature.Converter
}

func (c *entityCtx) Next() []Step {
	return []Step{
		{
			Match: regexp.MustCompile(`^features$`),
			Desc:  "`features`",
			Next: func(key string) (Context, error) {
				return &featureListCtx{features: c.conv.Convert(c.e)}, nil
			},
		},
	}
}

func (c *entityCtx) Show(w io.Writer) error {
	p := c.conv.Properties(c.e)
	fmt.Fprintln(w, "type:", p.EntityType)
	fmt.Fprintln(w, "layer:", p.Layer)
	fmt.Fprintf(w, "color: %d (%s)\n", p.ColorIndex, p.Color)
	if p.Handle != "" {
		fmt.Fprintln(w, "handle:", p.Handle)
	}
	if p.LineType != "" {
		fmt.Fprintln(w, "line type:", p.LineType)
	}
	if p.LineWeight != nil {
		fmt.Fprintln(w, "line weight:", *p.LineWeight)
	}
	if !c.e.Common().Visible {
		fmt.Fprintln(w, "invisible")
	}

	buf := &bytes.Buffer{}
	err := json.Indent(buf, []byte(columnar.CADParams(c.e)), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "parameters:", buf.String())
	return nil
}

type featureListCtx struct {
	features []feature.Feature
}

func (c *featureListCtx) Next() []Step {
	return []Step{
		{
			Match: intRegexp,
			Desc:  "feature index",
			Next: func(key string) (Context, error) {
				i, err := index(key, len(c.features), "feature index")
				if err != nil {
					return nil, err
				}
				return &featureCtx{f: c.features[i]}, nil
			},
		},
	}
}

func (c *featureListCtx) Show(w io.Writer) error {
	width := lineWidth()
	count := make(map[string]int)
	for i, f := range c.features {
		typ := "none"
		n := 0
		if f.Geometry != nil {
			typ = f.Geometry.Type()
			for range f.Geometry.Coords() {
				n++
			}
		}
		count[typ]++
		line := fmt.Sprintf("%5d %-12s %6d %-10s %-16s %s",
			i, typ, n, f.Properties.EntityType, f.Properties.Layer, f.Properties.Color)
		fmt.Fprintln(w, clip(line, width))
	}

	fmt.Fprintln(w)
	for _, typ := range sortedKeys(count) {
		fmt.Fprintf(w, "%s: %d\n", typ, count[typ])
	}
	if len(c.features) > 0 {
		b := feature.Bounds(c.features)
		fmt.Fprintf(w, "bounds: [%g %g %g %g]\n", b.LLx, b.LLy, b.URx, b.URy)
	}
	return nil
}

type featureCtx struct {
	f feature.Feature
}

func (c *featureCtx) Next() []Step {
	return nil
}

func (c *featureCtx) Show(w io.Writer) error {
	data, err := json.MarshalIndent(geojson.Feature{Feature: c.f}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
