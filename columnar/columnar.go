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

// Package columnar groups the features of a DXF drawing into tables by
// geometry kind.
//
// There is one table each for points, lines and polygons.  Each table
// stores its data column by column: the geometry column uses a nested list
// layout with all vertex coordinates in a single slice, and every entity
// property is stored in a separate slice with one element per row.
// The cad_params column preserves the parametric description of the
// original entity, for example the center and radius of a circle, which is
// otherwise lost by the tessellation.
package columnar

import (
	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/feature"
)

// Kind is the geometry kind stored in a [Table].
type Kind int

// These are the possible values of [Kind].
const (
	Points Kind = iota
	Lines
	Polygons
)

func (k Kind) String() string {
	switch k {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Polygons:
		return "polygons"
	default:
		return "unknown"
	}
}

// ColumnNames lists the columns of every table, in order.
var ColumnNames = []string{
	"geometry",
	"entity_type",
	"layer",
	"color",
	"color_index",
	"handle",
	"line_type",
	"line_weight",
	"cad_params",
}

// Tables holds the three geometry tables of a drawing.
type Tables struct {
	Points   *Table
	Lines    *Table
	Polygons *Table
}

// Table holds the features of one geometry kind.
//
// Coordinates are stored interleaved in Coords, with Dim values per vertex.
// If some vertices of the table are 3D, all vertices are stored with three
// components and z=0 is used for the 2D vertices.
//
// For points, row i uses vertex i.  For lines, row i uses the vertices
// VertexOffsets[i] to VertexOffsets[i+1]-1.  For polygons, row i uses the
// rings RingOffsets[i] to RingOffsets[i+1]-1, and ring j uses the vertices
// VertexOffsets[j] to VertexOffsets[j+1]-1.
type Table struct {
	Kind Kind
	Dim  int

	Coords        []float64
	VertexOffsets []int
	RingOffsets   []int

	EntityType []string
	Layer      []string
	Color      []string
	ColorIndex []int
	Handle     []string // empty if unset
	LineType   []string // empty if unset
	LineWeight []*int
	CADParams  []string
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.EntityType)
}

// Geometry reconstructs the geometry of row i.
// All positions have Dim components.
func (t *Table) Geometry(i int) feature.Geometry {
	switch t.Kind {
	case Points:
		return feature.Point(t.vertex(i))
	case Lines:
		return feature.LineString(t.ring(i))
	default:
		poly := make(feature.Polygon, 0, t.RingOffsets[i+1]-t.RingOffsets[i])
		for j := t.RingOffsets[i]; j < t.RingOffsets[i+1]; j++ {
			poly = append(poly, t.ring(j))
		}
		return poly
	}
}

func (t *Table) ring(j int) []feature.Coord {
	start, end := t.VertexOffsets[j], t.VertexOffsets[j+1]
	res := make([]feature.Coord, 0, end-start)
	for k := start; k < end; k++ {
		res = append(res, t.vertex(k))
	}
	return res
}

func (t *Table) vertex(k int) feature.Coord {
	return append(feature.Coord(nil), t.Coords[k*t.Dim:(k+1)*t.Dim]...)
}

// Convert converts the entities of a document and groups the resulting
// features by geometry kind.  If opt is nil, [feature.DefaultOptions] are
// used.
//
// Every feature gives one row, except that each polygon of a MultiPolygon
// is stored in a separate row.  Features produced by expanding a block
// reference carry the properties and the cad_params of the top-level INSERT
// entity.
func Convert(doc *dxf.Document, opt *feature.Options) *Tables {
	conv := feature.NewConverter(doc, opt)

	points := &builder{kind: Points}
	lines := &builder{kind: Lines}
	polygons := &builder{kind: Polygons}
	for _, e := range doc.Entities {
		if !conv.Include(e) {
			continue
		}
		ff := conv.Convert(e)
		if len(ff) == 0 {
			continue
		}
		params := CADParams(e)
		for _, f := range ff {
			switch g := f.Geometry.(type) {
			case feature.Point:
				points.add([][]feature.Coord{{feature.Coord(g)}}, f.Properties, params)
			case feature.LineString:
				lines.add([][]feature.Coord{g}, f.Properties, params)
			case feature.Polygon:
				polygons.add(g, f.Properties, params)
			case feature.MultiPolygon:
				for _, poly := range g {
					polygons.add(poly, f.Properties, params)
				}
			}
		}
	}

	return &Tables{
		Points:   points.table(),
		Lines:    lines.table(),
		Polygons: polygons.table(),
	}
}

type row struct {
	rings  [][]feature.Coord
	props  feature.Properties
	params string
}

// builder collects the rows of a table.  The table is only built once all
// rows are known, since the dimension depends on all vertices.
type builder struct {
	kind Kind
	rows []row
}

func (b *builder) add(rings [][]feature.Coord, props feature.Properties, params string) {
	b.rows = append(b.rows, row{rings: rings, props: props, params: params})
}

func (b *builder) table() *Table {
	t := &Table{
		Kind: b.kind,
		Dim:  2,
	}
	numVertices := 0
	numRings := 0
	for _, r := range b.rows {
		numRings += len(r.rings)
		for _, ring := range r.rings {
			numVertices += len(ring)
			for _, c := range ring {
				if len(c) > 2 {
					t.Dim = 3
				}
			}
		}
	}

	t.Coords = make([]float64, 0, numVertices*t.Dim)
	switch b.kind {
	case Lines:
		t.VertexOffsets = make([]int, 1, len(b.rows)+1)
	case Polygons:
		t.VertexOffsets = make([]int, 1, numRings+1)
		t.RingOffsets = make([]int, 1, len(b.rows)+1)
	}

	n := len(b.rows)
	t.EntityType = make([]string, n)
	t.Layer = make([]string, n)
	t.Color = make([]string, n)
	t.ColorIndex = make([]int, n)
	t.Handle = make([]string, n)
	t.LineType = make([]string, n)
	t.LineWeight = make([]*int, n)
	t.CADParams = make([]string, n)

	for i, r := range b.rows {
		for _, ring := range r.rings {
			for _, c := range ring {
				for d := range t.Dim {
					var x float64
					if d < len(c) {
						x = c[d]
					}
					t.Coords = append(t.Coords, x)
				}
			}
			if b.kind != Points {
				t.VertexOffsets = append(t.VertexOffsets, len(t.Coords)/t.Dim)
			}
		}
		if b.kind == Polygons {
			t.RingOffsets = append(t.RingOffsets, len(t.VertexOffsets)-1)
		}

		p := &r.props
		t.EntityType[i] = p.EntityType
		t.Layer[i] = p.Layer
		t.Color[i] = p.Color
		t.ColorIndex[i] = p.ColorIndex
		t.Handle[i] = p.Handle
		t.LineType[i] = p.LineType
		t.LineWeight[i] = p.LineWeight
		t.CADParams[i] = r.params
	}
	return t
}
