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

package feature

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/mtext"
)

// insert expands a block reference.  The geometry of the block entities is
// mapped from block coordinates to the coordinates of the INSERT.
//
// Nothing is returned if depth has reached the maximal nesting depth, or if
// the block is not defined.
func (c *Converter) insert(e *dxf.Insert, depth int) []Feature {
	if depth >= c.opt.MaxBlockInsertionDepth {
		return nil
	}
	block := c.doc.Blocks[e.BlockName]
	if block == nil {
		return nil
	}

	var inner []Feature
	for _, be := range block.Entities {
		for _, f := range c.Entity(be, depth+1) {
			if f.Properties.BlockName == "" {
				f.Properties.BlockName = block.Name
			}
			inner = append(inner, f)
		}
	}

	cols, rows := gridSize(e.Columns, e.Rows)
	var res []Feature
	for row := range rows {
		for col := range cols {
			t := newInsertTransform(e, block, col, row, !c.opt.Flatten)
			for _, f := range inner {
				res = append(res, Feature{
					Geometry:   f.Geometry.transform(t.apply),
					Properties: f.Properties,
				})
			}
		}
	}

	for _, a := range e.Attributes {
		if !a.Visible && !c.opt.IncludeInvisible {
			continue
		}
		p := Properties{
			Text:         textProperties(mtext.Decode(a.Value), a.Height, a.Rotation, a.Style),
			BlockName:    block.Name,
			AttributeTag: a.Tag,
		}
		res = append(res, Feature{
			Geometry:   Point(c.coord(a.Insertion)),
			Properties: p,
		})
	}
	return res
}

// maxGridCells limits the number of copies of a block made for a single
// MINSERT entity.
const maxGridCells = 1 << 10

// gridSize returns the number of columns and rows of a block array.
func gridSize(cols, rows int) (int, int) {
	cols = min(max(cols, 1), maxGridCells)
	rows = min(max(rows, 1), maxGridCells/cols)
	return cols, rows
}

// insertTransform maps block coordinates to the coordinate system of an
// INSERT entity.
type insertTransform struct {
	m          matrix.Matrix
	scaleZ     float64
	insertionZ float64
	include3D  bool
}

// newInsertTransform returns the transformation for the copy of the block
// in the given column and row of the INSERT.  The block base point is moved
// to the origin, the result is scaled, shifted to its grid cell, rotated
// and finally moved to the insertion point.
func newInsertTransform(e *dxf.Insert, block *dxf.Block, col, row int, include3D bool) *insertTransform {
	m := matrix.Translate(-block.BasePoint.X, -block.BasePoint.Y).
		Mul(matrix.Scale(e.ScaleX, e.ScaleY))
	if col != 0 || row != 0 {
		m = m.Mul(matrix.Translate(float64(col)*e.ColumnSpacing, float64(row)*e.RowSpacing))
	}
	if e.Rotation != 0 {
		m = m.Mul(matrix.RotateDeg(e.Rotation))
	}
	m = m.Mul(matrix.Translate(e.Insertion.X, e.Insertion.Y))

	return &insertTransform{
		m:          m,
		scaleZ:     e.ScaleZ,
		insertionZ: e.Insertion.Z,
		include3D:  include3D,
	}
}

func (t *insertTransform) apply(p Coord) Coord {
	x, y := t.m.Apply(p[0], p[1])
	if t.include3D && p.Is3D() {
		return Coord{x, y, p[2]*t.scaleZ + t.insertionZ}
	}
	return Coord{x, y}
}
