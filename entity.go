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

package dxf

import "seehuhn.de/go/geom/vec"

// Vec3 is a point in drawing coordinates.
//
// DXF files often omit the z coordinate.  A point with Z == 0 is treated as
// two-dimensional.
type Vec3 struct {
	X, Y, Z float64
}

// Is3D reports whether the point has a non-zero z coordinate.
func (p Vec3) Is3D() bool {
	return p.Z != 0
}

// Vec2 returns the projection of p onto the xy-plane.
func (p Vec3) Vec2() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Entity is a graphical object from the ENTITIES section or from a block
// definition.
//
// The set of types implementing Entity is closed.  Use a type switch to
// access the entity-specific fields.
type Entity interface {
	// Type returns the DXF entity type name, for example "LINE" or "3DFACE".
	Type() string

	// Common returns the properties shared by all entities.
	Common() *Base

	isEntity()
}

// Base holds the properties shared by all entity types.
type Base struct {
	Handle string
	Layer  string

	// ColorIndex is the AutoCAD Color Index of the entity, if given.
	// The value 256 means "by layer", 0 means "by block".
	ColorIndex *int

	LineType   string
	LineWeight *int
	Visible    bool
}

// Common implements the [Entity] interface.
func (b *Base) Common() *Base {
	return b
}

func (b *Base) isEntity() {}

// Line is a LINE entity.
type Line struct {
	Base
	Start, End Vec3
}

// Point is a POINT entity.
type Point struct {
	Base
	Position Vec3
}

// Circle is a CIRCLE entity.
type Circle struct {
	Base
	Center Vec3
	Radius float64
}

// Arc is an ARC entity.  The arc runs counter-clockwise from StartAngle to
// EndAngle.  Both angles are in degrees.
type Arc struct {
	Base
	Center     Vec3
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Ellipse is an ELLIPSE entity.
//
// MajorAxis is the end point of the major axis, relative to Center.
// StartParam and EndParam are the parametric angles of the ellipse
// arc, in radians.
type Ellipse struct {
	Base
	Center     Vec3
	MajorAxis  Vec3
	Ratio      float64
	StartParam float64
	EndParam   float64
}

// Vertex is a polyline vertex.
//
// Bulge describes the segment from this vertex to the next one: zero for a
// straight segment, otherwise the tangent of a quarter of the included angle
// of a circular arc.  Positive values give counter-clockwise arcs.
type Vertex struct {
	Vec3
	Bulge float64
	Flags int
}

// LWPolyline is an LWPOLYLINE entity.
type LWPolyline struct {
	Base
	Vertices  []Vertex
	Closed    bool
	Flags     int
	Elevation float64
}

// Polyline is a POLYLINE entity, together with its VERTEX records.
type Polyline struct {
	Base
	Vertices []Vertex
	Closed   bool
	Flags    int
}

// Spline is a SPLINE entity.
type Spline struct {
	Base
	Degree        int
	Flags         int
	Closed        bool
	ControlPoints []Vec3
	FitPoints     []Vec3
	Knots         []float64
	Weights       []float64
}

// Text is a single-line TEXT entity.
type Text struct {
	Base
	Insertion Vec3
	Height    float64
	Value     string
	Rotation  float64
	Style     string
}

// MText is an MTEXT entity.  Value contains the raw text including the
// inline formatting codes.
type MText struct {
	Base
	Insertion Vec3
	Height    float64
	Value     string
	Rotation  float64
	Width     float64
	Style     string
}

// Attrib is an ATTRIB record following an INSERT.
type Attrib struct {
	Base
	Tag       string
	Value     string
	Insertion Vec3
	Height    float64
	Rotation  float64
	Style     string
}

// Insert is an INSERT entity, a reference to a block definition.
//
// If Columns or Rows is greater than one, the block is repeated on a
// rectangular grid (MINSERT).
type Insert struct {
	Base
	BlockName              string
	Insertion              Vec3
	ScaleX, ScaleY, ScaleZ float64
	Rotation               float64 // degrees

	Columns, Rows             int
	ColumnSpacing, RowSpacing float64
	Attributes                []*Attrib
}

// Face3D is a 3DFACE entity.
type Face3D struct {
	Base
	Vertices []Vec3
}

// Solid is a SOLID entity.  The vertices are stored in file order,
// which for four vertices is 1, 2, 4, 3 around the outline.
type Solid struct {
	Base
	Vertices []Vec3
}

// Hatch is a HATCH entity.
type Hatch struct {
	Base
	Pattern string
	Solid   bool
	Paths   []*BoundaryPath
}

// Dimension is a DIMENSION entity.
type Dimension struct {
	Base
	Definition  Vec3
	TextMid     Vec3
	Linear      *Vec3
	DimType     int
	Text        string
	BlockName   string
	Style       string
	Measurement *float64
}

// Type implements the [Entity] interface.
func (*Line) Type() string { return "LINE" }

// Type implements the [Entity] interface.
func (*Point) Type() string { return "POINT" }

// Type implements the [Entity] interface.
func (*Circle) Type() string { return "CIRCLE" }

// Type implements the [Entity] interface.
func (*Arc) Type() string { return "ARC" }

// Type implements the [Entity] interface.
func (*Ellipse) Type() string { return "ELLIPSE" }

// Type implements the [Entity] interface.
func (*LWPolyline) Type() string { return "LWPOLYLINE" }

// Type implements the [Entity] interface.
func (*Polyline) Type() string { return "POLYLINE" }

// Type implements the [Entity] interface.
func (*Spline) Type() string { return "SPLINE" }

// Type implements the [Entity] interface.
func (*Text) Type() string { return "TEXT" }

// Type implements the [Entity] interface.
func (*MText) Type() string { return "MTEXT" }

// Type implements the [Entity] interface.
func (*Attrib) Type() string { return "ATTRIB" }

// Type implements the [Entity] interface.
func (*Insert) Type() string { return "INSERT" }

// Type implements the [Entity] interface.
func (*Face3D) Type() string { return "3DFACE" }

// Type implements the [Entity] interface.
func (*Solid) Type() string { return "SOLID" }

// Type implements the [Entity] interface.
func (*Hatch) Type() string { return "HATCH" }

// Type implements the [Entity] interface.
func (*Dimension) Type() string { return "DIMENSION" }
