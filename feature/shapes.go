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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/curve"
)

// fullEllipseTolerance is the maximal deviation of the parameter range of
// an ELLIPSE from a full turn, for the ellipse to be treated as closed.
const fullEllipseTolerance = 1e-6

// coord converts a point to a feature position.  The z component is kept if
// it is non-zero and the output is not flattened.
func (c *Converter) coord(p dxf.Vec3) Coord {
	if !c.opt.Flatten && p.Is3D() {
		return Coord{p.X, p.Y, p.Z}
	}
	return Coord{p.X, p.Y}
}

// coords converts points in the plane at height z.
func (c *Converter) coords(pts []vec.Vec2, z float64) []Coord {
	res := make([]Coord, len(pts))
	for i, p := range pts {
		res[i] = c.coord(dxf.Vec3{X: p.X, Y: p.Y, Z: z})
	}
	return res
}

func (c *Converter) circle(e *dxf.Circle) Geometry {
	ring := curve.Circle(e.Center.Vec2(), e.Radius, c.opt.CircleSegments)
	return Polygon{c.coords(ring, e.Center.Z)}
}

func (c *Converter) arc(e *dxf.Arc) Geometry {
	pts := curve.Arc(e.Center.Vec2(), e.Radius, e.StartAngle, e.EndAngle, c.opt.CircleSegments)
	return LineString(c.coords(pts, e.Center.Z))
}

func (c *Converter) ellipse(e *dxf.Ellipse) Geometry {
	pts := curve.Ellipse(e.Center.Vec2(), e.MajorAxis.Vec2(), e.Ratio,
		e.StartParam, e.EndParam, c.opt.CircleSegments)
	cc := c.coords(pts, e.Center.Z)

	span := e.EndParam - e.StartParam
	if math.Abs(span-2*math.Pi) < fullEllipseTolerance {
		cc[len(cc)-1] = append(Coord(nil), cc[0]...)
		return Polygon{cc}
	}
	return LineString(cc)
}

func (c *Converter) lwPolyline(e *dxf.LWPolyline) Geometry {
	vv := e.Vertices
	if e.Elevation != 0 {
		vv = make([]dxf.Vertex, len(e.Vertices))
		for i, v := range e.Vertices {
			v.Z = e.Elevation
			vv[i] = v
		}
	}
	return c.path(vv, e.Closed)
}

func (c *Converter) polyline(e *dxf.Polyline) Geometry {
	vv := make([]dxf.Vertex, 0, len(e.Vertices))
	for _, v := range e.Vertices {
		if skipVertex(v.Flags) {
			continue
		}
		vv = append(vv, v)
	}
	return c.path(vv, e.Closed)
}

// skipVertex reports whether a POLYLINE vertex does not lie on the
// polyline.  This is the case for spline frame control points, and for the
// face records of polyface meshes.
func skipVertex(flags int) bool {
	const (
		splineFrame = 16
		meshVertex  = 64
		polyface    = 128
	)
	return flags&splineFrame != 0 || flags&polyface != 0 && flags&meshVertex == 0
}

// path converts polyline vertices to a LineString, or to a Polygon if the
// polyline is closed.  Bulges are approximated by circular arcs.
func (c *Converter) path(vv []dxf.Vertex, closed bool) Geometry {
	ring := c.bulgePath(vv, closed)
	if closed {
		return Polygon{closeRing(ring)}
	}
	return LineString(ring)
}

// bulgePath converts polyline vertices to positions, adding the arc points
// for vertices with a non-zero bulge.  The bulge of the last vertex leads
// back to the first vertex if the path is closed, and is ignored otherwise.
func (c *Converter) bulgePath(vv []dxf.Vertex, closed bool) []Coord {
	var res []Coord
	n := len(vv)
	for i, v := range vv {
		res = append(res, c.coord(v.Vec3))
		if v.Bulge == 0 || i == n-1 && !closed {
			continue
		}
		next := (i + 1) % n
		if next == i {
			continue
		}
		arc := curve.Bulge(v.Vec2(), vv[next].Vec2(), v.Bulge, c.opt.CircleSegments)
		res = append(res, c.coords(arc, v.Z)...)
	}
	return res
}

func (c *Converter) spline(e *dxf.Spline) Geometry {
	if len(e.ControlPoints) == 0 {
		res := make(LineString, len(e.FitPoints))
		for i, p := range e.FitPoints {
			res[i] = c.coord(p)
		}
		return res
	}

	s := &curve.BSpline{
		Degree:  e.Degree,
		Control: make([][3]float64, len(e.ControlPoints)),
		Knots:   e.Knots,
		Weights: e.Weights,
	}
	is3D := false
	for i, p := range e.ControlPoints {
		s.Control[i] = [3]float64{p.X, p.Y, p.Z}
		is3D = is3D || p.Is3D()
	}
	is3D = is3D && !c.opt.Flatten

	pts := s.Points(c.opt.SplineSegmentsPerSpan)
	res := make(LineString, len(pts))
	for i, p := range pts {
		if is3D {
			res[i] = Coord{p[0], p[1], p[2]}
		} else {
			res[i] = Coord{p[0], p[1]}
		}
	}
	return res
}

func textProperties(value string, height, rotation float64, style string) *TextProperties {
	return &TextProperties{
		Value:    value,
		Height:   height,
		Rotation: rotation,
		Style:    style,
	}
}

// face converts the vertices of a 3DFACE or SOLID to a closed ring.
func (c *Converter) face(vv []dxf.Vec3) Geometry {
	ring := make([]Coord, 0, len(vv)+1)
	for _, v := range vv {
		ring = append(ring, c.coord(v))
	}
	if len(ring) > 0 {
		ring = append(ring, append(Coord(nil), ring[0]...))
	}
	return Polygon{ring}
}

func (c *Converter) hatch(e *dxf.Hatch) Geometry {
	var rings [][]Coord
	for _, path := range e.Paths {
		ring := c.boundary(path)
		if len(ring) == 0 {
			continue
		}
		rings = append(rings, closeRing(ring))
	}

	switch len(rings) {
	case 0:
		return Polygon{{}}
	case 1:
		return Polygon{rings[0]}
	default:
		res := make(MultiPolygon, len(rings))
		for i, ring := range rings {
			res[i] = Polygon{ring}
		}
		return res
	}
}

// boundary converts a hatch boundary path to a ring of 2D positions.
// The ring is not closed.
func (c *Converter) boundary(path *dxf.BoundaryPath) []Coord {
	if path.Kind == dxf.PathPolyline {
		vv := make([]dxf.Vertex, len(path.Vertices))
		for i, v := range path.Vertices {
			v.Z = 0
			vv[i] = v
		}
		return c.bulgePath(vv, true)
	}

	const deg = math.Pi / 180
	seg := c.opt.CircleSegments
	var pts []vec.Vec2
	for _, edge := range path.Edges {
		switch edge := edge.(type) {
		case *dxf.LineEdge:
			pts = append(pts, edge.Start)
		case *dxf.ArcEdge:
			pts = append(pts, curve.ArcRadians(edge.Center, edge.Radius,
				edge.StartAngle*deg, edge.EndAngle*deg, edge.CCW, seg)...)
		case *dxf.EllipseEdge:
			pts = append(pts, curve.EllipseArc(edge.Center, edge.MajorAxis, edge.Ratio,
				edge.StartAngle*deg, edge.EndAngle*deg, edge.CCW, seg)...)
		}
	}
	res := make([]Coord, len(pts))
	for i, p := range pts {
		res[i] = Coord{p.X, p.Y}
	}
	return res
}
