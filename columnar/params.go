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

package columnar

import (
	"encoding/json"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dxf"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

type vertex struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z,omitempty"`
	Bulge float64 `json:"bulge,omitempty"`
}

type edge struct {
	Type       string  `json:"type"`
	Start      *point  `json:"start,omitempty"`
	End        *point  `json:"end,omitempty"`
	Center     *point  `json:"center,omitempty"`
	Radius     float64 `json:"radius,omitempty"`
	MajorAxis  *point  `json:"majorAxisEndPoint,omitempty"`
	Ratio      float64 `json:"ratio,omitempty"`
	StartAngle float64 `json:"startAngle,omitempty"`
	EndAngle   float64 `json:"endAngle,omitempty"`
	CCW        bool    `json:"counterClockwise,omitempty"`
}

type boundaryPath struct {
	Type     string   `json:"type"`
	Flags    int      `json:"flags"`
	Vertices []vertex `json:"vertices,omitempty"`
	Closed   bool     `json:"closed,omitempty"`
	Edges    []edge   `json:"edges,omitempty"`
}

// CADParams returns the parametric description of an entity, encoded as a
// JSON object.  The "type" member gives the entity type, the remaining
// members depend on the type.  For example, a circle is described as
//
//	{"center":{"x":1,"y":2},"radius":3,"type":"CIRCLE"}
func CADParams(e dxf.Entity) string {
	data, err := json.Marshal(params(e))
	if err != nil {
		// only possible for non-finite numbers, which the parser never
		// produces
		return `{"type":"` + e.Type() + `"}`
	}
	return string(data)
}

func params(e dxf.Entity) map[string]any {
	m := map[string]any{"type": e.Type()}
	switch e := e.(type) {
	case *dxf.Line:
		m["startPoint"] = xyz(e.Start)
		m["endPoint"] = xyz(e.End)
	case *dxf.Point:
		m["position"] = xyz(e.Position)
	case *dxf.Circle:
		m["center"] = xyz(e.Center)
		m["radius"] = e.Radius
	case *dxf.Arc:
		m["center"] = xyz(e.Center)
		m["radius"] = e.Radius
		m["startAngle"] = e.StartAngle
		m["endAngle"] = e.EndAngle
	case *dxf.Ellipse:
		m["center"] = xyz(e.Center)
		m["majorAxisEndPoint"] = xyz(e.MajorAxis)
		m["ratioMinorToMajor"] = e.Ratio
		m["startParameter"] = e.StartParam
		m["endParameter"] = e.EndParam
	case *dxf.Spline:
		m["degree"] = e.Degree
		m["closed"] = e.Closed
		m["controlPoints"] = xyzList(e.ControlPoints)
		m["fitPoints"] = xyzList(e.FitPoints)
		m["knots"] = nonNil(e.Knots)
		m["weights"] = nonNil(e.Weights)
	case *dxf.LWPolyline:
		m["vertices"] = vertices(e.Vertices)
		m["closed"] = e.Closed
	case *dxf.Polyline:
		m["vertices"] = vertices(e.Vertices)
		m["closed"] = e.Closed
	case *dxf.Text:
		m["insertionPoint"] = xyz(e.Insertion)
		m["height"] = e.Height
		m["text"] = e.Value
		m["rotation"] = e.Rotation
	case *dxf.MText:
		m["insertionPoint"] = xyz(e.Insertion)
		m["height"] = e.Height
		m["text"] = e.Value
		m["rotation"] = e.Rotation
	case *dxf.Insert:
		m["blockName"] = e.BlockName
		m["insertionPoint"] = xyz(e.Insertion)
		m["scaleX"] = e.ScaleX
		m["scaleY"] = e.ScaleY
		m["scaleZ"] = e.ScaleZ
		m["rotation"] = e.Rotation
		if e.Columns > 1 || e.Rows > 1 {
			m["columns"] = e.Columns
			m["rows"] = e.Rows
			m["columnSpacing"] = e.ColumnSpacing
			m["rowSpacing"] = e.RowSpacing
		}
	case *dxf.Face3D:
		m["vertices"] = xyzList(e.Vertices)
	case *dxf.Solid:
		m["vertices"] = xyzList(e.Vertices)
	case *dxf.Hatch:
		m["patternName"] = e.Pattern
		m["solid"] = e.Solid
		paths := make([]boundaryPath, len(e.Paths))
		for i, p := range e.Paths {
			paths[i] = boundary(p)
		}
		m["boundaryPaths"] = paths
	case *dxf.Dimension:
		m["definitionPoint"] = xyz(e.Definition)
		m["middleOfText"] = xyz(e.TextMid)
		m["dimensionType"] = e.DimType
	}
	return m
}

func xyz(p dxf.Vec3) point {
	return point{X: p.X, Y: p.Y, Z: p.Z}
}

func xy(p vec.Vec2) *point {
	return &point{X: p.X, Y: p.Y}
}

func xyzList(pp []dxf.Vec3) []point {
	res := make([]point, len(pp))
	for i, p := range pp {
		res[i] = xyz(p)
	}
	return res
}

func vertices(vv []dxf.Vertex) []vertex {
	res := make([]vertex, len(vv))
	for i, v := range vv {
		res[i] = vertex{X: v.X, Y: v.Y, Z: v.Z, Bulge: v.Bulge}
	}
	return res
}

func nonNil(x []float64) []float64 {
	if x == nil {
		return []float64{}
	}
	return x
}

func boundary(p *dxf.BoundaryPath) boundaryPath {
	res := boundaryPath{
		Type:  p.Kind.String(),
		Flags: p.Flags,
	}
	if p.Kind == dxf.PathPolyline {
		res.Vertices = vertices(p.Vertices)
		res.Closed = p.Closed
		return res
	}
	res.Edges = make([]edge, 0, len(p.Edges))
	for _, e := range p.Edges {
		switch e := e.(type) {
		case *dxf.LineEdge:
			res.Edges = append(res.Edges, edge{Type: "line", Start: xy(e.Start), End: xy(e.End)})
		case *dxf.ArcEdge:
			res.Edges = append(res.Edges, edge{
				Type:       "arc",
				Center:     xy(e.Center),
				Radius:     e.Radius,
				StartAngle: e.StartAngle,
				EndAngle:   e.EndAngle,
				CCW:        e.CCW,
			})
		case *dxf.EllipseEdge:
			res.Edges = append(res.Edges, edge{
				Type:       "ellipse",
				Center:     xy(e.Center),
				MajorAxis:  xy(e.MajorAxis),
				Ratio:      e.Ratio,
				StartAngle: e.StartAngle,
				EndAngle:   e.EndAngle,
				CCW:        e.CCW,
			})
		}
	}
	return res
}
