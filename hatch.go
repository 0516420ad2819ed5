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

import (
	"seehuhn.de/go/dxf/scanner"
	"seehuhn.de/go/geom/vec"
)

// PathKind distinguishes the two representations of a hatch boundary.
type PathKind int

// These are the possible values of [PathKind].
const (
	PathEdges PathKind = iota
	PathPolyline
)

func (k PathKind) String() string {
	if k == PathPolyline {
		return "polyline"
	}
	return "edges"
}

// BoundaryPath is one boundary loop of a HATCH.
type BoundaryPath struct {
	Kind PathKind

	// Flags is the boundary path type (group code 92).
	Flags int

	// Vertices and Closed are used for polyline paths.
	Vertices []Vertex
	Closed   bool

	// Edges is used for edge paths.
	Edges []Edge
}

// Edge is one segment of an edge-defined hatch boundary.
// This is one of [*LineEdge], [*ArcEdge] or [*EllipseEdge].
type Edge interface {
	isEdge()
}

// LineEdge is a straight hatch boundary edge.
type LineEdge struct {
	Start, End vec.Vec2
}

// ArcEdge is a circular hatch boundary edge.  Angles are in degrees.
type ArcEdge struct {
	Center     vec.Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

// EllipseEdge is an elliptical hatch boundary edge.
// MajorAxis is relative to Center.  Angles are in degrees.
type EllipseEdge struct {
	Center     vec.Vec2
	MajorAxis  vec.Vec2
	Ratio      float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

func (*LineEdge) isEdge()    {}
func (*ArcEdge) isEdge()     {}
func (*EllipseEdge) isEdge() {}

type hatchPhase int

const (
	hatchHeader   hatchPhase = iota // pattern name, fill flag, path count
	hatchPath                       // just after a code 92
	hatchPolyline                   // vertices of a polyline path
	hatchEdges                      // edges of an edge path
	hatchSources                    // source object references of a path
	hatchDone                       // pattern definition and seed points
)

// hatchState is the accumulator for decodeHatch.
type hatchState struct {
	phase hatchPhase
	h     *Hatch

	numPaths int
	started  int
	path     *BoundaryPath

	edgeType int
	edge     record
}

func decodeHatch(r record) Entity {
	s := &hatchState{
		h: &Hatch{
			Base: r.base(),
		},
	}
	for _, p := range r {
		s.step(p)
	}
	s.flushPath()
	return s.h
}

func (s *hatchState) step(p scanner.Pair) {
	switch s.phase {
	case hatchHeader:
		switch p.Code {
		case 2:
			s.h.Pattern = p.Value
		case 70:
			s.h.Solid = parseInt(p.Value) == 1
		case 91:
			s.numPaths = parseInt(p.Value)
			if s.numPaths > 0 {
				s.phase = hatchPath
			}
		}
		return

	case hatchDone:
		return
	}

	switch p.Code {
	case 92:
		s.flushPath()
		if s.started >= s.numPaths {
			s.phase = hatchDone
			return
		}
		s.started++
		s.edgeType = 0
		flags := parseInt(p.Value)
		s.path = &BoundaryPath{Flags: flags}
		if flags&2 != 0 {
			s.path.Kind = PathPolyline
			s.path.Closed = true
			s.phase = hatchPolyline
		} else {
			s.path.Kind = PathEdges
			s.phase = hatchEdges
		}
		return
	case 97:
		if s.phase == hatchEdges && s.edgeType == 4 && s.edge != nil && !s.edge.has(97) {
			// number of fit points of a spline edge
			break
		}
		s.flushEdge()
		s.phase = hatchSources
		return
	case 75, 76, 98:
		s.flushPath()
		s.phase = hatchDone
		return
	}

	switch s.phase {
	case hatchPolyline:
		path := s.path
		switch p.Code {
		case 10:
			path.Vertices = append(path.Vertices, Vertex{Vec3: Vec3{X: parseFloat(p.Value)}})
		case 20:
			if n := len(path.Vertices); n > 0 {
				path.Vertices[n-1].Y = parseFloat(p.Value)
			}
		case 42:
			if n := len(path.Vertices); n > 0 {
				path.Vertices[n-1].Bulge = parseFloat(p.Value)
			}
		}

	case hatchEdges:
		if p.Code == 72 {
			s.flushEdge()
			s.edgeType = parseInt(p.Value)
			s.edge = record{}
		} else if s.edge != nil {
			s.edge = append(s.edge, p)
		}

	case hatchSources:
		if p.Code != 330 {
			s.phase = hatchDone
		}
	}
}

// flushEdge decodes the buffered edge data, if any.
func (s *hatchState) flushEdge() {
	e := s.edge
	s.edge = nil
	if len(e) == 0 || s.path == nil {
		return
	}

	center := vec.Vec2{X: e.float(10, 0), Y: e.float(20, 0)}
	switch s.edgeType {
	case 1:
		s.path.Edges = append(s.path.Edges, &LineEdge{
			Start: center,
			End:   vec.Vec2{X: e.float(11, 0), Y: e.float(21, 0)},
		})
	case 2:
		s.path.Edges = append(s.path.Edges, &ArcEdge{
			Center:     center,
			Radius:     e.float(40, 0),
			StartAngle: e.float(50, 0),
			EndAngle:   e.float(51, 0),
			CCW:        e.int(73, 0) != 0,
		})
	case 3:
		ratio := e.float(40, 0)
		if ratio == 0 {
			ratio = 1
		}
		end := e.float(51, 0)
		if end == 0 {
			end = 360
		}
		s.path.Edges = append(s.path.Edges, &EllipseEdge{
			Center:     center,
			MajorAxis:  vec.Vec2{X: e.float(11, 0), Y: e.float(21, 0)},
			Ratio:      ratio,
			StartAngle: e.float(50, 0),
			EndAngle:   end,
			CCW:        e.int(73, 0) != 0,
		})
	}
}

// flushPath stores the current boundary path, if it has any geometry.
func (s *hatchState) flushPath() {
	s.flushEdge()
	path := s.path
	s.path = nil
	if path == nil {
		return
	}
	switch path.Kind {
	case PathPolyline:
		if len(path.Vertices) > 0 {
			s.h.Paths = append(s.h.Paths, path)
		}
	case PathEdges:
		if len(path.Edges) > 0 {
			s.h.Paths = append(s.h.Paths, path)
		}
	}
}
