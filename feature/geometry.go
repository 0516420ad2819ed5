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

import "iter"

// Coord is a position with two or three components.
type Coord []float64

// Is3D reports whether the coordinate has a z component.
func (c Coord) Is3D() bool {
	return len(c) > 2
}

func (c Coord) sameXY(other Coord) bool {
	return c[0] == other[0] && c[1] == other[1]
}

// Geometry is the shape of a [Feature].
// This is one of [Point], [LineString], [Polygon] or [MultiPolygon].
type Geometry interface {
	// Type returns the GeoJSON name of the geometry type.
	Type() string

	// Coords iterates over all positions of the geometry.
	Coords() iter.Seq[Coord]

	// transform returns a copy of the geometry with f applied to every
	// position.
	transform(f func(Coord) Coord) Geometry
}

// Point is a single position.
type Point Coord

// LineString is an open path.
type LineString []Coord

// Polygon is a list of closed rings.  For all rings, the first and the last
// position coincide.
type Polygon [][]Coord

// MultiPolygon is a list of polygons.
type MultiPolygon []Polygon

// Type implements the [Geometry] interface.
func (Point) Type() string { return "Point" }

// Type implements the [Geometry] interface.
func (LineString) Type() string { return "LineString" }

// Type implements the [Geometry] interface.
func (Polygon) Type() string { return "Polygon" }

// Type implements the [Geometry] interface.
func (MultiPolygon) Type() string { return "MultiPolygon" }

// Coords implements the [Geometry] interface.
func (g Point) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		yield(Coord(g))
	}
}

// Coords implements the [Geometry] interface.
func (g LineString) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, c := range g {
			if !yield(c) {
				return
			}
		}
	}
}

// Coords implements the [Geometry] interface.
func (g Polygon) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, ring := range g {
			for _, c := range ring {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Coords implements the [Geometry] interface.
func (g MultiPolygon) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, poly := range g {
			for c := range poly.Coords() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func (g Point) transform(f func(Coord) Coord) Geometry {
	return Point(f(Coord(g)))
}

func (g LineString) transform(f func(Coord) Coord) Geometry {
	return LineString(mapCoords(g, f))
}

func (g Polygon) transform(f func(Coord) Coord) Geometry {
	return g.mapRings(f)
}

func (g MultiPolygon) transform(f func(Coord) Coord) Geometry {
	res := make(MultiPolygon, len(g))
	for i, poly := range g {
		res[i] = poly.mapRings(f)
	}
	return res
}

func (g Polygon) mapRings(f func(Coord) Coord) Polygon {
	res := make(Polygon, len(g))
	for i, ring := range g {
		res[i] = mapCoords(ring, f)
	}
	return res
}

func mapCoords(cc []Coord, f func(Coord) Coord) []Coord {
	res := make([]Coord, len(cc))
	for i, c := range cc {
		res[i] = f(c)
	}
	return res
}

// closeRing appends the first position to the ring, unless the ring is
// already closed.
func closeRing(ring []Coord) []Coord {
	if len(ring) == 0 {
		return ring
	}
	first := ring[0]
	if !first.sameXY(ring[len(ring)-1]) {
		ring = append(ring, append(Coord(nil), first...))
	}
	return ring
}
