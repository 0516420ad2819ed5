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

package curve

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Bulge returns the intermediate points of a polyline arc segment from p1
// to p2.  The end points themselves are not included.
//
// The bulge is the tangent of a quarter of the included angle.  Positive
// values give a counter-clockwise arc, negative values a clockwise arc.
// The result is empty if the bulge is zero or if p1 and p2 coincide.
func Bulge(p1, p2 vec.Vec2, bulge float64, segments int) []vec.Vec2 {
	if math.Abs(bulge) < 1e-10 {
		return nil
	}
	chord := p2.Sub(p1)
	c := chord.Length()
	if c < 1e-10 {
		return nil
	}

	sagitta := bulge * c / 2
	radius := math.Abs((c*c/4 + sagitta*sagitta) / (2 * sagitta))
	included := 4 * math.Atan(bulge)

	// unit normal pointing to the left of the chord
	normal := vec.Vec2{X: -chord.Y / c, Y: chord.X / c}
	mid := p1.Add(p2).Mul(0.5)
	dist := radius - math.Abs(sagitta)
	if bulge < 0 {
		dist = -dist
	}
	center := mid.Add(normal.Mul(dist))

	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	a2 := math.Atan2(p2.Y-center.Y, p2.X-center.X)
	var delta float64
	if bulge > 0 {
		delta = normalizeAngle(a2 - a1)
	} else {
		delta = -normalizeAngle(a1 - a2)
	}

	n := Segments(included, segments)
	res := make([]vec.Vec2, 0, n-1)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		res = append(res, onCircle(center, radius, a1+delta*t))
	}
	return res
}

// normalizeAngle maps an angle into the range [0, 2π].
func normalizeAngle(phi float64) float64 {
	phi = math.Mod(phi, fullTurn)
	if phi < 0 {
		phi += fullTurn
	}
	return phi
}
