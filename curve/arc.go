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

// Package curve approximates circles, arcs, ellipses, polyline bulges and
// B-splines by sequences of points.
//
// The number of points used for an arc is proportional to its angular
// extent: a full turn uses the given number of segments, shorter arcs use
// correspondingly fewer, but never less than two.
package curve

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

const fullTurn = 2 * math.Pi

// Circle returns a closed ring of segments+1 points on the circle.
// The first and last point are identical.
func Circle(center vec.Vec2, radius float64, segments int) []vec.Vec2 {
	segments = max(segments, 1)
	res := make([]vec.Vec2, segments+1)
	for i := range segments {
		phi := float64(i) / float64(segments) * fullTurn
		res[i] = onCircle(center, radius, phi)
	}
	res[segments] = res[0]
	return res
}

// Arc approximates a counter-clockwise circular arc.  The angles are given
// in degrees.  If endDeg is not greater than startDeg, the arc wraps around
// through 360 degrees.  If both angles coincide, a full circle is returned.
//
// The first point lies at startDeg and the last point at endDeg.
func Arc(center vec.Vec2, radius, startDeg, endDeg float64, segments int) []vec.Vec2 {
	return ArcRadians(center, radius, startDeg*math.Pi/180, endDeg*math.Pi/180, true, segments)
}

// ArcRadians approximates a circular arc with angles given in radians.
// If ccw is false, the arc runs clockwise from start to end.
func ArcRadians(center vec.Vec2, radius, start, end float64, ccw bool, segments int) []vec.Vec2 {
	var delta float64
	if ccw {
		delta = Sweep(start, end)
	} else {
		delta = -Sweep(end, start)
	}

	n := Segments(delta, segments)
	res := make([]vec.Vec2, n+1)
	for i := range res {
		t := float64(i) / float64(n)
		res[i] = onCircle(center, radius, start+delta*t)
	}
	return res
}

// Ellipse approximates an elliptical arc.
//
// The major axis is given relative to the center, its length is the
// major radius.  The minor radius is ratio times the major radius.
// The parameters start and end are the parametric angles in radians,
// measured counter-clockwise from the major axis.  As for [Arc], the
// parameter range wraps around if end is not greater than start.
func Ellipse(center, major vec.Vec2, ratio, start, end float64, segments int) []vec.Vec2 {
	return EllipseArc(center, major, ratio, start, end, true, segments)
}

// EllipseArc is like [Ellipse], but the arc runs clockwise if ccw is false.
func EllipseArc(center, major vec.Vec2, ratio, start, end float64, ccw bool, segments int) []vec.Vec2 {
	var delta float64
	if ccw {
		delta = Sweep(start, end)
	} else {
		delta = -Sweep(end, start)
	}

	minor := vec.Vec2{X: -major.Y, Y: major.X}.Mul(ratio)

	n := Segments(delta, segments)
	res := make([]vec.Vec2, n+1)
	for i := range res {
		t := start + delta*float64(i)/float64(n)
		res[i] = center.Add(major.Mul(math.Cos(t))).Add(minor.Mul(math.Sin(t)))
	}
	return res
}

// Sweep returns the counter-clockwise angle from start to end, in radians.
// The result is in the range (0, 2π].  Angles which differ by a whole
// number of turns give 2π.
func Sweep(start, end float64) float64 {
	delta := math.Mod(end-start, fullTurn)
	if delta < 0 {
		delta += fullTurn
	}
	if delta <= 1e-9 || math.IsNaN(delta) {
		delta += fullTurn
	}
	return delta
}

// Segments returns the number of segments used for an arc with the given
// sweep angle (in radians), if a full circle uses fullCircle segments.
// The result is at least 2.
func Segments(sweep float64, fullCircle int) int {
	n := math.Ceil(math.Abs(sweep) / fullTurn * float64(fullCircle))
	if !(n >= 2) {
		return 2
	}
	if n > float64(fullCircle) && fullCircle >= 2 {
		return fullCircle
	}
	return int(n)
}

func onCircle(center vec.Vec2, radius, phi float64) vec.Vec2 {
	return vec.Vec2{
		X: center.X + radius*math.Cos(phi),
		Y: center.Y + radius*math.Sin(phi),
	}
}
