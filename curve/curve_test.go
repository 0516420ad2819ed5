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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

var approx = cmpopts.EquateApprox(0, eps)

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestCircle(t *testing.T) {
	center := vec.Vec2{X: 1, Y: 2}
	for _, n := range []int{3, 4, 72, 100} {
		ring := Circle(center, 3, n)
		if len(ring) != n+1 {
			t.Fatalf("%d segments: got %d points", n, len(ring))
		}
		if ring[0] != ring[n] {
			t.Errorf("%d segments: ring not closed", n)
		}
		for i, p := range ring {
			if r := p.Sub(center).Length(); math.Abs(r-3) > eps {
				t.Errorf("%d segments: point %d has radius %g", n, i, r)
			}
		}
	}
}

func TestArcEndpoints(t *testing.T) {
	cases := []struct {
		start, end float64
	}{
		{0, 90},
		{90, 0},
		{350, 10},
		{-45, 45},
		{0, 360},
		{30, 30},
		{270, 360},
		{0, 720},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			pts := Arc(vec.Vec2{}, 2, c.start, c.end, 72)
			if len(pts) < 3 {
				t.Fatalf("only %d points", len(pts))
			}
			rad := math.Pi / 180
			first := vec.Vec2{X: 2 * math.Cos(c.start*rad), Y: 2 * math.Sin(c.start*rad)}
			last := vec.Vec2{X: 2 * math.Cos(c.end*rad), Y: 2 * math.Sin(c.end*rad)}
			if !near(pts[0], first) {
				t.Errorf("first point %v, want %v", pts[0], first)
			}
			if !near(pts[len(pts)-1], last) {
				t.Errorf("last point %v, want %v", pts[len(pts)-1], last)
			}
		})
	}
}

func TestArcSegments(t *testing.T) {
	cases := []struct {
		start, end float64
		want       int
	}{
		{0, 90, 18},
		{0, 1, 2},
		{90, 0, 54},
		{0, 360, 72},
		{10, 10, 72},
	}
	for _, c := range cases {
		got := len(Arc(vec.Vec2{}, 1, c.start, c.end, 72)) - 1
		if got != c.want {
			t.Errorf("%g-%g: got %d segments, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestArcClockwise(t *testing.T) {
	pts := ArcRadians(vec.Vec2{}, 1, math.Pi/2, 0, false, 4)
	want := []vec.Vec2{{X: 0, Y: 1}, {X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, {X: 1, Y: 0}}
	if d := cmp.Diff(want, pts, approx); d != "" {
		t.Error(d)
	}
}

func TestEllipse(t *testing.T) {
	// major axis along y, minor radius 1
	center := vec.Vec2{X: 1, Y: 1}
	pts := Ellipse(center, vec.Vec2{Y: 2}, 0.5, 0, 2*math.Pi, 4)
	want := []vec.Vec2{
		{X: 1, Y: 3},
		{X: 0, Y: 1},
		{X: 1, Y: -1},
		{X: 2, Y: 1},
		{X: 1, Y: 3},
	}
	if d := cmp.Diff(want, pts, approx); d != "" {
		t.Error(d)
	}

	half := Ellipse(center, vec.Vec2{X: 2}, 0.5, math.Pi, 0, 72)
	if len(half) != 37 {
		t.Errorf("half ellipse: got %d points", len(half))
	}
	if !near(half[0], vec.Vec2{X: -1, Y: 1}) || !near(half[36], vec.Vec2{X: 3, Y: 1}) {
		t.Errorf("half ellipse: wrong end points %v %v", half[0], half[36])
	}
	if half[18].Y > 0.5 {
		t.Errorf("half ellipse: should pass through the lower half, got %v", half[18])
	}
}

func TestSweep(t *testing.T) {
	cases := []struct {
		start, end, want float64
	}{
		{0, 1, 1},
		{1, 0, 2*math.Pi - 1},
		{0, 0, 2 * math.Pi},
		{0, 2 * math.Pi, 2 * math.Pi},
		{-1, 1, 2},
		{0, 5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := Sweep(c.start, c.end); math.Abs(got-c.want) > eps {
			t.Errorf("Sweep(%g, %g) = %g, want %g", c.start, c.end, got, c.want)
		}
	}
}

func TestBulge(t *testing.T) {
	p1 := vec.Vec2{X: 0, Y: 0}
	p2 := vec.Vec2{X: 2, Y: 0}

	if pts := Bulge(p1, p2, 0, 72); len(pts) != 0 {
		t.Errorf("zero bulge: got %v", pts)
	}
	if pts := Bulge(p1, p1, 1, 72); len(pts) != 0 {
		t.Errorf("zero chord: got %v", pts)
	}

	// Bulge 1 is a half circle.  Counter-clockwise from (0,0) to (2,0)
	// passes below the chord.
	pts := Bulge(p1, p2, 1, 72)
	if len(pts) != 35 {
		t.Fatalf("got %d points, want 35", len(pts))
	}
	center := vec.Vec2{X: 1}
	for i, p := range pts {
		if r := p.Sub(center).Length(); math.Abs(r-1) > eps {
			t.Errorf("point %d has radius %g", i, r)
		}
	}
	if !near(pts[17], vec.Vec2{X: 1, Y: -1}) {
		t.Errorf("mid point %v", pts[17])
	}

	pts = Bulge(p1, p2, -1, 4)
	want := []vec.Vec2{{X: 1, Y: 1}}
	if d := cmp.Diff(want, pts, approx); d != "" {
		t.Error(d)
	}
}

func TestBulgeLargeArc(t *testing.T) {
	// bulge 2 gives an arc of more than 180 degrees
	p1 := vec.Vec2{X: 0, Y: 0}
	p2 := vec.Vec2{X: 2, Y: 0}
	pts := Bulge(p1, p2, 2, 72)
	included := 4 * math.Atan(2)
	if want := Segments(included, 72) - 1; len(pts) != want {
		t.Fatalf("got %d points, want %d", len(pts), want)
	}
	minY := 0.0
	for _, p := range pts {
		minY = min(minY, p.Y)
	}
	// sagitta = bulge * chord / 2
	if math.Abs(minY+2) > 0.01 {
		t.Errorf("lowest point at %g, want -2", minY)
	}
}

func TestBSplineLinear(t *testing.T) {
	s := &BSpline{
		Degree:  1,
		Control: [][3]float64{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}},
	}
	got := s.Points(2)
	want := [][3]float64{{0, 0, 0}, {0.5, 0.5, 0}, {1, 1, 0}, {1.5, 0.5, 0}, {2, 0, 0}}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}

func TestBSplineQuadratic(t *testing.T) {
	s := &BSpline{
		Degree:  2,
		Control: [][3]float64{{0, 0, 0}, {1, 2, 0}, {2, 0, 0}},
	}
	got := s.Points(4)
	if len(got) != 5 {
		t.Fatalf("got %d points, want 5", len(got))
	}
	// clamped: the curve interpolates the end points
	if d := cmp.Diff([3]float64{0, 0, 0}, got[0], approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([3]float64{2, 0, 0}, got[4], approx); d != "" {
		t.Error(d)
	}
	// Bezier midpoint: (P0 + 2 P1 + P2) / 4
	if d := cmp.Diff([3]float64{1, 1, 0}, got[2], approx); d != "" {
		t.Error(d)
	}
}

func TestBSplineRational(t *testing.T) {
	// A quarter circle as a rational quadratic Bezier curve.
	w := math.Sqrt2 / 2
	s := &BSpline{
		Degree:  2,
		Control: [][3]float64{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Knots:   []float64{0, 0, 0, 1, 1, 1},
		Weights: []float64{1, w, 1},
	}
	for i, p := range s.Points(10) {
		r := math.Hypot(p[0], p[1])
		if math.Abs(r-1) > 1e-9 {
			t.Errorf("point %d has radius %g", i, r)
		}
	}

	// weights are ignored if their number does not match
	s.Weights = []float64{1, 5}
	mid := s.Points(2)[1]
	if d := cmp.Diff([3]float64{0.75, 0.75, 0}, mid, approx); d != "" {
		t.Error(d)
	}
}

func TestBSplineDegenerate(t *testing.T) {
	if pts := (&BSpline{Degree: 3}).Points(20); pts != nil {
		t.Errorf("no control points: got %v", pts)
	}
	one := &BSpline{Degree: 3, Control: [][3]float64{{1, 2, 3}}}
	if d := cmp.Diff([][3]float64{{1, 2, 3}}, one.Points(20)); d != "" {
		t.Error(d)
	}

	// degree larger than the number of control points allows
	s := &BSpline{Degree: 7, Control: [][3]float64{{0, 0, 0}, {1, 0, 0}}}
	pts := s.Points(5)
	if len(pts) != 6 {
		t.Errorf("got %d points, want 6", len(pts))
	}

	// non-positive degree and a knot vector of the wrong length
	s = &BSpline{Degree: -2, Control: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, Knots: []float64{0, 1}}
	pts = s.Points(1)
	if len(pts) != 3 {
		t.Errorf("got %d points, want 3", len(pts))
	}
}

func TestUniformKnots(t *testing.T) {
	got := UniformKnots(5, 2)
	want := []float64{0, 0, 0, 1.0 / 3, 2.0 / 3, 1, 1, 1}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}

func BenchmarkBSpline(b *testing.B) {
	s := &BSpline{Degree: 3}
	for i := range 50 {
		s.Control = append(s.Control, [3]float64{float64(i), float64(i % 7), 0})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Points(20)
	}
}
