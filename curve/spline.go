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

// BSpline describes a (possibly rational) B-spline curve in three
// dimensions.
type BSpline struct {
	Degree  int
	Control [][3]float64

	// Knots is the knot vector.  If the length is not
	// len(Control)+Degree+1, a clamped uniform knot vector is used instead.
	Knots []float64

	// Weights are the control point weights.  Weights are ignored unless
	// there is exactly one weight per control point.
	Weights []float64
}

// Points evaluates the spline at evenly spaced parameter values, using
// perSpan segments for each knot span.  The parameter runs over the
// range where the spline is fully defined, from Knots[Degree] to
// Knots[len(Knots)-Degree-1].
func (s *BSpline) Points(perSpan int) [][3]float64 {
	n := len(s.Control)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return [][3]float64{s.Control[0]}
	}

	degree := min(max(s.Degree, 1), n-1)
	knots := s.Knots
	if len(knots) != n+degree+1 {
		knots = UniformKnots(n, degree)
	}
	var weights []float64
	if len(s.Weights) == n {
		weights = s.Weights
	}

	numPoints := max(1, n-degree)*max(perSpan, 1) + 1
	tMin := knots[degree]
	tMax := knots[n]

	res := make([][3]float64, numPoints)
	d := make([][4]float64, degree+1)
	for i := range res {
		t := tMin + float64(i)/float64(numPoints-1)*(tMax-tMin)
		res[i] = deBoor(degree, s.Control, knots, weights, t, d)
	}
	return res
}

// UniformKnots returns a clamped uniform knot vector on [0, 1] for n
// control points.  The first and last degree+1 knots are 0 and 1.
func UniformKnots(n, degree int) []float64 {
	count := n + degree + 1
	inner := count - 2*degree - 1
	knots := make([]float64, count)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= count-degree-1:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(inner)
		}
	}
	return knots
}

// deBoor evaluates the spline at t, using homogeneous coordinates.
// The slice d is used as scratch space.
func deBoor(degree int, control [][3]float64, knots, weights []float64, t float64, d [][4]float64) [3]float64 {
	n := len(control)

	span := degree
	for i := degree; i < n; i++ {
		if t >= knots[i] && t < knots[i+1] {
			span = i
			break
		}
	}
	if t >= knots[n] {
		span = n - 1
	}

	for j := 0; j <= degree; j++ {
		idx := span - degree + j
		w := 1.0
		if weights != nil {
			w = weights[idx]
		}
		cp := control[idx]
		d[j] = [4]float64{cp[0] * w, cp[1] * w, cp[2] * w, w}
	}

	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			idx := span - degree + j
			left := knots[idx]
			right := knots[idx+degree-r+1]
			var alpha float64
			if denom := right - left; denom > 1e-10 {
				alpha = (t - left) / denom
			}
			for k := range 4 {
				d[j][k] = (1-alpha)*d[j-1][k] + alpha*d[j][k]
			}
		}
	}

	p := d[degree]
	if w := p[3]; w > 1e-10 {
		return [3]float64{p[0] / w, p[1] / w, p[2] / w}
	}
	return [3]float64{p[0], p[1], p[2]}
}
