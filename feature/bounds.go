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

	"seehuhn.de/go/geom/rect"
)

// Bounds returns the smallest rectangle containing all positions of the
// given features.  The z components are ignored.  If there are no
// positions, the zero rectangle is returned.
func Bounds(features []Feature) rect.Rect {
	res := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		for c := range f.Geometry.Coords() {
			res.LLx = min(res.LLx, c[0])
			res.LLy = min(res.LLy, c[1])
			res.URx = max(res.URx, c[0])
			res.URy = max(res.URy, c[1])
		}
	}
	if res.LLx > res.URx {
		return rect.Rect{}
	}
	return res
}
