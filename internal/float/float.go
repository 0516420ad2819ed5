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

// Package float formats floating point numbers for JSON output.
package float

import (
	"math"
	"regexp"
	"strconv"
)

// Format formats x using at most the given number of digits after the
// decimal point.  Trailing zeros and a trailing decimal point are removed.
// Non-finite values are formatted as "0".
func Format(x float64, precision int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Append appends the shortest representation of x which is valid JSON.
// Non-finite values are written as 0.
func Append(buf []byte, x float64) []byte {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	abs := math.Abs(x)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.AppendFloat(buf, x, format, -1, 64)
}

// Round rounds x to the given number of digits after the decimal point.
func Round(x float64, digits int) float64 {
	y, err := strconv.ParseFloat(Format(x, digits), 64)
	if err != nil {
		return x
	}
	return y
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
