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
	"math"
	"strconv"

	"seehuhn.de/go/dxf/scanner"
)

// record is the run of pairs belonging to one entity, table entry or
// sub-record.  If a code occurs more than once, the last occurrence wins.
type record []scanner.Pair

func (r record) lookup(code int) (string, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Code == code {
			return r[i].Value, true
		}
	}
	return "", false
}

func (r record) has(code int) bool {
	_, ok := r.lookup(code)
	return ok
}

func (r record) str(code int) string {
	s, _ := r.lookup(code)
	return s
}

func (r record) float(code int, def float64) float64 {
	s, ok := r.lookup(code)
	if !ok {
		return def
	}
	return parseFloat(s)
}

func (r record) int(code int, def int) int {
	s, ok := r.lookup(code)
	if !ok {
		return def
	}
	return parseInt(s)
}

// point reads a point whose x coordinate has group code c.
// The y and z coordinates use codes c+10 and c+20.
func (r record) point(c int) Vec3 {
	return Vec3{
		X: r.float(c, 0),
		Y: r.float(c+10, 0),
		Z: r.float(c+20, 0),
	}
}

func (r record) base() Base {
	b := Base{
		Layer:   "0",
		Visible: true,
	}
	for _, p := range r {
		switch p.Code {
		case 5:
			b.Handle = p.Value
		case 8:
			b.Layer = p.Value
		case 6:
			b.LineType = p.Value
		case 62:
			c := parseInt(p.Value)
			b.ColorIndex = &c
		case 370:
			w := parseInt(p.Value)
			b.LineWeight = &w
		case 60:
			b.Visible = parseInt(p.Value) == 0
		}
	}
	return b
}

// parseFloat converts a DXF real value.
// Values which cannot be parsed, and infinite or NaN values, are read as 0.
func parseFloat(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// parseInt converts a DXF integer value.
// Values written as decimals are truncated towards zero.  Values which
// cannot be parsed are read as 0.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err == nil {
		return n
	}
	x := parseFloat(s)
	if x >= math.MaxInt32 || x <= math.MinInt32 {
		return 0
	}
	return int(x)
}
