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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{1.25, 3, "1.25"},
		{3, 2, "3"},
		{0.5, 1, "0.5"},
		{-2.5, 2, "-2.5"},
		{123.456, 1, "123.5"},
		{100, 0, "100"},
		{-0.0001, 2, "0"},
		{math.Inf(1), 2, "0"},
		{math.NaN(), 2, "0"},
	}
	for _, c := range cases {
		if got := Format(c.x, c.precision); got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.precision, got, c.want)
		}
	}
}

func TestAppend(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{-100, "-100"},
		{1e21, "1e+21"},
		{1e-7, "1e-07"},
		{math.Inf(-1), "0"},
	}
	for _, c := range cases {
		if got := string(Append(nil, c.x)); got != c.want {
			t.Errorf("Append(%g) = %q, want %q", c.x, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.23456, 2); got != 1.23 {
		t.Errorf("got %g", got)
	}
	if got := Round(-7.5, 0); got != -8 {
		t.Errorf("got %g", got)
	}
}
