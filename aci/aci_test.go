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


package aci

import (
	"image/color"
	"regexp"
	"testing"
)

func TestHex(t *testing.T) {
	cases := []struct {
		i    int
		want string
	}{
		{0, "#000000"},
		{1, "#FF0000"},
		{5, "#0000FF"},
		{7, "#FFFFFF"},
		{8, "#414141"},
		{255, "#FFFFFF"},
		{256, "#FFFFFF"},
		{-3, "#FFFFFF"},
	}
	for _, c := range cases {
		if got := Hex(c.i); got != c.want {
			t.Errorf("Hex(%d) = %s, want %s", c.i, got, c.want)
		}
	}
}

func TestPaletteFormat(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for i := -1; i <= 257; i++ {
		if s := Hex(i); !re.MatchString(s) {
			t.Errorf("Hex(%d) = %q", i, s)
		}
	}
}

func TestRGBA(t *testing.T) {
	if got := RGBA(3); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("RGBA(3) = %v", got)
	}
	if got := RGBA(1000); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("RGBA(1000) = %v", got)
	}
}
