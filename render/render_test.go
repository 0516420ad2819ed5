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

package render

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dxf/feature"
)

func testOptions() *Options {
	return &Options{Width: 100, LineWidth: 4}
}

func isWhite(c color.RGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255
}

func TestLine(t *testing.T) {
	ff := []feature.Feature{{
		Geometry:   feature.LineString{{0, 0}, {10, 10}},
		Properties: feature.Properties{EntityType: "LINE", ColorIndex: 1},
	}}
	img := Render(ff, testOptions())
	if b := img.Bounds(); b != image.Rect(0, 0, 100, 100) {
		t.Fatalf("wrong image size %v", b)
	}

	// The line runs from the lower left to the upper right corner.
	if c := img.RGBAAt(49, 50); c.R < 200 || c.G > 60 || c.B > 60 {
		t.Errorf("pixel on the line has colour %v", c)
	}
	if c := img.RGBAAt(10, 10); !isWhite(c) {
		t.Errorf("pixel off the line has colour %v", c)
	}
	if c := img.RGBAAt(90, 90); !isWhite(c) {
		t.Errorf("pixel off the line has colour %v", c)
	}
}

func TestFill(t *testing.T) {
	square := feature.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}

	hatch := feature.Feature{
		Geometry:   square,
		Properties: feature.Properties{EntityType: "HATCH", ColorIndex: 5},
	}
	img := Render([]feature.Feature{hatch}, testOptions())
	if c := img.RGBAAt(50, 50); c.B < 200 || c.R > 60 || c.G > 60 {
		t.Errorf("hatch: center has colour %v", c)
	}

	outline := feature.Feature{
		Geometry:   square,
		Properties: feature.Properties{EntityType: "LWPOLYLINE", ColorIndex: 5},
	}
	img = Render([]feature.Feature{outline}, testOptions())
	if c := img.RGBAAt(50, 50); !isWhite(c) {
		t.Errorf("outline: center has colour %v", c)
	}
	if c := img.RGBAAt(0, 50); isWhite(c) {
		t.Errorf("outline: left edge not drawn")
	}
}

func TestPoint(t *testing.T) {
	ff := []feature.Feature{
		{Geometry: feature.Point{0, 0}, Properties: feature.Properties{ColorIndex: 7}},
		{Geometry: feature.Point{5, 5}, Properties: feature.Properties{ColorIndex: 3}},
		{Geometry: feature.Point{10, 10}, Properties: feature.Properties{ColorIndex: 7}},
	}
	img := Render(ff, testOptions())
	if c := img.RGBAAt(50, 50); c.G < 200 || c.R > 60 || c.B > 60 {
		t.Errorf("point has colour %v", c)
	}
	if c := img.RGBAAt(25, 25); !isWhite(c) {
		t.Errorf("background has colour %v", c)
	}
}

func TestEmpty(t *testing.T) {
	img := Render(nil, nil)
	if b := img.Bounds(); b.Dx() != 1024 || b.Dy() != 1024 {
		t.Errorf("wrong image size %v", b)
	}
	if c := img.RGBAAt(512, 512); !isWhite(c) {
		t.Errorf("background has colour %v", c)
	}
}

func TestAspectRatio(t *testing.T) {
	bbox := rect.Rect{LLx: 0, LLy: 0, URx: 200, URy: 50}
	r := NewRenderer(bbox, &Options{Width: 408, Margin: 4})
	if r.Height != 108 {
		t.Errorf("got height %d, want 108", r.Height)
	}

	// the corners of the drawing map to the inner corners of the image
	x, y := r.deviceCoords(feature.Coord{0, 0})
	if x != 4 || y != 104 {
		t.Errorf("lower left corner at (%g, %g)", x, y)
	}
	x, y = r.deviceCoords(feature.Coord{200, 50})
	if x != 404 || y != 4 {
		t.Errorf("upper right corner at (%g, %g)", x, y)
	}
}

func TestBackground(t *testing.T) {
	img := Render(nil, &Options{Width: 10, Background: color.Black})
	if c := img.RGBAAt(5, 5); c != (color.RGBA{A: 255}) {
		t.Errorf("background has colour %v", c)
	}
}

func TestColor(t *testing.T) {
	if c := Color(7); c != (color.NRGBA{A: 255}) {
		t.Errorf("index 7: got %v", c)
	}
	if c := Color(1); c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("index 1: got %v", c)
	}
}
