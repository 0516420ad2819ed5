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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"
)

func TestBounds(t *testing.T) {
	ff := []Feature{
		{Geometry: Point{1, 2, 100}},
		{Geometry: LineString{{-1, 5}, {3, 0}}},
		{},
		{Geometry: MultiPolygon{{{{0, -2}, {1, 1}, {0, -2}}}}},
	}
	want := rect.Rect{LLx: -1, LLy: -2, URx: 3, URy: 5}
	if got := Bounds(ff); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := Bounds(nil); got != (rect.Rect{}) {
		t.Errorf("empty: got %v", got)
	}
	if got := Bounds([]Feature{{Geometry: Polygon{{}}}}); got != (rect.Rect{}) {
		t.Errorf("empty polygon: got %v", got)
	}
}

func TestCoordsStop(t *testing.T) {
	g := Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, {{5, 5}, {6, 5}, {5, 5}}}
	n := 0
	for range g.Coords() {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("iteration did not stop, n = %d", n)
	}
}

func TestTransformCopies(t *testing.T) {
	first := Coord{0, 0}
	g := Polygon{{first, {1, 0}, {1, 1}, first}}
	got := g.transform(func(c Coord) Coord {
		return Coord{c[0] + 10, c[1]}
	})
	want := Polygon{{{10, 0}, {11, 0}, {11, 1}, {10, 0}}}
	if d := cmp.Diff(Geometry(want), got); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, g); d != "" {
		t.Errorf("original geometry was modified: %s", d)
	}
}

func TestCloseRing(t *testing.T) {
	ring := closeRing([]Coord{{0, 0}, {1, 0}, {1, 1}})
	if d := cmp.Diff([]Coord{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, ring); d != "" {
		t.Error(d)
	}
	// z is ignored when comparing positions
	ring = closeRing([]Coord{{0, 0, 1}, {1, 0, 1}, {0, 0, 2}})
	if len(ring) != 3 {
		t.Errorf("got %d positions", len(ring))
	}
	if ring := closeRing(nil); len(ring) != 0 {
		t.Errorf("got %v", ring)
	}
}

func TestPropertiesMap(t *testing.T) {
	width := 3.0
	p := &Properties{
		Layer:      "L",
		EntityType: "MTEXT",
		Color:      "#FFFFFF",
		ColorIndex: 7,
		Text:       &TextProperties{Value: "x", Height: 1, Width: &width},
		BlockName:  "B",
	}
	want := map[string]any{
		"layer":        "L",
		"entityType":   "MTEXT",
		"color":        "#FFFFFF",
		"colorIndex":   7,
		"text":         "x",
		"textHeight":   1.0,
		"textRotation": 0.0,
		"textWidth":    3.0,
		"blockName":    "B",
	}
	if d := cmp.Diff(want, p.Map()); d != "" {
		t.Error(d)
	}

	m := 12.5
	p = &Properties{
		EntityType: "DIMENSION",
		Dimension:  &DimensionProperties{Type: 1, Text: "<>", Measurement: &m},
	}
	got := p.Map()
	if got["dimensionType"] != 1 || got["text"] != "<>" || got["measurement"] != 12.5 {
		t.Errorf("unexpected map %v", got)
	}
}
