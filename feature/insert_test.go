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

	"seehuhn.de/go/dxf"
)

// block returns the lines of a BLOCK definition with base point (x, y).
func block(name, x, y string, body ...string) []string {
	l := []string{"0", "BLOCK", "2", name, "10", x, "20", y}
	l = append(l, body...)
	return append(l, "0", "ENDBLK")
}

func blocks(defs ...[]string) string {
	var l []string
	for _, d := range defs {
		l = append(l, d...)
	}
	return section("BLOCKS", l...)
}

func TestInsertTransform(t *testing.T) {
	in := drawing(
		blocks(block("B", "1", "1", "0", "LINE", "10", "1", "20", "1", "11", "2", "21", "1")),
		section("ENTITIES", "0", "INSERT", "8", "Doors", "2", "B",
			"10", "10", "20", "20", "41", "2", "42", "2", "50", "90"),
	)
	ff := Parse(in, nil)
	if len(ff) != 1 {
		t.Fatalf("got %d features, want 1", len(ff))
	}
	want := LineString{{10, 20}, {10, 22}}
	if d := cmp.Diff(Geometry(want), ff[0].Geometry, approx); d != "" {
		t.Error(d)
	}

	p := ff[0].Properties
	if p.EntityType != "INSERT" || p.Layer != "Doors" || p.BlockName != "B" {
		t.Errorf("unexpected properties %+v", p)
	}
}

func TestInsertZ(t *testing.T) {
	in := drawing(
		blocks(block("B", "0", "0",
			"0", "LINE", "10", "0", "20", "0", "30", "1", "11", "1", "21", "0", "31", "1",
			"0", "POINT", "10", "2", "20", "2")),
		section("ENTITIES", "0", "INSERT", "2", "B", "10", "0", "20", "0", "30", "5", "43", "3"),
	)
	ff := Parse(in, nil)
	want := []Geometry{
		LineString{{0, 0, 8}, {1, 0, 8}},
		Point{2, 2},
	}
	for i, f := range ff {
		if d := cmp.Diff(want[i], f.Geometry, approx); d != "" {
			t.Errorf("%d: %s", i, d)
		}
	}

	opt := DefaultOptions()
	opt.Flatten = true
	got := Parse(in, opt)[0].Geometry
	if d := cmp.Diff(Geometry(LineString{{0, 0}, {1, 0}}), got, approx); d != "" {
		t.Error(d)
	}
}

func TestInsertDepth(t *testing.T) {
	doc := dxf.Parse(drawing(
		blocks(block("B", "0", "0", "0", "LINE", "10", "0", "20", "0", "11", "1", "21", "1")),
		section("ENTITIES",
			"0", "INSERT", "2", "B",
			"0", "INSERT", "2", "Missing"),
	))
	c := NewConverter(doc, nil)
	ins := doc.Entities[0]

	if ff := c.Entity(ins, 8); len(ff) != 0 {
		t.Errorf("depth 8: got %d features", len(ff))
	}
	if ff := c.Entity(ins, 7); len(ff) != 1 {
		t.Errorf("depth 7: got %d features", len(ff))
	}
	if ff := c.Entity(doc.Entities[1], 0); len(ff) != 0 {
		t.Errorf("missing block: got %d features", len(ff))
	}
}

func TestNestedInsert(t *testing.T) {
	in := drawing(
		blocks(
			block("Outer", "0", "0", "0", "INSERT", "2", "Inner", "10", "5", "20", "0"),
			block("Inner", "0", "0", "0", "POINT", "10", "1", "20", "1"),
		),
		section("ENTITIES", "0", "INSERT", "2", "Outer", "10", "0", "20", "10"),
	)

	if ff := Parse(in, &Options{MaxBlockInsertionDepth: 1}); len(ff) != 0 {
		t.Errorf("depth 1: got %d features", len(ff))
	}

	ff := Parse(in, &Options{MaxBlockInsertionDepth: 2})
	if len(ff) != 1 {
		t.Fatalf("depth 2: got %d features", len(ff))
	}
	if d := cmp.Diff(Geometry(Point{6, 11}), ff[0].Geometry, approx); d != "" {
		t.Error(d)
	}
	if got := ff[0].Properties.BlockName; got != "Inner" {
		t.Errorf("block name %q", got)
	}
}

func TestRecursiveBlock(t *testing.T) {
	in := drawing(
		blocks(block("S", "0", "0",
			"0", "LINE", "10", "0", "20", "0", "11", "1", "21", "0",
			"0", "INSERT", "2", "S", "10", "0", "20", "1")),
		section("ENTITIES", "0", "INSERT", "2", "S"),
	)
	if n := len(Parse(in, nil)); n != 8 {
		t.Errorf("got %d features, want 8", n)
	}
	opt := DefaultOptions()
	opt.MaxBlockInsertionDepth = 3
	ff := Parse(in, opt)
	if len(ff) != 3 {
		t.Fatalf("got %d features, want 3", len(ff))
	}
	// each level is shifted up by one unit
	last := ff[2].Geometry.(LineString)
	if d := cmp.Diff(LineString{{0, 2}, {1, 2}}, last, approx); d != "" {
		t.Error(d)
	}
}

func TestMInsert(t *testing.T) {
	in := drawing(
		blocks(block("P", "0", "0", "0", "POINT", "10", "0", "20", "0")),
		section("ENTITIES", "0", "INSERT", "2", "P",
			"70", "3", "71", "2", "44", "10", "45", "5"),
	)
	ff := Parse(in, nil)
	var got []Geometry
	for _, f := range ff {
		got = append(got, f.Geometry)
	}
	want := []Geometry{
		Point{0, 0}, Point{10, 0}, Point{20, 0},
		Point{0, 5}, Point{10, 5}, Point{20, 5},
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}

func TestGridSize(t *testing.T) {
	cases := []struct {
		cols, rows         int
		wantCols, wantRows int
	}{
		{0, 0, 1, 1},
		{3, 2, 3, 2},
		{-5, 4, 1, 4},
		{1 << 20, 7, maxGridCells, 1},
		{2, 1 << 20, 2, maxGridCells / 2},
	}
	for _, c := range cases {
		cols, rows := gridSize(c.cols, c.rows)
		if cols != c.wantCols || rows != c.wantRows {
			t.Errorf("gridSize(%d, %d) = %d, %d", c.cols, c.rows, cols, rows)
		}
	}
}

func TestInsertAttributes(t *testing.T) {
	in := drawing(
		blocks(block("B", "0", "0", "0", "LINE", "10", "0", "20", "0", "11", "1", "21", "0")),
		section("ENTITIES",
			"0", "INSERT", "2", "B", "66", "1", "10", "100", "20", "0",
			"0", "ATTRIB", "2", "TAG", "1", "{VALUE}%%d", "10", "3", "20", "4", "40", "2",
			"0", "ATTRIB", "2", "HIDDEN", "1", "secret", "60", "1",
			"0", "SEQEND"),
	)
	ff := Parse(in, nil)
	if len(ff) != 2 {
		t.Fatalf("got %d features, want 2", len(ff))
	}
	attr := ff[1]
	if d := cmp.Diff(Geometry(Point{3, 4}), attr.Geometry); d != "" {
		t.Error(d)
	}
	want := Properties{
		Layer:        "0",
		EntityType:   "INSERT",
		Color:        "#FFFFFF",
		ColorIndex:   7,
		Text:         &TextProperties{Value: "{VALUE}°", Height: 2},
		BlockName:    "B",
		AttributeTag: "TAG",
	}
	if d := cmp.Diff(want, attr.Properties); d != "" {
		t.Error(d)
	}

	opt := DefaultOptions()
	opt.IncludeInvisible = true
	if n := len(Parse(in, opt)); n != 3 {
		t.Errorf("got %d features, want 3", n)
	}

	opt = DefaultOptions()
	opt.NoBlockReferences = true
	if n := len(Parse(in, opt)); n != 0 {
		t.Errorf("got %d features, want 0", n)
	}
}
