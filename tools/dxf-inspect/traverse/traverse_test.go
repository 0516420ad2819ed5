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

package traverse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const drawing = "0\nSECTION\n2\nHEADER\n9\n$ACADVER\n1\nAC1015\n0\nENDSEC\n" +
	"0\nSECTION\n2\nTABLES\n0\nTABLE\n2\nLAYER\n" +
	"0\nLAYER\n2\nWalls\n62\n1\n70\n1\n0\nENDTAB\n0\nENDSEC\n" +
	"0\nSECTION\n2\nBLOCKS\n0\nBLOCK\n2\nDOOR\n10\n0\n20\n0\n" +
	"0\nLINE\n10\n0\n20\n0\n11\n1\n21\n0\n0\nENDBLK\n0\nENDSEC\n" +
	"0\nSECTION\n2\nENTITIES\n" +
	"0\nCIRCLE\n5\nA1\n8\nWalls\n10\n0\n20\n0\n40\n2\n" +
	"0\nINSERT\n8\nDoors\n2\nDOOR\n10\n5\n20\n5\n" +
	"0\nENDSEC\n0\nEOF\n"

func show(t *testing.T, keys ...string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "test.dxf")
	if err := os.WriteFile(fname, []byte(drawing), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, err := Root(fname)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range keys {
		ctx, err = Walk(ctx, key)
		if err != nil {
			t.Fatal(err)
		}
	}
	buf := &strings.Builder{}
	if err := ctx.Show(buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestShow(t *testing.T) {
	cases := []struct {
		keys []string
		want []string
	}{
		{nil, []string{"version: AC1015", "layers: 1", "blocks: 1", "entities: 2"}},
		{[]string{"header"}, []string{"$ACADVER: AC1015"}},
		{[]string{"layers"}, []string{"Walls", "frozen"}},
		{[]string{"layers", "Walls"}, []string{"color: 1 (#FF0000)", "state: frozen"}},
		{[]string{"blocks"}, []string{"DOOR", "entities=1"}},
		{[]string{"blocks", "DOOR", "0"}, []string{"type: LINE", `"type": "LINE"`}},
		{[]string{"entities"}, []string{"CIRCLE", "INSERT", "A1"}},
		{[]string{"entities", "0"}, []string{"handle: A1", `"radius": 2`}},
		{[]string{"entities", "1", "features"}, []string{"LineString", "INSERT"}},
		{[]string{"entities", "1", "features", "0"}, []string{`"blockName": "DOOR"`}},
	}
	for _, c := range cases {
		got := show(t, c.keys...)
		for _, w := range c.want {
			if !strings.Contains(got, w) {
				t.Errorf("%v: output does not contain %q:\n%s", c.keys, w, got)
			}
		}
	}
}

func TestFrozenFeatures(t *testing.T) {
	// the circle is on a frozen layer
	got := show(t, "features")
	if strings.Contains(got, "CIRCLE") {
		t.Errorf("frozen entity listed:\n%s", got)
	}
	if !strings.Contains(got, "LineString: 1") {
		t.Errorf("missing summary:\n%s", got)
	}
}

func TestKeyError(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.dxf")
	if err := os.WriteFile(fname, []byte(drawing), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, err := Root(fname)
	if err != nil {
		t.Fatal(err)
	}

	var keyErr *KeyError
	for _, keys := range [][]string{{"nothing"}, {"entities", "7"}, {"blocks", "WINDOW"}, {"header", "x"}} {
		c := ctx
		for _, key := range keys {
			c, err = Walk(c, key)
			if err != nil {
				break
			}
		}
		if !errors.As(err, &keyErr) {
			t.Errorf("%v: got error %v", keys, err)
		}
	}
}
