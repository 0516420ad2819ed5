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
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadCodePage(t *testing.T) {
	cases := []struct {
		codePage string
		raw      []byte
		want     string
	}{
		{"ANSI_1252", []byte{'C', 'a', 'f', 0xe9}, "Café"},
		{"ANSI_1251", []byte{0xcf, 0xf0, 0xe8}, "При"},
		{"", []byte{'G', 'r', 0xfc, 0xdf, 'e'}, "Grüße"},
		{"UNKNOWN", []byte{0xb0}, "°"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		buf.WriteString("0\nSECTION\n2\nHEADER\n")
		if c.codePage != "" {
			buf.WriteString("9\n$DWGCODEPAGE\n3\n" + c.codePage + "\n")
		}
		buf.WriteString("0\nENDSEC\n0\nSECTION\n2\nENTITIES\n0\nTEXT\n1\n")
		buf.Write(c.raw)
		buf.WriteString("\n0\nENDSEC\n0\nEOF\n")

		doc, err := Read(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if len(doc.Entities) != 1 {
			t.Fatalf("%s: got %d entities", c.codePage, len(doc.Entities))
		}
		got := doc.Entities[0].(*Text).Value
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.codePage, got, c.want)
		}
		if doc.Header.CodePage != c.codePage {
			t.Errorf("code page %q, want %q", doc.Header.CodePage, c.codePage)
		}
	}
}

func TestReadUTF8(t *testing.T) {
	// Valid UTF-8 is used as is, even if a code page is declared.
	in := "0\nSECTION\n2\nHEADER\n9\n$DWGCODEPAGE\n3\nANSI_1252\n0\nENDSEC\n" +
		"0\nSECTION\n2\nENTITIES\n0\nTEXT\n1\nÄrger\n0\nENDSEC\n"
	doc, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Entities[0].(*Text).Value; got != "Ärger" {
		t.Errorf("got %q", got)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errBroken
}

var errBroken = errors.New("broken reader")

func TestReadError(t *testing.T) {
	_, err := Read(errReader{})
	if !errors.Is(err, errBroken) {
		t.Errorf("unexpected error %v", err)
	}
}
