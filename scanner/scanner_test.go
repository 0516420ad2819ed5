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

package scanner

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []Pair
	}{
		{"", nil},
		{"0\nEOF\n", []Pair{{0, "EOF"}}},
		{"0\nEOF", []Pair{{0, "EOF"}}},
		{"0\r\nSECTION\r\n2\r\nHEADER\r\n", []Pair{{0, "SECTION"}, {2, "HEADER"}}},
		{"  10 \n  1.5  \n 20\n-3\n", []Pair{{10, "1.5"}, {20, "-3"}}},
		// an unparsable code drops the whole pair
		{"x\nfoo\n8\nLayer1\n", []Pair{{8, "Layer1"}}},
		// a blank code line drops the whole pair
		{"\nfoo\n8\nLayer1\n", []Pair{{8, "Layer1"}}},
		// a code line without value line is dropped
		{"8\nLayer1\n62", []Pair{{8, "Layer1"}}},
		// a trailing newline yields an empty value
		{"1\n", []Pair{{1, ""}}},
		{"\ufeff0\nEOF\n", []Pair{{0, "EOF"}}},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			got := Tokenize(c.in)
			if d := cmp.Diff(c.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestEarlyStop(t *testing.T) {
	s := New(strings.NewReader("0\nA\n0\nB\n0\nC\n"))
	var got []string
	for p := range s.Pairs() {
		got = append(got, p.Value)
		if p.Value == "B" {
			break
		}
	}
	if d := cmp.Diff([]string{"A", "B"}, got); d != "" {
		t.Error(d)
	}
	if s.Line() != 4 {
		t.Errorf("line=%d, want 4", s.Line())
	}
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadError(t *testing.T) {
	errBroken := errors.New("broken")
	s := New(&failingReader{data: "0\nSECTION\n2\n", err: errBroken})
	var n int
	for range s.Pairs() {
		n++
	}
	if n != 1 {
		t.Errorf("got %d pairs, want 1", n)
	}
	if !errors.Is(s.Err(), errBroken) {
		t.Errorf("unexpected error %v", s.Err())
	}

	s = New(strings.NewReader("0\nEOF\n"))
	for range s.Pairs() {
	}
	if s.Err() != nil {
		t.Errorf("unexpected error %v", s.Err())
	}
}

func FuzzTokenize(f *testing.F) {
	f.Add("0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n")
	f.Add("x\ny\n")
	f.Add("\r\n\r\n")
	f.Fuzz(func(t *testing.T, in string) {
		pairs := Tokenize(in)
		if len(pairs) > strings.Count(in, "\n")/2+1 {
			t.Errorf("too many pairs: %d", len(pairs))
		}
		for _, p := range pairs {
			if p.Value != strings.TrimSpace(p.Value) {
				t.Errorf("value %q not trimmed", p.Value)
			}
		}
	})
}

func BenchmarkTokenize(b *testing.B) {
	var sb strings.Builder
	for i := range 1000 {
		fmt.Fprintf(&sb, "0\nLINE\n8\n0\n10\n%d\n20\n%d\n11\n1\n21\n1\n", i, i)
	}
	text := sb.String()

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(text)
	}
}
