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

// Package scanner breaks DXF text into group code/value pairs.
//
// A DXF file is a sequence of lines which are read two at a time: the first
// line of each pair holds an integer group code, the second line holds the
// value.  The meaning of the value depends on the group code and on the
// context in which the pair appears.
//
// Parse errors are ignored: a pair whose code line is blank or not an
// integer is dropped, and scanning resumes at the next two-line boundary.
package scanner

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Pair is a single DXF group code/value pair.
type Pair struct {
	Code  int
	Value string
}

// A Scanner reads group code/value pairs from an io.Reader.
type Scanner struct {
	src  *bufio.Reader
	done bool
	line int

	// err is the first error returned by src, other than io.EOF.
	err error
}

// New returns a scanner which reads from r.
func New(r io.Reader) *Scanner {
	return &Scanner{
		src: bufio.NewReaderSize(r, 64*1024),
	}
}

// Pairs returns an iterator over all pairs in the input.
//
// The iterator reads the input lazily.  Once the input is exhausted,
// or if reading fails, the iteration stops.  Use [Scanner.Err] to
// distinguish the two cases.
func (s *Scanner) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for {
			codeLine, ok := s.readLine()
			if !ok {
				return
			}
			valueLine, ok := s.readLine()
			if !ok {
				return
			}

			codeLine = strings.TrimSpace(codeLine)
			if codeLine == "" {
				continue
			}
			code, err := strconv.Atoi(codeLine)
			if err != nil {
				continue
			}

			if !yield(Pair{Code: code, Value: strings.TrimSpace(valueLine)}) {
				return
			}
		}
	}
}

// Err returns the first read error encountered by the scanner.
// End of input is not reported as an error.
func (s *Scanner) Err() error {
	return s.err
}

// Line returns the number of lines consumed so far.
func (s *Scanner) Line() int {
	return s.line
}

// readLine returns the next line without the line terminator.
// Text after the last newline counts as a line, even if it is empty.
func (s *Scanner) readLine() (string, bool) {
	if s.done {
		return "", false
	}
	line, err := s.src.ReadString('\n')
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
			return "", false
		}
	} else {
		line = line[:len(line)-1]
	}
	if s.line == 0 {
		line = strings.TrimPrefix(line, "\ufeff")
	}
	s.line++
	return line, true
}

// Tokenize splits DXF text into pairs.
func Tokenize(text string) []Pair {
	s := New(strings.NewReader(text))
	var res []Pair
	for p := range s.Pairs() {
		res = append(res, p)
	}
	return res
}
