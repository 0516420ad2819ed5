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
	"strings"

	"seehuhn.de/go/dxf/scanner"
)

// Sections holds the pairs of the four sections used by this package.
// The SECTION/ENDSEC framing pairs and the section names are not included.
type Sections struct {
	Header   []scanner.Pair
	Tables   []scanner.Pair
	Blocks   []scanner.Pair
	Entities []scanner.Pair
}

// SplitSections groups pairs into sections.
//
// Sections other than HEADER, TABLES, BLOCKS and ENTITIES are discarded, as
// are pairs outside of any section.  Scanning stops at the EOF marker.  If a
// section occurs more than once, the last occurrence is used.
func SplitSections(pairs []scanner.Pair) *Sections {
	res := &Sections{}

	var current string
	var buf []scanner.Pair
	for i := 0; i < len(pairs); i++ {
		p := pairs[i]
		if p.Code == 0 {
			switch p.Value {
			case "EOF":
				return res
			case "SECTION":
				if i+1 < len(pairs) && pairs[i+1].Code == 2 {
					current = strings.ToUpper(pairs[i+1].Value)
					buf = nil
					i++
				}
				continue
			case "ENDSEC":
				res.store(current, buf)
				current = ""
				buf = nil
				continue
			}
		}
		if current != "" {
			buf = append(buf, p)
		}
	}
	return res
}

func (s *Sections) store(name string, pairs []scanner.Pair) {
	if pairs == nil {
		pairs = []scanner.Pair{}
	}
	switch strings.ToLower(name) {
	case "header":
		s.Header = pairs
	case "tables":
		s.Tables = pairs
	case "blocks":
		s.Blocks = pairs
	case "entities":
		s.Entities = pairs
	}
}
