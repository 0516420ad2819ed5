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
	"seehuhn.de/go/dxf/scanner"
	"seehuhn.de/go/geom/vec"
)

// Block is a named block definition from the BLOCKS section.
type Block struct {
	Name string

	// BasePoint is the point of the block which is placed at the insertion
	// point of an INSERT.
	BasePoint vec.Vec2

	Flags    int
	Entities []Entity
}

// ParseBlocks reads the block definitions from the pairs of a BLOCKS
// section.  A block which is not terminated by ENDBLK is ignored.  If two
// blocks have the same name, the later one is used.
func ParseBlocks(pairs []scanner.Pair) map[string]*Block {
	blocks := make(map[string]*Block)

	var cur *Block
	var body []scanner.Pair
	collecting := false
	for _, p := range pairs {
		if p.Code == 0 {
			switch p.Value {
			case "BLOCK":
				cur = &Block{}
				body = nil
				collecting = false
				continue
			case "ENDBLK":
				if cur != nil && cur.Name != "" {
					cur.Entities = ParseEntities(body)
					blocks[cur.Name] = cur
				}
				cur = nil
				body = nil
				collecting = false
				continue
			}
		}
		if cur == nil {
			continue
		}

		if collecting {
			body = append(body, p)
			continue
		}
		switch p.Code {
		case 0:
			collecting = true
			body = append(body, p)
		case 2:
			cur.Name = p.Value
		case 10:
			cur.BasePoint.X = parseFloat(p.Value)
		case 20:
			cur.BasePoint.Y = parseFloat(p.Value)
		case 70:
			cur.Flags = parseInt(p.Value)
		}
	}

	return blocks
}
