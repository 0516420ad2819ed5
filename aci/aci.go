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

// Package aci implements the AutoCAD Color Index.
//
// The AutoCAD Color Index (ACI) is a fixed palette of 256 colours which DXF
// files refer to by number.  Index 0 and 256 are the special values "by
// block" and "by layer".
package aci

import (
	"fmt"
	"image/color"
)

// Special colour indices.
const (
	ByBlock = 0
	ByLayer = 256
	Default = 7
)

// Hex returns the colour with index i as an upper-case "#RRGGBB" string.
// Indices outside the range 0 to 255 are shown as white.
func Hex(i int) string {
	rgb := lookup(i)
	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}

// RGBA returns the colour with index i.
// Indices outside the range 0 to 255 are shown as white.
func RGBA(i int) color.NRGBA {
	rgb := lookup(i)
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func lookup(i int) [3]uint8 {
	if i < 0 || i >= len(palette) {
		return [3]uint8{255, 255, 255}
	}
	return palette[i]
}
