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

// Package dxf reads AutoCAD DXF drawing exchange files.
//
// A DXF file is a sequence of group code/value pairs (see the
// [seehuhn.de/go/dxf/scanner] package), organised into sections.  This
// package reconstructs the HEADER, TABLES, BLOCKS and ENTITIES sections of
// an ASCII DXF file into a [Document]:
//
//	doc := dxf.Parse(text)
//	for _, e := range doc.Entities {
//	    switch e := e.(type) {
//	    case *dxf.Line:
//	        fmt.Println(e.Start, e.End)
//	    case *dxf.Insert:
//	        fmt.Println("block", e.BlockName)
//	    }
//	}
//
// Parsing is permissive.  DXF files found in the wild are often slightly
// non-conformant, so malformed pairs, entries and entities are dropped
// instead of being reported as errors.  Numeric values which cannot be
// parsed are read as zero.
//
// Entities are represented by one Go type per DXF entity type.  All of these
// implement the [Entity] interface:
//
//	*Line       LINE
//	*Point      POINT
//	*Circle     CIRCLE
//	*Arc        ARC
//	*Ellipse    ELLIPSE
//	*LWPolyline LWPOLYLINE
//	*Polyline   POLYLINE (with its VERTEX records)
//	*Spline     SPLINE
//	*Text       TEXT
//	*MText      MTEXT
//	*Insert     INSERT (with its ATTRIB records)
//	*Face3D     3DFACE
//	*Solid      SOLID
//	*Hatch      HATCH
//	*Dimension  DIMENSION
//
// Other entity types are skipped.
//
// The [seehuhn.de/go/dxf/feature] package converts the entities of a
// document into tessellated point, line and polygon geometry.
package dxf
