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
	"io"

	"seehuhn.de/go/dxf/scanner"
)

// Document is the content of a DXF file.
type Document struct {
	Header   *Header
	Tables   *Tables
	Blocks   map[string]*Block
	Entities []Entity
}

// Parse decodes DXF text.
//
// Parse never fails.  Malformed parts of the input are skipped, and an input
// which is not DXF at all gives an empty document.
func Parse(text string) *Document {
	return FromPairs(scanner.Tokenize(text))
}

// Read reads a DXF file from r.
//
// If the data is not valid UTF-8, it is decoded using the code page
// given by the $DWGCODEPAGE header variable.  An error is returned only if
// reading from r fails.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(decodeBytes(data)), nil
}

// FromPairs assembles a document from a sequence of group code/value pairs.
func FromPairs(pairs []scanner.Pair) *Document {
	sec := SplitSections(pairs)
	return &Document{
		Header:   ParseHeader(sec.Header),
		Tables:   ParseTables(sec.Tables),
		Blocks:   ParseBlocks(sec.Blocks),
		Entities: ParseEntities(sec.Entities),
	}
}

// Layer returns the layer with the given name, or nil if the layer
// is not defined in the LAYER table.
func (d *Document) Layer(name string) *Layer {
	return d.Tables.Layers[name]
}
