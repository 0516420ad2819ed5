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
	"golang.org/x/exp/slices"

	"seehuhn.de/go/dxf/scanner"
)

// Layer is an entry of the LAYER table.
type Layer struct {
	Name string

	// ColorIndex is the AutoCAD Color Index of the layer.  This is always
	// positive, the sign used in the file to switch layers off is
	// recorded in Off.
	ColorIndex int

	Flags    int
	LineType string

	Frozen bool
	Off    bool
}

// LineType is an entry of the LTYPE table.
type LineType struct {
	Name          string
	Description   string
	PatternLength float64

	// Elements gives the dash and gap lengths of the pattern.  Positive
	// values are dashes, negative values are gaps, zero is a dot.
	Elements []float64
}

// Style is an entry of the STYLE table.
type Style struct {
	Name     string
	FontName string
	Height   float64
}

// Tables holds the symbol tables used by this package.
// All maps are keyed by entry name.
type Tables struct {
	Layers    map[string]*Layer
	LineTypes map[string]*LineType
	Styles    map[string]*Style
}

// LayerNames returns the names of all layers in sorted order.
func (t *Tables) LayerNames() []string {
	names := make([]string, 0, len(t.Layers))
	for name := range t.Layers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseTables reads the LAYER, LTYPE and STYLE tables from the pairs of a
// TABLES section.  Other tables are skipped.  Entries without a name are
// ignored, and later entries replace earlier entries with the same name.
func ParseTables(pairs []scanner.Pair) *Tables {
	t := &Tables{
		Layers:    make(map[string]*Layer),
		LineTypes: make(map[string]*LineType),
		Styles:    make(map[string]*Style),
	}

	var tableType string
	var entry record
	inEntry := false
	flush := func() {
		if inEntry {
			t.store(tableType, entry)
		}
		entry = nil
		inEntry = false
	}

	for i := 0; i < len(pairs); i++ {
		p := pairs[i]
		if p.Code != 0 {
			if inEntry {
				entry = append(entry, p)
			}
			continue
		}

		switch p.Value {
		case "TABLE":
			flush()
			if i+1 < len(pairs) && pairs[i+1].Code == 2 {
				tableType = pairs[i+1].Value
				i++
			}
		case "ENDTAB":
			flush()
			tableType = ""
		default:
			flush()
			inEntry = true
		}
	}
	flush()

	return t
}

func (t *Tables) store(tableType string, r record) {
	name := r.str(2)
	if tableType == "" || name == "" {
		return
	}

	switch tableType {
	case "LAYER":
		color := r.int(62, 0)
		flags := r.int(70, 0)
		l := &Layer{
			Name:       name,
			ColorIndex: color,
			Flags:      flags,
			LineType:   r.str(6),
			Frozen:     flags&1 != 0,
			Off:        color < 0,
		}
		if l.ColorIndex < 0 {
			l.ColorIndex = -l.ColorIndex
		}
		if l.ColorIndex == 0 {
			l.ColorIndex = 7
		}
		t.Layers[name] = l

	case "LTYPE":
		lt := &LineType{
			Name:          name,
			Description:   r.str(3),
			PatternLength: r.float(40, 0),
		}
		for _, p := range r {
			if p.Code == 49 {
				lt.Elements = append(lt.Elements, parseFloat(p.Value))
			}
		}
		t.LineTypes[name] = lt

	case "STYLE":
		s := &Style{
			Name:     name,
			FontName: r.str(7),
			Height:   r.float(40, 0),
		}
		if s.FontName == "" {
			s.FontName = r.str(3)
		}
		t.Styles[name] = s
	}
}
