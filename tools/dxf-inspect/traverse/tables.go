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
	"fmt"
	"io"
	"regexp"
	"strings"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/aci"
)

type headerCtx struct {
	h *dxf.Header
}

func (c *headerCtx) Next() []Step {
	return nil
}

func (c *headerCtx) Show(w io.Writer) error {
	h := c.h
	fmt.Fprintln(w, "$ACADVER:", h.Version)
	if h.CodePage != "" {
		fmt.Fprintln(w, "$DWGCODEPAGE:", h.CodePage)
	}
	if h.InsertionUnits != nil {
		fmt.Fprintln(w, "$INSUNITS:", *h.InsertionUnits)
	}
	if ext, ok := h.Extent(); ok {
		fmt.Fprintf(w, "extent: [%g %g %g %g]\n", ext.LLx, ext.LLy, ext.URx, ext.URy)
	}
	return nil
}

type layersCtx struct {
	t *dxf.Tables
}

func (c *layersCtx) Next() []Step {
	return []Step{
		{
			Match: regexp.MustCompile(`^.+$`),
			Desc:  "layer name",
			Next: func(key string) (Context, error) {
				layer := c.t.Layers[key]
				if layer == nil {
					return nil, &KeyError{Key: key, Ctx: "layer name"}
				}
				return &layerCtx{layer: layer}, nil
			},
		},
	}
}

func (c *layersCtx) Show(w io.Writer) error {
	width := lineWidth()
	for _, name := range c.t.LayerNames() {
		l := c.t.Layers[name]
		line := fmt.Sprintf("%-20s %3d %-12s %s", l.Name, l.ColorIndex, l.LineType, layerState(l))
		fmt.Fprintln(w, clip(strings.TrimRight(line, " "), width))
	}
	return nil
}

type layerCtx struct {
	layer *dxf.Layer
}

func (c *layerCtx) Next() []Step {
	return nil
}

func (c *layerCtx) Show(w io.Writer) error {
	l := c.layer
	fmt.Fprintln(w, "name:", l.Name)
	fmt.Fprintf(w, "color: %d (%s)\n", l.ColorIndex, aci.Hex(l.ColorIndex))
	if l.LineType != "" {
		fmt.Fprintln(w, "line type:", l.LineType)
	}
	fmt.Fprintln(w, "flags:", l.Flags)
	if s := layerState(l); s != "" {
		fmt.Fprintln(w, "state:", s)
	}
	return nil
}

func layerState(l *dxf.Layer) string {
	var state []string
	if l.Frozen {
		state = append(state, "frozen")
	}
	if l.Off {
		state = append(state, "off")
	}
	return strings.Join(state, ",")
}

type stylesCtx struct {
	t *dxf.Tables
}

func (c *stylesCtx) Next() []Step {
	return nil
}

func (c *stylesCtx) Show(w io.Writer) error {
	for _, name := range sortedKeys(c.t.Styles) {
		s := c.t.Styles[name]
		fmt.Fprintf(w, "%-20s %-20s %g\n", s.Name, s.FontName, s.Height)
	}
	return nil
}

type lineTypesCtx struct {
	t *dxf.Tables
}

func (c *lineTypesCtx) Next() []Step {
	return nil
}

func (c *lineTypesCtx) Show(w io.Writer) error {
	for _, name := range sortedKeys(c.t.LineTypes) {
		lt := c.t.LineTypes[name]
		fmt.Fprintf(w, "%-20s %g %v %s\n", lt.Name, lt.PatternLength, lt.Elements, lt.Description)
	}
	return nil
}
