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

// Package feature converts the entities of a DXF drawing into geometric
// features.
//
// Each entity gives one or more features, consisting of a [Geometry] and
// the [Properties] of the entity.  Curves are approximated by line
// segments, and references to block definitions are expanded recursively.
package feature

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/aci"
	"seehuhn.de/go/dxf/mtext"
)

// Parse decodes DXF text and converts all entities into features.
// If opt is nil, [DefaultOptions] are used.
func Parse(text string, opt *Options) []Feature {
	return NewConverter(dxf.Parse(text), opt).Features()
}

// Converter converts the entities of one document.
// A Converter does not modify the document.
type Converter struct {
	doc *dxf.Document
	opt *Options
}

// NewConverter returns a converter for the given document.
// If opt is nil, [DefaultOptions] are used.  Non-positive numeric options
// are replaced by their default values.
func NewConverter(doc *dxf.Document, opt *Options) *Converter {
	return &Converter{
		doc: doc,
		opt: withDefaults(opt),
	}
}

// Features converts all entities of the ENTITIES section which pass the
// filters set in the options.
func (c *Converter) Features() []Feature {
	var res []Feature
	for _, e := range c.doc.Entities {
		if !c.Include(e) {
			continue
		}
		res = append(res, c.Convert(e)...)
	}
	return res
}

// Convert converts a top-level entity, and sets the common properties of
// all resulting features to those of e.  No filters are applied.
func (c *Converter) Convert(e dxf.Entity) []Feature {
	ff := c.Entity(e, 0)
	for i := range ff {
		c.setCommon(&ff[i].Properties, e)
	}
	return ff
}

// Include reports whether a top-level entity passes the entity type, layer,
// visibility and frozen layer filters.
func (c *Converter) Include(e dxf.Entity) bool {
	opt := c.opt
	base := e.Common()
	if len(opt.EntityTypes) > 0 && !slices.Contains(opt.EntityTypes, e.Type()) {
		return false
	}
	if len(opt.Layers) > 0 && !slices.Contains(opt.Layers, base.Layer) {
		return false
	}
	if !opt.IncludeInvisible && !base.Visible {
		return false
	}
	if !opt.IncludeFrozenLayers {
		if layer := c.doc.Layer(base.Layer); layer != nil && layer.Frozen {
			return false
		}
	}
	return true
}

// Entity converts a single entity.  The depth argument gives the nesting
// level of block references, and is 0 for top-level entities.
//
// Only the entity-specific properties of the returned features are set.
// Use [Converter.Properties] to obtain the common properties.
func (c *Converter) Entity(e dxf.Entity, depth int) []Feature {
	var g Geometry
	var p Properties
	switch e := e.(type) {
	case *dxf.Line:
		g = LineString{c.coord(e.Start), c.coord(e.End)}
	case *dxf.Point:
		g = Point(c.coord(e.Position))
	case *dxf.Circle:
		g = c.circle(e)
	case *dxf.Arc:
		g = c.arc(e)
	case *dxf.Ellipse:
		g = c.ellipse(e)
	case *dxf.LWPolyline:
		g = c.lwPolyline(e)
	case *dxf.Polyline:
		g = c.polyline(e)
	case *dxf.Spline:
		g = c.spline(e)
	case *dxf.Text:
		g = Point(c.coord(e.Insertion))
		p.Text = textProperties(mtext.Decode(e.Value), e.Height, e.Rotation, e.Style)
	case *dxf.MText:
		g = Point(c.coord(e.Insertion))
		p.Text = textProperties(mtext.Plain(e.Value), e.Height, e.Rotation, e.Style)
		width := e.Width
		p.Text.Width = &width
	case *dxf.Insert:
		if c.opt.NoBlockReferences {
			return nil
		}
		return c.insert(e, depth)
	case *dxf.Face3D:
		g = c.face(e.Vertices)
	case *dxf.Solid:
		vv := e.Vertices
		if len(vv) == 4 {
			vv = []dxf.Vec3{vv[0], vv[1], vv[3], vv[2]}
		}
		g = c.face(vv)
	case *dxf.Hatch:
		g = c.hatch(e)
	case *dxf.Dimension:
		return c.dimension(e)
	default:
		return nil
	}
	return []Feature{{Geometry: g, Properties: p}}
}

// Properties returns the common properties of an entity, with the colour
// resolved against the layer table.
func (c *Converter) Properties(e dxf.Entity) Properties {
	var p Properties
	c.setCommon(&p, e)
	return p
}

func (c *Converter) setCommon(p *Properties, e dxf.Entity) {
	base := e.Common()

	idx := aci.Default
	if base.ColorIndex != nil && *base.ColorIndex != aci.ByLayer {
		idx = *base.ColorIndex
	} else if layer := c.doc.Layer(base.Layer); layer != nil {
		idx = layer.ColorIndex
	}

	p.Layer = base.Layer
	p.EntityType = e.Type()
	p.Color = aci.Hex(idx)
	p.ColorIndex = idx
	p.Handle = base.Handle
	p.LineType = base.LineType
	p.LineWeight = base.LineWeight
}

func (c *Converter) dimension(e *dxf.Dimension) []Feature {
	props := func() Properties {
		return Properties{
			Dimension: &DimensionProperties{
				Type:        e.DimType,
				Text:        e.Text,
				Measurement: e.Measurement,
			},
		}
	}

	var res []Feature
	if e.Linear != nil {
		res = append(res, Feature{
			Geometry:   LineString{c.coord(e.Definition), c.coord(*e.Linear)},
			Properties: props(),
		})
	}
	res = append(res, Feature{
		Geometry:   Point(c.coord(e.TextMid)),
		Properties: props(),
	})
	return res
}
