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

package feature

// Feature is a geometry together with the properties of the entity it was
// generated from.
type Feature struct {
	Geometry   Geometry
	Properties Properties
}

// Properties describes the entity a feature was generated from.
//
// For features produced by expanding a block reference, the common fields
// (Layer to LineWeight) describe the top-level INSERT entity.
type Properties struct {
	Layer      string
	EntityType string

	// Color is the resolved colour as a "#RRGGBB" string, and ColorIndex
	// the corresponding AutoCAD Color Index.
	Color      string
	ColorIndex int

	Handle     string
	LineType   string
	LineWeight *int

	// Text is set for TEXT, MTEXT and attribute features.
	Text *TextProperties

	// Dimension is set for DIMENSION features.
	Dimension *DimensionProperties

	// BlockName is the name of the block a feature was taken from, if the
	// feature was produced by expanding a block reference.
	BlockName string

	// AttributeTag is the tag of an attribute feature.
	AttributeTag string
}

// TextProperties are the properties of a text feature.
type TextProperties struct {
	// Value is the plain text, with all formatting codes removed.
	Value    string
	Height   float64
	Rotation float64 // degrees
	Style    string

	// Width is the reference rectangle width of MTEXT entities.
	Width *float64
}

// DimensionProperties are the properties of a DIMENSION feature.
type DimensionProperties struct {
	Type        int
	Text        string
	Measurement *float64
}

// Map returns the properties as a map, using the property names of the
// GeoJSON output.  Optional fields are omitted if unset.
func (p *Properties) Map() map[string]any {
	m := map[string]any{
		"layer":      p.Layer,
		"entityType": p.EntityType,
		"color":      p.Color,
		"colorIndex": p.ColorIndex,
	}
	if p.Handle != "" {
		m["handle"] = p.Handle
	}
	if p.LineType != "" {
		m["lineType"] = p.LineType
	}
	if p.LineWeight != nil {
		m["lineWeight"] = *p.LineWeight
	}
	if t := p.Text; t != nil {
		m["text"] = t.Value
		m["textHeight"] = t.Height
		m["textRotation"] = t.Rotation
		if t.Style != "" {
			m["textStyle"] = t.Style
		}
		if t.Width != nil {
			m["textWidth"] = *t.Width
		}
	}
	if d := p.Dimension; d != nil {
		m["dimensionType"] = d.Type
		m["text"] = d.Text
		if d.Measurement != nil {
			m["measurement"] = *d.Measurement
		}
	}
	if p.BlockName != "" {
		m["blockName"] = p.BlockName
	}
	if p.AttributeTag != "" {
		m["attributeTag"] = p.AttributeTag
	}
	return m
}
