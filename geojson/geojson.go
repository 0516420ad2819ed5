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

// Package geojson encodes features as GeoJSON (RFC 7946).
//
// The wrapper types in this package implement [json.Marshaler]:
//
//	data, err := json.Marshal(&geojson.FeatureCollection{Features: ff})
//
// Coordinates are written with full precision, unless a positive Precision
// is set.  In this case coordinates are rounded to the given number of
// digits after the decimal point.
package geojson

import (
	"encoding/json"

	"seehuhn.de/go/dxf/feature"
	"seehuhn.de/go/dxf/internal/float"
)

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Features []feature.Feature

	// Precision, if positive, is the number of digits kept after the
	// decimal point of coordinates.
	Precision int

	// BBox controls whether a "bbox" member is written.
	BBox bool
}

// Feature is a single GeoJSON feature.
type Feature struct {
	feature.Feature
	Precision int
}

// Geometry is a GeoJSON geometry object.
type Geometry struct {
	feature.Geometry
	Precision int
}

type collectionJSON struct {
	Type     string     `json:"type"`
	BBox     []float64  `json:"bbox,omitempty"`
	Features []*Feature `json:"features"`
}

type featureJSON struct {
	Type       string         `json:"type"`
	Geometry   *Geometry      `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (fc FeatureCollection) MarshalJSON() ([]byte, error) {
	out := &collectionJSON{
		Type:     "FeatureCollection",
		Features: make([]*Feature, len(fc.Features)),
	}
	for i, f := range fc.Features {
		out.Features[i] = &Feature{Feature: f, Precision: fc.Precision}
	}
	if fc.BBox && len(fc.Features) > 0 {
		b := feature.Bounds(fc.Features)
		out.BBox = []float64{
			fc.round(b.LLx), fc.round(b.LLy), fc.round(b.URx), fc.round(b.URy),
		}
	}
	return json.Marshal(out)
}

func (fc FeatureCollection) round(x float64) float64 {
	if fc.Precision > 0 {
		return float.Round(x, fc.Precision)
	}
	return x
}

// MarshalJSON implements the [json.Marshaler] interface.
func (f Feature) MarshalJSON() ([]byte, error) {
	out := &featureJSON{
		Type:       "Feature",
		Properties: f.Properties.Map(),
	}
	if f.Geometry != nil {
		out.Geometry = &Geometry{Geometry: f.Geometry, Precision: f.Precision}
	}
	return json.Marshal(out)
}

// MarshalJSON implements the [json.Marshaler] interface.
// A nil geometry is encoded as null.
func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.Geometry == nil {
		return []byte("null"), nil
	}

	buf := make([]byte, 0, 64)
	buf = append(buf, `{"type":"`...)
	buf = append(buf, g.Geometry.Type()...)
	buf = append(buf, `","coordinates":`...)
	switch geom := g.Geometry.(type) {
	case feature.Point:
		buf = g.appendCoord(buf, feature.Coord(geom))
	case feature.LineString:
		buf = g.appendRing(buf, geom)
	case feature.Polygon:
		buf = g.appendPolygon(buf, geom)
	case feature.MultiPolygon:
		buf = append(buf, '[')
		for i, poly := range geom {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = g.appendPolygon(buf, poly)
		}
		buf = append(buf, ']')
	}
	buf = append(buf, '}')
	return buf, nil
}

func (g Geometry) appendPolygon(buf []byte, poly feature.Polygon) []byte {
	buf = append(buf, '[')
	for i, ring := range poly {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = g.appendRing(buf, ring)
	}
	return append(buf, ']')
}

func (g Geometry) appendRing(buf []byte, ring []feature.Coord) []byte {
	buf = append(buf, '[')
	for i, c := range ring {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = g.appendCoord(buf, c)
	}
	return append(buf, ']')
}

func (g Geometry) appendCoord(buf []byte, c feature.Coord) []byte {
	buf = append(buf, '[')
	for i, x := range c {
		if i > 0 {
			buf = append(buf, ',')
		}
		if g.Precision > 0 {
			buf = append(buf, float.Format(x, g.Precision)...)
		} else {
			buf = float.Append(buf, x)
		}
	}
	return append(buf, ']')
}
