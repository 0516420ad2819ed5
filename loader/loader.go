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

// Package loader reads DXF drawings and returns them in one of several
// output shapes.
//
// The shape is selected by name, as in the following example:
//
//	t, err := loader.Open("plan.dxf", &loader.Options{Shape: loader.ShapeColumnarTable})
//
// The default shape is [ShapeGeoJSONTable].
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/columnar"
	"seehuhn.de/go/dxf/feature"
	"seehuhn.de/go/dxf/geojson"
)

// Shape names an output shape.
type Shape string

// These are the supported shapes.
const (
	// ShapeGeoJSONTable gives a [*GeoJSONTable].
	ShapeGeoJSONTable Shape = "geojson-table"

	// ShapeObjectRowTable gives an [*ObjectRowTable].
	ShapeObjectRowTable Shape = "object-row-table"

	// ShapeColumnarTable gives a [*ColumnarTable].
	ShapeColumnarTable Shape = "columnar-table"

	// ShapeDocument gives a [*Document], without converting the entities.
	ShapeDocument Shape = "dxf-document"
)

// Shapes lists all supported shapes.
var Shapes = []Shape{
	ShapeGeoJSONTable,
	ShapeObjectRowTable,
	ShapeColumnarTable,
	ShapeDocument,
}

// ErrUnsupportedShape is returned when an unknown output shape is
// requested.
var ErrUnsupportedShape = errors.New("unsupported shape")

// ParseShape checks a shape name.  The empty string selects the default
// shape.
func ParseShape(name string) (Shape, error) {
	if name == "" {
		return ShapeGeoJSONTable, nil
	}
	for _, s := range Shapes {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("DXF loader: %w %q", ErrUnsupportedShape, name)
}

// Options control how a drawing is loaded.
type Options struct {
	// Shape selects the output shape.  If this is empty,
	// [ShapeGeoJSONTable] is used.
	Shape Shape

	// Convert holds the options for the conversion of entities to
	// features.  If this is nil, [feature.DefaultOptions] are used.
	Convert *feature.Options
}

// Table is the result of loading a drawing.  This is one of
// [*GeoJSONTable], [*ObjectRowTable], [*ColumnarTable] or [*Document].
type Table interface {
	Shape() Shape
}

// GeoJSONTable holds the features of a drawing as a feature collection.
type GeoJSONTable struct {
	Features []feature.Feature
}

// Shape implements the [Table] interface.
func (*GeoJSONTable) Shape() Shape { return ShapeGeoJSONTable }

// MarshalJSON encodes the table as a GeoJSON feature collection.
func (t *GeoJSONTable) MarshalJSON() ([]byte, error) {
	return geojson.FeatureCollection{Features: t.Features}.MarshalJSON()
}

// ObjectRowTable holds the features of a drawing as a list of rows.
type ObjectRowTable struct {
	Data []feature.Feature
}

// Shape implements the [Table] interface.
func (*ObjectRowTable) Shape() Shape { return ShapeObjectRowTable }

// ColumnarTable holds the features of a drawing grouped by geometry kind.
type ColumnarTable struct {
	*columnar.Tables
}

// Shape implements the [Table] interface.
func (*ColumnarTable) Shape() Shape { return ShapeColumnarTable }

// Document holds the parsed drawing.
type Document struct {
	*dxf.Document
}

// Shape implements the [Table] interface.
func (*Document) Shape() Shape { return ShapeDocument }

// Load parses DXF text and returns it in the requested shape.
// If opt is nil, default options are used.
func Load(text string, opt *Options) (Table, error) {
	if opt == nil {
		opt = &Options{}
	}
	shape, err := ParseShape(string(opt.Shape))
	if err != nil {
		return nil, err
	}
	return convert(dxf.Parse(text), shape, opt.Convert), nil
}

// Read reads a DXF file from r and returns it in the requested shape.
// Files which are not valid UTF-8 are decoded using the code page given
// in the header.
func Read(r io.Reader, opt *Options) (Table, error) {
	if opt == nil {
		opt = &Options{}
	}
	shape, err := ParseShape(string(opt.Shape))
	if err != nil {
		return nil, err
	}
	doc, err := dxf.Read(r)
	if err != nil {
		return nil, err
	}
	return convert(doc, shape, opt.Convert), nil
}

// Open reads the named DXF file.
func Open(fname string, opt *Options) (Table, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd, opt)
}

func convert(doc *dxf.Document, shape Shape, opt *feature.Options) Table {
	switch shape {
	case ShapeObjectRowTable:
		return &ObjectRowTable{Data: feature.NewConverter(doc, opt).Features()}
	case ShapeColumnarTable:
		return &ColumnarTable{Tables: columnar.Convert(doc, opt)}
	case ShapeDocument:
		return &Document{Document: doc}
	default:
		return &GeoJSONTable{Features: feature.NewConverter(doc, opt).Features()}
	}
}
