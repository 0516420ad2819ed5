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
	"strconv"

	"seehuhn.de/go/dxf/scanner"
	"seehuhn.de/go/geom/rect"
)

// Header holds the drawing variables read from the HEADER section.
// Fields are nil or empty if the corresponding variable is not set.
type Header struct {
	// Version is the value of $ACADVER, for example "AC1027".
	Version string

	// InsertionUnits is the value of $INSUNITS.
	InsertionUnits *Units

	// ExtMin and ExtMax are the drawing extents, $EXTMIN and $EXTMAX.
	ExtMin, ExtMax *Vec3

	// CodePage is the value of $DWGCODEPAGE, for example "ANSI_1252".
	CodePage string
}

// Extent returns the 2D drawing extents stored in the header.
// The second return value is false if either corner is missing.
func (h *Header) Extent() (rect.Rect, bool) {
	if h.ExtMin == nil || h.ExtMax == nil {
		return rect.Rect{}, false
	}
	return rect.Rect{
		LLx: h.ExtMin.X,
		LLy: h.ExtMin.Y,
		URx: h.ExtMax.X,
		URy: h.ExtMax.Y,
	}, true
}

// ParseHeader reads the drawing variables from the pairs of a HEADER
// section.  Unknown variables are ignored.
func ParseHeader(pairs []scanner.Pair) *Header {
	h := &Header{}

	var variable string
	for _, p := range pairs {
		if p.Code == 9 {
			variable = p.Value
			continue
		}

		switch variable {
		case "$ACADVER":
			if p.Code == 1 {
				h.Version = p.Value
			}
		case "$INSUNITS":
			if p.Code == 70 {
				u := Units(parseInt(p.Value))
				h.InsertionUnits = &u
			}
		case "$EXTMIN":
			h.ExtMin = setExtent(h.ExtMin, p)
		case "$EXTMAX":
			h.ExtMax = setExtent(h.ExtMax, p)
		case "$DWGCODEPAGE":
			if p.Code == 3 {
				h.CodePage = p.Value
			}
		}
	}

	return h
}

// setExtent applies one coordinate pair to an extent point.  The y and z
// coordinates are only accepted once the x coordinate has been seen.
func setExtent(pt *Vec3, p scanner.Pair) *Vec3 {
	switch {
	case p.Code == 10:
		return &Vec3{X: parseFloat(p.Value)}
	case p.Code == 20 && pt != nil:
		pt.Y = parseFloat(p.Value)
	case p.Code == 30 && pt != nil:
		pt.Z = parseFloat(p.Value)
	}
	return pt
}

// Units is a drawing unit, as used by the $INSUNITS header variable.
type Units int

// These are the values of [Units] defined by the DXF format.
const (
	Unitless Units = iota
	Inches
	Feet
	Miles
	Millimeters
	Centimeters
	Meters
	Kilometers
	Microinches
	Mils
	Yards
	Angstroms
	Nanometers
	Microns
	Decimeters
	Decameters
	Hectometers
	Gigameters
	AstronomicalUnits
	LightYears
	Parsecs
	USSurveyFeet
	USSurveyInches
	USSurveyYards
	USSurveyMiles
)

var unitNames = []string{
	"unitless",
	"inches",
	"feet",
	"miles",
	"millimeters",
	"centimeters",
	"meters",
	"kilometers",
	"microinches",
	"mils",
	"yards",
	"angstroms",
	"nanometers",
	"microns",
	"decimeters",
	"decameters",
	"hectometers",
	"gigameters",
	"astronomical units",
	"light years",
	"parsecs",
	"US survey feet",
	"US survey inches",
	"US survey yards",
	"US survey miles",
}

func (u Units) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "units(" + strconv.Itoa(int(u)) + ")"
}
