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
	"math"

	"seehuhn.de/go/dxf/scanner"
)

// ParseEntities decodes the pairs of an ENTITIES section, or of a block
// body, into entities.  Entity types not supported by this package are
// skipped.
func ParseEntities(pairs []scanner.Pair) []Entity {
	var res []Entity

	i := 0
	// next returns the pairs up to, but not including, the next code 0 pair.
	next := func() record {
		start := i
		for i < len(pairs) && pairs[i].Code != 0 {
			i++
		}
		return record(pairs[start:i])
	}
	// peek reports whether the next pair starts a record of type tp.
	peek := func(tp string) bool {
		return i < len(pairs) && pairs[i].Code == 0 && pairs[i].Value == tp
	}

	for i < len(pairs) {
		if pairs[i].Code != 0 {
			i++
			continue
		}
		tp := pairs[i].Value
		i++
		r := next()

		switch tp {
		case "POLYLINE":
			var vertices []record
			for peek("VERTEX") {
				i++
				vertices = append(vertices, next())
			}
			if peek("SEQEND") {
				i++
				next()
			}
			res = append(res, decodePolyline(r, vertices))

		case "INSERT":
			ins := decodeInsert(r)
			if peek("ATTRIB") {
				for peek("ATTRIB") {
					i++
					ins.Attributes = append(ins.Attributes, decodeAttrib(next()))
				}
				if peek("SEQEND") {
					i++
					next()
				}
			}
			res = append(res, ins)

		default:
			decode, ok := decoders[tp]
			if !ok {
				continue
			}
			res = append(res, decode(r))
		}
	}

	return res
}

var decoders = map[string]func(record) Entity{
	"LINE":       decodeLine,
	"POINT":      decodePoint,
	"CIRCLE":     decodeCircle,
	"ARC":        decodeArc,
	"ELLIPSE":    decodeEllipse,
	"LWPOLYLINE": decodeLWPolyline,
	"SPLINE":     decodeSpline,
	"TEXT":       decodeText,
	"MTEXT":      decodeMText,
	"3DFACE":     decodeFace3D,
	"SOLID":      decodeSolid,
	"HATCH":      decodeHatch,
	"DIMENSION":  decodeDimension,
}

func decodeLine(r record) Entity {
	return &Line{
		Base:  r.base(),
		Start: r.point(10),
		End:   r.point(11),
	}
}

func decodePoint(r record) Entity {
	return &Point{
		Base:     r.base(),
		Position: r.point(10),
	}
}

func decodeCircle(r record) Entity {
	return &Circle{
		Base:   r.base(),
		Center: r.point(10),
		Radius: r.float(40, 0),
	}
}

func decodeArc(r record) Entity {
	return &Arc{
		Base:       r.base(),
		Center:     r.point(10),
		Radius:     r.float(40, 0),
		StartAngle: r.float(50, 0),
		EndAngle:   r.float(51, 360),
	}
}

func decodeEllipse(r record) Entity {
	return &Ellipse{
		Base:       r.base(),
		Center:     r.point(10),
		MajorAxis:  r.point(11),
		Ratio:      r.float(40, 1),
		StartParam: r.float(41, 0),
		EndParam:   r.float(42, 2*math.Pi),
	}
}

func decodeLWPolyline(r record) Entity {
	pl := &LWPolyline{
		Base:      r.base(),
		Flags:     r.int(70, 0),
		Elevation: r.float(38, 0),
	}
	pl.Closed = pl.Flags&1 != 0

	var cur *Vertex
	for _, p := range r {
		switch p.Code {
		case 10:
			pl.Vertices = append(pl.Vertices, Vertex{Vec3: Vec3{X: parseFloat(p.Value)}})
			cur = &pl.Vertices[len(pl.Vertices)-1]
		case 20:
			if cur != nil {
				cur.Y = parseFloat(p.Value)
			}
		case 42:
			if cur != nil {
				cur.Bulge = parseFloat(p.Value)
			}
		}
	}
	return pl
}

func decodePolyline(r record, vertices []record) Entity {
	pl := &Polyline{
		Base:  r.base(),
		Flags: r.int(70, 0),
	}
	pl.Closed = pl.Flags&1 != 0
	for _, v := range vertices {
		pl.Vertices = append(pl.Vertices, Vertex{
			Vec3:  v.point(10),
			Bulge: v.float(42, 0),
			Flags: v.int(70, 0),
		})
	}
	return pl
}

func decodeSpline(r record) Entity {
	s := &Spline{
		Base:   r.base(),
		Degree: r.int(71, 3),
		Flags:  r.int(70, 0),
	}
	s.Closed = s.Flags&1 != 0

	control := pointList{code: 10}
	fit := pointList{code: 11}
	for _, p := range r {
		switch p.Code {
		case 40:
			s.Knots = append(s.Knots, parseFloat(p.Value))
		case 41:
			s.Weights = append(s.Weights, parseFloat(p.Value))
		default:
			control.add(p)
			fit.add(p)
		}
	}
	s.ControlPoints = control.finish()
	s.FitPoints = fit.finish()
	return s
}

// pointList collects a sequence of points given as repeated x/y/z groups.
// An x coordinate starts a new point, a z coordinate completes it.
type pointList struct {
	code   int
	points []Vec3
	cur    Vec3
	hasX   bool
	hasY   bool
}

func (l *pointList) add(p scanner.Pair) {
	switch p.Code {
	case l.code:
		if l.hasX && l.hasY {
			l.points = append(l.points, l.cur)
		}
		l.cur = Vec3{X: parseFloat(p.Value)}
		l.hasX = true
		l.hasY = false
	case l.code + 10:
		l.cur.Y = parseFloat(p.Value)
		l.hasY = true
	case l.code + 20:
		if l.hasX && l.hasY {
			l.cur.Z = parseFloat(p.Value)
			l.points = append(l.points, l.cur)
			l.hasX = false
			l.hasY = false
		}
	}
}

func (l *pointList) finish() []Vec3 {
	if l.hasX && l.hasY {
		l.points = append(l.points, l.cur)
		l.hasX = false
		l.hasY = false
	}
	return l.points
}

func decodeText(r record) Entity {
	return &Text{
		Base:      r.base(),
		Insertion: r.point(10),
		Height:    r.float(40, 1),
		Value:     r.str(1),
		Rotation:  r.float(50, 0),
		Style:     r.str(7),
	}
}

func decodeMText(r record) Entity {
	t := &MText{
		Base:      r.base(),
		Insertion: r.point(10),
		Height:    r.float(40, 1),
		Rotation:  r.float(50, 0),
		Width:     r.float(41, 0),
		Style:     r.str(7),
	}
	var text []byte
	for _, p := range r {
		if p.Code == 1 || p.Code == 3 {
			text = append(text, p.Value...)
		}
	}
	t.Value = string(text)
	return t
}

func decodeInsert(r record) *Insert {
	return &Insert{
		Base:          r.base(),
		BlockName:     r.str(2),
		Insertion:     r.point(10),
		ScaleX:        r.float(41, 1),
		ScaleY:        r.float(42, 1),
		ScaleZ:        r.float(43, 1),
		Rotation:      r.float(50, 0),
		Columns:       r.int(70, 1),
		Rows:          r.int(71, 1),
		ColumnSpacing: r.float(44, 0),
		RowSpacing:    r.float(45, 0),
	}
}

func decodeAttrib(r record) *Attrib {
	return &Attrib{
		Base:      r.base(),
		Tag:       r.str(2),
		Value:     r.str(1),
		Insertion: r.point(10),
		Height:    r.float(40, 1),
		Rotation:  r.float(50, 0),
		Style:     r.str(7),
	}
}

// corners reads the up to four corner points of a 3DFACE or SOLID.
// Trailing corners for which no coordinate is given are omitted.  Missing
// corners before the last given one are kept at the origin.
func (r record) corners() []Vec3 {
	var pts [4]Vec3
	n := 0
	for _, p := range r {
		var k int
		switch {
		case p.Code >= 10 && p.Code <= 13:
			k = p.Code - 10
			pts[k].X = parseFloat(p.Value)
		case p.Code >= 20 && p.Code <= 23:
			k = p.Code - 20
			pts[k].Y = parseFloat(p.Value)
		case p.Code >= 30 && p.Code <= 33:
			k = p.Code - 30
			pts[k].Z = parseFloat(p.Value)
		default:
			continue
		}
		n = max(n, k+1)
	}
	if n == 0 {
		return nil
	}
	return append([]Vec3(nil), pts[:n]...)
}

func decodeFace3D(r record) Entity {
	return &Face3D{
		Base:     r.base(),
		Vertices: r.corners(),
	}
}

func decodeSolid(r record) Entity {
	return &Solid{
		Base:     r.base(),
		Vertices: r.corners(),
	}
}

func decodeDimension(r record) Entity {
	d := &Dimension{
		Base:       r.base(),
		Definition: r.point(10),
		TextMid:    r.point(11),
		DimType:    r.int(70, 0),
		Text:       r.str(1),
		BlockName:  r.str(2),
		Style:      r.str(3),
	}
	if r.has(13) {
		p := r.point(13)
		d.Linear = &p
	}
	if r.has(42) {
		m := r.float(42, 0)
		d.Measurement = &m
	}
	return d
}
