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

// Options controls the conversion of entities to features.
type Options struct {
	// CircleSegments is the number of segments used to approximate a full
	// circle.  Arcs and ellipse arcs use proportionally fewer segments.
	CircleSegments int

	// SplineSegmentsPerSpan is the number of segments used for each knot
	// span of a B-spline.
	SplineSegmentsPerSpan int

	// NoBlockReferences disables the expansion of INSERT entities.  If this
	// is set, INSERT entities produce no features.  Otherwise they are
	// replaced by the geometry of the referenced block.
	NoBlockReferences bool

	// MaxBlockInsertionDepth limits the nesting of block references.
	MaxBlockInsertionDepth int

	// EntityTypes, if non-empty, restricts the output to the given entity
	// types, for example "LINE" or "3DFACE".
	EntityTypes []string

	// Layers, if non-empty, restricts the output to entities on the given
	// layers.
	Layers []string

	IncludeInvisible    bool
	IncludeFrozenLayers bool

	// Flatten drops the z coordinate of all positions.  If this is not set,
	// positions with a non-zero z coordinate have three components.
	Flatten bool
}

// DefaultOptions returns the options used when nil is passed to [Parse] or
// [NewConverter].
func DefaultOptions() *Options {
	return &Options{
		CircleSegments:         72,
		SplineSegmentsPerSpan:  20,
		MaxBlockInsertionDepth: 8,
	}
}

// withDefaults returns a copy of opt where non-positive numeric fields are
// replaced by their default values.  If opt is nil, the default options are
// returned.  The zero value of every other field is its default.
func withDefaults(opt *Options) *Options {
	def := DefaultOptions()
	if opt == nil {
		return def
	}

	res := *opt
	if res.CircleSegments <= 0 {
		res.CircleSegments = def.CircleSegments
	}
	if res.SplineSegmentsPerSpan <= 0 {
		res.SplineSegmentsPerSpan = def.SplineSegmentsPerSpan
	}
	if res.MaxBlockInsertionDepth <= 0 {
		res.MaxBlockInsertionDepth = def.MaxBlockInsertionDepth
	}
	return &res
}
