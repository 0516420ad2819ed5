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

// Package render draws features into raster images, for previews of DXF
// drawings.
//
// Lines and polygon outlines are stroked with a fixed width in device
// pixels.  Polygons of HATCH and SOLID entities are filled.  Points and
// text insertion points are shown as small squares.  Colours are taken
// from the AutoCAD Color Index of each feature; index 7, which CAD
// programs show as white on a dark background, is drawn in black.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dxf/aci"
	"seehuhn.de/go/dxf/feature"
)

// Options control the rendering.
type Options struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.  If this is zero, the height
	// is chosen to match the aspect ratio of the drawing.
	Height int

	// Margin is the number of pixels left blank around the drawing.
	Margin int

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// Background is the background colour.  If this is nil, white is used.
	Background color.Color
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() *Options {
	return &Options{
		Width:     1024,
		Margin:    8,
		LineWidth: 1,
	}
}

// maxSize limits the image dimensions.
const maxSize = 1 << 14

// Renderer draws features into an image.
type Renderer struct {
	Image  *image.RGBA
	Raster *vector.Rasterizer
	Width  int
	Height int

	// CTM maps drawing coordinates to device pixels.
	CTM matrix.Matrix

	lineWidth float64
}

// NewRenderer allocates an image for a drawing with the given extent.
// The drawing is scaled uniformly to fit into the image, and is centered.
// If opt is nil, [DefaultOptions] are used.
func NewRenderer(bbox rect.Rect, opt *Options) *Renderer {
	def := DefaultOptions()
	if opt == nil {
		opt = def
	}
	width := opt.Width
	if width <= 0 {
		width = def.Width
	}
	width = min(width, maxSize)
	margin := max(opt.Margin, 0)
	lineWidth := opt.LineWidth
	if lineWidth <= 0 {
		lineWidth = def.LineWidth
	}

	dx := bbox.URx - bbox.LLx
	dy := bbox.URy - bbox.LLy
	inner := float64(max(width-2*margin, 1))

	height := opt.Height
	if height <= 0 {
		switch {
		case dx > 0:
			height = int(math.Ceil(inner*dy/dx)) + 2*margin
		default:
			height = width
		}
	}
	height = min(max(height, 1), maxSize)
	innerHeight := float64(max(height-2*margin, 1))

	var scale float64
	switch {
	case dx > 0 && dy > 0:
		scale = min(inner/dx, innerHeight/dy)
	case dx > 0:
		scale = inner / dx
	case dy > 0:
		scale = innerHeight / dy
	default:
		scale = 1
	}

	// center the drawing in the image
	offsX := (float64(width) - scale*dx) / 2
	offsY := (float64(height) - scale*dy) / 2

	ctm := matrix.Translate(-bbox.LLx, -bbox.LLy).
		Mul(matrix.Scale(scale, -scale)).
		Mul(matrix.Translate(offsX, float64(height)-offsY))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var bg color.Color = color.White
	if opt.Background != nil {
		bg = opt.Background
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	return &Renderer{
		Image:     img,
		Raster:    vector.NewRasterizer(width, height),
		Width:     width,
		Height:    height,
		CTM:       ctm,
		lineWidth: lineWidth,
	}
}

// Render draws all features into a new image.
func Render(features []feature.Feature, opt *Options) *image.RGBA {
	r := NewRenderer(feature.Bounds(features), opt)
	for _, f := range features {
		r.Draw(f)
	}
	return r.Image
}

// Draw draws a single feature.
func (r *Renderer) Draw(f feature.Feature) {
	col := Color(f.Properties.ColorIndex)

	switch g := f.Geometry.(type) {
	case feature.Point:
		r.point(feature.Coord(g), col)
	case feature.LineString:
		r.stroke(g, false, col)
	case feature.Polygon:
		r.polygon(g, isFilled(f.Properties.EntityType), col)
	case feature.MultiPolygon:
		filled := isFilled(f.Properties.EntityType)
		for _, poly := range g {
			r.polygon(poly, filled, col)
		}
	}
}

// Color returns the colour used to draw features with the given colour
// index.
func Color(index int) color.NRGBA {
	if index == aci.Default {
		return color.NRGBA{A: 255}
	}
	return aci.RGBA(index)
}

func isFilled(entityType string) bool {
	return entityType == "HATCH" || entityType == "SOLID"
}

func (r *Renderer) polygon(poly feature.Polygon, filled bool, col color.Color) {
	if !filled {
		for _, ring := range poly {
			r.stroke(ring, true, col)
		}
		return
	}

	r.Raster.Reset(r.Width, r.Height)
	for _, ring := range poly {
		for i, c := range ring {
			x, y := r.deviceCoords(c)
			if i == 0 {
				r.Raster.MoveTo(float32(x), float32(y))
			} else {
				r.Raster.LineTo(float32(x), float32(y))
			}
		}
		if len(ring) > 0 {
			r.Raster.ClosePath()
		}
	}
	r.paint(col)
}

// stroke draws a polyline, as a sequence of rectangles with the line width
// along the segments.
func (r *Renderer) stroke(pts []feature.Coord, closed bool, col color.Color) {
	if len(pts) == 0 {
		return
	}
	r.Raster.Reset(r.Width, r.Height)
	w := max(r.lineWidth/2, 0.5)

	curX, curY := r.deviceCoords(pts[0])
	startX, startY := curX, curY
	segment := func(destX, destY float64) {
		vx, vy := destX-curX, destY-curY
		vl := math.Hypot(vx, vy)
		if vl > 0 {
			nx, ny := -vy/vl*w, vx/vl*w
			r.Raster.MoveTo(float32(curX+nx), float32(curY+ny))
			r.Raster.LineTo(float32(destX+nx), float32(destY+ny))
			r.Raster.LineTo(float32(destX-nx), float32(destY-ny))
			r.Raster.LineTo(float32(curX-nx), float32(curY-ny))
			r.Raster.ClosePath()
		}
		curX, curY = destX, destY
	}
	for _, c := range pts[1:] {
		segment(r.deviceCoords(c))
	}
	if closed {
		segment(startX, startY)
	}
	r.paint(col)
}

// point draws a small square centered at the given position.
func (r *Renderer) point(c feature.Coord, col color.Color) {
	x, y := r.deviceCoords(c)
	w := max(r.lineWidth, 1.5)

	r.Raster.Reset(r.Width, r.Height)
	r.Raster.MoveTo(float32(x-w), float32(y-w))
	r.Raster.LineTo(float32(x+w), float32(y-w))
	r.Raster.LineTo(float32(x+w), float32(y+w))
	r.Raster.LineTo(float32(x-w), float32(y+w))
	r.Raster.ClosePath()
	r.paint(col)
}

func (r *Renderer) paint(col color.Color) {
	r.Raster.Draw(r.Image, r.Image.Bounds(), image.NewUniform(col), image.Point{})
}

// deviceCoords maps a position to device pixels.  The z component is
// ignored.
func (r *Renderer) deviceCoords(c feature.Coord) (float64, float64) {
	return r.CTM.Apply(c[0], c[1])
}
