package raster

import (
	"image"

	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

// Rect is an axis aligned pixel rectangle. Both corners are inclusive.
type Rect struct {
	Min, Max image.Point
}

func NewRect(x0, y0, x1, y1 int) Rect {
	return Rect{
		Min: image.Pt(min(x0, x1), min(y0, y1)),
		Max: image.Pt(max(x0, x1), max(y0, y1)),
	}
}

func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Clip returns the part of r inside the grid.
func (r Rect) Clip(g *PixelGrid) Rect {
	return Rect{
		Min: image.Pt(max(r.Min.X, 0), max(r.Min.Y, 0)),
		Max: image.Pt(min(r.Max.X, g.Width()-1), min(r.Max.Y, g.Height()-1)),
	}
}

// DrawRect outlines r.
func (g *PixelGrid) DrawRect(r Rect, c metadata.RGBA) {
	if r.Empty() {
		return
	}
	g.DrawHLine(r.Min.X, r.Max.X, r.Min.Y, c)
	g.DrawHLine(r.Min.X, r.Max.X, r.Max.Y, c)
	g.DrawVLine(r.Min.X, r.Min.Y, r.Max.Y, c)
	g.DrawVLine(r.Max.X, r.Min.Y, r.Max.Y, c)
}

func (g *PixelGrid) FillRect(r Rect, c metadata.RGBA) {
	r = r.Clip(g)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		g.DrawHLine(r.Min.X, r.Max.X, y, c)
	}
}
