package raster

import (
	stdmath "math"

	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

/**
 * @brief Fills a triangle given in sub-pixel screen coordinates.
 *
 * The vertices are sorted by y and the triangle is swept row by row. A row is
 * covered when its center lies in [top, bottom) and a pixel when its center
 * lies in [left, right), so triangles sharing an edge never draw a pixel
 * twice. The long edge (top to bottom) bounds one side of every span and the
 * two short edges take turns on the other side. Edges whose ends share the
 * same y get a zero slope.
 */
func (g *PixelGrid) FillTriangle(x1, y1, x2, y2, x3, y3 float32, c metadata.RGBA) {
	for _, v := range [...]float32{x1, y1, x2, y2, x3, y3} {
		if !finite(v) {
			return
		}
	}
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y3 < y1 {
		x1, y1, x3, y3 = x3, y3, x1, y1
	}
	if y3 < y2 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}

	long := slope(x1, y1, x3, y3)
	upper := slope(x1, y1, x2, y2)
	lower := slope(x2, y2, x3, y3)

	w, h := g.Width(), g.Height()
	top := pixelStart(y1, h)
	mid := pixelStart(y2, h)
	bottom := pixelStart(y3, h)

	for y := top; y < bottom; y++ {
		center := float32(y) + 0.5
		xa := x1 + long*(center-y1)
		var xb float32
		if y < mid {
			xb = x1 + upper*(center-y1)
		} else {
			xb = x2 + lower*(center-y2)
		}
		if xa > xb {
			xa, xb = xb, xa
		}
		left := pixelStart(xa, w)
		right := pixelStart(xb, w)
		if left < right {
			g.DrawHLine(left, right-1, y, c)
		}
	}
}

func slope(xa, ya, xb, yb float32) float32 {
	if ya == yb {
		return 0
	}
	return (xb - xa) / (yb - ya)
}

// pixelStart returns the first pixel whose center is at or after v, clamped to [0, limit].
func pixelStart(v float32, limit int) int {
	v = min(max(v, -1), float32(limit)+1)
	return min(max(int(stdmath.Ceil(float64(v)-0.5)), 0), limit)
}

func finite(v float32) bool {
	f := float64(v)
	return !stdmath.IsNaN(f) && !stdmath.IsInf(f, 0)
}
