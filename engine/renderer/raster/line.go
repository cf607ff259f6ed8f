package raster

import "github.com/spaghettifunk/slim/engine/renderer/metadata"

/**
 * @brief Draws the horizontal run from x0 to x1 (inclusive, any order) on row y.
 * The range is clamped to the grid before any write.
 */
func (g *PixelGrid) DrawHLine(x0, x1, y int, c metadata.RGBA) {
	if y < 0 || y >= g.Height() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, g.Width()-1)
	if x0 > x1 {
		return
	}
	p := c.Pixel()
	row := g.Pixels[y*g.Width():]
	for x := x0; x <= x1; x++ {
		row[x] = p
	}
}

// DrawVLine draws the vertical run from y0 to y1 (inclusive, any order) on column x.
func (g *PixelGrid) DrawVLine(x, y0, y1 int, c metadata.RGBA) {
	if x < 0 || x >= g.Width() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, g.Height()-1)
	if y0 > y1 {
		return
	}
	p := c.Pixel()
	w := g.Width()
	for i := y0*w + x; y0 <= y1; y0, i = y0+1, i+w {
		g.Pixels[i] = p
	}
}

/**
 * @brief Draws a line between two pixel coordinates with Bresenham's algorithm.
 *
 * Both endpoints are drawn. Horizontal and vertical lines take the clamped
 * span fast paths. Otherwise the walk steps along the major axis, moving one
 * pixel along the minor axis whenever the accumulated error passes the
 * threshold. Pixels outside the grid are skipped and the walk stops as soon
 * as it has left the grid in its direction of travel.
 */
func (g *PixelGrid) DrawLine(x0, y0, x1, y1 int, c metadata.RGBA) {
	w, h := g.Width(), g.Height()
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= w && x1 >= w) || (y0 >= h && y1 >= h) {
		return
	}
	if y0 == y1 {
		g.DrawHLine(x0, x1, y0, c)
		return
	}
	if x0 == x1 {
		g.DrawVLine(x0, y0, y1, c)
		return
	}

	dx, dy := x1-x0, y1-y0
	stepX, stepY := 1, 1
	if dx < 0 {
		dx, stepX = -dx, -1
	}
	if dy < 0 {
		dy, stepY = -dy, -1
	}

	// Walk along the major axis; (major, minor) alias (x, y) or (y, x).
	steep := dy > dx
	major, minor := x0, y0
	majorStep, minorStep := stepX, stepY
	majorLen, minorLen := dx, dy
	majorLimit, minorLimit := w, h
	if steep {
		major, minor = y0, x0
		majorStep, minorStep = stepY, stepX
		majorLen, minorLen = dy, dx
		majorLimit, minorLimit = h, w
	}

	p := c.Pixel()
	errInc := 2 * minorLen
	errDec := 2 * majorLen
	threshold := majorLen
	acc := 0

	for n := 0; n <= majorLen; n++ {
		if leaving(major, majorStep, majorLimit) || leaving(minor, minorStep, minorLimit) {
			return
		}
		x, y := major, minor
		if steep {
			x, y = minor, major
		}
		if x >= 0 && x < w && y >= 0 && y < h {
			if i := y*w + x; i >= 0 && i < len(g.Pixels) {
				g.Pixels[i] = p
			}
		}
		major += majorStep
		acc += errInc
		if acc > threshold {
			minor += minorStep
			acc -= errDec
		}
	}
}

// leaving reports whether v is past the edge of [0, limit) it is moving away from.
func leaving(v, step, limit int) bool {
	if step > 0 {
		return v >= limit
	}
	return v < 0
}
