package raster

import "github.com/spaghettifunk/slim/engine/renderer/metadata"

/**
 * @brief Outlines a circle with the midpoint algorithm.
 *
 * x starts at the radius and y at zero. Every step moves y down one row and
 * pulls x in whenever x*x + y*y would exceed the squared radius, so only
 * integer additions run inside the loop. One octant is walked and mirrored
 * into the other seven. A radius of 0 or 1 draws the center pixel only.
 */
func (g *PixelGrid) DrawCircle(cx, cy, radius int, c metadata.RGBA) {
	if radius <= 1 {
		g.SetPixel(cx, cy, c)
		return
	}
	midpointCircle(radius, func(x, y int) {
		g.SetPixel(cx+x, cy+y, c)
		g.SetPixel(cx-x, cy+y, c)
		g.SetPixel(cx+x, cy-y, c)
		g.SetPixel(cx-x, cy-y, c)
		g.SetPixel(cx+y, cy+x, c)
		g.SetPixel(cx-y, cy+x, c)
		g.SetPixel(cx+y, cy-x, c)
		g.SetPixel(cx-y, cy-x, c)
	})
}

// FillCircle fills the disc with horizontal spans mirrored the same way as DrawCircle.
func (g *PixelGrid) FillCircle(cx, cy, radius int, c metadata.RGBA) {
	if radius <= 1 {
		g.SetPixel(cx, cy, c)
		return
	}
	midpointCircle(radius, func(x, y int) {
		g.DrawHLine(cx-x, cx+x, cy+y, c)
		g.DrawHLine(cx-x, cx+x, cy-y, c)
		g.DrawHLine(cx-y, cx+y, cy+x, c)
		g.DrawHLine(cx-y, cx+y, cy-x, c)
	})
}

// midpointCircle calls plot for every (x, y) of the first octant, x >= y >= 0.
func midpointCircle(radius int, plot func(x, y int)) {
	r2 := radius * radius
	x, y := radius, 0
	x2, y2 := r2, 0
	for y <= x {
		plot(x, y)
		// (y+1)^2 = y^2 + 2y + 1
		y2 += 2*y + 1
		y++
		if x2+y2 > r2 {
			// (x-1)^2 = x^2 - 2x + 1
			x2 -= 2*x - 1
			x--
		}
	}
}
