package projection

import (
	stdmath "math"

	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

/**
 * @brief Clips e to a guard band around the viewport.
 *
 * Ends that sit almost on the near plane project to huge coordinates, and a
 * line walker would step through every one of those pixels. The band spans
 * one full viewport size beyond each border; the part of the edge inside it
 * is kept with Liang-Barsky clipping, so the visible pixels stay the same up
 * to rounding. Returns false when the edge misses the band or is not finite.
 */
func (e ScreenEdge) Guard(dims metadata.Dimensions) (ScreenEdge, bool) {
	for _, v := range [...]float32{e.From.X, e.From.Y, e.To.X, e.To.Y} {
		if f := float64(v); stdmath.IsNaN(f) || stdmath.IsInf(f, 0) {
			return e, false
		}
	}

	band := max(dims.FWidth, dims.FHeight)
	minX, maxX := -band, dims.FWidth+band
	minY, maxY := -band, dims.FHeight+band

	x0, y0 := float64(e.From.X), float64(e.From.Y)
	dx, dy := float64(e.To.X)-x0, float64(e.To.Y)-y0

	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
		return true
	}
	if !clip(-dx, x0-float64(minX)) || !clip(dx, float64(maxX)-x0) ||
		!clip(-dy, y0-float64(minY)) || !clip(dy, float64(maxY)-y0) {
		return e, false
	}

	out := e
	if t1 < 1 {
		out.To.X = float32(x0 + t1*dx)
		out.To.Y = float32(y0 + t1*dy)
	}
	if t0 > 0 {
		out.From.X = float32(x0 + t0*dx)
		out.From.Y = float32(y0 + t0*dy)
	}
	return out, true
}

// Pixels truncates both ends to integer pixel coordinates.
func (e ScreenEdge) Pixels() (x0, y0, x1, y1 int) {
	return int(e.From.X), int(e.From.Y), int(e.To.X), int(e.To.Y)
}
