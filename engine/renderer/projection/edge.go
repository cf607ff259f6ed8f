package projection

import (
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

// WorldEdge is a segment in world space.
type WorldEdge struct {
	From, To math.Vec3
}

// ViewEdge is a segment in the space of a camera: x right, y up, z forward.
type ViewEdge struct {
	From, To math.Vec3
}

/**
 * @brief A projected segment in sub-pixel screen coordinates, origin at the
 * top-left corner and y growing downwards. Z keeps the view depth of each end.
 */
type ScreenEdge struct {
	From, To math.Vec3
}

func NewWorldEdge(from, to math.Vec3) WorldEdge {
	return WorldEdge{From: from, To: to}
}

// ToView moves both ends of e into the view space of t.
func ToView(e WorldEdge, t *math.Transform) ViewEdge {
	return ViewEdge{
		From: t.WorldToLocal(e.From),
		To:   t.WorldToLocal(e.To),
	}
}

/**
 * @brief Culls or clips e against the near plane z = near.
 *
 * When both ends are behind the plane the edge is culled and false is
 * returned. When exactly one is, that end is moved along the segment onto
 * the plane. Edges fully in front come back unchanged.
 */
func ClipNear(e ViewEdge, near float32) (ViewEdge, bool) {
	fromOut := e.From.Z < near
	toOut := e.To.Z < near
	switch {
	case fromOut && toOut:
		return e, false
	case fromOut:
		v := e.From.Sub(e.To).MulScalar((e.To.Z - near) / (e.To.Z - e.From.Z))
		e.From = e.To.Add(v)
	case toOut:
		v := e.To.Sub(e.From).MulScalar((e.From.Z - near) / (e.From.Z - e.To.Z))
		e.To = e.From.Add(v)
	}
	return e, true
}

/**
 * @brief Clips e against the near plane, applies the perspective divide and
 * maps the result to screen coordinates of a grid with the given dimensions.
 *
 * The second return value is false when the edge is culled; the ScreenEdge is
 * then the zero value and must not be drawn.
 */
func Project(e ViewEdge, dims metadata.Dimensions, focalLength, near float32) (ScreenEdge, bool) {
	e, visible := ClipNear(e, near)
	if !visible {
		return ScreenEdge{}, false
	}
	return ScreenEdge{
		From: toScreen(e.From, dims, focalLength),
		To:   toScreen(e.To, dims, focalLength),
	}, true
}

func toScreen(p math.Vec3, dims metadata.Dimensions, focalLength float32) math.Vec3 {
	flOverZ := focalLength / p.Z
	x := p.X * flOverZ
	y := p.Y * flOverZ * dims.WidthOverHeight

	x = (x + 1) * dims.HWidth
	y = (y + 1) * dims.HHeight
	return math.Vec3{X: x, Y: dims.FHeight - y, Z: p.Z}
}
