package views

import (
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/components"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
	"github.com/spaghettifunk/slim/engine/scene"
)

var (
	BoundingBoxColor = metadata.Color(metadata.ColorYellow)
	CameraColor      = metadata.Color(metadata.ColorCyan)
)

// DrawBBox draws the edges of b lying on any of the given sides.
func (v *Viewport) DrawBBox(b *scene.BBox, sides scene.Side, color metadata.RGBA) int {
	v.edges = b.EdgesFor(sides, v.edges[:0])
	return v.DrawEdges(v.edges, color)
}

// DrawPrimitive draws the wireframe of a visible primitive in its own color.
func (v *Viewport) DrawPrimitive(p *scene.Primitive) int {
	if !p.Visible {
		return 0
	}
	v.edges = p.WorldEdges(v.edges[:0])
	return v.DrawEdges(v.edges, p.Color)
}

func (v *Viewport) DrawHelix(h *scene.Helix) int {
	v.edges = h.Edges(v.edges[:0])
	return v.DrawEdges(v.edges, h.Color)
}

func (v *Viewport) DrawCoil(c *scene.Coil) int {
	v.edges = c.Edges(v.edges[:0])
	return v.DrawEdges(v.edges, c.Color)
}

/**
 * @brief Draws another camera as a gizmo: a unit box at the camera and a
 * frustum in front of it, narrow at the back and wide at the front, both
 * oriented like the camera.
 */
func (v *Viewport) DrawCamera(camera *components.Camera, color metadata.RGBA) int {
	box := scene.NewBBox(scene.AABB{Min: math.NewVec3Scalar(-1), Max: math.NewVec3Scalar(1)})
	frustum := box
	for i := range frustum.Vertices {
		scale := float32(2)
		if scene.BBoxVertex(i) >= scene.BackTopLeft {
			scale = 0.5
		}
		frustum.Vertices[i] = frustum.Vertices[i].MulScalar(scale)
		frustum.Vertices[i].Z += 1.5
	}

	box.Transform(camera.Transform.LocalToWorld)
	frustum.Transform(camera.Transform.LocalToWorld)
	return v.DrawBBox(&box, scene.AllSides, color) + v.DrawBBox(&frustum, scene.AllSides, color)
}

/**
 * @brief Renders every shape of s into the frame buffer: primitives, their
 * bounding boxes when enabled, helixes, coils, then the scene cameras other
 * than the viewport's own. Returns the number of edges drawn.
 */
func (v *Viewport) RenderScene(s *scene.Scene) int {
	drawn := 0
	for i := range s.Primitives {
		p := &s.Primitives[i]
		drawn += v.DrawPrimitive(p)
		if s.ShowBoundingBoxes && p.Visible {
			bbox := p.WorldBBox()
			drawn += v.DrawBBox(&bbox, scene.AllSides, BoundingBoxColor)
		}
	}
	for i := range s.Helixes {
		drawn += v.DrawHelix(&s.Helixes[i])
	}
	for i := range s.Coils {
		drawn += v.DrawCoil(&s.Coils[i])
	}
	for _, c := range s.Cameras {
		if c != v.Camera {
			drawn += v.DrawCamera(c, CameraColor)
		}
	}
	return drawn
}
