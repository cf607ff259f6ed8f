package scene

import (
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
	"github.com/spaghettifunk/slim/engine/renderer/projection"
)

// CurveSteps is the number of points sampled along a helix or a coil.
const CurveSteps = 3600

/**
 * @brief A spring bent into a ring: a circle of Radius around Position in
 * the XZ plane, wound Revolutions times by a circle of ThicknessRadius.
 */
type Helix struct {
	Position        math.Vec3
	Radius          float32
	ThicknessRadius float32
	Revolutions     uint32
	Color           metadata.RGBA
}

/**
 * @brief Appends the CurveSteps-1 world space segments of the helix to dst.
 *
 * The orbit point turns around Y by one step per sample while the winding
 * offset turns around Z Revolutions times faster; the offset is then carried
 * into world space by the orbit rotation accumulated so far.
 */
func (h *Helix) Edges(dst []projection.WorldEdge) []projection.WorldEdge {
	orbitStep := math.K_TAU / CurveSteps
	helixStep := orbitStep * float32(h.Revolutions)

	orbitRotation := math.NewMat3RotationY(orbitStep)
	helixRotation := math.NewMat3RotationZ(helixStep)
	accumulated := orbitRotation

	centerToOrbit := math.NewVec3(h.Radius, 0, 0)
	orbitToHelix := math.NewVec3(h.ThicknessRadius, 0, 0)

	var previous math.Vec3
	for i := 0; i < CurveSteps; i++ {
		centerToOrbit = centerToOrbit.MulMat3(orbitRotation)
		orbitToHelix = orbitToHelix.MulMat3(helixRotation)

		current := h.Position.Add(centerToOrbit).Add(orbitToHelix.MulMat3(accumulated))
		if i > 0 {
			dst = append(dst, projection.WorldEdge{From: previous, To: current})
		}
		accumulated = accumulated.Mul(orbitRotation)
		previous = current
	}
	return dst
}

/** @brief A coil spring standing on Position and rising Height along Y. */
type Coil struct {
	Position    math.Vec3
	Radius      float32
	Height      float32
	Revolutions uint32
	Color       metadata.RGBA
}

// Edges appends the CurveSteps-1 world space segments of the coil to dst.
func (c *Coil) Edges(dst []projection.WorldEdge) []projection.WorldEdge {
	angleStep := math.K_TAU / CurveSteps * float32(c.Revolutions)
	heightStep := c.Height / CurveSteps

	rotation := math.NewMat3RotationY(angleStep)
	centerToCoil := math.NewVec3(c.Radius, 0, 0)

	var previous math.Vec3
	for i := 0; i < CurveSteps; i++ {
		centerToCoil = centerToCoil.MulMat3(rotation)
		current := c.Position.Add(centerToCoil)
		if i > 0 {
			dst = append(dst, projection.WorldEdge{From: previous, To: current})
		}
		centerToCoil.Y += heightStep
		previous = current
	}
	return dst
}
