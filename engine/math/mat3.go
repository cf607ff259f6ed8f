package math

import (
	"errors"
	"fmt"
)

// ErrSingularMatrix is returned by the matrix inverses when the determinant is zero.
var ErrSingularMatrix = errors.New("singular matrix")

// ------------------------------------------
// Matrix 3
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 */
func NewMat3Identity() Mat3 {
	return Mat3{
		X: Vec3{1, 0, 0},
		Y: Vec3{0, 1, 0},
		Z: Vec3{0, 0, 1},
	}
}

/**
 * @brief Returns the result of multiplying mt and other. Each row of mt is
 * transformed by other, so a vector multiplied by the result is transformed
 * by mt first.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	return Mat3{
		X: mt.X.MulMat3(other),
		Y: mt.Y.MulMat3(other),
		Z: mt.Z.MulMat3(other),
	}
}

func (mt Mat3) Add(other Mat3) Mat3 {
	return Mat3{mt.X.Add(other.X), mt.Y.Add(other.Y), mt.Z.Add(other.Z)}
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	return Mat3{mt.X.Sub(other.X), mt.Y.Sub(other.Y), mt.Z.Sub(other.Z)}
}

func (mt Mat3) MulScalar(s float32) Mat3 {
	return Mat3{mt.X.MulScalar(s), mt.Y.MulScalar(s), mt.Z.MulScalar(s)}
}

// Transposed swaps rows and columns.
func (mt Mat3) Transposed() Mat3 {
	return Mat3{
		X: Vec3{mt.X.X, mt.Y.X, mt.Z.X},
		Y: Vec3{mt.X.Y, mt.Y.Y, mt.Z.Y},
		Z: Vec3{mt.X.Z, mt.Y.Z, mt.Z.Z},
	}
}

func (mt Mat3) Determinant() float32 {
	return mt.X.Dot(mt.Y.Cross(mt.Z))
}

/**
 * @brief Returns the inverse of mt computed from its cofactors.
 * When the determinant is exactly zero, mt is returned unchanged together
 * with ErrSingularMatrix.
 */
func (mt Mat3) Inverse() (Mat3, error) {
	yz := mt.Y.Cross(mt.Z)
	zx := mt.Z.Cross(mt.X)
	xy := mt.X.Cross(mt.Y)

	det := mt.X.Dot(yz)
	if det == 0 {
		return mt, fmt.Errorf("mat3 inverse: %w", ErrSingularMatrix)
	}

	// The cross products are the columns of the inverse.
	adjugate := Mat3{X: yz, Y: zx, Z: xy}.Transposed()
	return adjugate.MulScalar(1 / det), nil
}

func (mt Mat3) Compare(other Mat3, tolerance float32) bool {
	return mt.X.Compare(other.X, tolerance) &&
		mt.Y.Compare(other.Y, tolerance) &&
		mt.Z.Compare(other.Z, tolerance)
}

// Right, Up and Forward are views onto the basis rows.
func (mt Mat3) Right() Vec3   { return mt.X }
func (mt Mat3) Up() Vec3      { return mt.Y }
func (mt Mat3) Forward() Vec3 { return mt.Z }

/**
 * @brief Rotates mt in place around the Y axis. amount is the rational
 * parameter of PointOnUnitCircle, not an angle in radians.
 */
func (mt *Mat3) Yaw(amount float32) {
	xy := PointOnUnitCircle(amount)
	for _, row := range []*Vec3{&mt.X, &mt.Y, &mt.Z} {
		x := row.X
		row.X = xy.X*x - xy.Y*row.Z
		row.Z = xy.X*row.Z + xy.Y*x
	}
}

// Pitch rotates mt in place around the X axis.
func (mt *Mat3) Pitch(amount float32) {
	xy := PointOnUnitCircle(amount)
	for _, row := range []*Vec3{&mt.X, &mt.Y, &mt.Z} {
		y := row.Y
		row.Y = xy.X*y + xy.Y*row.Z
		row.Z = xy.X*row.Z - xy.Y*y
	}
}

// Roll rotates mt in place around the Z axis.
func (mt *Mat3) Roll(amount float32) {
	xy := PointOnUnitCircle(amount)
	for _, row := range []*Vec3{&mt.X, &mt.Y, &mt.Z} {
		x := row.X
		row.X = xy.X*x + xy.Y*row.Y
		row.Y = xy.X*row.Y - xy.Y*x
	}
}

// SetYaw resets mt to a pure yaw rotation.
func (mt *Mat3) SetYaw(amount float32) {
	*mt = NewMat3Identity()
	mt.Yaw(amount)
}

// SetPitch resets mt to a pure pitch rotation.
func (mt *Mat3) SetPitch(amount float32) {
	*mt = NewMat3Identity()
	mt.Pitch(amount)
}

// SetRoll resets mt to a pure roll rotation.
func (mt *Mat3) SetRoll(amount float32) {
	*mt = NewMat3Identity()
	mt.Roll(amount)
}

/**
 * @brief Returns a rotation of angle radians around the Y axis, using the
 * trigonometric form rather than the rational parametrization.
 */
func NewMat3RotationY(angle float32) Mat3 {
	c, s := kcos(angle), ksin(angle)
	return Mat3{
		X: Vec3{c, 0, s},
		Y: Vec3{0, 1, 0},
		Z: Vec3{-s, 0, c},
	}
}

// NewMat3RotationZ returns a rotation of angle radians around the Z axis.
func NewMat3RotationZ(angle float32) Mat3 {
	c, s := kcos(angle), ksin(angle)
	return Mat3{
		X: Vec3{c, s, 0},
		Y: Vec3{-s, c, 0},
		Z: Vec3{0, 0, 1},
	}
}
