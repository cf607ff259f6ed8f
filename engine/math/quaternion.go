package math

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{Amount: 1}
}

/**
 * @brief Returns a normalized copy of q. Callers composing rotations
 * incrementally should normalize after each step to bound drift.
 */
func (q Quaternion) Normalized() Quaternion {
	factor := 1 / ksqrt(q.Axis.LengthSquared()+q.Amount*q.Amount)
	return Quaternion{Axis: q.Axis.MulScalar(factor), Amount: q.Amount * factor}
}

/**
 * @brief Returns the conjugate of q, which is its inverse when q is normalized.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{Axis: q.Axis.Negate(), Amount: q.Amount}
}

// Negate returns -q, which represents the same rotation as q.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{Axis: q.Axis.Negate(), Amount: -q.Amount}
}

/**
 * @brief Returns the Hamilton product q * other.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	a, b := q, other
	return Quaternion{
		Amount: a.Amount*b.Amount - a.Axis.X*b.Axis.X - a.Axis.Y*b.Axis.Y - a.Axis.Z*b.Axis.Z,
		Axis: Vec3{
			X: a.Amount*b.Axis.X + a.Axis.X*b.Amount + a.Axis.Y*b.Axis.Z - a.Axis.Z*b.Axis.Y,
			Y: a.Amount*b.Axis.Y - a.Axis.X*b.Axis.Z + a.Axis.Y*b.Amount + a.Axis.Z*b.Axis.X,
			Z: a.Amount*b.Axis.Z + a.Axis.X*b.Axis.Y - a.Axis.Y*b.Axis.X + a.Axis.Z*b.Amount,
		},
	}
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.Axis.Dot(other.Axis) + q.Amount*other.Amount
}

func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return q.Axis.Compare(other.Axis, tolerance) && kabs(q.Amount-other.Amount) <= tolerance
}

/**
 * @brief Returns the rotation matrix of q in row-vector form, so that
 * v.MulMat3(q.ToMat3()) rotates v the same way as v.MulQuat(q).
 */
func (q Quaternion) ToMat3() Mat3 {
	w, x, y, z := q.Amount, q.Axis.X, q.Axis.Y, q.Axis.Z
	return Mat3{
		X: Vec3{2*(w*w+x*x) - 1, 2 * (x*y + w*z), 2 * (x*z - w*y)},
		Y: Vec3{2 * (x*y - w*z), 2*(w*w+y*y) - 1, 2 * (y*z + w*x)},
		Z: Vec3{2 * (x*z + w*y), 2 * (y*z - w*x), 2*(w*w+z*z) - 1},
	}
}

/**
 * @brief Converts a row-vector rotation matrix back into a quaternion.
 *
 * Picks whichever of w, x, y or z has the largest magnitude and derives the
 * other three from it, so the division is never by a near-zero term. The
 * result equals the source quaternion up to sign.
 */
func NewQuatFromMat3(mt Mat3) Quaternion {
	fourXSquaredMinus1 := mt.X.X - mt.Y.Y - mt.Z.Z
	fourYSquaredMinus1 := mt.Y.Y - mt.X.X - mt.Z.Z
	fourZSquaredMinus1 := mt.Z.Z - mt.X.X - mt.Y.Y
	fourWSquaredMinus1 := mt.X.X + mt.Y.Y + mt.Z.Z

	biggestIndex := 0
	fourBiggestSquaredMinus1 := fourWSquaredMinus1
	if fourXSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourXSquaredMinus1
		biggestIndex = 1
	}
	if fourYSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourYSquaredMinus1
		biggestIndex = 2
	}
	if fourZSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourZSquaredMinus1
		biggestIndex = 3
	}

	biggest := ksqrt(fourBiggestSquaredMinus1+1) * 0.5
	mult := 0.25 / biggest

	var out Quaternion
	switch biggestIndex {
	case 0:
		out.Amount = biggest
		out.Axis.X = (mt.Y.Z - mt.Z.Y) * mult
		out.Axis.Y = (mt.Z.X - mt.X.Z) * mult
		out.Axis.Z = (mt.X.Y - mt.Y.X) * mult
	case 1:
		out.Amount = (mt.Y.Z - mt.Z.Y) * mult
		out.Axis.X = biggest
		out.Axis.Y = (mt.X.Y + mt.Y.X) * mult
		out.Axis.Z = (mt.Z.X + mt.X.Z) * mult
	case 2:
		out.Amount = (mt.Z.X - mt.X.Z) * mult
		out.Axis.X = (mt.X.Y + mt.Y.X) * mult
		out.Axis.Y = biggest
		out.Axis.Z = (mt.Y.Z + mt.Z.Y) * mult
	case 3:
		out.Amount = (mt.X.Y - mt.Y.X) * mult
		out.Axis.X = (mt.Z.X + mt.X.Z) * mult
		out.Axis.Y = (mt.Y.Z + mt.Z.Y) * mult
		out.Axis.Z = biggest
	}
	return out
}

/**
 * @brief Creates a quaternion from the given axis and angle in radians.
 *
 * @param normalize Indicates if the quaternion should be normalized.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32, normalize bool) Quaternion {
	half := 0.5 * angle
	q := Quaternion{Axis: axis.MulScalar(ksin(half)), Amount: kcos(half)}
	if normalize {
		return q.Normalized()
	}
	return q
}

/**
 * @brief Creates a rotation around axis using the rational unit-circle
 * parametrization of amount, the same parametrization as Mat3.Yaw.
 */
func NewQuatRotationAroundAxis(axis Vec3, amount float32) Quaternion {
	xy := PointOnUnitCircle(amount)
	return Quaternion{Axis: axis.MulScalar(xy.Y), Amount: xy.X}.Normalized()
}

// RotateAroundAxis composes q with a rotation around axis.
func (q Quaternion) RotateAroundAxis(axis Vec3, amount float32) Quaternion {
	return q.Mul(NewQuatRotationAroundAxis(axis, amount))
}
