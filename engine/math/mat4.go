package math

import "fmt"

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat4Identity() Mat4 {
	return Mat4{
		X: Vec4{1, 0, 0, 0},
		Y: Vec4{0, 1, 0, 0},
		Z: Vec4{0, 0, 1, 0},
		W: Vec4{0, 0, 0, 1},
	}
}

/**
 * @brief Creates and returns a translation matrix. The translation lives in the
 * W row, matching row-vector multiplication.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.W = position.ToVec4(1)
	return out
}

// NewMat4Scale returns a scale matrix.
func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out.X.X = scale.X
	out.Y.Y = scale.Y
	out.Z.Z = scale.Z
	return out
}

// NewMat4FromMat3 embeds rotation and position into a 4x4 transform.
func NewMat4FromMat3(rotation Mat3, position Vec3) Mat4 {
	return Mat4{
		X: rotation.X.ToVec4(0),
		Y: rotation.Y.ToVec4(0),
		Z: rotation.Z.ToVec4(0),
		W: position.ToVec4(1),
	}
}

/**
 * @brief Returns the result of multiplying mt and other.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	return Mat4{
		X: mt.X.MulMat4(other),
		Y: mt.Y.MulMat4(other),
		Z: mt.Z.MulMat4(other),
		W: mt.W.MulMat4(other),
	}
}

func (mt Mat4) Transposed() Mat4 {
	return Mat4{
		X: Vec4{mt.X.X, mt.Y.X, mt.Z.X, mt.W.X},
		Y: Vec4{mt.X.Y, mt.Y.Y, mt.Z.Y, mt.W.Y},
		Z: Vec4{mt.X.Z, mt.Y.Z, mt.Z.Z, mt.W.Z},
		W: Vec4{mt.X.W, mt.Y.W, mt.Z.W, mt.W.W},
	}
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	return mt.X.Compare(other.X, tolerance) &&
		mt.Y.Compare(other.Y, tolerance) &&
		mt.Z.Compare(other.Z, tolerance) &&
		mt.W.Compare(other.W, tolerance)
}

func (mt Mat4) data() [16]float32 {
	return [16]float32{
		mt.X.X, mt.X.Y, mt.X.Z, mt.X.W,
		mt.Y.X, mt.Y.Y, mt.Y.Z, mt.Y.W,
		mt.Z.X, mt.Z.Y, mt.Z.Z, mt.Z.W,
		mt.W.X, mt.W.Y, mt.W.Z, mt.W.W,
	}
}

func newMat4FromData(d [16]float32) Mat4 {
	return Mat4{
		X: Vec4{d[0], d[1], d[2], d[3]},
		Y: Vec4{d[4], d[5], d[6], d[7]},
		Z: Vec4{d[8], d[9], d[10], d[11]},
		W: Vec4{d[12], d[13], d[14], d[15]},
	}
}

/**
 * @brief Returns the inverse of mt computed from its cofactors.
 * When the determinant is exactly zero, mt is returned unchanged together
 * with ErrSingularMatrix, the same contract as Mat3.Inverse.
 */
func (mt Mat4) Inverse() (Mat4, error) {
	m := mt.data()

	// 2x2 sub-determinants of the lower and upper halves.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return mt, fmt.Errorf("mat4 inverse: %w", ErrSingularMatrix)
	}
	inv := 1 / det

	var o [16]float32
	o[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * inv
	o[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv
	o[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * inv
	o[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv

	o[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv
	o[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * inv
	o[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv
	o[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * inv

	o[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * inv
	o[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv
	o[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * inv
	o[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv

	o[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv
	o[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * inv
	o[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv
	o[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * inv

	return newMat4FromData(o), nil
}

// TransformPoint applies mt to the point p (w = 1).
func (mt Mat4) TransformPoint(p Vec3) Vec3 {
	return p.ToVec4(1).MulMat4(mt).ToVec3()
}
