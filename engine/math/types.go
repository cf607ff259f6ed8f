package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec2i is an integer 2D vector, used for pixel and mouse coordinates.
type Vec2i struct {
	X, Y int32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief A row-major 3x3 matrix. X, Y and Z are the basis rows; a vector is
 * transformed as a row vector: v.X*X + v.Y*Y + v.Z*Z.
 */
type Mat3 struct {
	X, Y, Z Vec3
}

/** @brief A row-major 4x4 matrix with basis rows X, Y, Z and W. */
type Mat4 struct {
	X, Y, Z, W Vec4
}

/**
 * @brief A rotation quaternion. Axis holds the vector part and Amount the
 * scalar part. Represents a rotation only when normalized.
 */
type Quaternion struct {
	Axis   Vec3
	Amount float32
}

/**
 * @brief An orientation and position in 3D space.
 *
 * The rotation is kept as three cached single-axis matrices composed into
 * RotationMatrix. RotationMatrixInverted is the transpose of RotationMatrix and
 * is refreshed on every rotation, which is only valid while the matrix stays
 * orthonormal.
 */
type Transform struct {
	/** @brief Accumulated product of every rotation applied so far. */
	Matrix Mat3

	YawMatrix   Mat3
	PitchMatrix Mat3
	RollMatrix  Mat3

	/** @brief Current orientation. Rows are right, up and forward. */
	RotationMatrix Mat3
	/** @brief Transpose of RotationMatrix, maps world directions into local space. */
	RotationMatrixInverted Mat3

	Position Vec3
}
