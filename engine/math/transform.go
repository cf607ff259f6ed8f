package math

/**
 * @brief Creates a transform at the origin with every matrix set to identity.
 */
func NewTransform() Transform {
	t := Transform{}
	t.Reset()
	return t
}

// NewTransformFromPosition creates an unrotated transform at position.
func NewTransformFromPosition(position Vec3) Transform {
	t := NewTransform()
	t.Position = position
	return t
}

// Reset restores the identity orientation and moves the transform to the origin.
func (t *Transform) Reset() {
	t.Matrix = NewMat3Identity()
	t.YawMatrix = NewMat3Identity()
	t.PitchMatrix = NewMat3Identity()
	t.RollMatrix = NewMat3Identity()
	t.RotationMatrix = NewMat3Identity()
	t.RotationMatrixInverted = NewMat3Identity()
	t.Position = NewVec3Zero()
}

/**
 * @brief Rotates the transform by the given yaw, pitch and roll increments.
 *
 * Only the cached matrices of nonzero axes are touched. The orientation is
 * recomposed as pitch * yaw * roll and its transpose is stored as the inverse.
 * No re-orthonormalization happens, so floating-point drift accumulates over
 * very long sessions.
 */
func (t *Transform) Rotate(yaw, pitch, roll float32) {
	if yaw != 0 {
		t.YawMatrix.Yaw(yaw)
	}
	if pitch != 0 {
		t.PitchMatrix.Pitch(pitch)
	}
	if roll != 0 {
		t.RollMatrix.Roll(roll)
	}

	t.RotationMatrix = t.PitchMatrix.Mul(t.YawMatrix).Mul(t.RollMatrix)
	t.RotationMatrixInverted = t.RotationMatrix.Transposed()
	t.Matrix = t.Matrix.Mul(t.RotationMatrix)
}

func (t *Transform) Right() Vec3 {
	return t.RotationMatrix.X
}

func (t *Transform) Up() Vec3 {
	return t.RotationMatrix.Y
}

func (t *Transform) Forward() Vec3 {
	return t.RotationMatrix.Z
}

// Rotation returns the current orientation as a quaternion.
func (t *Transform) Rotation() Quaternion {
	return NewQuatFromMat3(t.RotationMatrix)
}

/**
 * @brief Moves a world-space point into the local space of the transform:
 * (p - Position) * RotationMatrixInverted.
 */
func (t *Transform) WorldToLocal(p Vec3) Vec3 {
	return p.Sub(t.Position).MulMat3(t.RotationMatrixInverted)
}

// LocalToWorld is the inverse of WorldToLocal.
func (t *Transform) LocalToWorld(p Vec3) Vec3 {
	return p.MulMat3(t.RotationMatrix).Add(t.Position)
}

// Translate moves the transform by offset in world space.
func (t *Transform) Translate(offset Vec3) {
	t.Position = t.Position.Add(offset)
}

// Mat4 returns the local-to-world transform as a 4x4 matrix.
func (t *Transform) Mat4() Mat4 {
	return NewMat4FromMat3(t.RotationMatrix, t.Position)
}
