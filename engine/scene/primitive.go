package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

type PrimitiveType uint8

const (
	PrimitiveTypeNone PrimitiveType = iota
	PrimitiveTypeQuad
	PrimitiveTypeBox
	PrimitiveTypeTetrahedron
)

func (t PrimitiveType) String() string {
	switch t {
	case PrimitiveTypeQuad:
		return "quad"
	case PrimitiveTypeBox:
		return "box"
	case PrimitiveTypeTetrahedron:
		return "tetrahedron"
	default:
		return "none"
	}
}

func ParsePrimitiveType(s string) (PrimitiveType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quad":
		return PrimitiveTypeQuad, nil
	case "box":
		return PrimitiveTypeBox, nil
	case "tetrahedron", "tet":
		return PrimitiveTypeTetrahedron, nil
	case "none", "":
		return PrimitiveTypeNone, nil
	}
	return PrimitiveTypeNone, fmt.Errorf("unknown primitive type %q", s)
}

/** @brief Which parts of a primitive's transform differ from identity. */
type TransformKind uint8

const (
	Translated TransformKind = 1 << iota
	Rotated
	Scaled
	ScaledNonUniformly

	Identity TransformKind = 0
)

func (k TransformKind) Has(flag TransformKind) bool {
	return k&flag != 0
}

/**
 * @brief A unit shape placed in the world by scale, then rotation, then
 * translation. Spin is an angular speed in radians per second around
 * SpinAxis, applied by Scene.Update.
 */
type Primitive struct {
	ID       uuid.UUID
	Type     PrimitiveType
	Position math.Vec3
	Scale    math.Vec3
	Rotation math.Quaternion
	Color    metadata.RGBA
	Visible  bool

	SpinAxis math.Vec3
	Spin     float32
}

func NewPrimitive(t PrimitiveType) Primitive {
	return Primitive{
		ID:       uuid.New(),
		Type:     t,
		Scale:    math.NewVec3One(),
		Rotation: math.NewQuatIdentity(),
		Color:    metadata.Color(metadata.ColorWhite),
		Visible:  true,
	}
}

/**
 * @brief Derives the transform kind from the current field values, so it
 * can never disagree with them.
 */
func (p *Primitive) Kind() TransformKind {
	var k TransformKind
	if p.Position.IsNonZero() {
		k |= Translated
	}
	if p.Rotation.Axis.IsNonZero() {
		k |= Rotated
	}
	if p.Scale != math.NewVec3One() {
		k |= Scaled
		if p.Scale.X != p.Scale.Y || p.Scale.Y != p.Scale.Z {
			k |= ScaledNonUniformly
		}
	}
	return k
}

// ToWorld maps a point from object space to world space.
func (p *Primitive) ToWorld(position math.Vec3) math.Vec3 {
	k := p.Kind()
	if k.Has(Scaled) {
		position = position.Mul(p.Scale)
	}
	if k.Has(Rotated) {
		position = position.MulQuat(p.Rotation)
	}
	if k.Has(Translated) {
		position = position.Add(p.Position)
	}
	return position
}

// ToObject maps a point from world space to object space.
func (p *Primitive) ToObject(position math.Vec3) math.Vec3 {
	k := p.Kind()
	if k.Has(Translated) {
		position = position.Sub(p.Position)
	}
	if k.Has(Rotated) {
		position = position.MulQuat(p.Rotation.Conjugate())
	}
	if k.Has(Scaled) {
		position = position.Mul(p.Scale.Reciprocal())
	}
	return position
}

/**
 * @brief Maps a surface direction from object space to world space. Non
 * uniform scale is applied inverted, the way normals transform; the result
 * is not renormalized.
 */
func (p *Primitive) DirectionToWorld(direction math.Vec3) math.Vec3 {
	k := p.Kind()
	if k.Has(ScaledNonUniformly) {
		direction = direction.Mul(p.Scale.Reciprocal())
	}
	if k.Has(Rotated) {
		direction = direction.MulQuat(p.Rotation)
	}
	return direction
}

// DirectionToObject maps a direction from world space to object space.
func (p *Primitive) DirectionToObject(direction math.Vec3) math.Vec3 {
	k := p.Kind()
	if k.Has(Rotated) {
		direction = direction.MulQuat(p.Rotation.Conjugate())
	}
	if k.Has(ScaledNonUniformly) {
		direction = direction.Mul(p.Scale.Reciprocal()).Normalized()
	}
	return direction
}

// SetRotation sets the orientation from an axis and an angle in radians.
func (p *Primitive) SetRotation(axis math.Vec3, angle float32) {
	if !axis.IsNonZero() || angle == 0 {
		p.Rotation = math.NewQuatIdentity()
		return
	}
	p.Rotation = math.NewQuatFromAxisAngle(axis.Normalized(), angle, true)
}

// Rotate composes the current orientation with a rotation of angle radians around axis.
func (p *Primitive) Rotate(axis math.Vec3, angle float32) {
	if !axis.IsNonZero() || angle == 0 {
		return
	}
	delta := math.NewQuatFromAxisAngle(axis.Normalized(), angle, true)
	p.Rotation = p.Rotation.Mul(delta).Normalized()
}

func (p *Primitive) Update(dt float32) {
	if p.Spin != 0 {
		p.Rotate(p.SpinAxis, p.Spin*dt)
	}
}
