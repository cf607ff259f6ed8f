package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief A full turn in radians. */
	K_TAU float32 = K_PI_2
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE float32 = 1.73205080756887729352
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

/**
 * Note that these are here in order to prevent converting to and from
 * float64 at every call site.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

func kpow(x, y float32) float32 {
	return float32(m.Pow(float64(x), float64(y)))
}

// Pow2 returns 2 raised to x.
func Pow2(x float32) float32 {
	return kpow(2, x)
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) Length() float32 {
	return ksqrt(v.X*v.X + v.Y*v.Y)
}

/**
 * @brief Returns the point on the unit circle for the rational parameter t:
 * ((1-t²)/(1+t²), 2t/(1+t²)). X is the cosine and Y the sine of 2*atan(t),
 * without any trigonometric call.
 */
func PointOnUnitCircle(t float32) Vec2 {
	t2 := t * t
	factor := 1 / (1 + t2)
	return Vec2{X: (1 - t2) * factor, Y: 2 * t * factor}
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func NewVec3Zero() Vec3 {
	return Vec3{}
}

func NewVec3One() Vec3 {
	return Vec3{1, 1, 1}
}

// NewVec3Scalar returns a vector with every component set to s.
func NewVec3Scalar(s float32) Vec3 {
	return Vec3{s, s, s}
}

func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Div divides component-wise.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3) DivScalar(scalar float32) Vec3 {
	factor := 1 / scalar
	return Vec3{v.X * factor, v.Y * factor, v.Z * factor}
}

// Reciprocal returns 1/v per component.
func (v Vec3) Reciprocal() Vec3 {
	return Vec3{1 / v.X, 1 / v.Y, 1 / v.Z}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of v. The length is not checked: a zero
 * vector yields Inf/NaN components.
 */
func (v Vec3) Normalized() Vec3 {
	return v.MulScalar(1 / v.Length())
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is not greater than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) IsNonZero() bool {
	return v.X != 0 || v.Y != 0 || v.Z != 0
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Approach moves every component of v toward target by at most diff.
func (v Vec3) Approach(target Vec3, diff float32) Vec3 {
	return Vec3{
		X: Approach(v.X, target.X, diff),
		Y: Approach(v.Y, target.Y, diff),
		Z: Approach(v.Z, target.Z, diff),
	}
}

/**
 * @brief Transforms v as a row vector by the matrix mt:
 * v.X*mt.X + v.Y*mt.Y + v.Z*mt.Z.
 */
func (v Vec3) MulMat3(mt Mat3) Vec3 {
	return Vec3{
		X: v.X*mt.X.X + v.Y*mt.Y.X + v.Z*mt.Z.X,
		Y: v.X*mt.X.Y + v.Y*mt.Y.Y + v.Z*mt.Z.Y,
		Z: v.X*mt.X.Z + v.Y*mt.Y.Z + v.Z*mt.Z.Z,
	}
}

/**
 * @brief Rotates v by the quaternion q. q is expected to be normalized.
 */
func (v Vec3) MulQuat(q Quaternion) Vec3 {
	out := q.Axis.Cross(v)
	qqv := q.Axis.Cross(out)
	out = out.MulScalar(q.Amount).Add(qqv)
	return out.MulScalar(2).Add(v)
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) Length() float32 {
	return ksqrt(v.Dot(v))
}

// Normalized divides by the length unconditionally.
func (v Vec4) Normalized() Vec4 {
	return v.MulScalar(1 / v.Length())
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance &&
		kabs(v.W-other.W) <= tolerance
}

// MulMat4 transforms v as a row vector by mt.
func (v Vec4) MulMat4(mt Mat4) Vec4 {
	return Vec4{
		X: v.X*mt.X.X + v.Y*mt.Y.X + v.Z*mt.Z.X + v.W*mt.W.X,
		Y: v.X*mt.X.Y + v.Y*mt.Y.Y + v.Z*mt.Z.Y + v.W*mt.W.Y,
		Z: v.X*mt.X.Z + v.Y*mt.Y.Z + v.Z*mt.Z.Z + v.W*mt.W.Z,
		W: v.X*mt.X.W + v.Y*mt.Y.W + v.Z*mt.Z.W + v.W*mt.W.W,
	}
}

/**
 * @brief Converts the provided degrees to radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts the provided radians to degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
