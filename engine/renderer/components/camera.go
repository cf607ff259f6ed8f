package components

import (
	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/math"
)

const (
	CAMERA_DEFAULT_FOCAL_LENGTH    float32 = 2
	CAMERA_DEFAULT_TARGET_DISTANCE float32 = 10
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

type CameraSettings struct {
	FocalLength    float32
	TargetDistance float32
}

func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		FocalLength:    CAMERA_DEFAULT_FOCAL_LENGTH,
		TargetDistance: CAMERA_DEFAULT_TARGET_DISTANCE,
	}
}

// NewCameraSettings reads the lens from cfg; zero values keep the defaults.
func NewCameraSettings(cfg core.CameraConfig) CameraSettings {
	settings := DefaultCameraSettings()
	if cfg.FocalLength > 0 {
		settings.FocalLength = cfg.FocalLength
	}
	if cfg.TargetDistance > 0 {
		settings.TargetDistance = cfg.TargetDistance
	}
	return settings
}

/**
 * @brief A pinhole camera looking down the forward (+Z) row of its transform.
 *
 * Moved, Turned and Zoomed are sticky: every operation sets its flag and only
 * ClearFlags resets them, so a frame can tell whether anything changed since
 * the last time it looked.
 */
type Camera struct {
	Transform math.Transform

	FocalLength float32
	/** @brief Distance to the point the camera orbits around and dollies towards. */
	TargetDistance float32
	Zoom           float32
	Dolly          float32

	Moved  bool
	Turned bool
	Zoomed bool

	settings CameraSettings
}

type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *Camera
}

func NewCamera(settings CameraSettings) *Camera {
	camera := &Camera{settings: settings}
	camera.Reset()
	return camera
}

/**
 * @brief Creates a camera from its configuration: placed at the configured
 * position and turned by the configured yaw and pitch amounts.
 */
func NewCameraFromConfig(cfg core.CameraConfig) *Camera {
	camera := NewCamera(NewCameraSettings(cfg))
	camera.Transform.Position = math.NewVec3(cfg.Position[0], cfg.Position[1], cfg.Position[2])
	if cfg.Yaw != 0 || cfg.Pitch != 0 {
		camera.Transform.Rotate(cfg.Yaw, cfg.Pitch, 0)
	}
	return camera
}

// Reset puts the camera back at the origin with its initial lens and clears every flag.
func (c *Camera) Reset() {
	c.Transform = math.NewTransform()
	c.FocalLength = c.settings.FocalLength
	c.Zoom = c.settings.FocalLength
	c.TargetDistance = c.settings.TargetDistance
	c.Dolly = 0
	c.ClearFlags()
}

func (c *Camera) ClearFlags() {
	c.Moved = false
	c.Turned = false
	c.Zoomed = false
}

// Changed reports whether any flag is set.
func (c *Camera) Changed() bool {
	return c.Moved || c.Turned || c.Zoomed
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Transform.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Transform.Position = position
	c.Moved = true
}

// Target is the point TargetDistance ahead of the camera.
func (c *Camera) Target() math.Vec3 {
	return c.Transform.Position.Add(c.Transform.Forward().MulScalar(c.TargetDistance))
}

func (c *Camera) WorldToView(p math.Vec3) math.Vec3 {
	return c.Transform.WorldToLocal(p)
}

/**
 * @brief Adds zoom to the accumulated zoom and derives the focal length:
 * the zoom itself above 1, -1/zoom below -1 and 1 in between. Zooming out
 * past -1 keeps shrinking the focal length toward 0 without flipping sign.
 */
func (c *Camera) ZoomBy(zoom float32) {
	z := c.Zoom + zoom
	switch {
	case z > 1:
		c.FocalLength = z
	case z < -1:
		c.FocalLength = -1 / z
	default:
		c.FocalLength = 1
	}
	c.Zoom = z
	c.Zoomed = true
}

/**
 * @brief Moves the camera along its forward direction while keeping the
 * target point fixed. The accumulated dolly maps to a target distance of
 * 2^(dolly / -200) * maxDistance.
 */
func (c *Camera) DollyBy(dolly, maxDistance float32) {
	target := c.Target()

	c.Dolly += dolly
	c.TargetDistance = math.Pow2(c.Dolly/-200) * maxDistance

	c.Transform.Position = target.Sub(c.Transform.Forward().MulScalar(c.TargetDistance))
	c.Moved = true
}

// Turn rotates the camera in place.
func (c *Camera) Turn(yaw, pitch float32) {
	c.Transform.Rotate(yaw, pitch, 0)
	c.Turned = true
}

/**
 * @brief Rotates the camera around its target: step forward onto the
 * target, turn, then step back along the new forward direction.
 */
func (c *Camera) Orbit(azimuth, altitude float32) {
	c.Transform.Position = c.Target()
	c.Turn(azimuth, altitude)
	c.Transform.Position = c.Transform.Position.Sub(c.Transform.Forward().MulScalar(c.TargetDistance))
	c.Moved = true
}

// Pan slides the camera along its right and up directions.
func (c *Camera) Pan(right, up float32) {
	movement := c.Transform.Up().MulScalar(up).Add(c.Transform.Right().MulScalar(right))
	c.Transform.Position = c.Transform.Position.Add(movement)
	c.Moved = true
}
