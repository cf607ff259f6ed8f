package components

import (
	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/math"
)

type NavigationSpeeds struct {
	Turn   float32
	Orient float32
	Orbit  float32
	Zoom   float32
	Dolly  float32
	Pan    float32
}

type NavigationSettings struct {
	Speeds       NavigationSpeeds
	MaxVelocity  float32
	Acceleration float32
	// MaxDistance is the target distance reached at zero dolly.
	MaxDistance float32
}

func DefaultNavigationSettings() NavigationSettings {
	return NavigationSettings{
		Speeds: NavigationSpeeds{
			Turn:   2,
			Orient: 0.002,
			Orbit:  0.001,
			Zoom:   0.002,
			Dolly:  1,
			Pan:    0.02,
		},
		MaxVelocity:  8,
		Acceleration: 30,
		MaxDistance:  CAMERA_DEFAULT_TARGET_DISTANCE,
	}
}

func NewNavigationSettings(cfg core.NavigationConfig) NavigationSettings {
	return NavigationSettings{
		Speeds: NavigationSpeeds{
			Turn:   cfg.TurnSpeed,
			Orient: cfg.OrientSpeed,
			Orbit:  cfg.OrbitSpeed,
			Zoom:   cfg.ZoomSpeed,
			Dolly:  cfg.DollySpeed,
			Pan:    cfg.PanSpeed,
		},
		MaxVelocity:  cfg.MaxVelocity,
		Acceleration: cfg.Acceleration,
		MaxDistance:  cfg.MaxDistance,
	}
}

type NavigationMove struct {
	Right, Left, Up, Down, Forward, Backward bool
}

type NavigationTurn struct {
	Right, Left bool
}

/**
 * @brief Keyboard and mouse driven camera movement. Velocity is in camera
 * space and eases toward the target velocity at Settings.Acceleration.
 */
type Navigation struct {
	Settings NavigationSettings
	Move     NavigationMove
	Turn     NavigationTurn
	Velocity math.Vec3
}

func NewNavigation(settings NavigationSettings) *Navigation {
	return &Navigation{Settings: settings}
}

/**
 * @brief Advances the camera by one tick of length dt seconds.
 *
 * Held turn flags yaw the camera at the turn speed; held move flags set a
 * target velocity of MaxVelocity along the matching camera axis. The current
 * velocity approaches the target by at most Acceleration*dt per component
 * and, when nonzero, moves the camera along its own axes.
 */
func (n *Navigation) Navigate(camera *Camera, dt float32) {
	var target math.Vec3
	vmax := n.Settings.MaxVelocity
	if n.Move.Right {
		target.X += vmax
	}
	if n.Move.Left {
		target.X -= vmax
	}
	if n.Move.Up {
		target.Y += vmax
	}
	if n.Move.Down {
		target.Y -= vmax
	}
	if n.Move.Forward {
		target.Z += vmax
	}
	if n.Move.Backward {
		target.Z -= vmax
	}

	if n.Turn.Right || n.Turn.Left {
		yaw := dt * n.Settings.Speeds.Turn
		if !n.Turn.Left {
			yaw = -yaw
		}
		camera.Turn(yaw, 0)
	}

	n.Velocity = n.Velocity.Approach(target, n.Settings.Acceleration*dt)
	if n.Velocity.IsNonZero() {
		movement := n.Velocity.MulScalar(dt).MulMat3(camera.Transform.RotationMatrix)
		camera.Transform.Position = camera.Transform.Position.Add(movement)
		camera.Moved = true
	}
}

// Orient turns the camera in place from a mouse movement in pixels.
func (n *Navigation) Orient(camera *Camera, dx, dy float32) {
	s := n.Settings.Speeds.Orient
	camera.Turn(-dx*s, -dy*s)
}

func (n *Navigation) OrbitBy(camera *Camera, dx, dy float32) {
	s := n.Settings.Speeds.Orbit
	camera.Orbit(-dx*s, -dy*s)
}

func (n *Navigation) PanBy(camera *Camera, dx, dy float32) {
	s := n.Settings.Speeds.Pan
	camera.Pan(-dx*s, dy*s)
}

func (n *Navigation) ZoomBy(camera *Camera, wheel float32) {
	camera.ZoomBy(wheel * n.Settings.Speeds.Zoom)
}

func (n *Navigation) DollyBy(camera *Camera, wheel float32) {
	camera.DollyBy(wheel*n.Settings.Speeds.Dolly, n.Settings.MaxDistance)
}

/**
 * @brief Maps one frame of input to camera movement.
 *
 *   W/S forward and back, A/D left and right, R/F up and down, Q/E turn
 *   left mouse drag orbits, right drag looks around, middle drag pans
 *   wheel zooms, or dollies while SHIFT is held
 */
func (n *Navigation) ApplyControls(camera *Camera, controls *core.Controls, dt float32) {
	n.Move = NavigationMove{
		Forward:  controls.IsKeyDown(core.KEY_W),
		Backward: controls.IsKeyDown(core.KEY_S),
		Left:     controls.IsKeyDown(core.KEY_A),
		Right:    controls.IsKeyDown(core.KEY_D),
		Up:       controls.IsKeyDown(core.KEY_R),
		Down:     controls.IsKeyDown(core.KEY_F),
	}
	n.Turn = NavigationTurn{
		Left:  controls.IsKeyDown(core.KEY_Q),
		Right: controls.IsKeyDown(core.KEY_E),
	}

	mouse := &controls.Mouse
	if mouse.WheelScrolled {
		if controls.IsKeyDown(core.KEY_SHIFT) {
			n.DollyBy(camera, mouse.WheelScroll)
		} else {
			n.ZoomBy(camera, mouse.WheelScroll)
		}
	}
	if mouse.Moved {
		dx, dy := float32(mouse.Movement.X), float32(mouse.Movement.Y)
		switch {
		case controls.IsButtonDown(core.BUTTON_LEFT):
			n.OrbitBy(camera, dx, dy)
		case controls.IsButtonDown(core.BUTTON_RIGHT):
			n.Orient(camera, dx, dy)
		case controls.IsButtonDown(core.BUTTON_MIDDLE):
			n.PanBy(camera, dx, dy)
		}
	}

	n.Navigate(camera, dt)
}
