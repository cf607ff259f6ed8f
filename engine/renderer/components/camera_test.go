package components

import (
	"testing"

	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/math"
)

const tolerance float32 = 1e-3

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func newTestCamera() *Camera {
	c := NewCamera(DefaultCameraSettings())
	c.Transform.Position = math.NewVec3(1, 2, -10)
	c.Transform.Rotate(0.3, -0.1, 0)
	c.ClearFlags()
	return c
}

func TestNewCamera(t *testing.T) {
	c := NewCamera(DefaultCameraSettings())
	if c.FocalLength != 2 || c.Zoom != 2 || c.TargetDistance != 10 || c.Dolly != 0 {
		t.Errorf("defaults = fl %v zoom %v td %v dolly %v", c.FocalLength, c.Zoom, c.TargetDistance, c.Dolly)
	}
	if c.Changed() {
		t.Errorf("new camera has flags set")
	}
	if c.Transform.RotationMatrix != math.NewMat3Identity() {
		t.Errorf("new camera is rotated")
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	cfg := core.DefaultConfig().Camera
	c := NewCameraFromConfig(cfg)
	if got := c.GetPosition(); got != math.NewVec3(0, 6, -12) {
		t.Errorf("position = %v, want (0, 6, -12)", got)
	}
	if c.Transform.Forward().Y >= 0 {
		t.Errorf("negative pitch should look down, forward = %v", c.Transform.Forward())
	}
	if c.Changed() {
		t.Errorf("configured camera should start clean")
	}
}

func TestZoomBy(t *testing.T) {
	tests := []struct {
		name      string
		zoom      float32
		wantFocal float32
	}{
		{"zoom in", 1, 3},
		{"between", -1.5, 1},
		{"past minus one", -4.5, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(DefaultCameraSettings())
			c.ZoomBy(tt.zoom)
			if abs(c.FocalLength-tt.wantFocal) > tolerance {
				t.Errorf("FocalLength = %v, want %v", c.FocalLength, tt.wantFocal)
			}
			if c.Zoom != 2+tt.zoom || !c.Zoomed {
				t.Errorf("Zoom = %v, Zoomed = %v", c.Zoom, c.Zoomed)
			}
		})
	}
}

func TestDollyRoundTrip(t *testing.T) {
	c := newTestCamera()
	start := c.GetPosition()
	target := c.Target()

	c.DollyBy(50, CAMERA_DEFAULT_TARGET_DISTANCE)
	if c.TargetDistance >= CAMERA_DEFAULT_TARGET_DISTANCE {
		t.Errorf("dolly in did not shorten the target distance: %v", c.TargetDistance)
	}
	if got := c.Target(); !got.Compare(target, tolerance) {
		t.Errorf("target moved to %v, want %v", got, target)
	}

	c.DollyBy(-50, CAMERA_DEFAULT_TARGET_DISTANCE)
	if abs(c.TargetDistance-CAMERA_DEFAULT_TARGET_DISTANCE) > tolerance {
		t.Errorf("TargetDistance = %v, want %v", c.TargetDistance, CAMERA_DEFAULT_TARGET_DISTANCE)
	}
	if got := c.GetPosition(); !got.Compare(start, tolerance) {
		t.Errorf("position = %v, want %v", got, start)
	}
	if !c.Moved || c.Turned || c.Zoomed {
		t.Errorf("flags = moved %v turned %v zoomed %v", c.Moved, c.Turned, c.Zoomed)
	}
}

func TestOrbitKeepsTarget(t *testing.T) {
	c := newTestCamera()
	target := c.Target()
	c.Orbit(0.4, 0.2)
	if got := c.Target(); !got.Compare(target, tolerance) {
		t.Errorf("target after orbit = %v, want %v", got, target)
	}
	if d := c.GetPosition().Distance(target); abs(d-c.TargetDistance) > tolerance {
		t.Errorf("distance to target = %v, want %v", d, c.TargetDistance)
	}
	if !c.Moved || !c.Turned {
		t.Errorf("orbit should set Moved and Turned")
	}
}

func TestPan(t *testing.T) {
	c := NewCamera(DefaultCameraSettings())
	c.Pan(1, 2)
	if got := c.GetPosition(); got != math.NewVec3(1, 2, 0) {
		t.Errorf("position = %v, want (1, 2, 0)", got)
	}
	if !c.Moved || c.Turned {
		t.Errorf("pan flags = moved %v turned %v", c.Moved, c.Turned)
	}
}

func TestFlagsAreSticky(t *testing.T) {
	c := NewCamera(DefaultCameraSettings())
	c.Turn(0.1, 0)
	c.Pan(0, 0)
	c.Turn(0, 0)
	if !c.Turned || !c.Moved {
		t.Fatalf("flags were reset by a later operation")
	}
	c.ClearFlags()
	if c.Changed() {
		t.Errorf("ClearFlags() left flags set")
	}
}

func TestNavigateAcceleratesAndStops(t *testing.T) {
	c := NewCamera(DefaultCameraSettings())
	n := NewNavigation(DefaultNavigationSettings())
	dt := float32(1) / 60

	n.Move.Forward = true
	for i := 0; i < 60; i++ {
		n.Navigate(c, dt)
	}
	if n.Velocity.Z != n.Settings.MaxVelocity {
		t.Errorf("velocity = %v, want %v", n.Velocity.Z, n.Settings.MaxVelocity)
	}
	if c.GetPosition().Z <= 0 || !c.Moved {
		t.Errorf("camera did not move forward: %v", c.GetPosition())
	}

	n.Move.Forward = false
	for i := 0; i < 60; i++ {
		n.Navigate(c, dt)
	}
	if n.Velocity.IsNonZero() {
		t.Errorf("velocity = %v, want zero", n.Velocity)
	}
	c.ClearFlags()
	n.Navigate(c, dt)
	if c.Moved {
		t.Errorf("resting camera reported movement")
	}
}

func TestNavigateTurn(t *testing.T) {
	c := NewCamera(DefaultCameraSettings())
	n := NewNavigation(DefaultNavigationSettings())
	n.Turn.Left = true
	n.Navigate(c, 0.1)
	if !c.Turned || c.Transform.Forward() == math.NewVec3(0, 0, 1) {
		t.Errorf("turning left did not rotate the camera")
	}
}

func TestApplyControls(t *testing.T) {
	c := newTestCamera()
	n := NewNavigation(DefaultNavigationSettings())
	controls := core.NewControls()

	controls.ProcessKey(core.KEY_SHIFT, true)
	controls.ProcessMouseWheel(1)
	n.ApplyControls(c, controls, 1.0/60)
	if c.Dolly != 100 || c.Zoomed {
		t.Errorf("shift+wheel should dolly: dolly %v zoomed %v", c.Dolly, c.Zoomed)
	}
	controls.Update()

	controls.ProcessKey(core.KEY_SHIFT, false)
	controls.ProcessMouseWheel(1)
	n.ApplyControls(c, controls, 1.0/60)
	if !c.Zoomed {
		t.Errorf("wheel should zoom")
	}
	controls.Update()

	c.ClearFlags()
	controls.ProcessButton(core.BUTTON_LEFT, true)
	controls.ProcessMouseMove(10, 5)
	target := c.Target()
	n.ApplyControls(c, controls, 1.0/60)
	if !c.Turned || !c.Target().Compare(target, tolerance) {
		t.Errorf("left drag should orbit around the target")
	}
	controls.Update()

	controls.ProcessButton(core.BUTTON_LEFT, false)
	controls.ProcessKey(core.KEY_W, true)
	n.ApplyControls(c, controls, 1.0/60)
	if !n.Move.Forward || n.Velocity.Z <= 0 {
		t.Errorf("W should move forward: %+v", n.Move)
	}
}
