package systems

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/components"
)

func newTestCameraSystem(t *testing.T, count uint16) *CameraSystem {
	t.Helper()
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: count,
		Settings:       components.DefaultCameraSettings(),
	}, nil)
	if err != nil {
		t.Fatalf("NewCameraSystem error = %v", err)
	}
	return cs
}

func TestNewCameraSystemValidation(t *testing.T) {
	for _, count := range []uint16{0, InvalidIDUint16} {
		_, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: count}, nil)
		if !errors.Is(err, core.ErrInvalidConfig) {
			t.Errorf("MaxCameraCount %d: error = %v, want ErrInvalidConfig", count, err)
		}
	}
}

func TestCameraSystemDefault(t *testing.T) {
	def := components.NewCamera(components.DefaultCameraSettings())
	cs, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 1}, def)
	if err != nil {
		t.Fatalf("NewCameraSystem error = %v", err)
	}
	got, err := cs.Acquire(components.DEFAULT_CAMERA_NAME)
	if err != nil || got != def || cs.GetDefault() != def {
		t.Errorf("Acquire(default) = %p, %v, want %p", got, err, def)
	}
	// releasing the default camera is a no-op
	cs.Release(components.DEFAULT_CAMERA_NAME)
	if cs.GetDefault() != def {
		t.Errorf("default camera replaced after release")
	}
}

func TestCameraSystemAcquireRelease(t *testing.T) {
	cs := newTestCameraSystem(t, 2)

	a, err := cs.Acquire("a")
	if err != nil {
		t.Fatalf("Acquire(a) error = %v", err)
	}
	again, _ := cs.Acquire("a")
	if again != a {
		t.Errorf("second Acquire(a) returned a different camera")
	}
	if _, err := cs.Acquire("b"); err != nil {
		t.Fatalf("Acquire(b) error = %v", err)
	}
	if _, err := cs.Acquire("c"); err == nil {
		t.Errorf("Acquire(c) beyond capacity succeeded")
	}
	if n := len(cs.Active()); n != 3 {
		t.Errorf("Active() has %d cameras, want 3", n)
	}

	a.SetPosition(math.NewVec3(1, 2, 3))
	cs.Release("a")
	if a.GetPosition() != math.NewVec3(1, 2, 3) {
		t.Errorf("camera reset while still referenced")
	}
	cs.Release("a")
	if a.GetPosition() != math.NewVec3Zero() || a.Changed() {
		t.Errorf("camera not reset after last release")
	}

	c, err := cs.Acquire("c")
	if err != nil || c == nil {
		t.Errorf("Acquire(c) after release = %v, %v", c, err)
	}
	cs.Release("missing")
}
