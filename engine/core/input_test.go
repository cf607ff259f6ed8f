package core

import (
	"testing"

	"github.com/spaghettifunk/slim/engine/math"
)

func TestControlsKeyboard(t *testing.T) {
	c := NewControls()
	c.ProcessKey(KEY_W, true)
	if !c.IsKeyDown(KEY_W) || !c.IsKeyPressed(KEY_W) {
		t.Fatalf("W should be down and freshly pressed")
	}
	c.Update()
	if !c.IsKeyDown(KEY_W) || c.IsKeyPressed(KEY_W) || !c.WasKeyDown(KEY_W) {
		t.Errorf("W should be held, not freshly pressed, after Update")
	}
	c.ProcessKey(KEY_W, false)
	if !c.IsKeyUp(KEY_W) {
		t.Errorf("W should be up")
	}
}

func TestControlsMouse(t *testing.T) {
	c := NewControls()
	c.ProcessMouseMove(10, 20)
	c.ProcessMouseMove(15, 18)
	if c.Mouse.Movement != (math.Vec2i{X: 15, Y: 18}) || !c.Mouse.Moved {
		t.Errorf("Movement = %v, want accumulated (15, 18)", c.Mouse.Movement)
	}
	c.ProcessButton(BUTTON_RIGHT, true)
	if !c.IsButtonDown(BUTTON_RIGHT) || c.Mouse.Buttons[BUTTON_RIGHT].DownPos != (math.Vec2i{X: 15, Y: 18}) {
		t.Errorf("right button = %+v", c.Mouse.Buttons[BUTTON_RIGHT])
	}
	c.ProcessMouseWheel(0.5)
	if c.Mouse.WheelScroll != 50 || !c.Mouse.WheelScrolled {
		t.Errorf("WheelScroll = %v, want 50", c.Mouse.WheelScroll)
	}

	c.Update()
	if c.Mouse.Movement != (math.Vec2i{}) || c.Mouse.WheelScroll != 0 || c.Mouse.Moved || c.Mouse.WheelScrolled {
		t.Errorf("per-frame mouse state not cleared: %+v", c.Mouse)
	}
	if c.Mouse.Pos != (math.Vec2i{X: 15, Y: 18}) || !c.IsButtonDown(BUTTON_RIGHT) {
		t.Errorf("persistent mouse state lost: %+v", c.Mouse)
	}
}
