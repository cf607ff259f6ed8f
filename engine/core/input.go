package core

import "github.com/spaghettifunk/slim/engine/math"

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_CONTROL   KeyCode = 0x11
	KEY_ALT       KeyCode = 0x12
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_1         KeyCode = 0x31
	KEY_2         KeyCode = 0x32
	KEY_3         KeyCode = 0x33
	KEY_4         KeyCode = 0x34
	KEY_A         KeyCode = 0x41
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_H         KeyCode = 0x48
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_W         KeyCode = 0x57
	KEYS_MAX_KEYS KeyCode = 0xFF
)

// Per-button state with the positions of the last press and release.
type MouseButton struct {
	DownPos   math.Vec2i
	UpPos     math.Vec2i
	IsPressed bool
	// IsHandled is set by consumers once they reacted to a press.
	IsHandled bool
}

// Mouse state structure
type MouseState struct {
	Buttons [BUTTON_MAX_BUTTONS]MouseButton
	Pos     math.Vec2i
	// Movement accumulates pointer deltas since the last Update.
	Movement      math.Vec2i
	WheelScroll   float32
	Moved         bool
	WheelScrolled bool
	IsCaptured    bool
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

/**
 * @brief Input snapshot owned by the application and read once per frame by
 * navigation. Platform glue feeds it through the Process* methods; nothing in
 * the renderer polls devices directly.
 */
type Controls struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	Mouse            MouseState
}

func NewControls() *Controls {
	return &Controls{}
}

// Update copies the current keyboard state to the previous one and clears the
// per-frame mouse deltas. Call after the frame consumed the input.
func (c *Controls) Update() {
	c.KeyboardPrevious = c.KeyboardCurrent
	c.Mouse.Movement = math.Vec2i{}
	c.Mouse.WheelScroll = 0
	c.Mouse.Moved = false
	c.Mouse.WheelScrolled = false
}

// keyboard input
func (c *Controls) IsKeyDown(key KeyCode) bool {
	return c.KeyboardCurrent.Keys[key]
}

func (c *Controls) IsKeyUp(key KeyCode) bool {
	return !c.KeyboardCurrent.Keys[key]
}

func (c *Controls) WasKeyDown(key KeyCode) bool {
	return c.KeyboardPrevious.Keys[key]
}

// IsKeyPressed reports a key that went down during this frame.
func (c *Controls) IsKeyPressed(key KeyCode) bool {
	return c.IsKeyDown(key) && !c.WasKeyDown(key)
}

func (c *Controls) ProcessKey(key KeyCode, pressed bool) {
	if c.KeyboardCurrent.Keys[key] != pressed {
		c.KeyboardCurrent.Keys[key] = pressed
		LogDebug("key %#02x pressed=%t", key, pressed)
	}
}

// mouse input
func (c *Controls) IsButtonDown(button Button) bool {
	return c.Mouse.Buttons[button].IsPressed
}

func (c *Controls) ProcessButton(button Button, pressed bool) {
	b := &c.Mouse.Buttons[button]
	if b.IsPressed == pressed {
		return
	}
	b.IsPressed = pressed
	if pressed {
		b.DownPos = c.Mouse.Pos
		b.IsHandled = false
	} else {
		b.UpPos = c.Mouse.Pos
	}
}

func (c *Controls) ProcessMouseMove(x, y int32) {
	if c.Mouse.Pos.X == x && c.Mouse.Pos.Y == y {
		return
	}
	c.Mouse.Movement.X += x - c.Mouse.Pos.X
	c.Mouse.Movement.Y += y - c.Mouse.Pos.Y
	c.Mouse.Pos = math.Vec2i{X: x, Y: y}
	c.Mouse.Moved = true
}

// ProcessMouseWheel accumulates wheel notches scaled to the navigation units.
func (c *Controls) ProcessMouseWheel(amount float32) {
	c.Mouse.WheelScroll += amount * 100
	c.Mouse.WheelScrolled = true
}
