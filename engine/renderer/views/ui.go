package views

import (
	"fmt"

	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
	"github.com/spaghettifunk/slim/engine/renderer/raster"
)

const (
	HUD_RIGHT = 10
	HUD_TOP   = 10
)

var HUDColor = metadata.Color(metadata.ColorGreen)

/**
 * @brief Heads-up display drawn in the top right corner of the viewport.
 * Numbers are right aligned in four columns.
 */
type HUD struct {
	Width, Height        uint16
	MouseX, MouseY       int32
	FPS                  uint32
	MicrosecondsPerFrame uint32
	Using                string
	Mode                 metadata.RenderMode
	Color                metadata.RGBA
}

func NewHUD(width, height uint16) *HUD {
	return &HUD{
		Width:  width,
		Height: height,
		Using:  "CPU",
		Mode:   metadata.RenderModeBeauty,
		Color:  HUDColor,
	}
}

func (h *HUD) SetDimensions(width, height uint16) {
	h.Width = width
	h.Height = height
}

// SetCounters copies the averaged frame counters of the clock.
func (h *HUD) SetCounters(clock *core.Clock) {
	h.FPS = clock.AverageFramesPerSecond
	h.MicrosecondsPerFrame = clock.AverageMicrosecondsPerFrame
}

func (h *HUD) SetMouse(controls *core.Controls) {
	h.MouseX = controls.Mouse.Pos.X
	h.MouseY = controls.Mouse.Pos.Y
}

func (h *HUD) Text() string {
	return fmt.Sprintf("Width  : %4d\nHeight : %4d\nMouse X: %4d\nMouse Y: %4d\nUsing  : %4s\nFPS    : %4d\nmic-s/f: %4d\nMode : %6s",
		h.Width, h.Height, h.MouseX, h.MouseY, h.Using, h.FPS, h.MicrosecondsPerFrame, h.Mode)
}

// Draw writes the HUD text into g, right aligned HUD_RIGHT pixels from its right border.
func (h *HUD) Draw(g *raster.PixelGrid) {
	text := h.Text()
	x := max(0, g.Width()-raster.TextWidth(text)-HUD_RIGHT)
	g.DrawText(text, x, HUD_TOP, h.Color)
}

// RenderUI draws the HUD when the viewport shows it.
func (v *Viewport) RenderUI() {
	if v.Settings.ShowHUD {
		v.HUD.Draw(v.FrameBuffer)
	}
}
