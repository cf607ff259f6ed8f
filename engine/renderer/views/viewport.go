package views

import (
	"fmt"

	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/renderer/components"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
	"github.com/spaghettifunk/slim/engine/renderer/projection"
	"github.com/spaghettifunk/slim/engine/renderer/raster"
)

const (
	VIEWPORT_DEFAULT_NEAR_CLIP float32 = 0.1
	VIEWPORT_DEFAULT_FAR_CLIP  float32 = 1000
)

type ViewportSettings struct {
	NearClip   float32
	FarClip    float32
	RenderMode metadata.RenderMode
	ShowHUD    bool
}

func DefaultViewportSettings() ViewportSettings {
	return ViewportSettings{
		NearClip:   VIEWPORT_DEFAULT_NEAR_CLIP,
		FarClip:    VIEWPORT_DEFAULT_FAR_CLIP,
		RenderMode: metadata.RenderModeBeauty,
	}
}

func NewViewportSettings(cfg core.ViewportConfig) (ViewportSettings, error) {
	mode, err := metadata.ParseRenderMode(cfg.RenderMode)
	if err != nil {
		return ViewportSettings{}, fmt.Errorf("viewport: %w", err)
	}
	return ViewportSettings{
		NearClip:   cfg.NearClip,
		FarClip:    cfg.FarClip,
		RenderMode: mode,
		ShowHUD:    cfg.ShowHUD,
	}, nil
}

/**
 * @brief A camera looking into a frame buffer. Every draw call goes through
 * the viewport so it always knows which camera and which clipping planes to
 * use; there is no process wide current viewport.
 */
type Viewport struct {
	Settings    ViewportSettings
	Navigation  *components.Navigation
	HUD         *HUD
	Camera      *components.Camera
	FrameBuffer *raster.PixelGrid

	// scratch space reused by the shape drawing calls
	edges []projection.WorldEdge
}

func NewViewport(settings ViewportSettings, navigation components.NavigationSettings, camera *components.Camera, frameBuffer *raster.PixelGrid) *Viewport {
	hud := NewHUD(frameBuffer.Dimensions.Width, frameBuffer.Dimensions.Height)
	hud.Mode = settings.RenderMode
	return &Viewport{
		Settings:    settings,
		Navigation:  components.NewNavigation(navigation),
		HUD:         hud,
		Camera:      camera,
		FrameBuffer: frameBuffer,
	}
}

// Resize changes the frame buffer size within its capacity and keeps the HUD in sync.
func (v *Viewport) Resize(width, height uint16) error {
	if err := v.FrameBuffer.Resize(width, height); err != nil {
		return err
	}
	v.HUD.SetDimensions(width, height)
	return nil
}

// Clear paints the whole frame buffer with opaque black so exported frames have no transparency.
func (v *Viewport) Clear() {
	v.FrameBuffer.Fill(metadata.Color(metadata.ColorBlack))
}

// SetRenderMode switches the render mode shown by the HUD.
func (v *Viewport) SetRenderMode(mode metadata.RenderMode) {
	v.Settings.RenderMode = mode
	v.HUD.Mode = mode
}

/**
 * @brief Draws a world space edge as seen by the viewport camera.
 *
 * The edge goes to view space, is clipped against the near plane, projected,
 * clamped to a guard band around the frame buffer and rasterized. Edges lying
 * entirely past the far plane are skipped. Returns false when nothing was
 * drawn because the edge was culled.
 */
func (v *Viewport) DrawEdge(e projection.WorldEdge, color metadata.RGBA) bool {
	view := projection.ToView(e, &v.Camera.Transform)
	if view.From.Z > v.Settings.FarClip && view.To.Z > v.Settings.FarClip {
		return false
	}
	dims := v.FrameBuffer.Dimensions
	screen, ok := projection.Project(view, dims, v.Camera.FocalLength, v.Settings.NearClip)
	if !ok {
		return false
	}
	screen, ok = screen.Guard(dims)
	if !ok {
		return false
	}
	x0, y0, x1, y1 := screen.Pixels()
	v.FrameBuffer.DrawLine(x0, y0, x1, y1, color)
	return true
}

// DrawEdges draws every edge in one color and returns how many were not culled.
func (v *Viewport) DrawEdges(edges []projection.WorldEdge, color metadata.RGBA) int {
	drawn := 0
	for _, e := range edges {
		if v.DrawEdge(e, color) {
			drawn++
		}
	}
	return drawn
}
