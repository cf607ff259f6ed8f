package testbed

import (
	"fmt"

	"github.com/spaghettifunk/slim/engine"
	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/components"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
	"github.com/spaghettifunk/slim/engine/renderer/raster"
	"github.com/spaghettifunk/slim/engine/renderer/views"
	"github.com/spaghettifunk/slim/engine/scene"
)

// OBSERVER_CAMERA_NAME is the second camera of the demo, drawn as a gizmo.
const OBSERVER_CAMERA_NAME = "observer"

type TestGame struct {
	*engine.Game
}

type gameState struct {
	// orbit amount per second of the viewport camera around its target
	OrbitSpeed float32

	worldCamera    *components.Camera
	observerCamera *components.Camera

	width  uint16
	height uint16
}

func NewTestGame(cfg *core.Config, configPath string) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:       cfg.Window.Title,
				ConfigPath: configPath,
				Config:     cfg,
			},
			State: &gameState{
				OrbitSpeed: 0.25,
			},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Boot(e *engine.Engine) error {
	core.LogInfo("booting testbed...")
	return nil
}

/**
 * @brief Fills an empty scene with the demo: a box, a tetrahedron and a
 * floor quad, a helix and a coil, plus an observer camera looking back at
 * them. Scenes coming from the configuration are left untouched.
 */
func (g *TestGame) Initialize(e *engine.Engine) error {
	core.LogDebug("TestGame Initialize fn....")

	state := g.State.(*gameState)
	state.worldCamera = e.Camera()

	if len(e.Scene.Primitives) == 0 && len(e.Scene.Helixes) == 0 && len(e.Scene.Coils) == 0 {
		populateDemoScene(e.Scene)
	}

	observer, err := e.CameraSystem.Acquire(OBSERVER_CAMERA_NAME)
	if err != nil {
		return fmt.Errorf("acquiring the observer camera: %w", err)
	}
	observer.SetPosition(math.NewVec3(10, 8, 10))
	// turn amounts are tangents of half angles: about 135 degrees left and 30 down
	observer.Turn(2.414, -0.27)
	observer.ClearFlags()
	state.observerCamera = observer
	e.Scene.AddCamera(observer)
	return nil
}

func populateDemoScene(s *scene.Scene) {
	floor := scene.NewPrimitive(scene.PrimitiveTypeQuad)
	floor.Scale = math.NewVec3(6, 1, 6)
	floor.Color = metadata.Color(metadata.ColorGrey)
	s.AddPrimitive(floor)

	box := scene.NewPrimitive(scene.PrimitiveTypeBox)
	box.Position = math.NewVec3(-3, 1, 0)
	box.Color = metadata.Color(metadata.ColorYellow)
	box.SpinAxis = math.NewVec3(0, 1, 0)
	box.Spin = 0.5
	s.AddPrimitive(box)

	tet := scene.NewPrimitive(scene.PrimitiveTypeTetrahedron)
	tet.Position = math.NewVec3(3, 1.5, 0)
	tet.Scale = math.NewVec3Scalar(1.5)
	tet.Color = metadata.Color(metadata.ColorMagenta)
	tet.SpinAxis = math.NewVec3(1, 1, 0)
	tet.Spin = -0.8
	s.AddPrimitive(tet)

	s.Helixes = append(s.Helixes, scene.Helix{
		Position:        math.NewVec3(0, 1, 4),
		Radius:          1.5,
		ThicknessRadius: 0.3,
		Revolutions:     20,
		Color:           metadata.Color(metadata.ColorCyan),
	})
	s.Coils = append(s.Coils, scene.Coil{
		Position:    math.NewVec3(0, 0, -4),
		Radius:      1,
		Height:      3,
		Revolutions: 8,
		Color:       metadata.Color(metadata.ColorRed),
	})
}

// Update keeps the viewport camera circling the scene.
func (g *TestGame) Update(e *engine.Engine, deltaTime float32) error {
	state := g.State.(*gameState)
	if state.OrbitSpeed != 0 {
		state.worldCamera.Orbit(state.OrbitSpeed*deltaTime, 0)
	}
	return nil
}

// Render frames the viewport in a thin border and marks its center.
func (g *TestGame) Render(viewport *views.Viewport, deltaTime float32) error {
	fb := viewport.FrameBuffer
	w, h := fb.Width(), fb.Height()
	border := metadata.Color(metadata.ColorGrey)
	fb.DrawRect(raster.NewRect(0, 0, w-1, h-1), border)
	fb.FillCircle(w/2, h/2, 2, border)
	return nil
}

func (g *TestGame) OnResize(width, height uint16) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("shutting down testbed...")
	return nil
}
