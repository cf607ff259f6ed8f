package testbed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/slim/engine"
	"github.com/spaghettifunk/slim/engine/core"
)

func newTestEngine(t *testing.T, cfg *core.Config) (*engine.Engine, *TestGame) {
	t.Helper()
	tg := NewTestGame(cfg, "")
	e, err := engine.New(tg.Game)
	if err != nil {
		t.Fatalf("engine.New error = %v", err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize error = %v", err)
	}
	return e, tg
}

func testConfig(t *testing.T) *core.Config {
	cfg := core.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 160, 120
	cfg.Output.Path = filepath.Join(t.TempDir(), "testbed.png")
	cfg.Output.Frames = 5
	return cfg
}

func TestDemoScene(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(t))
	s := e.Scene
	if len(s.Primitives) != 3 || len(s.Helixes) != 1 || len(s.Coils) != 1 {
		t.Errorf("demo scene has %d primitives %d helixes %d coils, want 3 1 1",
			len(s.Primitives), len(s.Helixes), len(s.Coils))
	}
	if len(s.Cameras) != 1 {
		t.Fatalf("demo scene has %d cameras, want 1", len(s.Cameras))
	}
	if s.Cameras[0] == e.Camera() {
		t.Errorf("observer camera is the viewport camera")
	}
}

func TestConfiguredSceneIsKept(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene.Primitives = []core.PrimitiveConfig{{Type: "tetrahedron"}}
	e, _ := newTestEngine(t, cfg)
	if len(e.Scene.Primitives) != 1 || len(e.Scene.Helixes) != 0 {
		t.Errorf("configured scene replaced by the demo")
	}
}

func TestRunOrbitsCamera(t *testing.T) {
	cfg := testConfig(t)
	e, _ := newTestEngine(t, cfg)
	start := e.Camera().GetPosition()
	target := e.Camera().Target()

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if e.Camera().GetPosition() == start {
		t.Errorf("camera did not orbit")
	}
	if d := e.Camera().Target().Distance(target); d > 1e-2 {
		t.Errorf("orbit target drifted by %v", d)
	}
	if info, err := os.Stat(cfg.Output.Path); err != nil || info.Size() == 0 {
		t.Errorf("frame not written: %v", err)
	}
}
