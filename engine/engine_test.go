package engine

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
	"github.com/spaghettifunk/slim/engine/renderer/views"
)

type hookCounts struct {
	boot, initialize, update, render, resize, shutdown int
}

func newTestGame(cfg *core.Config, configPath string) (*Game, *hookCounts) {
	counts := &hookCounts{}
	g := &Game{
		ApplicationConfig: &ApplicationConfig{Name: "test", ConfigPath: configPath, Config: cfg},
		FnBoot:            func(*Engine) error { counts.boot++; return nil },
		FnInitialize:      func(*Engine) error { counts.initialize++; return nil },
		FnUpdate:          func(*Engine, float32) error { counts.update++; return nil },
		FnRender:          func(*views.Viewport, float32) error { counts.render++; return nil },
		FnOnResize:        func(uint16, uint16) error { counts.resize++; return nil },
		FnShutdown:        func() error { counts.shutdown++; return nil },
	}
	return g, counts
}

func testConfig(t *testing.T) *core.Config {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 64, 48
	cfg.Output.Path = filepath.Join(t.TempDir(), "frame.png")
	cfg.Output.Frames = 3
	cfg.Scene.Primitives = []core.PrimitiveConfig{{Type: "box", Color: "red"}}
	return cfg
}

func newTestEngine(t *testing.T, cfg *core.Config) (*Engine, *hookCounts) {
	t.Helper()
	g, counts := newTestGame(cfg, "")
	e, err := New(g)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize error = %v", err)
	}
	return e, counts
}

func decodeFrame(t *testing.T, path string) (width, height int, hasRed bool) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening frame: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding frame: %v", err)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r == 0xFFFF && g == 0 && bl == 0 {
				hasRed = true
			}
		}
	}
	return b.Dx(), b.Dy(), hasRed
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("New(nil) error = %v, want ErrInvalidConfig", err)
	}
	cfg := core.DefaultConfig()
	cfg.Window.Width = 0
	g, _ := newTestGame(cfg, "")
	if _, err := New(g); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("New with zero width error = %v, want ErrInvalidConfig", err)
	}
}

func TestRunBeforeInitialize(t *testing.T) {
	g, _ := newTestGame(testConfig(t), "")
	e, err := New(g)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if err := e.Run(context.Background()); !errors.Is(err, core.ErrEngineNotRunning) {
		t.Errorf("Run error = %v, want ErrEngineNotRunning", err)
	}
}

func TestInitializeTwice(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(t))
	if err := e.Initialize(); err == nil {
		t.Errorf("second Initialize error = nil")
	}
}

func TestRunWritesFrame(t *testing.T) {
	cfg := testConfig(t)
	e, counts := newTestEngine(t, cfg)
	if e.Stage() != EngineStageInitialized {
		t.Fatalf("stage = %s, want initialized", e.Stage())
	}

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	want := hookCounts{boot: 1, initialize: 1, update: 3, render: 3, resize: 1}
	if *counts != want {
		t.Errorf("hooks = %+v, want %+v", *counts, want)
	}
	if e.FrameNumber() != 3 || e.Stage() != EngineStageInitialized {
		t.Errorf("frame %d stage %s, want 3 initialized", e.FrameNumber(), e.Stage())
	}

	w, h, hasRed := decodeFrame(t, cfg.Output.Path)
	if w != 64 || h != 48 {
		t.Errorf("frame is %dx%d, want 64x48", w, h)
	}
	if !hasRed {
		t.Errorf("the red box is not in the frame")
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t)
	e, _ := newTestEngine(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(cfg.Output.Path); !os.IsNotExist(err) {
		t.Errorf("frame written after cancellation")
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Frames = 10
	e, _ := newTestEngine(t, cfg)
	e.Controls.ProcessKey(core.KEY_ESCAPE, true)
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if e.FrameNumber() != 1 {
		t.Errorf("rendered %d frames, want 1", e.FrameNumber())
	}
	if _, err := os.Stat(cfg.Output.Path); err != nil {
		t.Errorf("frame not written: %v", err)
	}
}

func TestSnapshotIntoDirectory(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.Output.Path = dir
	cfg.Output.Format = "bmp"
	e, _ := newTestEngine(t, cfg)

	path, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot error = %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Ext(path) != ".bmp" {
		t.Errorf("snapshot path = %s, want a .bmp in %s", path, dir)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "slim-*.bmp"))
	if len(matches) != 1 {
		t.Errorf("found %d snapshots, want 1", len(matches))
	}
}

func TestFrameKeys(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(t))

	e.Controls.ProcessKey(core.KEY_TAB, true)
	if err := e.Frame(0.1); err != nil {
		t.Fatal(err)
	}
	if mode := e.Viewport.Settings.RenderMode; mode != metadata.RenderModeDepth {
		t.Errorf("render mode = %s, want Depth", mode)
	}
	// held keys do not repeat
	if err := e.Frame(0.1); err != nil {
		t.Fatal(err)
	}
	if mode := e.Viewport.Settings.RenderMode; mode != metadata.RenderModeDepth {
		t.Errorf("render mode after holding TAB = %s, want Depth", mode)
	}

	e.Controls.ProcessKey(core.KEY_TAB, false)
	e.Controls.ProcessKey(core.KEY_H, true)
	if err := e.Frame(0.1); err != nil {
		t.Fatal(err)
	}
	if !e.Viewport.Settings.ShowHUD {
		t.Errorf("HUD not shown after pressing H")
	}
}

func TestFrameMovesCamera(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(t))
	before := e.Camera().GetPosition()
	e.Controls.ProcessKey(core.KEY_W, true)
	for i := 0; i < 10; i++ {
		if err := e.Frame(0.1); err != nil {
			t.Fatal(err)
		}
	}
	if e.Camera().GetPosition() == before {
		t.Errorf("camera did not move while W was held")
	}
	if e.Camera().Changed() {
		t.Errorf("camera flags not cleared at the end of the frame")
	}
}

func TestReload(t *testing.T) {
	cfg := testConfig(t)
	e, counts := newTestEngine(t, cfg)

	next := testConfig(t)
	next.Window.Width, next.Window.Height = 32, 24
	if err := e.Reload(next); err != nil {
		t.Fatalf("Reload error = %v", err)
	}
	if e.FrameBuffer.Width() != 32 || e.Config() != next || counts.initialize != 2 {
		t.Errorf("after reload width %d initialize calls %d", e.FrameBuffer.Width(), counts.initialize)
	}

	broken := testConfig(t)
	broken.Window.Width = 100
	broken.Scene.Primitives = []core.PrimitiveConfig{{Type: "sphere"}}
	if err := e.Reload(broken); err == nil {
		t.Errorf("Reload with an unknown primitive error = nil")
	}
	if e.FrameBuffer.Width() != 32 || e.Config() != next {
		t.Errorf("failed reload replaced the configuration")
	}
}

func TestReloadHookFailureKeepsState(t *testing.T) {
	tests := []struct {
		name  string
		fail func(g *Game, boom error)
	}{
		{"initialize", func(g *Game, boom error) {
			g.FnInitialize = func(*Engine) error { return boom }
		}},
		{"resize", func(g *Game, boom error) {
			g.FnOnResize = func(uint16, uint16) error { return boom }
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			e, _ := newTestEngine(t, cfg)
			if _, err := e.CameraSystem.Acquire("held"); err != nil {
				t.Fatalf("Acquire error = %v", err)
			}
			viewport, grid, registry, s := e.Viewport, e.FrameBuffer, e.CameraSystem, e.Scene

			boom := errors.New("boom")
			tt.fail(e.gameInstance, boom)
			next := testConfig(t)
			next.Window.Width, next.Window.Height = 32, 24
			if err := e.Reload(next); !errors.Is(err, boom) {
				t.Fatalf("Reload error = %v, want boom", err)
			}

			if e.Config() != cfg || e.Viewport != viewport || e.FrameBuffer != grid || e.Scene != s {
				t.Errorf("failed reload replaced the engine state")
			}
			if e.FrameBuffer.Width() != 64 {
				t.Errorf("frame buffer width = %d, want 64", e.FrameBuffer.Width())
			}
			if e.CameraSystem != registry {
				t.Fatalf("failed reload replaced the camera system")
			}
			if _, ok := registry.Lookup["held"]; !ok {
				t.Errorf("failed reload shut down the previous camera system")
			}
			if err := e.Run(context.Background()); err != nil {
				t.Errorf("Run after failed reload error = %v", err)
			}
		})
	}
}

func TestReloadShutsDownPreviousCameraSystem(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(t))
	if _, err := e.CameraSystem.Acquire("held"); err != nil {
		t.Fatalf("Acquire error = %v", err)
	}
	previous := e.CameraSystem

	if err := e.Reload(testConfig(t)); err != nil {
		t.Fatalf("Reload error = %v", err)
	}
	if e.CameraSystem == previous {
		t.Fatalf("reload kept the previous camera system")
	}
	if len(previous.Lookup) != 0 {
		t.Errorf("previous camera system still holds %d cameras", len(previous.Lookup))
	}
}

func TestResize(t *testing.T) {
	e, counts := newTestEngine(t, testConfig(t))
	if err := e.Resize(32, 24); err != nil {
		t.Fatalf("Resize error = %v", err)
	}
	if e.Viewport.HUD.Width != 32 || counts.resize != 2 {
		t.Errorf("HUD width %d resize calls %d", e.Viewport.HUD.Width, counts.resize)
	}
	if err := e.Resize(128, 48); err == nil {
		t.Errorf("Resize beyond capacity error = nil")
	}
}

func TestShutdown(t *testing.T) {
	e, counts := newTestEngine(t, testConfig(t))
	if err := e.Shutdown(); err != nil {
		t.Fatalf("Shutdown error = %v", err)
	}
	if counts.shutdown != 1 || e.Stage() != EngineStageUninitialized {
		t.Errorf("shutdown calls %d stage %s", counts.shutdown, e.Stage())
	}
}

func writeConfig(t *testing.T, path string, width int, output string) {
	t.Helper()
	data := fmt.Sprintf("[window]\nwidth = %d\nheight = 24\n\n[output]\npath = %q\nframes = 1\n", width, output)
	// rename over the original so the watcher never sees a half written file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}

func waitForFile(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			// give the encoder time to finish
			time.Sleep(50 * time.Millisecond)
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("%s was never written", path)
}

func TestWatchRequiresConfigPath(t *testing.T) {
	e, _ := newTestEngine(t, testConfig(t))
	if err := e.Watch(context.Background()); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("Watch error = %v, want ErrInvalidConfig", err)
	}
}

func TestWatchRendersOnChange(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "slim.toml")
	output := filepath.Join(dir, "frame.png")
	writeConfig(t, configPath, 48, output)

	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig error = %v", err)
	}
	g, _ := newTestGame(cfg, configPath)
	e, err := New(g)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Watch(ctx) }()

	waitForFile(t, output)
	if w, _, _ := decodeFrame(t, output); w != 48 {
		t.Errorf("first frame width = %d, want 48", w)
	}
	if err := os.Remove(output); err != nil {
		t.Fatal(err)
	}

	writeConfig(t, configPath, 40, output)
	waitForFile(t, output)
	if w, _, _ := decodeFrame(t, output); w != 40 {
		t.Errorf("frame width after change = %d, want 40", w)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
