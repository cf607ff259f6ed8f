package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spaghettifunk/slim/engine/assets"
	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/renderer/components"
	"github.com/spaghettifunk/slim/engine/renderer/raster"
	"github.com/spaghettifunk/slim/engine/renderer/views"
	"github.com/spaghettifunk/slim/engine/scene"
	"github.com/spaghettifunk/slim/engine/systems"
)

const MAX_CAMERA_COUNT uint16 = 16

// Frames rendered by Watch that may wait for the writer before rendering blocks.
const FRAME_WRITER_QUEUE_SIZE = 4

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageBooting:
		return "booting"
	case EngineStageBootComplete:
		return "boot complete"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

/**
 * @brief The render context. It owns everything a frame touches: the
 * configuration, clock, input, frame buffer, scene, viewport and cameras.
 * Games and tests create as many engines as they like; nothing is global.
 */
type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *core.Config
	clock        *core.Clock
	metrics      *core.Metrics
	assetManager *assets.AssetManager
	frameNumber  uint64
	quit         bool

	Controls     *core.Controls
	FrameBuffer  *raster.PixelGrid
	Scene        *scene.Scene
	Viewport     *views.Viewport
	CameraSystem *systems.CameraSystem
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		err := fmt.Errorf("func engine.New - a game with an application config is required: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}
	cfg := g.ApplicationConfig.Config
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       cfg,
		clock:        core.NewSystemClock(),
		metrics:      core.NewMetrics(),
		Controls:     core.NewControls(),
	}, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Config() *core.Config {
	return e.config
}

func (e *Engine) Clock() *core.Clock {
	return e.clock
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

// FrameNumber counts the frames rendered since the engine was created.
func (e *Engine) FrameNumber() uint64 {
	return e.frameNumber
}

// Camera is the camera the viewport looks through.
func (e *Engine) Camera() *components.Camera {
	return e.Viewport.Camera
}

// Quit stops Run after the current frame; the frame rendered so far is still saved.
func (e *Engine) Quit() {
	e.quit = true
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("func Initialize - engine is %s", e.currentStage)
	}
	e.currentStage = EngineStageBooting
	core.SetLogLevel(e.config.Log.Level)
	core.LogInfo("booting %s...", e.gameInstance.ApplicationConfig.Name)

	if fn := e.gameInstance.FnBoot; fn != nil {
		if err := fn(e); err != nil {
			e.currentStage = EngineStageUninitialized
			return fmt.Errorf("game boot: %w", err)
		}
	}
	e.currentStage = EngineStageBootComplete

	e.currentStage = EngineStageInitializing
	if err := e.setup(e.config); err != nil {
		e.currentStage = EngineStageUninitialized
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

/**
 * @brief Builds the frame buffer, cameras, viewport and scene for cfg and
 * hands them to the game. The game hooks see the new state; if one of them
 * fails the previous state is put back and its camera registry survives.
 */
func (e *Engine) setup(cfg *core.Config) error {
	grid, err := raster.NewPixelGrid(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("frame buffer: %w", err)
	}
	settings, err := views.NewViewportSettings(cfg.Viewport)
	if err != nil {
		return err
	}
	s, err := scene.FromConfig(cfg.Scene)
	if err != nil {
		return err
	}
	camera := components.NewCameraFromConfig(cfg.Camera)
	cs, err := systems.NewCameraSystem(&systems.CameraSystemConfig{
		MaxCameraCount: MAX_CAMERA_COUNT,
		Settings:       components.NewCameraSettings(cfg.Camera),
	}, camera)
	if err != nil {
		return err
	}

	previous := e.snapshotState()
	e.config = cfg
	e.FrameBuffer = grid
	e.Scene = s
	e.CameraSystem = cs
	e.Viewport = views.NewViewport(settings, components.NewNavigationSettings(cfg.Navigation), camera, grid)
	e.Viewport.Clear()

	if err := e.runSetupHooks(cfg); err != nil {
		shutdownCameraSystem(cs)
		e.restoreState(previous)
		return err
	}
	shutdownCameraSystem(previous.cameraSystem)
	return nil
}

func (e *Engine) runSetupHooks(cfg *core.Config) error {
	if fn := e.gameInstance.FnInitialize; fn != nil {
		if err := fn(e); err != nil {
			return fmt.Errorf("game initialize: %w", err)
		}
	}
	if fn := e.gameInstance.FnOnResize; fn != nil {
		if err := fn(cfg.Window.Width, cfg.Window.Height); err != nil {
			return fmt.Errorf("game resize: %w", err)
		}
	}
	return nil
}

// engineState is everything setup replaces.
type engineState struct {
	config       *core.Config
	frameBuffer  *raster.PixelGrid
	scene        *scene.Scene
	cameraSystem *systems.CameraSystem
	viewport     *views.Viewport
}

func (e *Engine) snapshotState() engineState {
	return engineState{
		config:       e.config,
		frameBuffer:  e.FrameBuffer,
		scene:        e.Scene,
		cameraSystem: e.CameraSystem,
		viewport:     e.Viewport,
	}
}

func (e *Engine) restoreState(st engineState) {
	e.config = st.config
	e.FrameBuffer = st.frameBuffer
	e.Scene = st.scene
	e.CameraSystem = st.cameraSystem
	e.Viewport = st.viewport
}

func shutdownCameraSystem(cs *systems.CameraSystem) {
	if cs == nil {
		return
	}
	if err := cs.Shutdown(); err != nil {
		core.LogWarn("camera system shutdown: %s", err)
	}
}

/**
 * @brief Renders the configured number of fixed-step frames, then writes the
 * last one to the output path. Cancelling ctx stops between frames without
 * writing anything.
 */
func (e *Engine) Run(ctx context.Context) error {
	if err := e.render(ctx); err != nil {
		return err
	}
	path, err := e.Snapshot()
	if err != nil {
		core.LogError(err.Error())
		return err
	}
	core.LogInfo("frame %d written to %s (%.3f ms/frame)", e.frameNumber, path, e.metrics.FrameTime())
	return nil
}

func (e *Engine) render(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("func Run - engine is %s: %w", e.currentStage, core.ErrEngineNotRunning)
	}
	e.currentStage = EngineStageRunning
	defer func() {
		if e.currentStage == EngineStageRunning {
			e.currentStage = EngineStageInitialized
		}
	}()

	dt := 1 / float32(e.config.Output.FrameRate)
	e.quit = false
	e.clock.Start()
	for i := 0; i < e.config.Output.Frames && !e.quit; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Frame(dt); err != nil {
			core.LogError("frame %d failed: %s", e.frameNumber, err)
			return err
		}
	}
	return nil
}

/**
 * @brief Advances and draws one frame of dt seconds: input, navigation,
 * game update, scene update, scene rendering, game rendering, HUD, counters.
 */
func (e *Engine) Frame(dt float32) error {
	e.clock.StartFrame()

	e.handleKeys()
	camera := e.Viewport.Camera
	e.Viewport.Navigation.ApplyControls(camera, e.Controls, dt)

	if fn := e.gameInstance.FnUpdate; fn != nil {
		if err := fn(e, dt); err != nil {
			return fmt.Errorf("game update: %w", err)
		}
	}
	e.Scene.Update(dt)

	e.Viewport.Clear()
	e.Viewport.RenderScene(e.Scene)
	if fn := e.gameInstance.FnRender; fn != nil {
		if err := fn(e.Viewport, dt); err != nil {
			return fmt.Errorf("game render: %w", err)
		}
	}
	e.Viewport.HUD.SetCounters(e.clock)
	e.Viewport.HUD.SetMouse(e.Controls)
	e.Viewport.RenderUI()

	e.clock.EndFrame()
	e.metrics.Update(e.clock.FrameSeconds())

	// NOTE: input is the last thing to be updated before this frame ends.
	camera.ClearFlags()
	e.Controls.Update()
	e.frameNumber++
	return nil
}

// TAB cycles the render mode, H toggles the HUD and ESCAPE quits.
func (e *Engine) handleKeys() {
	switch {
	case e.Controls.IsKeyPressed(core.KEY_ESCAPE):
		core.LogInfo("escape pressed, stopping")
		e.quit = true
	case e.Controls.IsKeyPressed(core.KEY_TAB):
		e.Viewport.SetRenderMode(e.Viewport.Settings.RenderMode.Next())
	case e.Controls.IsKeyPressed(core.KEY_H):
		e.Viewport.Settings.ShowHUD = !e.Viewport.Settings.ShowHUD
	}
}

/**
 * @brief Writes the frame buffer in the configured format. When the output
 * path is empty or a directory a unique file name is generated inside it.
 */
func (e *Engine) Snapshot() (string, error) {
	path, format, err := e.outputPath()
	if err != nil {
		return "", err
	}
	if err := e.FrameBuffer.Save(path, format); err != nil {
		return "", fmt.Errorf("saving frame: %w", err)
	}
	return path, nil
}

/**
 * @brief Copies the frame buffer and hands the copy to the frame writer, so
 * rendering can go on while the previous frame is encoded.
 */
func (e *Engine) queueSnapshot(writer *systems.JobSystem) error {
	path, format, err := e.outputPath()
	if err != nil {
		return err
	}
	img := e.FrameBuffer.ToImage()
	frame := e.frameNumber
	return writer.Submit(systems.JobTask{
		Name: "write " + path,
		Run: func() error {
			return raster.SaveImage(path, img, format)
		},
		OnComplete: func() {
			core.LogInfo("frame %d written to %s", frame, path)
		},
	})
}

func (e *Engine) outputPath() (string, raster.Format, error) {
	out := e.config.Output
	format, err := raster.ParseFormat(out.Format)
	if err != nil {
		return "", "", err
	}
	path := out.Path
	if path == "" || strings.HasSuffix(path, string(os.PathSeparator)) || isDir(path) {
		path = filepath.Join(path, fmt.Sprintf("slim-%s.%s", uuid.NewString(), format))
	}
	return path, format, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Resize changes the viewport size within the frame buffer capacity.
func (e *Engine) Resize(width, height uint16) error {
	if err := e.Viewport.Resize(width, height); err != nil {
		return err
	}
	core.LogDebug("viewport resize: %d, %d", width, height)
	if fn := e.gameInstance.FnOnResize; fn != nil {
		return fn(width, height)
	}
	return nil
}

/**
 * @brief Replaces the configuration and rebuilds everything that depends on
 * it. On error the engine keeps running with the previous configuration.
 */
func (e *Engine) Reload(cfg *core.Config) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("func Reload - engine is %s: %w", e.currentStage, core.ErrEngineNotRunning)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := e.setup(cfg); err != nil {
		return err
	}
	core.SetLogLevel(cfg.Log.Level)
	core.LogInfo("configuration reloaded")
	return nil
}

/**
 * @brief Renders once, then renders again every time the configuration file
 * changes, until ctx is cancelled. Broken configurations are logged and
 * skipped. Frames are written in the background in the order they were
 * rendered; Watch returns once the last one is on disk.
 */
func (e *Engine) Watch(ctx context.Context) error {
	path := e.gameInstance.ApplicationConfig.ConfigPath
	if path == "" {
		return fmt.Errorf("func Watch - no configuration file to watch: %w", core.ErrInvalidConfig)
	}
	am, err := assets.NewAssetManager()
	if err != nil {
		return err
	}
	e.assetManager = am
	defer func() {
		am.Close()
		e.assetManager = nil
	}()
	if err := am.Watch(path); err != nil {
		return err
	}

	writer, err := systems.NewJobSystem(1, FRAME_WRITER_QUEUE_SIZE)
	if err != nil {
		return err
	}
	defer writer.Shutdown()

	if err := e.renderAndQueue(ctx, writer); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	core.LogInfo("watching %s for changes", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-am.Events():
			if !ok {
				return nil
			}
			asset, err := am.LoadAsset(ev.Path)
			if err != nil {
				core.LogError("reloading %s: %s", ev.Path, err)
				continue
			}
			cfg, ok := asset.(*core.Config)
			if !ok {
				continue
			}
			if err := e.Reload(cfg); err != nil {
				core.LogError("reloading %s: %s", ev.Path, err)
				continue
			}
			if err := e.renderAndQueue(ctx, writer); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				core.LogError(err.Error())
			}

		case err, ok := <-am.Errors():
			if !ok {
				return nil
			}
			core.LogWarn("watcher: %s", err)
		}
	}
}

func (e *Engine) renderAndQueue(ctx context.Context, writer *systems.JobSystem) error {
	if err := e.render(ctx); err != nil {
		return err
	}
	return e.queueSnapshot(writer)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.assetManager != nil {
		e.assetManager.Close()
	}
	if e.CameraSystem != nil {
		if err := e.CameraSystem.Shutdown(); err != nil {
			return err
		}
	}
	if fn := e.gameInstance.FnShutdown; fn != nil {
		if err := fn(); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageUninitialized
	core.LogInfo("shutdown complete after %d frames", e.frameNumber)
	return nil
}
