package engine

import (
	"github.com/spaghettifunk/slim/engine/renderer/views"
)

/**
 * @brief The hooks a game plugs into the engine. Every hook is optional and
 * receives the engine it runs in instead of reaching for global state.
 */
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnBoot            Boot
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Boot func(e *Engine) error
type Initialize func(e *Engine) error
type Update func(e *Engine, deltaTime float32) error

// Render runs after the scene was drawn and before the HUD.
type Render func(viewport *views.Viewport, deltaTime float32) error
type OnResize func(width, height uint16) error
type Shutdown func() error
