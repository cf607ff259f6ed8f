package engine

import (
	"github.com/spaghettifunk/slim/engine/core"
)

type ApplicationConfig struct {
	// The application name, logged at startup.
	Name string
	// Path of the TOML file the configuration was read from. Empty when it
	// only comes from defaults and the environment; Watch needs it set.
	ConfigPath string
	Config     *core.Config
}
