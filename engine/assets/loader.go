package assets

import "github.com/spaghettifunk/slim/engine/core"

type Loader interface {
	Load(path string) (interface{}, error) // `interface{}` here allows loaders to return various asset types
}

// ConfigLoader reads an engine configuration file, environment overrides included.
type ConfigLoader struct{}

func (l *ConfigLoader) Load(path string) (interface{}, error) {
	return core.LoadConfig(path)
}
