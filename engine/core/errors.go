package core

import (
	"errors"
)

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidTickRate  = errors.New("ticks per second must be > 0")
	ErrEngineNotRunning = errors.New("engine is not running")
	ErrUnknown          = errors.New("unknown")
)
