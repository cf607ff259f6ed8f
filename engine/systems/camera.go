package systems

import (
	"fmt"

	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/renderer/components"
)

const InvalidIDUint16 uint16 = 0xFFFF

type CameraSystem struct {
	Config  *CameraSystemConfig
	Lookup  map[string]uint16
	Cameras []*components.CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/** @brief The maximum number of cameras that can be managed by the system. */
	MaxCameraCount uint16
	/** @brief Lens settings of every camera the system creates. */
	Settings components.CameraSettings
}

/**
 * @brief Initializes the camera system.
 *
 * @param config The configuration for this system.
 * @param defaultCamera The camera handed out for DEFAULT_CAMERA_NAME; a new one is created when nil.
 */
func NewCameraSystem(config *CameraSystemConfig, defaultCamera *components.Camera) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 || config.MaxCameraCount == InvalidIDUint16 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0 and < %d: %w", InvalidIDUint16, core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}
	cs := &CameraSystem{
		Config:  config,
		Cameras: make([]*components.CameraLookup, config.MaxCameraCount),
		Lookup:  make(map[string]uint16, config.MaxCameraCount),
	}
	// Invalidate all cameras in the array.
	for i := range cs.Cameras {
		cs.Cameras[i] = &components.CameraLookup{ID: InvalidIDUint16}
	}
	if defaultCamera == nil {
		defaultCamera = components.NewCamera(config.Settings)
	}
	cs.DefaultCamera = defaultCamera
	return cs, nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and returned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return A pointer to a camera if successful; an error when every slot is taken.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	id, ok := cs.Lookup[name]
	if !ok || id == InvalidIDUint16 {
		// Find free slot
		id = InvalidIDUint16
		for i, lookup := range cs.Cameras {
			if lookup.ID == InvalidIDUint16 {
				id = uint16(i)
				break
			}
		}
		if id == InvalidIDUint16 {
			err := fmt.Errorf("func CameraSystemAcquire failed to acquire new slot for '%s'. Adjust camera system config to allow more", name)
			core.LogError(err.Error())
			return nil, err
		}

		core.LogDebug("Creating new camera named '%s'...", name)
		cs.Cameras[id].Camera = components.NewCamera(cs.Config.Settings)
		cs.Cameras[id].ID = id
		cs.Lookup[name] = id
	}
	cs.Cameras[id].ReferenceCount++
	return cs.Cameras[id].Camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is reset,
 * and the slot is usable by a new camera.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	id, ok := cs.Lookup[name]
	if !ok || id == InvalidIDUint16 {
		core.LogWarn("CameraSystemRelease failed lookup for '%s'. Nothing was done.", name)
		return
	}
	lookup := cs.Cameras[id]
	lookup.ReferenceCount--
	if lookup.ReferenceCount < 1 {
		lookup.Camera.Reset()
		lookup.Camera = nil
		lookup.ID = InvalidIDUint16
		delete(cs.Lookup, name)
	}
}

// Active returns every camera currently held, the default one first.
func (cs *CameraSystem) Active() []*components.Camera {
	out := []*components.Camera{cs.DefaultCamera}
	for _, lookup := range cs.Cameras {
		if lookup.ID != InvalidIDUint16 {
			out = append(out, lookup.Camera)
		}
	}
	return out
}

/**
 * @brief Gets a pointer to the default camera.
 *
 * @return A pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}

func (cs *CameraSystem) Shutdown() error {
	clear(cs.Lookup)
	for _, lookup := range cs.Cameras {
		lookup.Camera = nil
		lookup.ID = InvalidIDUint16
		lookup.ReferenceCount = 0
	}
	return nil
}
