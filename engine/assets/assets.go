package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/slim/engine/core"
)

var ErrManagerClosed = errors.New("asset manager already closed")

type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	AssetTypeConfig
)

type AssetInfo struct {
	Path       string
	Type       AssetType
	LastLoaded time.Time
}

// AssetEvent reports that a watched asset was written or created.
type AssetEvent struct {
	Path string
	Type AssetType
}

/**
 * @brief Keeps an index of watched asset files and reports changes to them.
 *
 * Files are watched through their parent directory so editors that save by
 * renaming a temporary file over the original still produce events.
 */
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[AssetType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	events   chan AssetEvent
	errors   chan error
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[AssetType]Loader),
		fsnotify: fsWatch,
		events:   make(chan AssetEvent),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	am.registerLoader(AssetTypeConfig, &ConfigLoader{})

	go am.start()
	return am, nil
}

func (am *AssetManager) Events() <-chan AssetEvent {
	return am.events
}

func (am *AssetManager) Errors() <-chan error {
	return am.errors
}

// Watch adds a single asset file to the index and starts watching it.
func (am *AssetManager) Watch(path string) error {
	am.mutex.RLock()
	closed := am.isClosed
	am.mutex.RUnlock()
	if closed {
		return ErrManagerClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	assetType := determineAssetType(abs)
	if assetType == AssetTypeNone {
		return fmt.Errorf("unknown asset type for %s", path)
	}
	if err := am.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	am.mutex.Lock()
	am.assets[abs] = AssetInfo{Path: abs, Type: assetType}
	am.mutex.Unlock()
	core.LogDebug("watching asset %s", abs)
	return nil
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType AssetType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads a watched asset with the loader registered for its type.
func (am *AssetManager) LoadAsset(path string) (interface{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	asset, exists := am.assets[abs]
	if exists {
		asset.LastLoaded = time.Now()
		am.assets[abs] = asset
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("asset not found: %s", path)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %d", asset.Type)
	}
	return loader.Load(abs)
}

func (am *AssetManager) Asset(path string) (AssetInfo, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return AssetInfo{}, false
	}
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[abs]
	return info, ok
}

// Close stops the watcher. The event and error channels are closed once it returns.
func (am *AssetManager) Close() {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return
	}
	am.isClosed = true
	close(am.done)
}

func (am *AssetManager) start() {
	defer func() {
		am.fsnotify.Close()
		close(am.events)
		close(am.errors)
	}()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			info, tracked := am.trackedAsset(e.Name)
			if !tracked {
				continue
			}
			select {
			case am.events <- AssetEvent{Path: info.Path, Type: info.Type}:
			case <-am.done:
				return
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			select {
			case am.errors <- err:
			case <-am.done:
				return
			}

		case <-am.done:
			return
		}
	}
}

func (am *AssetManager) trackedAsset(name string) (AssetInfo, bool) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return AssetInfo{}, false
	}
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[abs]
	return info, ok
}

func determineAssetType(path string) AssetType {
	switch filepath.Ext(path) {
	case ".toml":
		return AssetTypeConfig
	default:
		return AssetTypeNone
	}
}
