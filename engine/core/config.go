package core

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of every environment override, e.g. SLIM_WINDOW_WIDTH.
const EnvPrefix = "slim"

const (
	MaxWindowWidth  = 3840
	MaxWindowHeight = 2160
)

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint16 `toml:"width"`
	Height uint16 `toml:"height"`
}

type LogConfig struct {
	Level LogLevel `toml:"level"`
}

type CameraConfig struct {
	Position       [3]float32 `toml:"position" ignored:"true"`
	Yaw            float32    `toml:"yaw"`
	Pitch          float32    `toml:"pitch"`
	FocalLength    float32    `toml:"focal_length" split_words:"true"`
	TargetDistance float32    `toml:"target_distance" split_words:"true"`
}

type NavigationConfig struct {
	MaxVelocity  float32 `toml:"max_velocity" split_words:"true"`
	Acceleration float32 `toml:"acceleration"`
	TurnSpeed    float32 `toml:"turn_speed" split_words:"true"`
	OrientSpeed  float32 `toml:"orient_speed" split_words:"true"`
	OrbitSpeed   float32 `toml:"orbit_speed" split_words:"true"`
	ZoomSpeed    float32 `toml:"zoom_speed" split_words:"true"`
	DollySpeed   float32 `toml:"dolly_speed" split_words:"true"`
	PanSpeed     float32 `toml:"pan_speed" split_words:"true"`
	MaxDistance  float32 `toml:"max_distance" split_words:"true"`
}

type ViewportConfig struct {
	NearClip   float32 `toml:"near_clip" split_words:"true"`
	FarClip    float32 `toml:"far_clip" split_words:"true"`
	RenderMode string  `toml:"render_mode" split_words:"true"`
	ShowHUD    bool    `toml:"show_hud" split_words:"true"`
}

type OutputConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
	// Frames is the number of fixed-step frames simulated before the snapshot.
	Frames int `toml:"frames"`
	// FrameRate sets the fixed time step of the simulation.
	FrameRate int `toml:"frame_rate" split_words:"true"`
}

type PrimitiveConfig struct {
	Type     string     `toml:"type"`
	Position [3]float32 `toml:"position"`
	Scale    [3]float32 `toml:"scale"`
	// Rotation axis and angle in degrees.
	Axis  [3]float32 `toml:"axis"`
	Angle float32    `toml:"angle"`
	Color string     `toml:"color"`
	// Spin is a rotation speed in degrees per second around Axis.
	Spin float32 `toml:"spin"`
}

type HelixConfig struct {
	Position        [3]float32 `toml:"position"`
	Radius          float32    `toml:"radius"`
	ThicknessRadius float32    `toml:"thickness_radius"`
	Revolutions     uint32     `toml:"revolutions"`
	Color           string     `toml:"color"`
}

type CoilConfig struct {
	Position    [3]float32 `toml:"position"`
	Radius      float32    `toml:"radius"`
	Height      float32    `toml:"height"`
	Revolutions uint32     `toml:"revolutions"`
	Color       string     `toml:"color"`
}

type SceneConfig struct {
	Primitives []PrimitiveConfig `toml:"primitives"`
	Helixes    []HelixConfig     `toml:"helixes"`
	Coils      []CoilConfig      `toml:"coils"`
	// ShowBoundingBoxes draws the world AABB of every primitive.
	ShowBoundingBoxes bool `toml:"show_bounding_boxes"`
}

/**
 * @brief The whole engine configuration. Values come from the defaults below,
 * then the TOML file, then SLIM_* environment variables.
 */
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Log        LogConfig        `toml:"log"`
	Camera     CameraConfig     `toml:"camera"`
	Navigation NavigationConfig `toml:"navigation"`
	Viewport   ViewportConfig   `toml:"viewport"`
	Output     OutputConfig     `toml:"output"`
	Scene      SceneConfig      `toml:"scene" ignored:"true"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Slim",
			Width:  640,
			Height: 480,
		},
		Log: LogConfig{Level: InfoLevel},
		Camera: CameraConfig{
			Position:       [3]float32{0, 6, -12},
			Pitch:          -0.25,
			FocalLength:    2,
			TargetDistance: 10,
		},
		Navigation: NavigationConfig{
			MaxVelocity:  8,
			Acceleration: 30,
			TurnSpeed:    2,
			OrientSpeed:  0.002,
			OrbitSpeed:   0.001,
			ZoomSpeed:    0.002,
			DollySpeed:   1,
			PanSpeed:     0.02,
			MaxDistance:  10,
		},
		Viewport: ViewportConfig{
			NearClip:   0.1,
			FarClip:    1000,
			RenderMode: "beauty",
			ShowHUD:    false,
		},
		Output: OutputConfig{
			Path:      "frame.png",
			Format:    "png",
			Frames:    1,
			FrameRate: 60,
		},
	}
}

/**
 * @brief Loads the configuration. An empty path skips the file and only
 * applies defaults and environment overrides.
 */
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := cfg.Decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML read from r on top of the current values.
func (c *Config) Decode(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(c)
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidConfig)
	}
	if c.Window.Width > MaxWindowWidth || c.Window.Height > MaxWindowHeight {
		return fmt.Errorf("window size %dx%d exceeds %dx%d: %w",
			c.Window.Width, c.Window.Height, MaxWindowWidth, MaxWindowHeight, ErrInvalidConfig)
	}
	if c.Viewport.NearClip <= 0 || c.Viewport.FarClip <= c.Viewport.NearClip {
		return fmt.Errorf("clipping planes near=%v far=%v: %w", c.Viewport.NearClip, c.Viewport.FarClip, ErrInvalidConfig)
	}
	if c.Output.Frames < 1 || c.Output.FrameRate < 1 {
		return fmt.Errorf("output frames=%d frame_rate=%d: %w", c.Output.Frames, c.Output.FrameRate, ErrInvalidConfig)
	}
	switch c.Output.Format {
	case "png", "bmp":
	default:
		return fmt.Errorf("output format %q: %w", c.Output.Format, ErrInvalidConfig)
	}
	return nil
}
