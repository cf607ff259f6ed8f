package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/components"
	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

/**
 * @brief Everything a viewport draws. Cameras are extra cameras drawn as
 * gizmos; the camera looking at the scene belongs to the viewport.
 */
type Scene struct {
	Cameras    []*components.Camera
	Primitives []Primitive
	Helixes    []Helix
	Coils      []Coil

	ShowBoundingBoxes bool
}

type SceneCounts struct {
	Cameras    int
	Primitives int
}

// NewScene reserves room for the given counts up front.
func NewScene(counts SceneCounts) *Scene {
	return &Scene{
		Cameras:    make([]*components.Camera, 0, counts.Cameras),
		Primitives: make([]Primitive, 0, counts.Primitives),
	}
}

// AddPrimitive stores a copy of p, giving it an ID when it has none.
func (s *Scene) AddPrimitive(p Primitive) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.Primitives = append(s.Primitives, p)
	return p.ID
}

// Primitive returns the stored primitive with the given ID. The pointer is
// valid until the next AddPrimitive or RemovePrimitive.
func (s *Scene) Primitive(id uuid.UUID) (*Primitive, bool) {
	for i := range s.Primitives {
		if s.Primitives[i].ID == id {
			return &s.Primitives[i], true
		}
	}
	return nil, false
}

func (s *Scene) RemovePrimitive(id uuid.UUID) bool {
	for i := range s.Primitives {
		if s.Primitives[i].ID == id {
			s.Primitives = append(s.Primitives[:i], s.Primitives[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scene) AddCamera(c *components.Camera) {
	s.Cameras = append(s.Cameras, c)
}

// Update advances spinning primitives by dt seconds.
func (s *Scene) Update(dt float32) {
	for i := range s.Primitives {
		s.Primitives[i].Update(dt)
	}
}

/**
 * @brief Builds a scene from its configuration. Angles are read in degrees,
 * an all zero scale means unit scale and an empty color means white.
 */
func FromConfig(cfg core.SceneConfig) (*Scene, error) {
	s := NewScene(SceneCounts{Primitives: len(cfg.Primitives)})
	s.ShowBoundingBoxes = cfg.ShowBoundingBoxes

	for i, pc := range cfg.Primitives {
		p, err := primitiveFromConfig(pc)
		if err != nil {
			return nil, fmt.Errorf("scene primitive %d: %w", i, err)
		}
		s.AddPrimitive(p)
	}
	for i, hc := range cfg.Helixes {
		color, err := metadata.ParseColor(hc.Color)
		if err != nil {
			return nil, fmt.Errorf("scene helix %d: %w", i, err)
		}
		s.Helixes = append(s.Helixes, Helix{
			Position:        vec3(hc.Position),
			Radius:          hc.Radius,
			ThicknessRadius: hc.ThicknessRadius,
			Revolutions:     hc.Revolutions,
			Color:           color,
		})
	}
	for i, cc := range cfg.Coils {
		color, err := metadata.ParseColor(cc.Color)
		if err != nil {
			return nil, fmt.Errorf("scene coil %d: %w", i, err)
		}
		s.Coils = append(s.Coils, Coil{
			Position:    vec3(cc.Position),
			Radius:      cc.Radius,
			Height:      cc.Height,
			Revolutions: cc.Revolutions,
			Color:       color,
		})
	}
	core.LogDebug("scene loaded: %d primitives, %d helixes, %d coils", len(s.Primitives), len(s.Helixes), len(s.Coils))
	return s, nil
}

func primitiveFromConfig(pc core.PrimitiveConfig) (Primitive, error) {
	t, err := ParsePrimitiveType(pc.Type)
	if err != nil {
		return Primitive{}, err
	}
	color, err := metadata.ParseColor(pc.Color)
	if err != nil {
		return Primitive{}, err
	}
	p := NewPrimitive(t)
	p.Color = color
	p.Position = vec3(pc.Position)
	if scale := vec3(pc.Scale); scale.IsNonZero() {
		p.Scale = scale
	}
	axis := vec3(pc.Axis)
	p.SetRotation(axis, math.DegToRad(pc.Angle))
	if pc.Spin != 0 {
		p.SpinAxis = axis
		if !axis.IsNonZero() {
			p.SpinAxis = math.NewVec3(0, 1, 0)
		}
		p.Spin = math.DegToRad(pc.Spin)
	}
	return p, nil
}

func vec3(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}
