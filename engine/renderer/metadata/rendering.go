package metadata

import (
	"fmt"
	"strings"
)

/** @brief Selects what external shading logic renders. The rasterizer itself ignores it. */
type RenderMode int

const (
	RenderModeNormals RenderMode = iota
	RenderModeBeauty
	RenderModeDepth
	RenderModeUVs
)

func (m RenderMode) String() string {
	switch m {
	case RenderModeNormals:
		return "Normal"
	case RenderModeBeauty:
		return "Beauty"
	case RenderModeDepth:
		return "Depth"
	case RenderModeUVs:
		return "TexCor"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// Next cycles through the render modes.
func (m RenderMode) Next() RenderMode {
	return (m + 1) % (RenderModeUVs + 1)
}

func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(s) {
	case "normals", "normal":
		return RenderModeNormals, nil
	case "beauty", "":
		return RenderModeBeauty, nil
	case "depth":
		return RenderModeDepth, nil
	case "uvs", "uv", "texcoords":
		return RenderModeUVs, nil
	default:
		return RenderModeBeauty, fmt.Errorf("unknown render mode %q", s)
	}
}
