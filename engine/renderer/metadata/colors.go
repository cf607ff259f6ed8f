package metadata

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RGBA is a flat 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

/**
 * @brief A packed frame buffer pixel. The bytes are laid out B, G, R, A in
 * memory, so the value reads 0xAARRGGBB.
 */
type Pixel uint32

func (c RGBA) Pixel() Pixel {
	return Pixel(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

func (p Pixel) RGBA() RGBA {
	return RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

type ColorID uint8

const (
	ColorBlack ColorID = iota
	ColorWhite
	ColorGrey
	ColorRed
	ColorGreen
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorYellow
)

var colorNames = map[string]ColorID{
	"black":   ColorBlack,
	"white":   ColorWhite,
	"grey":    ColorGrey,
	"gray":    ColorGrey,
	"red":     ColorRed,
	"green":   ColorGreen,
	"blue":    ColorBlue,
	"cyan":    ColorCyan,
	"magenta": ColorMagenta,
	"yellow":  ColorYellow,
}

// Color returns the opaque color of a palette entry. Unknown ids are black.
func Color(id ColorID) RGBA {
	switch id {
	case ColorWhite:
		return RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	case ColorGrey:
		return RGBA{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF}
	case ColorRed:
		return RGBA{R: 0xFF, A: 0xFF}
	case ColorGreen:
		return RGBA{G: 0xFF, A: 0xFF}
	case ColorBlue:
		return RGBA{B: 0xFF, A: 0xFF}
	case ColorCyan:
		return RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
	case ColorMagenta:
		return RGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	case ColorYellow:
		return RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	default:
		return RGBA{A: 0xFF}
	}
}

/**
 * @brief Parses a palette name ("red", "cyan", ...) or a hex color in the
 * form #RRGGBB or #RRGGBBAA. An empty string yields white.
 */
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color(ColorWhite), nil
	}
	if id, ok := colorNames[s]; ok {
		return Color(id), nil
	}
	if strings.HasPrefix(s, "#") {
		b, err := hex.DecodeString(s[1:])
		if err == nil && (len(b) == 3 || len(b) == 4) {
			c := RGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}
			if len(b) == 4 {
				c.A = b[3]
			}
			return c, nil
		}
	}
	return RGBA{}, fmt.Errorf("unknown color %q", s)
}
