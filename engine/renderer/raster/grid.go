package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

const (
	MaxWidth  = 3840
	MaxHeight = 2160
)

var ErrGridCapacity = errors.New("pixel grid capacity exceeded")

/**
 * @brief A row-major frame buffer. Pixel (x, y) lives at Pixels[y*Width + x].
 *
 * The backing storage is allocated once for the largest size the grid was
 * created with; Resize only reslices it. SetPixel is the single write path and
 * every drawing routine goes through it or through a range it already clamped.
 */
type PixelGrid struct {
	Dimensions metadata.Dimensions
	Pixels     []metadata.Pixel

	storage []metadata.Pixel
}

// NewPixelGrid allocates a grid able to hold width x height pixels.
func NewPixelGrid(width, height uint16) (*PixelGrid, error) {
	if err := checkSize(width, height, MaxWidth*MaxHeight); err != nil {
		return nil, err
	}
	g := &PixelGrid{
		storage: make([]metadata.Pixel, int(width)*int(height)),
	}
	g.resize(width, height)
	return g, nil
}

/**
 * @brief Changes the logical size of the grid. The new size must fit both the
 * storage allocated by NewPixelGrid and the hard 3840x2160 limit; otherwise
 * the grid is left untouched and ErrGridCapacity is returned.
 */
func (g *PixelGrid) Resize(width, height uint16) error {
	if err := checkSize(width, height, len(g.storage)); err != nil {
		return err
	}
	g.resize(width, height)
	return nil
}

func checkSize(width, height uint16, capacity int) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("grid size %dx%d: %w", width, height, ErrGridCapacity)
	}
	if width > MaxWidth || height > MaxHeight || int(width)*int(height) > capacity {
		return fmt.Errorf("grid size %dx%d over capacity %d: %w", width, height, capacity, ErrGridCapacity)
	}
	return nil
}

func (g *PixelGrid) resize(width, height uint16) {
	g.Dimensions.Update(width, height)
	g.Pixels = g.storage[:g.Dimensions.WidthTimesHeight]
}

func (g *PixelGrid) Width() int {
	return int(g.Dimensions.Width)
}

func (g *PixelGrid) Height() int {
	return int(g.Dimensions.Height)
}

// Capacity is the number of pixels the grid can hold without reallocating.
func (g *PixelGrid) Capacity() int {
	return len(g.storage)
}

func (g *PixelGrid) Fill(c metadata.RGBA) {
	p := c.Pixel()
	for i := range g.Pixels {
		g.Pixels[i] = p
	}
}

func (g *PixelGrid) Clear() {
	clear(g.Pixels)
}

func (g *PixelGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(g.Dimensions.Width) && y < int(g.Dimensions.Height)
}

// SetPixel writes c at (x, y). Coordinates outside the grid are ignored.
func (g *PixelGrid) SetPixel(x, y int, c metadata.RGBA) {
	if !g.InBounds(x, y) {
		return
	}
	g.Pixels[y*int(g.Dimensions.Width)+x] = c.Pixel()
}

// PixelAt returns the color at (x, y) and false when the point is outside the grid.
func (g *PixelGrid) PixelAt(x, y int) (metadata.RGBA, bool) {
	if !g.InBounds(x, y) {
		return metadata.RGBA{}, false
	}
	return g.Pixels[y*int(g.Dimensions.Width)+x].RGBA(), true
}

// ------------------------------------------
// image.Image
// ------------------------------------------

func (g *PixelGrid) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g *PixelGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(g.Dimensions.Width), int(g.Dimensions.Height))
}

func (g *PixelGrid) At(x, y int) color.Color {
	c, _ := g.PixelAt(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
