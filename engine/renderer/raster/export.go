package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var ErrUnknownFormat = errors.New("unknown image format")

type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat accepts "png" or "bmp" in any case, with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(s), ".")); f {
	case FormatPNG, FormatBMP:
		return f, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

/**
 * @brief Copies the grid into a fresh image.RGBA. Packed pixels are unpacked
 * to R, G, B, A byte order; alpha is kept as stored.
 */
func (g *PixelGrid) ToImage() *image.RGBA {
	img := image.NewRGBA(g.Bounds())
	for i, p := range g.Pixels {
		c := p.RGBA()
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}

func (g *PixelGrid) Encode(w io.Writer, format Format) error {
	return EncodeImage(w, g.ToImage(), format)
}

func EncodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("encode %q: %w", format, ErrUnknownFormat)
}

func (g *PixelGrid) Save(path string, format Format) error {
	return SaveImage(path, g.ToImage(), format)
}

/**
 * @brief Encodes img next to path and renames it into place, so readers of
 * path never see a partially written frame.
 */
func SaveImage(path string, img image.Image, format Format) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if err := EncodeImage(f, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func (g *PixelGrid) SavePNG(path string) error {
	return g.Save(path, FormatPNG)
}

func (g *PixelGrid) SaveBMP(path string) error {
	return g.Save(path, FormatBMP)
}
