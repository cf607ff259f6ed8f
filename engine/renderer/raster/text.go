package raster

import (
	"strconv"

	"github.com/spaghettifunk/slim/engine/renderer/metadata"
)

const (
	FontWidth  = 8
	FontHeight = 8
	LineHeight = 12
	TabWidth   = 4

	firstCharacter = 32
	lastCharacter  = 127
)

/**
 * @brief Draws text with the built-in 8x8 font, top-left corner at (x, y).
 *
 * '\n' moves to the start of the next line, LineHeight pixels down, and '\t'
 * advances to the next tab stop every TabWidth glyphs from x. Characters
 * without a glyph are skipped without advancing. Glyph pixels falling outside
 * the grid are clipped one by one, so partially visible text still draws.
 */
func (g *PixelGrid) DrawText(text string, x, y int, c metadata.RGBA) {
	curX, curY := x, y
	for _, r := range text {
		switch {
		case r == '\n':
			curX = x
			curY += LineHeight
		case r == '\t':
			column := (curX - x) / FontWidth
			curX += FontWidth * (TabWidth - column%TabWidth)
		case r >= firstCharacter && r <= lastCharacter:
			g.drawGlyph(int(r), curX, curY, c)
			curX += FontWidth
		}
	}
}

func (g *PixelGrid) drawGlyph(code, x, y int, c metadata.RGBA) {
	if x+FontWidth <= 0 || y+FontHeight <= 0 || x >= g.Width() || y >= g.Height() {
		return
	}
	glyph := font8x8[(code-firstCharacter)*FontHeight:][:FontHeight]
	for row, bits := range glyph {
		if bits == 0 {
			continue
		}
		for col := 0; col < FontWidth; col++ {
			if bits&(0x80>>col) != 0 {
				g.SetPixel(x+col, y+row, c)
			}
		}
	}
}

// DrawNumber draws n in decimal so that its last digit ends just left of x.
func (g *PixelGrid) DrawNumber(n int, x, y int, c metadata.RGBA) {
	s := strconv.Itoa(n)
	g.DrawText(s, x-len(s)*FontWidth, y, c)
}

// TextWidth returns the width in pixels of the widest line of text.
func TextWidth(text string) int {
	widest, column := 0, 0
	for _, r := range text {
		switch {
		case r == '\n':
			column = 0
		case r == '\t':
			column += TabWidth - column%TabWidth
		case r >= firstCharacter && r <= lastCharacter:
			column++
		}
		widest = max(widest, column)
	}
	return widest * FontWidth
}
