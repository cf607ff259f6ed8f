package metadata

import "testing"

func TestPixelPacking(t *testing.T) {
	c := RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	if p := c.Pixel(); p != 0x78123456 {
		t.Errorf("Pixel() = %#08x, want 0x78123456", uint32(p))
	}
	if got := c.Pixel().RGBA(); got != c {
		t.Errorf("RGBA() = %+v, want %+v", got, c)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"red", Color(ColorRed), false},
		{" Cyan ", Color(ColorCyan), false},
		{"", Color(ColorWhite), false},
		{"#102030", RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, false},
		{"#10203040", RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"#12", RGBA{}, true},
		{"mauve", RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDimensionsUpdate(t *testing.T) {
	d := NewDimensions(200, 100)
	d.Update(640, 480)
	if d.Width != 640 || d.Height != 480 || d.WidthTimesHeight != 640*480 {
		t.Errorf("size = %+v", d)
	}
	if d.HWidth != 320 || d.HHeight != 240 {
		t.Errorf("half size = %v x %v", d.HWidth, d.HHeight)
	}
	if d.WidthOverHeight != float32(640)/480 || d.HeightOverWidth != float32(480)/640 {
		t.Errorf("ratios = %v, %v", d.WidthOverHeight, d.HeightOverWidth)
	}
}

func TestRenderMode(t *testing.T) {
	if m, err := ParseRenderMode("Depth"); err != nil || m != RenderModeDepth {
		t.Errorf("ParseRenderMode(Depth) = %v, %v", m, err)
	}
	if _, err := ParseRenderMode("wire"); err == nil {
		t.Errorf("ParseRenderMode(wire) error = nil")
	}
	if RenderModeUVs.Next() != RenderModeNormals {
		t.Errorf("Next() should wrap around")
	}
	if RenderModeBeauty.String() != "Beauty" {
		t.Errorf("String() = %q", RenderModeBeauty.String())
	}
}
