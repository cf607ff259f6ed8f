package metadata

/**
 * @brief Size of a pixel grid plus the derived values the projector and
 * rasterizer need every frame. Only Update may change it so the caches never
 * go out of sync with Width and Height.
 */
type Dimensions struct {
	Width            uint16
	Height           uint16
	WidthTimesHeight uint32

	FWidth  float32
	FHeight float32
	// Half width and half height.
	HWidth  float32
	HHeight float32

	WidthOverHeight float32
	HeightOverWidth float32
}

func NewDimensions(width, height uint16) Dimensions {
	d := Dimensions{}
	d.Update(width, height)
	return d
}

func (d *Dimensions) Update(width, height uint16) {
	d.Width = width
	d.Height = height
	d.WidthTimesHeight = uint32(width) * uint32(height)
	d.FWidth = float32(width)
	d.FHeight = float32(height)
	d.HWidth = d.FWidth / 2
	d.HHeight = d.FHeight / 2
	d.WidthOverHeight = d.FWidth / d.FHeight
	d.HeightOverWidth = d.FHeight / d.FWidth
}
