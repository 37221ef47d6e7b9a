// Package watermark draws a visible text overlay onto an image. The overlay is cosmetic and entirely
// independent of the hidden channel; it must be applied before encoding so the embedded bits land on top
// of the final pixels.
package watermark

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
	Center      Position = "center"
)

const padding = 20

type Overlay struct {
	Text     string
	Position Position
}

// Apply draws the overlay text with a four-way shadow for visibility on both light and dark areas.
// Unknown positions fall back to bottom-right
func (o Overlay) Apply(img *image.RGBA) {
	if o.Text == "" {
		return
	}

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Face: face,
	}

	textWidth := drawer.MeasureString(o.Text).Ceil()
	textHeight := face.Metrics().Ascent.Ceil()
	bounds := img.Bounds()

	var x, y int
	switch o.Position {
	case TopLeft:
		x, y = bounds.Min.X+padding, bounds.Min.Y+padding+textHeight
	case TopRight:
		x, y = bounds.Max.X-textWidth-padding, bounds.Min.Y+padding+textHeight
	case BottomLeft:
		x, y = bounds.Min.X+padding, bounds.Max.Y-padding
	case Center:
		x, y = bounds.Min.X+(bounds.Dx()-textWidth)/2, bounds.Min.Y+(bounds.Dy()+textHeight)/2
	default:
		x, y = bounds.Max.X-textWidth-padding, bounds.Max.Y-padding
	}

	drawer.Src = image.NewUniform(color.Black)
	for _, offset := range [4][2]int{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}} {
		drawer.Dot = fixed.P(x+offset[0], y+offset[1])
		drawer.DrawString(o.Text)
	}

	drawer.Src = image.NewUniform(color.White)
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(o.Text)
}
