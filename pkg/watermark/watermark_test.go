package watermark

import (
	"bytes"
	"image"
	"testing"
)

func newGrayImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	return img
}

func TestApplyModifiesPixels(t *testing.T) {
	for _, position := range []Position{TopLeft, TopRight, BottomLeft, BottomRight, Center, "unknown"} {
		img := newGrayImage(200, 100)
		before := bytes.Clone(img.Pix)

		Overlay{Text: "celfie", Position: position}.Apply(img)

		if bytes.Equal(img.Pix, before) {
			t.Errorf("Expected overlay at %q to modify pixels", position)
		}
	}
}

func TestApplyWithEmptyTextIsNoop(t *testing.T) {
	img := newGrayImage(50, 50)
	before := bytes.Clone(img.Pix)

	Overlay{Text: "", Position: Center}.Apply(img)

	if !bytes.Equal(img.Pix, before) {
		t.Errorf("Expected empty overlay to leave pixels untouched")
	}
}

func TestApplyDoesNotPanicOnTinyImages(t *testing.T) {
	img := newGrayImage(4, 4)
	Overlay{Text: "a watermark wider than the image", Position: BottomRight}.Apply(img)
}
