// Package raster owns the flat per-channel intensity buffer the codec reads and writes, plus the image
// decode/encode boundary around it.
package raster

import (
	"errors"
	"fmt"
	"image"
)

// Channels is the number of channels per pixel in the buffer. Carriers are normalized to RGB; alpha is not
// part of the hidden channel because common editors premultiply or strip it
const Channels = 3

var ErrInvalidBufferSize = errors.New("pixel buffer length does not match width*height*channels")

// Raster is a contiguous, row-major sequence of per-pixel channel intensities: Pix holds
// width*height*Channels bytes, grouped into Channels-tuples, one per pixel
type Raster struct {
	Pix    []uint8
	Width  int
	Height int
}

func New(width, height int) *Raster {
	return &Raster{
		Pix:    make([]uint8, width*height*Channels),
		Width:  width,
		Height: height,
	}
}

// FromImage normalizes any decoded image into an RGB raster, dropping alpha
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	r := New(bounds.Dx(), bounds.Dy())

	rgba, isRGBA := img.(*image.RGBA)
	if isRGBA && bounds.Min == (image.Point{}) {
		for p := 0; p < r.Width*r.Height; p++ {
			copy(r.Pix[p*Channels:(p+1)*Channels], rgba.Pix[p*4:p*4+3])
		}
		return r
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r.Pix[i] = uint8(cr >> 8)
			r.Pix[i+1] = uint8(cg >> 8)
			r.Pix[i+2] = uint8(cb >> 8)
			i += Channels
		}
	}
	return r
}

// Clone returns an independent copy of the raster, so encoders can mutate without touching the caller's buffer
func (r *Raster) Clone() *Raster {
	clone := &Raster{
		Pix:    make([]uint8, len(r.Pix)),
		Width:  r.Width,
		Height: r.Height,
	}
	copy(clone.Pix, r.Pix)
	return clone
}

// CapacityBits is the total number of embeddable bits: one per channel value
func (r *Raster) CapacityBits() uint64 {
	return uint64(len(r.Pix))
}

// Check validates the buffer length invariant
func (r *Raster) Check() error {
	if len(r.Pix) != r.Width*r.Height*Channels {
		return fmt.Errorf("%w: len %d for %dx%dx%d", ErrInvalidBufferSize, len(r.Pix), r.Width, r.Height, Channels)
	}
	return nil
}

// Image rebuilds an opaque RGBA image from the channel buffer for output encoding
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for p := 0; p < r.Width*r.Height; p++ {
		copy(img.Pix[p*4:p*4+3], r.Pix[p*Channels:(p+1)*Channels])
		img.Pix[p*4+3] = 255
	}
	return img
}
