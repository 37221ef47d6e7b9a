package raster

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

func init() {
	image.RegisterFormat("jpeg", "jpeg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("jpg", "jpg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "png", png.Decode, png.DecodeConfig)
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// Load decodes the image at the given path into an RGB raster. A missing or undecodable file is a hard
// error; this is the one boundary where failures propagate instead of collapsing to "no payload"
func Load(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// WritePNG encodes the raster losslessly. PNG never alters channel bytes regardless of compression level,
// which the hidden region depends on; lossy output formats would destroy it
func (r *Raster) WritePNG(w io.Writer, level png.CompressionLevel) error {
	enc := png.Encoder{CompressionLevel: level}
	return enc.Encode(w, r.Image())
}

// Save writes the raster as a PNG file at path, which should already carry a .png extension (see EnsurePNGPath)
func (r *Raster) Save(path string, level png.CompressionLevel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := r.WritePNG(f, level); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EnsurePNGPath rewrites the output path to a .png extension. Lossy formats would recompress the pixel
// data and destroy the embedded payload
func EnsurePNGPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}
