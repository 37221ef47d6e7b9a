package steg

import (
	"bytes"
	"image"
	"math/rand"

	"github.com/AlinaLB/celfie-lock/pkg/raster"
)

func generateRandomRaster(width, height int) *raster.Raster {
	r := raster.New(width, height)
	for i := range r.Pix {
		r.Pix[i] = uint8(rand.Intn(256))
	}
	return r
}

func generateRandomBytes(numOfBytes int) []byte {
	randomBytes := make([]byte, numOfBytes)
	rand.Read(randomBytes)
	return randomBytes
}

func decodePNGToRaster(pngBytes []byte) (*raster.Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}
