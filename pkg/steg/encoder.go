// Package steg sequences the steganographic codec: framing, capacity validation and the bit-plane walk
// over a raster channel buffer.
package steg

import (
	"io"
	"time"

	"github.com/AlinaLB/celfie-lock/pkg/config"
	"github.com/AlinaLB/celfie-lock/pkg/model"
	"github.com/AlinaLB/celfie-lock/pkg/payload"
	"github.com/AlinaLB/celfie-lock/pkg/raster"
)

type Encoder struct {
	raster *raster.Raster
	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

// NewImageEncoder returns an encoder operating on a private copy of the supplied raster; the caller's
// buffer is never mutated
func NewImageEncoder(r *raster.Raster, iConfig config.ImageEncodeConfig) *Encoder {
	return &Encoder{
		raster: r.Clone(),
		config: iConfig,
	}
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Raster exposes the encoder's buffer, mutated in place by Encode
func (e *Encoder) Raster() *raster.Raster {
	return e.raster
}

// EncodeMessage hides the message text plus optional link under the plaintext link convention
func (e *Encoder) EncodeMessage(msg model.Message) error {
	return e.Encode(msg.Join())
}

// Encode frames the plaintext and embeds the header and ciphertext into the raster. The raster is only
// mutated once the framed payload is known to fit; on CapacityError no channel value has been touched
func (e *Encoder) Encode(plaintext string) error {
	e.stats = model.EncodeStats{}

	framingStart := time.Now()
	hdr, ciphertext, err := payload.Frame(plaintext)
	if err != nil {
		return err
	}
	headerBytes, err := hdr.Pack()
	if err != nil {
		return err
	}
	e.stats.Framing = time.Since(framingStart)

	dataToHide := make([]byte, 0, len(headerBytes)+len(ciphertext))
	dataToHide = append(dataToHide, headerBytes...)
	dataToHide = append(dataToHide, ciphertext...)

	requiredBits := uint64(len(dataToHide)) * 8
	if err := validateCapacity(requiredBits, e.raster.CapacityBits()); err != nil {
		return err
	}

	if logger := e.config.Logger; logger != nil {
		logger.Debug("embedding framed payload",
			"plaintext_bytes", len(plaintext),
			"ciphertext_bytes", len(ciphertext),
			"required_bits", requiredBits,
			"capacity_bits", e.raster.CapacityBits())
	}

	encodeStart := time.Now()
	err = embed(e.raster.Pix, dataToHide)
	e.stats.DataEncoding = time.Since(encodeStart)
	return err
}

// WriteEncodedPNG serializes the mutated raster losslessly to the output writer
func (e *Encoder) WriteEncodedPNG(output io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return e.raster.WritePNG(output, e.config.PngCompressionLevel)
}
