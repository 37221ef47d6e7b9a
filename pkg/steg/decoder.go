package steg

import (
	"time"

	"github.com/AlinaLB/celfie-lock/pkg/config"
	"github.com/AlinaLB/celfie-lock/pkg/header"
	"github.com/AlinaLB/celfie-lock/pkg/model"
	"github.com/AlinaLB/celfie-lock/pkg/payload"
	"github.com/AlinaLB/celfie-lock/pkg/raster"
)

type Decoder struct {
	raster *raster.Raster
	config config.ImageDecodeConfig
	stats  model.DecodeStats
}

// NewImageDecoder returns a decoder reading from the supplied raster. Decoding never mutates the buffer
func NewImageDecoder(r *raster.Raster, dConfig config.ImageDecodeConfig) *Decoder {
	return &Decoder{
		raster: r,
		config: dConfig,
	}
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// Decode recovers the hidden plaintext. The second return value is false when the raster carries no
// recognizable payload; a wrong signature, a corrupt header, failed decryption and a plain unencoded
// image are all indistinguishable to the caller and none of them is an error
func (d *Decoder) Decode() (string, bool) {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	capacity := d.raster.CapacityBits()
	if capacity < header.Size*8 {
		return "", false
	}

	headerBytes, err := extract(d.raster.Pix, 0, header.Size*8)
	if err != nil {
		return "", false
	}
	hdr, err := header.Unpack(headerBytes)
	if err != nil {
		d.debug("no payload header recognized", "err", err)
		return "", false
	}
	if !hdr.SupportedVersion() {
		d.debug("payload header has unsupported version", "version", hdr.Version)
		return "", false
	}

	// A garbage header that happened to carry a valid signature can still declare an absurd length
	if hdr.PayloadLength > MaxPayloadBytes || hdr.PayloadLength*8 > capacity-header.Size*8 {
		d.debug("payload length declared by header is implausible", "payload_length", hdr.PayloadLength)
		return "", false
	}

	ciphertext, err := extract(d.raster.Pix, header.Size*8, hdr.PayloadLength*8)
	if err != nil {
		return "", false
	}

	plaintext, err := payload.Unframe(hdr, ciphertext)
	if err != nil {
		d.debug("payload did not unframe", "err", err)
		return "", false
	}
	return plaintext, true
}

// DecodeMessage decodes and splits the plaintext back into text and optional link
func (d *Decoder) DecodeMessage() (model.Message, bool) {
	plaintext, found := d.Decode()
	if !found {
		return model.Message{}, false
	}
	return model.ParseMessage(plaintext), true
}

// Verify reports whether the raster carries a recoverable hidden payload
func (d *Decoder) Verify() bool {
	_, found := d.Decode()
	return found
}

func (d *Decoder) debug(msg string, args ...any) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, args...)
	}
}
