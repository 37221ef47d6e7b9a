package config

import (
	"image/png"
	"log/slog"
)

// ImageEncodeConfig controls the encode orchestration. The zero value is usable: default PNG compression
// and no logging
type ImageEncodeConfig struct {
	PngCompressionLevel png.CompressionLevel

	// Logger receives optional progress events from the encoder. Nil disables logging
	Logger *slog.Logger
}

type ImageDecodeConfig struct {
	// Logger receives optional progress events from the decoder. Nil disables logging
	Logger *slog.Logger
}
