package model

import (
	"time"
)

type EncodeStats struct {
	Framing             time.Duration `json:"framing"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}

type DecodeStats struct {
	DataDecoding time.Duration `json:"data_decoding"`
}
