// Package header implements the fixed 74-byte binary header that prefixes every hidden payload.
//
// Wire layout (little-endian integers):
//
//	0..6    signature "CELFIE"
//	6..10   version (uint32)
//	10..42  embedded encryption key (32 bytes, raw)
//	42..58  salt (16 bytes, raw)
//	58..66  payload length in bytes (uint64)
//	66..74  delimiter constant 00 FF 00 FF 00 FF 00 FF
//
// Offsets are fixed and never reordered within a version; any layout change requires bumping the version field.
package header

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	Signature = "CELFIE"
	Version   = 1

	// Size is the total packed header size in bytes: 6+4+32+16+8+8
	Size = 74

	KeySize  = 32
	SaltSize = 16
)

// Delimiter is a structural sanity tag against random-bit-garbage decode attempts, not a cryptographic boundary.
// The ciphertext carries its own authentication tag
var Delimiter = [8]byte{0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF}

var (
	ErrBadSignature    = errors.New("data does not start with the CELFIE signature")
	ErrBadDelimiter    = errors.New("header delimiter does not match the expected constant")
	ErrTruncated       = errors.New("not enough bytes to contain a full header")
	ErrInvalidKeySize  = errors.New("embedded key must be exactly 32 bytes")
	ErrInvalidSaltSize = errors.New("salt must be exactly 16 bytes")
)

type Header struct {
	Version       uint32
	Key           [KeySize]byte
	Salt          [SaltSize]byte
	PayloadLength uint64
}

// Pack serializes the header fields into the fixed 74-byte wire layout
func Pack(version uint32, key, salt []byte, payloadLength uint64) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	if len(salt) != SaltSize {
		return nil, ErrInvalidSaltSize
	}

	packed := make([]byte, 0, Size)
	packed = append(packed, Signature...)
	packed = binary.LittleEndian.AppendUint32(packed, version)
	packed = append(packed, key...)
	packed = append(packed, salt...)
	packed = binary.LittleEndian.AppendUint64(packed, payloadLength)
	packed = append(packed, Delimiter[:]...)
	return packed, nil
}

func (h *Header) Pack() ([]byte, error) {
	return Pack(h.Version, h.Key[:], h.Salt[:], h.PayloadLength)
}

// Unpack parses a packed header. The version field is read but not validated here, so that future layout
// revisions remain detectable by callers through SupportedVersion
func Unpack(packed []byte) (*Header, error) {
	if len(packed) < Size {
		return nil, ErrTruncated
	}
	if string(packed[0:6]) != Signature {
		return nil, ErrBadSignature
	}
	if !bytes.Equal(packed[66:74], Delimiter[:]) {
		return nil, ErrBadDelimiter
	}

	h := &Header{
		Version:       binary.LittleEndian.Uint32(packed[6:10]),
		PayloadLength: binary.LittleEndian.Uint64(packed[58:66]),
	}
	copy(h.Key[:], packed[10:42])
	copy(h.Salt[:], packed[42:58])
	return h, nil
}

// SupportedVersion reports whether this build knows how to unframe payloads written under the header's version
func (h *Header) SupportedVersion() bool {
	return h.Version == Version
}
