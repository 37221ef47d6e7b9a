package steg

import (
	"errors"
	"fmt"
)

// MaxPayloadBytes is a sanity ceiling on the payload length declared by a decoded header, protecting
// against huge allocations driven by corrupt or garbage headers
const MaxPayloadBytes = 10_000_000

var (
	ErrAlignment    = errors.New("bit extraction length must be a multiple of 8")
	ErrDecodeBounds = errors.New("bit extraction exceeded image bounds")
)

// CapacityError reports an embed attempt larger than the carrier can hold
type CapacityError struct {
	RequiredBits  uint64
	AvailableBits uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message too large for this image: need %d bits, have %d bits", e.RequiredBits, e.AvailableBits)
}

func validateCapacity(requiredBits, availableBits uint64) error {
	if requiredBits > availableBits {
		return &CapacityError{RequiredBits: requiredBits, AvailableBits: availableBits}
	}
	return nil
}
