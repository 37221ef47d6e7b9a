package steg

import (
	"github.com/AlinaLB/celfie-lock/internal/bits"
)

// embed walks data bit by bit, most significant bit first within each byte, writing each bit into the
// low-order bit of consecutive channel values starting at index 0. All other bits of each value are
// preserved, so every modified channel value changes by at most 1
func embed(pix []uint8, data []byte) error {
	if err := validateCapacity(uint64(len(data))*8, uint64(len(pix))); err != nil {
		return err
	}

	br := bits.NewBitReader(data)
	for i := 0; br.BitsLeftToRead() > 0; i++ {
		pix[i] = (pix[i] & 0xFE) | br.ReadBit()
	}
	return nil
}

// extract reads lengthBits low-order bits starting at absolute bit offset startBit and reassembles them
// into bytes, most significant bit first
func extract(pix []uint8, startBit, lengthBits uint64) ([]byte, error) {
	if lengthBits%8 != 0 {
		return nil, ErrAlignment
	}
	if startBit+lengthBits > uint64(len(pix)) {
		return nil, ErrDecodeBounds
	}

	bw := bits.NewBitWriter(int(lengthBits / 8))
	for i := startBit; i < startBit+lengthBits; i++ {
		bw.WriteBit(pix[i] & 1)
	}
	return bw.Bytes(), nil
}
