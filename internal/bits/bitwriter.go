package bits

// BitWriter reassembles single bits into bytes, filling each byte from its most significant bit down. It is the
// inverse of BitReader
type BitWriter struct {
	bytes         []byte
	currentByte   byte
	currentBitIdx uint
}

// NewBitWriter returns a writer with capacity preallocated for expectedBytes full bytes
func NewBitWriter(expectedBytes int) *BitWriter {
	return &BitWriter{
		bytes: make([]byte, 0, expectedBytes),
	}
}

func (bw *BitWriter) WriteBit(bit byte) {
	bw.currentByte |= (bit & 1) << (7 - bw.currentBitIdx)
	bw.currentBitIdx++
	if bw.currentBitIdx == 8 {
		bw.bytes = append(bw.bytes, bw.currentByte)
		bw.currentByte = 0
		bw.currentBitIdx = 0
	}
}

// Bytes returns the fully written bytes. Bits from a partially filled trailing byte are not included
func (bw *BitWriter) Bytes() []byte {
	return bw.bytes
}
