package bits

import (
	"testing"
)

func TestReadBit(t *testing.T) {

	// 10000000 00000111 11111111 01100101
	bytesToTestWith := []byte{128, 7, 255, 101}
	expectedBits := []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
		0, 1, 1, 0, 0, 1, 0, 1,
	}

	tBitReader := NewBitReader(bytesToTestWith)
	for iter, expectedBit := range expectedBits {
		if bitsLeft := tBitReader.BitsLeftToRead(); bitsLeft != len(expectedBits)-iter {
			t.Errorf("Expected %d bits left to read on iter %d, got %d", len(expectedBits)-iter, iter+1, bitsLeft)
		}
		bit := tBitReader.ReadBit()
		if bit != expectedBit {
			t.Errorf("Failure testing bit reader on iter %d, result was: %d, expected %d", iter+1, bit, expectedBit)
		}
	}

	if tBitReader.BitsLeftToRead() != 0 {
		t.Errorf("Expected no bits left to read, got %d", tBitReader.BitsLeftToRead())
	}
	if tBitReader.ReadBit() != 0 {
		t.Errorf("Expected reads past the end to return 0")
	}
}

func TestBitWriterInvertsBitReader(t *testing.T) {
	bytesToTestWith := []byte{0, 1, 85, 170, 128, 7, 255, 101}

	tBitReader := NewBitReader(bytesToTestWith)
	tBitWriter := NewBitWriter(len(bytesToTestWith))
	for tBitReader.BitsLeftToRead() > 0 {
		tBitWriter.WriteBit(tBitReader.ReadBit())
	}

	writtenBytes := tBitWriter.Bytes()
	if len(writtenBytes) != len(bytesToTestWith) {
		t.Fatalf("Expected %d bytes written, got %d", len(bytesToTestWith), len(writtenBytes))
	}
	for i := range bytesToTestWith {
		if writtenBytes[i] != bytesToTestWith[i] {
			t.Errorf("Byte %d mismatch after read/write round trip, expected %d, got %d", i, bytesToTestWith[i], writtenBytes[i])
		}
	}
}

func TestBitWriterDiscardsPartialTrailingByte(t *testing.T) {
	tBitWriter := NewBitWriter(1)
	for i := 0; i < 11; i++ {
		tBitWriter.WriteBit(1)
	}

	if len(tBitWriter.Bytes()) != 1 {
		t.Fatalf("Expected 1 full byte, got %d", len(tBitWriter.Bytes()))
	}
	if tBitWriter.Bytes()[0] != 255 {
		t.Errorf("Expected first full byte to be 255, got %d", tBitWriter.Bytes()[0])
	}
}
