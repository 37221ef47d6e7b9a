package steg

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/AlinaLB/celfie-lock/pkg/config"
	"github.com/AlinaLB/celfie-lock/pkg/header"
	"github.com/AlinaLB/celfie-lock/pkg/model"
	"github.com/AlinaLB/celfie-lock/pkg/raster"
)

const testImageSize = 300

func TestEncodeDecodeRoundTrip(t *testing.T) {
	plaintexts := []string{
		"hi",
		"",
		"multi\nline\nmessage with spaces",
		"非ASCIIメッセージと絵文字🔒",
		string(bytes.Repeat([]byte("repetitive filler text "), 500)),
	}

	for i, plaintext := range plaintexts {
		t.Run(fmt.Sprintf("message-%d", i), func(t *testing.T) {
			encoder := NewImageEncoder(generateRandomRaster(testImageSize, testImageSize), config.ImageEncodeConfig{})
			if err := encoder.Encode(plaintext); err != nil {
				t.Fatalf("Error encoding message: %s", err)
			}

			decoded, found := NewImageDecoder(encoder.Raster(), config.ImageDecodeConfig{}).Decode()
			if !found {
				t.Fatalf("Expected to find the encoded message")
			}
			if decoded != plaintext {
				t.Errorf("Message did not survive encode/decode round trip, expected %q, got %q", plaintext, decoded)
			}
		})
	}
}

func TestEncodeDecodeMessageWithLink(t *testing.T) {
	msg := model.Message{Text: "a protected photo", Link: "https://example.com/owner"}

	encoder := NewImageEncoder(generateRandomRaster(testImageSize, testImageSize), config.ImageEncodeConfig{})
	if err := encoder.EncodeMessage(msg); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	decoder := NewImageDecoder(encoder.Raster(), config.ImageDecodeConfig{})

	plaintext, found := decoder.Decode()
	if !found {
		t.Fatalf("Expected to find the encoded message")
	}
	if plaintext != "a protected photo\nLINK:https://example.com/owner" {
		t.Errorf("Unexpected plaintext with link convention: %q", plaintext)
	}

	decoded, found := decoder.DecodeMessage()
	if !found {
		t.Fatalf("Expected to find the encoded message")
	}
	if decoded != msg {
		t.Errorf("Message did not survive round trip, expected %+v, got %+v", msg, decoded)
	}
}

// Mirrors the reference scenario: a 100x100 RGB raster has 30000 channel values, so 30000 bits (3750
// bytes) of capacity, comfortably above the 74-byte header plus the framed payload for "hi"
func TestSmallImageScenario(t *testing.T) {
	r := generateRandomRaster(100, 100)
	if r.CapacityBits() != 30000 {
		t.Fatalf("Expected 30000 bits of capacity, got %d", r.CapacityBits())
	}

	encoder := NewImageEncoder(r, config.ImageEncodeConfig{})
	if err := encoder.Encode("hi"); err != nil {
		t.Fatalf("Error encoding into 100x100 raster: %s", err)
	}

	decoded, found := NewImageDecoder(encoder.Raster(), config.ImageDecodeConfig{}).Decode()
	if !found || decoded != "hi" {
		t.Errorf("Expected to decode %q, got %q (found=%v)", "hi", decoded, found)
	}
}

func TestEncodeDoesNotMutateCallerRaster(t *testing.T) {
	r := generateRandomRaster(testImageSize, testImageSize)
	original := bytes.Clone(r.Pix)

	encoder := NewImageEncoder(r, config.ImageEncodeConfig{})
	if err := encoder.Encode("mutation check"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	if !bytes.Equal(r.Pix, original) {
		t.Errorf("Encoding mutated the caller's raster")
	}
	if bytes.Equal(encoder.Raster().Pix, original) {
		t.Errorf("Encoding did not mutate the encoder's own raster copy")
	}
}

func TestEncodePreservesNonLSBBits(t *testing.T) {
	r := generateRandomRaster(testImageSize, testImageSize)
	original := bytes.Clone(r.Pix)

	encoder := NewImageEncoder(r, config.ImageEncodeConfig{})
	if err := encoder.Encode("bit preservation"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	var modified int
	for i, v := range encoder.Raster().Pix {
		diff := int(v) - int(original[i])
		if diff < -1 || diff > 1 {
			t.Fatalf("Channel value %d changed by more than 1: %d -> %d", i, original[i], v)
		}
		if diff != 0 {
			modified++
		}
	}
	if modified == 0 {
		t.Errorf("Expected at least some channel values to change")
	}
}

func TestEncodeRejectsOversizedMessage(t *testing.T) {
	encoder := NewImageEncoder(generateRandomRaster(10, 10), config.ImageEncodeConfig{})
	original := bytes.Clone(encoder.Raster().Pix)

	err := encoder.Encode("this will not fit in a 10x10 carrier")
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("Expected CapacityError, got %v", err)
	}
	if capErr.AvailableBits != 300 {
		t.Errorf("Expected 300 available bits in error, got %d", capErr.AvailableBits)
	}
	if capErr.RequiredBits <= capErr.AvailableBits {
		t.Errorf("Expected required bits to exceed available bits")
	}

	if !bytes.Equal(encoder.Raster().Pix, original) {
		t.Errorf("Failed encode mutated the raster")
	}
}

func TestDecodeNeverFindsPayloadInUnencodedRasters(t *testing.T) {
	rasters := map[string]*raster.Raster{
		"all-zero":  raster.New(testImageSize, testImageSize),
		"random":    generateRandomRaster(testImageSize, testImageSize),
		"tiny":      raster.New(2, 2),
		"one-pixel": raster.New(1, 1),
	}

	for name, r := range rasters {
		if _, found := NewImageDecoder(r, config.ImageDecodeConfig{}).Decode(); found {
			t.Errorf("Expected no payload in %s raster", name)
		}
		if NewImageDecoder(r, config.ImageDecodeConfig{}).Verify() {
			t.Errorf("Expected Verify to be false for %s raster", name)
		}
	}
}

func TestDecodeRejectsSingleBitTampering(t *testing.T) {
	encoder := NewImageEncoder(generateRandomRaster(100, 100), config.ImageEncodeConfig{})
	if err := encoder.Encode("tamper sensitivity"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}
	encoded := encoder.Raster()

	// Bit offsets inside the embedded key region and the ciphertext region of the hidden data
	keyRegionStart := uint64(10 * 8)
	ciphertextStart := uint64(header.Size * 8)
	for _, bitOffset := range []uint64{keyRegionStart, keyRegionStart + 77, ciphertextStart, ciphertextStart + 131} {
		tampered := encoded.Clone()
		tampered.Pix[bitOffset] ^= 0x01

		if decoded, found := NewImageDecoder(tampered, config.ImageDecodeConfig{}).Decode(); found {
			t.Errorf("Expected decode to fail after flipping embedded bit %d, got %q", bitOffset, decoded)
		}
	}
}

func TestVerifyFindsEncodedPayload(t *testing.T) {
	encoder := NewImageEncoder(generateRandomRaster(100, 100), config.ImageEncodeConfig{})
	if err := encoder.Encode("verify me"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	if !NewImageDecoder(encoder.Raster(), config.ImageDecodeConfig{}).Verify() {
		t.Errorf("Expected Verify to be true for an encoded raster")
	}
}

func TestEncodedRasterSurvivesPNGRoundTrip(t *testing.T) {
	encoder := NewImageEncoder(generateRandomRaster(100, 100), config.ImageEncodeConfig{})
	if err := encoder.Encode("png round trip"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	var buf bytes.Buffer
	if err := encoder.WriteEncodedPNG(&buf); err != nil {
		t.Fatalf("Error writing encoded PNG: %s", err)
	}

	reloaded, err := decodePNGToRaster(buf.Bytes())
	if err != nil {
		t.Fatalf("Error reloading encoded PNG: %s", err)
	}

	decoded, found := NewImageDecoder(reloaded, config.ImageDecodeConfig{}).Decode()
	if !found || decoded != "png round trip" {
		t.Errorf("Expected to decode %q after PNG round trip, got %q (found=%v)", "png round trip", decoded, found)
	}
}
