// Package payload builds and consumes the encrypted payload that sits behind the header in the hidden region.
//
// The encode path compresses the plaintext with zlib at maximum compression, then encrypts it under a fresh
// cryptographically random key with Fernet, an authenticated scheme whose tokens carry their own timestamp,
// IV and integrity tag. The key travels inside the header; possession of the carrier image is the secret.
package payload

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fernet/fernet-go"
	"github.com/klauspost/compress/zlib"

	"github.com/AlinaLB/celfie-lock/pkg/header"
)

var (
	ErrDecryptionFailed    = errors.New("ciphertext failed authenticated decryption")
	ErrDecompressionFailed = errors.New("decrypted payload is not a valid compressed stream")
	ErrInvalidEncoding     = errors.New("decompressed payload is not valid UTF-8")
)

// Frame compresses and encrypts the plaintext, returning the header describing the result and the ciphertext
// to embed right after it. A fresh random key and salt are generated on every call; neither is retained
func Frame(plaintext string) (*header.Header, []byte, error) {
	compressed, err := compress([]byte(plaintext))
	if err != nil {
		return nil, nil, err
	}

	var key fernet.Key
	if err := key.Generate(); err != nil {
		return nil, nil, err
	}
	var salt [header.SaltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, nil, err
	}

	ciphertext, err := fernet.EncryptAndSign(compressed, &key)
	if err != nil {
		return nil, nil, err
	}

	h := &header.Header{
		Version:       header.Version,
		Key:           [header.KeySize]byte(key),
		Salt:          salt,
		PayloadLength: uint64(len(ciphertext)),
	}
	return h, ciphertext, nil
}

// Unframe reverses Frame using the key embedded in the header: decrypt, decompress, validate UTF-8
func Unframe(h *header.Header, ciphertext []byte) (string, error) {
	key := fernet.Key(h.Key)
	compressed := fernet.VerifyAndDecrypt(ciphertext, 0, []*fernet.Key{&key})
	if compressed == nil {
		return "", ErrDecryptionFailed
	}

	plaintext, err := decompress(compressed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidEncoding
	}
	return string(plaintext), nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, zr); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
