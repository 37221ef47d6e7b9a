package payload

import (
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/AlinaLB/celfie-lock/pkg/header"
)

const kdfIterations = 100000

// DeriveImageKey derives a 32-byte encryption key bound to the carrier's pixel data, by hashing the pixels
// with SHA-256 and stretching the hash through PBKDF2-HMAC-SHA256. A nil salt generates a fresh random one;
// the key and the salt actually used are both returned.
//
// Frame and Unframe do not use this scheme; they encrypt under a fresh random key carried in the header.
// This derivation exists for callers that want keys reproducible from the original, unmodified image
func DeriveImageKey(pixelData, salt []byte) (key, usedSalt []byte, err error) {
	if salt == nil {
		salt = make([]byte, header.SaltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	} else if len(salt) != header.SaltSize {
		return nil, nil, header.ErrInvalidSaltSize
	}

	imageHash := sha256.Sum256(pixelData)
	key = pbkdf2.Key(imageHash[:], salt, kdfIterations, header.KeySize, sha256.New)
	return key, salt, nil
}
