package primitives

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// maxHKDFSHA256Length is 255 * HashLen (RFC 5869 §2.3).
const maxHKDFSHA256Length = 255 * sha256.Size

func HkdfSHA256ExtractAndExpand(secret, salt, info []byte, length int) ([]byte, error) {
	if err := checkHKDFLength(length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("primitives: hkdf: %w", err)
	}
	return out, nil
}

// HkdfSHA256Extract returns the pseudorandom key. A nil salt is treated as
// HashLen zero bytes.
func HkdfSHA256Extract(secret, salt []byte) []byte {
	return hkdf.Extract(sha256.New, secret, salt)
}

func HkdfSHA256Expand(prk, info []byte, length int) ([]byte, error) {
	if err := checkHKDFLength(length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), out); err != nil {
		return nil, fmt.Errorf("primitives: hkdf expand: %w", err)
	}
	return out, nil
}

func checkHKDFLength(length int) error {
	if length <= 0 || length > maxHKDFSHA256Length {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidLength, length, maxHKDFSHA256Length)
	}
	return nil
}

func Pbkdf2SHA256(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

func Argon2idKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	return argon2.IDKey(password, salt, time, memory, threads, keyLen)
}
