package cryptosvc

import (
	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// HkdfSHA256ExtractAndExpand derives length bytes per RFC 5869.
func HkdfSHA256ExtractAndExpand(secret, salt, info []byte, length int) ([]byte, error) {
	if !enablement.HkdfSHA256ExtractAndExpand {
		notEnabled(services.HkdfSHA256ExtractAndExpand)
		return nil, unsupported(services.HkdfSHA256ExtractAndExpand)
	}
	return primitives.HkdfSHA256ExtractAndExpand(secret, salt, info, length)
}

func HkdfSHA256Extract(secret, salt []byte) []byte {
	if !enablement.HkdfSHA256Extract {
		notEnabled(services.HkdfSHA256Extract)
		return nil
	}
	return primitives.HkdfSHA256Extract(secret, salt)
}

func HkdfSHA256Expand(prk, info []byte, length int) ([]byte, error) {
	if !enablement.HkdfSHA256Expand {
		notEnabled(services.HkdfSHA256Expand)
		return nil, unsupported(services.HkdfSHA256Expand)
	}
	return primitives.HkdfSHA256Expand(prk, info, length)
}

func Pbkdf2SHA256(password, salt []byte, iterations, keyLen int) []byte {
	if !enablement.Pbkdf2SHA256 {
		notEnabled(services.Pbkdf2SHA256)
		return nil
	}
	return primitives.Pbkdf2SHA256(password, salt, iterations, keyLen)
}

func Argon2idKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	if !enablement.Argon2idKey {
		notEnabled(services.Argon2idKey)
		return nil
	}
	return primitives.Argon2idKey(password, salt, time, memory, threads, keyLen)
}
