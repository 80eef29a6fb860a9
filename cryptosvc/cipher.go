package cryptosvc

import (
	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// AesGcmSeal encrypts plaintext with AES-GCM and a 12-byte nonce. The output is ciphertext followed by the tag.
func AesGcmSeal(key, nonce, plaintext, aad []byte) ([]byte, error) {
	if !enablement.AesGcmSeal {
		notEnabled(services.AesGcmSeal)
		return nil, unsupported(services.AesGcmSeal)
	}
	return primitives.AesGcmSeal(key, nonce, plaintext, aad)
}

func AesGcmOpen(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	if !enablement.AesGcmOpen {
		notEnabled(services.AesGcmOpen)
		return nil, unsupported(services.AesGcmOpen)
	}
	return primitives.AesGcmOpen(key, nonce, ciphertext, aad)
}

// AesCbcEncrypt does not pad; plaintext must be a multiple of the block size.
func AesCbcEncrypt(key, iv, plaintext []byte) ([]byte, error) {
	if !enablement.AesCbcEncrypt {
		notEnabled(services.AesCbcEncrypt)
		return nil, unsupported(services.AesCbcEncrypt)
	}
	return primitives.AesCbcEncrypt(key, iv, plaintext)
}

func AesCbcDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	if !enablement.AesCbcDecrypt {
		notEnabled(services.AesCbcDecrypt)
		return nil, unsupported(services.AesCbcDecrypt)
	}
	return primitives.AesCbcDecrypt(key, iv, ciphertext)
}

// ChaCha20Poly1305Seal selects XChaCha20-Poly1305 for a 24-byte nonce.
func ChaCha20Poly1305Seal(key, nonce, plaintext, aad []byte) ([]byte, error) {
	if !enablement.ChaCha20Poly1305Seal {
		notEnabled(services.ChaCha20Poly1305Seal)
		return nil, unsupported(services.ChaCha20Poly1305Seal)
	}
	return primitives.ChaCha20Poly1305Seal(key, nonce, plaintext, aad)
}

func ChaCha20Poly1305Open(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	if !enablement.ChaCha20Poly1305Open {
		notEnabled(services.ChaCha20Poly1305Open)
		return nil, unsupported(services.ChaCha20Poly1305Open)
	}
	return primitives.ChaCha20Poly1305Open(key, nonce, ciphertext, aad)
}
