package primitives

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	aesGCMNonceSize = 12
)

// AesGcmSeal encrypts with AES-GCM. The key selects AES-128, -192 or -256.
// The result is ciphertext || tag; the nonce is not prepended.
func AesGcmSeal(key, nonce, plaintext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, aad), nil
}

func AesGcmOpen(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(nonce) != aesGCMNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), aesGCMNonceSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}
	return cipher.NewGCM(block)
}

// AesCbcEncrypt encrypts whole blocks without padding; callers pad.
func AesCbcEncrypt(key, iv, plaintext []byte) ([]byte, error) {
	block, err := newCBCBlock(key, iv, plaintext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)
	return out, nil
}

func AesCbcDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := newCBCBlock(key, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return out, nil
}

func newCBCBlock(key, iv, in []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), aes.BlockSize)
	}
	if len(in)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(in))
	}
	return block, nil
}

// ChaCha20Poly1305Seal uses the IETF construction for 12-byte nonces and
// XChaCha20-Poly1305 for 24-byte nonces.
func ChaCha20Poly1305Seal(key, nonce, plaintext, aad []byte) ([]byte, error) {
	aead, err := newChaCha(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

func ChaCha20Poly1305Open(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := newChaCha(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newChaCha(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), chacha20poly1305.KeySize)
	}
	switch len(nonce) {
	case chacha20poly1305.NonceSize:
		return chacha20poly1305.New(key)
	case chacha20poly1305.NonceSizeX:
		return chacha20poly1305.NewX(key)
	default:
		return nil, fmt.Errorf("%w: got %d, want %d or %d", ErrInvalidNonceSize, len(nonce),
			chacha20poly1305.NonceSize, chacha20poly1305.NonceSizeX)
	}
}
