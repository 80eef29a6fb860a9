package cryptosvc

import (
	"crypto"
	"crypto/rsa"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

func RsaPkcs1Sign(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error) {
	if !enablement.RsaPkcs1Sign {
		notEnabled(services.RsaPkcs1Sign)
		return nil, unsupported(services.RsaPkcs1Sign)
	}
	return primitives.RsaPkcs1Sign(priv, hash, digest)
}

func RsaPkcs1Verify(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool {
	if !enablement.RsaPkcs1Verify {
		notEnabled(services.RsaPkcs1Verify)
		return false
	}
	return primitives.RsaPkcs1Verify(pub, hash, digest, sig)
}

func RsaPssSign(priv *rsa.PrivateKey, hash crypto.Hash, digest []byte) ([]byte, error) {
	if !enablement.RsaPssSign {
		notEnabled(services.RsaPssSign)
		return nil, unsupported(services.RsaPssSign)
	}
	return primitives.RsaPssSign(priv, hash, digest)
}

func RsaPssVerify(pub *rsa.PublicKey, hash crypto.Hash, digest, sig []byte) bool {
	if !enablement.RsaPssVerify {
		notEnabled(services.RsaPssVerify)
		return false
	}
	return primitives.RsaPssVerify(pub, hash, digest, sig)
}

// RsaOaepEncrypt uses SHA-256 for OAEP and MGF1.
func RsaOaepEncrypt(pub *rsa.PublicKey, plaintext, label []byte) ([]byte, error) {
	if !enablement.RsaOaepEncrypt {
		notEnabled(services.RsaOaepEncrypt)
		return nil, unsupported(services.RsaOaepEncrypt)
	}
	return primitives.RsaOaepEncrypt(pub, plaintext, label)
}

func RsaOaepDecrypt(priv *rsa.PrivateKey, ciphertext, label []byte) ([]byte, error) {
	if !enablement.RsaOaepDecrypt {
		notEnabled(services.RsaOaepDecrypt)
		return nil, unsupported(services.RsaOaepDecrypt)
	}
	return primitives.RsaOaepDecrypt(priv, ciphertext, label)
}
