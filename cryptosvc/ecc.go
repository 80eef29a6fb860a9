package cryptosvc

import (
	"crypto/ecdsa"
	"crypto/ed25519"

	"github.com/cloudflare/circl/sign/ed448"

	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

func EcdsaP256GenerateKey() (*ecdsa.PrivateKey, error) {
	if !enablement.EcdsaP256GenerateKey {
		notEnabled(services.EcdsaP256GenerateKey)
		return nil, unsupported(services.EcdsaP256GenerateKey)
	}
	return primitives.EcdsaP256GenerateKey()
}

// EcdsaP256Sign returns an ASN.1 signature over a precomputed digest.
func EcdsaP256Sign(priv *ecdsa.PrivateKey, digest []byte) ([]byte, error) {
	if !enablement.EcdsaP256Sign {
		notEnabled(services.EcdsaP256Sign)
		return nil, unsupported(services.EcdsaP256Sign)
	}
	return primitives.EcdsaP256Sign(priv, digest)
}

func EcdsaP256Verify(pub *ecdsa.PublicKey, digest, sig []byte) bool {
	if !enablement.EcdsaP256Verify {
		notEnabled(services.EcdsaP256Verify)
		return false
	}
	return primitives.EcdsaP256Verify(pub, digest, sig)
}

func Ed25519GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	if !enablement.Ed25519GenerateKey {
		notEnabled(services.Ed25519GenerateKey)
		return nil, nil, unsupported(services.Ed25519GenerateKey)
	}
	return primitives.Ed25519GenerateKey()
}

func Ed25519Sign(priv ed25519.PrivateKey, message []byte) []byte {
	if !enablement.Ed25519Sign {
		notEnabled(services.Ed25519Sign)
		return nil
	}
	return primitives.Ed25519Sign(priv, message)
}

func Ed25519Verify(pub ed25519.PublicKey, message, sig []byte) bool {
	if !enablement.Ed25519Verify {
		notEnabled(services.Ed25519Verify)
		return false
	}
	return primitives.Ed25519Verify(pub, message, sig)
}

func Ed448GenerateKey() (ed448.PublicKey, ed448.PrivateKey, error) {
	if !enablement.Ed448GenerateKey {
		notEnabled(services.Ed448GenerateKey)
		return nil, nil, unsupported(services.Ed448GenerateKey)
	}
	return primitives.Ed448GenerateKey()
}

func Ed448Sign(priv ed448.PrivateKey, message []byte, context string) []byte {
	if !enablement.Ed448Sign {
		notEnabled(services.Ed448Sign)
		return nil
	}
	return primitives.Ed448Sign(priv, message, context)
}

func Ed448Verify(pub ed448.PublicKey, message, sig []byte, context string) bool {
	if !enablement.Ed448Verify {
		notEnabled(services.Ed448Verify)
		return false
	}
	return primitives.Ed448Verify(pub, message, sig, context)
}

func X25519(scalar, point []byte) ([]byte, error) {
	if !enablement.X25519 {
		notEnabled(services.X25519)
		return nil, unsupported(services.X25519)
	}
	return primitives.X25519(scalar, point)
}

func Secp256k1GenerateKey() (*ecdsa.PrivateKey, error) {
	if !enablement.Secp256k1GenerateKey {
		notEnabled(services.Secp256k1GenerateKey)
		return nil, unsupported(services.Secp256k1GenerateKey)
	}
	return primitives.Secp256k1GenerateKey()
}

// Secp256k1Sign returns a 65-byte recoverable signature.
func Secp256k1Sign(digest []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	if !enablement.Secp256k1Sign {
		notEnabled(services.Secp256k1Sign)
		return nil, unsupported(services.Secp256k1Sign)
	}
	return primitives.Secp256k1Sign(digest, priv)
}

func Secp256k1Recover(digest, sig []byte) ([]byte, error) {
	if !enablement.Secp256k1Recover {
		notEnabled(services.Secp256k1Recover)
		return nil, unsupported(services.Secp256k1Recover)
	}
	return primitives.Secp256k1Recover(digest, sig)
}
