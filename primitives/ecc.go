package primitives

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"

	"github.com/cloudflare/circl/sign/ed448"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/curve25519"
)

func EcdsaP256GenerateKey() (*ecdsa.PrivateKey, error) {
	return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
}

// EcdsaP256Sign returns an ASN.1 DER signature over a precomputed digest.
func EcdsaP256Sign(priv *ecdsa.PrivateKey, digest []byte) ([]byte, error) {
	return ecdsa.SignASN1(rand.Reader, priv, digest)
}

func EcdsaP256Verify(pub *ecdsa.PublicKey, digest, sig []byte) bool {
	if pub == nil {
		return false
	}
	return ecdsa.VerifyASN1(pub, digest, sig)
}

func Ed25519GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(rand.Reader)
}

// Ed25519Sign returns nil for a malformed private key instead of panicking.
func Ed25519Sign(priv ed25519.PrivateKey, message []byte) []byte {
	if len(priv) != ed25519.PrivateKeySize {
		return nil
	}
	return ed25519.Sign(priv, message)
}

func Ed25519Verify(pub ed25519.PublicKey, message, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, message, sig)
}

func Ed448GenerateKey() (ed448.PublicKey, ed448.PrivateKey, error) {
	return ed448.GenerateKey(rand.Reader)
}

// Ed448Sign signs with the Ed448 context string (at most 255 bytes). It
// returns nil for a malformed key or an oversized context.
func Ed448Sign(priv ed448.PrivateKey, message []byte, context string) []byte {
	if len(priv) != ed448.PrivateKeySize || len(context) > ed448.ContextMaxSize {
		return nil
	}
	return ed448.Sign(priv, message, context)
}

func Ed448Verify(pub ed448.PublicKey, message, sig []byte, context string) bool {
	if len(pub) != ed448.PublicKeySize || len(context) > ed448.ContextMaxSize {
		return false
	}
	return ed448.Verify(pub, message, sig, context)
}

// X25519 computes scalar * point. Pass curve25519.Basepoint to derive a
// public key.
func X25519(scalar, point []byte) ([]byte, error) {
	return curve25519.X25519(scalar, point)
}

func Secp256k1GenerateKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

// Secp256k1Sign returns a 65-byte [R || S || V] recoverable signature.
func Secp256k1Sign(digest []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	return ethcrypto.Sign(digest, priv)
}

// Secp256k1Recover returns the uncompressed public key that produced sig.
func Secp256k1Recover(digest, sig []byte) ([]byte, error) {
	return ethcrypto.Ecrecover(digest, sig)
}
