package primitives

import (
	"fmt"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/schemes"
)

const mlDSA65SchemeName = "ML-DSA-65"

// MlDsa65GenerateKey returns packed FIPS 204 ML-DSA-65 keys.
func MlDsa65GenerateKey() (pub, priv []byte, err error) {
	scheme := schemes.ByName(mlDSA65SchemeName)
	if scheme == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrSchemeUnavailable, mlDSA65SchemeName)
	}

	pk, sk, err := scheme.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("primitives: ML-DSA keygen failed: %w", err)
	}
	if pub, err = pk.MarshalBinary(); err != nil {
		return nil, nil, fmt.Errorf("primitives: marshal ML-DSA pub: %w", err)
	}
	if priv, err = sk.MarshalBinary(); err != nil {
		return nil, nil, fmt.Errorf("primitives: marshal ML-DSA priv: %w", err)
	}
	return pub, priv, nil
}

func MlDsa65Sign(priv, message []byte) ([]byte, error) {
	scheme := schemes.ByName(mlDSA65SchemeName)
	if scheme == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnavailable, mlDSA65SchemeName)
	}

	sk, err := scheme.UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("primitives: unmarshal ML-DSA private key: %w", err)
	}
	sig := scheme.Sign(sk, message, nil)
	if sig == nil {
		return nil, fmt.Errorf("primitives: ML-DSA sign failed")
	}
	return sig, nil
}

func MlDsa65Verify(pub, message, sig []byte) bool {
	scheme := schemes.ByName(mlDSA65SchemeName)
	if scheme == nil {
		return false
	}
	pk, err := scheme.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return false
	}
	return scheme.Verify(pk, message, sig, nil)
}

// MlKem768GenerateKey returns packed FIPS 203 ML-KEM-768 keys.
func MlKem768GenerateKey() (pub, priv []byte, err error) {
	pk, sk, err := mlkem768.Scheme().GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("primitives: ML-KEM keygen failed: %w", err)
	}
	// MarshalBinary never fails for keys from GenerateKeyPair
	pub, _ = pk.MarshalBinary()
	priv, _ = sk.MarshalBinary()
	return pub, priv, nil
}

func MlKem768Encapsulate(pub []byte) (ciphertext, sharedSecret []byte, err error) {
	scheme := mlkem768.Scheme()
	pk, err := scheme.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return nil, nil, fmt.Errorf("primitives: unmarshal ML-KEM public key: %w", err)
	}
	return scheme.Encapsulate(pk)
}

func MlKem768Decapsulate(priv, ciphertext []byte) ([]byte, error) {
	scheme := mlkem768.Scheme()
	sk, err := scheme.UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("primitives: unmarshal ML-KEM private key: %w", err)
	}
	return scheme.Decapsulate(sk, ciphertext)
}
