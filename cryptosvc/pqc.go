package cryptosvc

import (
	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// MlDsa65GenerateKey returns packed ML-DSA-65 keys.
func MlDsa65GenerateKey() (pub, priv []byte, err error) {
	if !enablement.MlDsa65GenerateKey {
		notEnabled(services.MlDsa65GenerateKey)
		return nil, nil, unsupported(services.MlDsa65GenerateKey)
	}
	return primitives.MlDsa65GenerateKey()
}

func MlDsa65Sign(priv, message []byte) ([]byte, error) {
	if !enablement.MlDsa65Sign {
		notEnabled(services.MlDsa65Sign)
		return nil, unsupported(services.MlDsa65Sign)
	}
	return primitives.MlDsa65Sign(priv, message)
}

func MlDsa65Verify(pub, message, sig []byte) bool {
	if !enablement.MlDsa65Verify {
		notEnabled(services.MlDsa65Verify)
		return false
	}
	return primitives.MlDsa65Verify(pub, message, sig)
}

func MlKem768GenerateKey() (pub, priv []byte, err error) {
	if !enablement.MlKem768GenerateKey {
		notEnabled(services.MlKem768GenerateKey)
		return nil, nil, unsupported(services.MlKem768GenerateKey)
	}
	return primitives.MlKem768GenerateKey()
}

// MlKem768Encapsulate returns a ciphertext and the 32-byte shared secret.
func MlKem768Encapsulate(pub []byte) (ciphertext, sharedSecret []byte, err error) {
	if !enablement.MlKem768Encapsulate {
		notEnabled(services.MlKem768Encapsulate)
		return nil, nil, unsupported(services.MlKem768Encapsulate)
	}
	return primitives.MlKem768Encapsulate(pub)
}

func MlKem768Decapsulate(priv, ciphertext []byte) ([]byte, error) {
	if !enablement.MlKem768Decapsulate {
		notEnabled(services.MlKem768Decapsulate)
		return nil, unsupported(services.MlKem768Decapsulate)
	}
	return primitives.MlKem768Decapsulate(priv, ciphertext)
}
