package cryptosvc

import (
	"github.com/quantumauth-io/quantum-go-cryptosvc/enablement"
	"github.com/quantumauth-io/quantum-go-cryptosvc/primitives"
	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// RandomBytes returns n bytes from the operating system CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	if !enablement.RandomBytes {
		notEnabled(services.RandomBytes)
		return nil, unsupported(services.RandomBytes)
	}
	return primitives.RandomBytes(n)
}

// RandomTpmBytes returns n bytes from the platform TPM.
func RandomTpmBytes(n int) ([]byte, error) {
	if !enablement.RandomTpmBytes {
		notEnabled(services.RandomTpmBytes)
		return nil, unsupported(services.RandomTpmBytes)
	}
	return primitives.RandomTpmBytes(n)
}
