package primitives

import (
	"io"

	"github.com/quantumauth-io/quantum-go-cryptosvc/tpmdevice"
)

// SetRandReaderForTesting sets the random reader used by RandomBytes.
// Returns a function to restore the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

// SetTPMForTesting replaces the TPM opened by RandomTpmBytes.
func SetTPMForTesting(open func() (tpmdevice.Device, error)) func() {
	original := openTPM
	openTPM = open
	return func() { openTPM = original }
}
