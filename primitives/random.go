package primitives

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/quantumauth-io/quantum-go-cryptosvc/tpmdevice"
)

// randReader is the source used by RandomBytes. It defaults to crypto/rand
// and can be overridden for testing.
var randReader io.Reader = rand.Reader

// openTPM is the TPM entropy source used by RandomTpmBytes.
var openTPM = func() (tpmdevice.Device, error) {
	return tpmdevice.Open(context.Background(), tpmdevice.Config{OpenRetries: 2})
}

func RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	return buf, nil
}

// RandomTpmBytes reads n bytes from the platform TPM. The device is opened
// and closed per call. A non-positive n is rejected before the device is
// touched.
func RandomTpmBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	dev, err := openTPM()
	if err != nil {
		return nil, err
	}
	defer dev.Close()
	return dev.Random(n)
}
