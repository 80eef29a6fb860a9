package primitives

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumauth-io/quantum-go-cryptosvc/tpmdevice"
)

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	require.NoError(t, err)
	b, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	empty, err := RandomBytes(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = RandomBytes(-1)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestRandomBytesReaderFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")
	defer SetRandReaderForTesting(iotest.ErrReader(boom))()

	_, err := RandomBytes(8)
	assert.ErrorIs(t, err, boom)
}

type fakeTPM struct {
	data   []byte
	closed bool
}

func (f *fakeTPM) Random(n int) ([]byte, error) { return f.data[:n], nil }
func (f *fakeTPM) Close() error                 { f.closed = true; return nil }

func TestRandomTpmBytes(t *testing.T) {
	dev := &fakeTPM{data: bytes.Repeat([]byte{0xaa}, 64)}
	defer SetTPMForTesting(func() (tpmdevice.Device, error) { return dev, nil })()

	got, err := RandomTpmBytes(16)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 16), got)
	assert.True(t, dev.closed)
}

func TestRandomTpmBytesNoDevice(t *testing.T) {
	defer SetTPMForTesting(func() (tpmdevice.Device, error) { return nil, tpmdevice.ErrNoTPM })()

	_, err := RandomTpmBytes(16)
	assert.ErrorIs(t, err, tpmdevice.ErrNoTPM)
}

func TestRandomTpmBytesRejectsCountBeforeOpen(t *testing.T) {
	opened := 0
	defer SetTPMForTesting(func() (tpmdevice.Device, error) {
		opened++
		return &fakeTPM{}, nil
	})()

	for _, n := range []int{0, -1} {
		_, err := RandomTpmBytes(n)
		assert.ErrorIs(t, err, ErrInvalidLength, n)
	}
	assert.Zero(t, opened)
}
