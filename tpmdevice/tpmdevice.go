// Package tpmdevice reads hardware entropy from a TPM 2.0 through the legacy
// go-tpm command set.
package tpmdevice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tpm2 "github.com/google/go-tpm/legacy/tpm2"

	"github.com/quantumauth-io/quantum-go-cryptosvc/retry"
)

// maxRandomChunk bounds a single TPM2_GetRandom request. TPMs return at most
// one digest worth of bytes per call, so larger reads are split.
const maxRandomChunk = 32

var (
	ErrNoTPM        = errors.New("tpmdevice: no TPM available on this platform")
	ErrClosed       = errors.New("tpmdevice: device closed")
	ErrShortRandom  = errors.New("tpmdevice: TPM returned no random bytes")
	ErrInvalidCount = errors.New("tpmdevice: byte count must be positive")
)

// Device is a TPM used as an entropy source.
type Device interface {
	Random(n int) ([]byte, error)
	Close() error
}

type Config struct {
	// Paths overrides the device nodes tried on linux.
	Paths []string
	// OpenRetries is the number of extra attempts when the resource manager
	// is busy. Zero means no retry.
	OpenRetries int32
}

type device struct {
	mu  sync.Mutex
	rwc io.ReadWriteCloser
}

// getRandom is swapped in tests.
var getRandom = tpm2.GetRandom

// Open connects to the TPM, retrying transient failures per cfg.
func Open(ctx context.Context, cfg Config) (Device, error) {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxNumRetries = cfg.OpenRetries
	retryCfg.InitialDelayBeforeRetrying = 50 * time.Millisecond
	retryCfg.MaxDelayBeforeRetrying = 500 * time.Millisecond

	rwc, err := retry.Do(ctx, retryCfg,
		func(context.Context) (io.ReadWriteCloser, error) {
			return openTPM(cfg.Paths)
		},
		func(err error) bool { return !errors.Is(err, ErrNoTPM) },
		"Open TPM",
	)
	if err != nil {
		return nil, err
	}
	return NewFromReadWriteCloser(rwc), nil
}

// NewFromReadWriteCloser wraps an already opened TPM transport, e.g. a
// simulator connection.
func NewFromReadWriteCloser(rwc io.ReadWriteCloser) Device {
	return &device{rwc: rwc}
}

func (d *device) Random(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rwc == nil {
		return nil, ErrClosed
	}

	out := make([]byte, 0, n)
	for len(out) < n {
		want := n - len(out)
		if want > maxRandomChunk {
			want = maxRandomChunk
		}
		b, err := getRandom(d.rwc, uint16(want))
		if err != nil {
			return nil, fmt.Errorf("tpmdevice: GetRandom: %w", err)
		}
		if len(b) == 0 {
			return nil, ErrShortRandom
		}
		if len(b) > want {
			b = b[:want]
		}
		out = append(out, b...)
	}
	return out, nil
}

func (d *device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rwc == nil {
		return nil
	}

	err := d.rwc.Close()
	d.rwc = nil // make Close idempotent

	if err == nil {
		return nil
	}

	// Ignore harmless double-close cases
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	if strings.Contains(err.Error(), "file already closed") {
		return nil
	}

	return fmt.Errorf("tpmdevice: close: %w", err)
}
