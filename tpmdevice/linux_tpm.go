//go:build linux

package tpmdevice

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/google/go-tpm/legacy/tpm2"
)

var defaultPaths = []string{"/dev/tpmrm0", "/dev/tpm0"}

// openTPM for linux: tries /dev/tpmrm0 then /dev/tpm0 unless paths is set.
func openTPM(paths []string) (io.ReadWriteCloser, error) {
	if len(paths) == 0 {
		paths = defaultPaths
	}
	var lastErr error

	for _, p := range paths {
		rwc, err := tpm2.OpenTPM(p)
		if err == nil {
			return rwc, nil
		}
		lastErr = err
	}

	if lastErr == nil || errors.Is(lastErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: tried %v", ErrNoTPM, paths)
	}
	return nil, fmt.Errorf("tpmdevice: open: %w", lastErr)
}
