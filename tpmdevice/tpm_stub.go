//go:build !linux && !windows

package tpmdevice

import "io"

// This exists only so Open compiles on platforms without a TPM transport
// (darwin has the Secure Enclave, which cannot serve TPM2_GetRandom).
func openTPM(_ []string) (io.ReadWriteCloser, error) {
	return nil, ErrNoTPM
}
