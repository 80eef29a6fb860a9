package cryptosvc

import (
	"errors"
	"fmt"

	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

// ErrUnsupported is matched by every error a compiled out service returns.
var ErrUnsupported = errors.New("cryptosvc: service not enabled")

// UnsupportedError is returned in the error position by a service that is
// not part of the build.
type UnsupportedError struct {
	Service services.Name
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("cryptosvc: %s is not enabled", e.Service)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

func unsupported(name services.Name) error {
	return &UnsupportedError{Service: name}
}

// AssertionError is the panic value raised in ModeAssert.
type AssertionError struct {
	Service   services.Name
	Component string
	EventID   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("cryptosvc: assertion failed: [%s] %s() is not enabled (event %s)",
		e.Component, e.Service, e.EventID)
}

func (e *AssertionError) Unwrap() error {
	return &UnsupportedError{Service: e.Service}
}
