package native

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen is wrapped by Open when the shared object cannot be loaded.
	// The wrapped loader message names the attempted path.
	ErrOpen = errors.New("cannot open shared object")
	// ErrUnsupported is returned by Open on platforms without dynamic loading.
	ErrUnsupported = errors.New("dynamic loading is not supported on this platform")
	// ErrClosed is returned when a closed library is used.
	ErrClosed = errors.New("library is closed")
)

// ContractError describes a native library that does not honor the
// accessor contract. It is raised with panic.
type ContractError struct {
	// Library is the shared object path.
	Library string
	// Symbol is the exported function involved.
	Symbol string
	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: symbol %s: %s", e.Library, e.Symbol, e.Reason)
}
