package native

import (
	"fmt"
	"unicode/utf8"
)

// Library is an open handle to a dynamically loaded shared object.
type Library struct {
	// handle is the platform handle, zero once closed.
	handle uintptr
	// name is the path the library was opened with.
	name string
}

// Open loads the shared object at path, resolving all its symbols immediately.
// A bare file name is searched in the platform's default library locations.
func Open(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	return &Library{handle: handle, name: path}, nil
}

// Name returns the path the library was opened with.
func (l *Library) Name() string {
	return l.name
}

// CallString resolves symbol as a function taking no arguments and returning
// a C string, invokes it and returns a copy of the result.
// It panics with a *ContractError if the symbol is missing or the result is
// not valid UTF-8, and with ErrClosed if the library was closed.
func (l *Library) CallString(symbol string) string {
	if l.handle == 0 {
		panic(fmt.Errorf("%s: %w", l.name, ErrClosed))
	}

	fn, err := lookupStringFunc(l.handle, symbol)
	if err != nil {
		panic(&ContractError{Library: l.name, Symbol: symbol, Reason: err.Error()})
	}

	value := fn()
	if !utf8.ValidString(value) {
		panic(&ContractError{Library: l.name, Symbol: symbol, Reason: "invalid UTF-8 encoding"})
	}

	return value
}

// Close unloads the library. Calling Close more than once is a no-op.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}

	handle := l.handle
	l.handle = 0

	if err := dlclose(handle); err != nil {
		return fmt.Errorf("close %s: %w", l.name, err)
	}

	return nil
}
