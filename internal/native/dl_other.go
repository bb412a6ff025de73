//go:build !((darwin || freebsd || linux) && !android)

package native

import "fmt"

func dlopen(path string) (uintptr, error) {
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupported)
}

func dlclose(uintptr) error {
	return ErrUnsupported
}

func lookupStringFunc(uintptr, string) (func() string, error) {
	return nil, ErrUnsupported
}
