//go:build (darwin || freebsd || linux) && !android

package native

import "github.com/ebitengine/purego"

func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

// lookupStringFunc binds the exported symbol to a Go function.
// purego copies the returned char* into a Go string.
func lookupStringFunc(handle uintptr, symbol string) (func() string, error) {
	addr, err := purego.Dlsym(handle, symbol)
	if err != nil {
		return nil, err
	}

	var fn func() string

	purego.RegisterFunc(&fn, addr)

	return fn, nil
}
