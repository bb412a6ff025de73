package reporter

import (
	"github.com/furiosa-ai/furiosa-version/internal/domain/buildinfo"
	"github.com/furiosa-ai/furiosa-version/internal/domain/catalog"
	"github.com/furiosa-ai/furiosa-version/internal/native"
)

// Library is an opened shared object exposing string accessors.
type Library interface {
	// CallString invokes the exported zero-argument function symbol.
	CallString(symbol string) string
	// Close releases the library.
	Close() error
}

// Loader opens shared objects.
type Loader interface {
	// Load opens the shared object at path.
	Load(path string) (Library, error)
}

// NativeLoader opens shared objects with the platform dynamic loader.
type NativeLoader struct{}

// Load implements Loader.
//
//nolint:ireturn // Loader abstracts the native library for tests.
func (NativeLoader) Load(path string) (Library, error) {
	lib, err := native.Open(path)
	if err != nil {
		return nil, err
	}

	return lib, nil
}

// Extract calls the three accessors of lib in order and builds the record.
func Extract(lib Library, symbols catalog.Symbols) buildinfo.VersionInfo {
	return buildinfo.VersionInfo{
		Version:   lib.CallString(symbols.Version),
		Hash:      lib.CallString(symbols.Hash),
		BuildTime: lib.CallString(symbols.BuildTime),
	}
}
