package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Symbols is the ordered triple of exported functions reporting version metadata.
type Symbols struct {
	// Version returns the semantic version string.
	Version string
	// Hash returns the short source-control revision.
	Hash string
	// BuildTime returns the build timestamp.
	BuildTime string
}

// Target describes a supported native library.
type Target struct {
	// Name is the logical identifier given on the command line.
	Name string
	// Library is the shared object base name without extension.
	Library string
	// Symbols lists the exported accessors of the library.
	Symbols Symbols
}

// sharedObjectExtension is appended to Target.Library to get the file name.
const sharedObjectExtension = ".so"

// ErrUnknownLibrary is returned by Resolve for identifiers outside the catalog.
var ErrUnknownLibrary = errors.New("unknown library")

var (
	// npuToolsSymbols is the convention shared by the HAL and runtime libraries.
	npuToolsSymbols = Symbols{
		Version:   "version",
		Hash:      "git_short_hash",
		BuildTime: "build_timestamp",
	}

	// compilerSymbols is the convention used by the compiler library.
	compilerSymbols = Symbols{
		Version:   "fc_version",
		Hash:      "fc_revision",
		BuildTime: "fc_buildtime",
	}

	//nolint:gochecknoglobals // Fixed lookup table, never mutated.
	targets = []Target{
		{Name: "libhal", Library: "libfuriosa_hal", Symbols: npuToolsSymbols},
		{Name: "libruntime", Library: "libfuriosa_runtime", Symbols: npuToolsSymbols},
		{Name: "libcompiler", Library: "libfuriosa_compiler", Symbols: compilerSymbols},
	}
)

// Filename returns the shared object file name of the target.
func (t Target) Filename() string {
	return t.Library + sharedObjectExtension
}

// Resolve looks up the target registered under name.
func Resolve(name string) (Target, error) {
	for _, target := range targets {
		if target.Name == name {
			return target, nil
		}
	}

	return Target{}, fmt.Errorf("%w %q (available names: %s)", ErrUnknownLibrary, name, strings.Join(Names(), ", "))
}

// Names returns the recognized identifiers in catalog order.
func Names() []string {
	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.Name)
	}

	return names
}
