package reporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/furiosa-ai/furiosa-version/internal/config"
	"github.com/furiosa-ai/furiosa-version/internal/domain/buildinfo"
	"github.com/furiosa-ai/furiosa-version/internal/domain/catalog"
	"github.com/furiosa-ai/furiosa-version/internal/logger"
)

// Options controls which library is inspected and what is printed.
type Options struct {
	// ConfigPath specifies the optional settings YAML file.
	ConfigPath string
	// Name is the logical library identifier.
	Name string
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Selection picks the printed fields; empty means all.
	Selection buildinfo.Selection
	// Output receives the version line. Defaults to os.Stdout.
	Output io.Writer
	// Loader opens the shared object. Defaults to NativeLoader.
	Loader Loader
}

// errUnknownLogLevel is returned for a --log-level zap does not know.
var errUnknownLogLevel = errors.New("unknown log level")

// Run prints the selected version fields of the named library.
// Nothing is written to Output unless every step succeeds.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "furiosa-version")

	// Unknown names fail before anything else is touched.
	target, err := catalog.Resolve(opts.Name)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err = applyLogLevel(opts.LogLevel, cfg); err != nil {
		return err
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	loader := opts.Loader
	if loader == nil {
		loader = NativeLoader{}
	}

	path := cfg.LibraryPath(target.Filename())
	ctx = logger.WithKV(ctx, "library", target.Name)

	logger.DebugKV(ctx, "Loading shared object", "path", path)

	info, err := readVersion(ctx, loader, path, target.Symbols)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Read version metadata",
		"version", info.Version,
		"hash", info.Hash,
		"build_time", info.BuildTime,
	)

	if _, err = fmt.Fprintln(output, buildinfo.Format(info, opts.Selection)); err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	return nil
}

// readVersion keeps the library loaded while its accessors are called.
func readVersion(ctx context.Context, loader Loader, path string, symbols catalog.Symbols) (buildinfo.VersionInfo, error) {
	lib, err := loader.Load(path)
	if err != nil {
		return buildinfo.VersionInfo{}, fmt.Errorf("open library: %w", err)
	}

	logger.InfoKV(ctx, "Opened shared object", "path", path)

	// The metadata is already copied, a failed unload does not invalidate it.
	defer func() {
		if closeErr := lib.Close(); closeErr != nil {
			logger.WarnKV(ctx, "Failed to unload shared object", "path", path, "error", closeErr)
		}
	}()

	return Extract(lib, symbols), nil
}

// applyLogLevel sets the global level from the flag, falling back to the configuration.
func applyLogLevel(flagLevel string, cfg *config.Config) error {
	name := cfg.LogLevel
	if flagLevel != "" {
		name = flagLevel
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, name)
	}

	logger.SetLevel(level)

	return nil
}
