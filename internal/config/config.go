package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/furiosa-ai/furiosa-version/internal/logger"
)

// Config holds optional settings of furiosa-version.
type Config struct {
	// LibraryDir is prefixed to the shared object file name when set.
	// When empty the platform's default library search path is used.
	LibraryDir string `yaml:"library_dir"`
	// LogLevel is the zap level name for diagnostics written to stderr.
	LogLevel string `yaml:"log_level"`
}

// DefaultLogLevel is used when the configuration does not set a level.
const DefaultLogLevel = "warn"

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned for level names zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
	// errLibraryDirNotDirectory is returned when library_dir points to a file.
	errLibraryDirNotDirectory = errors.New("library directory is not a directory")
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{LogLevel: DefaultLogLevel}
}

// Load reads configuration from the provided path and validates it.
// An empty path yields Default without touching the filesystem.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the provided settings and fills in defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	// Set default log level if not specified
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	if settings.LibraryDir == "" {
		return nil
	}

	info, err := os.Stat(settings.LibraryDir)
	if err != nil {
		return fmt.Errorf("invalid library directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", errLibraryDirNotDirectory, settings.LibraryDir)
	}

	return nil
}

// LibraryPath returns the path used to open the shared object filename.
func (c *Config) LibraryPath(filename string) string {
	if c.LibraryDir == "" {
		return filename
	}

	return filepath.Join(c.LibraryDir, filename)
}
