package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks defaults and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty config gets the default level.
	settings := new(Config)
	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultLogLevel, settings.LogLevel)

	// Bad level.
	settings = &Config{LogLevel: "verbose"}
	require.ErrorIs(t, Validate(settings), errUnknownLogLevel)

	// Missing directory.
	settings = &Config{LibraryDir: filepath.Join(t.TempDir(), "missing")}
	require.Error(t, Validate(settings))

	// File instead of directory.
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	settings = &Config{LibraryDir: file}
	require.ErrorIs(t, Validate(settings), errLibraryDirNotDirectory)

	// Okay with existing directory.
	settings = &Config{LibraryDir: t.TempDir(), LogLevel: "debug"}
	require.NoError(t, Validate(settings))
}

// TestLoad ensures settings are read from YAML.
func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "furiosa-version.yaml")

	contents := "library_dir: " + dir + "\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, dir, loaded.LibraryDir)
	require.Equal(t, "debug", loaded.LogLevel)
}

// TestLoadEmptyPath returns defaults without reading files.
func TestLoadEmptyPath(t *testing.T) {
	t.Parallel()

	loaded, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), loaded)
}

// TestLoadErrors covers unreadable and malformed files.
func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "read settings")

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library_dir: [unterminated"), 0o600))

	_, err = Load(path)
	require.ErrorContains(t, err, "unmarshal settings")
}

// TestLibraryPath verifies the optional directory prefix.
func TestLibraryPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "libfuriosa_hal.so", Default().LibraryPath("libfuriosa_hal.so"))

	cfg := &Config{LibraryDir: "/opt/furiosa/lib"}
	require.Equal(t, filepath.Join("/opt/furiosa/lib", "libfuriosa_hal.so"), cfg.LibraryPath("libfuriosa_hal.so"))
}
