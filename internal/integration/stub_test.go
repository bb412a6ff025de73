package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// npuToolsSource exports the accessors of the HAL and runtime libraries.
const npuToolsSource = `
const char *version(void) { return "1.2.3"; }
const char *git_short_hash(void) { return "abcd123"; }
const char *build_timestamp(void) { return "2024-01-01T00:00:00Z"; }
`

// compilerSource exports the compiler accessors.
const compilerSource = `
const char *fc_version(void) { return "0.10.0"; }
const char *fc_revision(void) { return "f00dcafe"; }
const char *fc_buildtime(void) { return "2024-02-02T12:34:56Z"; }
`

// missingSymbolSource lacks build_timestamp.
const missingSymbolSource = `
const char *version(void) { return "1.2.3"; }
const char *git_short_hash(void) { return "abcd123"; }
`

// invalidUTF8Source returns a hash that is not valid UTF-8.
const invalidUTF8Source = `
const char *version(void) { return "1.2.3"; }
const char *git_short_hash(void) { return "\xff\xfe"; }
const char *build_timestamp(void) { return "2024-01-01T00:00:00Z"; }
`

// buildStubLibrary compiles source into dir/filename as a shared object.
// The test is skipped when no C compiler is available.
func buildStubLibrary(t *testing.T, dir, filename, source string) string {
	t.Helper()

	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("dynamic loading is not supported on %s", runtime.GOOS)
	}

	compiler := os.Getenv("CC")
	if compiler == "" {
		compiler = "cc"
	}

	if _, err := exec.LookPath(compiler); err != nil {
		t.Skipf("C compiler %q not available: %v", compiler, err)
	}

	srcPath := filepath.Join(t.TempDir(), "stub.c")
	require.NoError(t, os.WriteFile(srcPath, []byte(source), 0o600))

	libPath := filepath.Join(dir, filename)

	//nolint:gosec // Compiler and paths are controlled by the test.
	out, err := exec.Command(compiler, "-shared", "-fPIC", "-o", libPath, srcPath).CombinedOutput()
	require.NoError(t, err, string(out))

	return libPath
}

// writeConfig points library_dir at dir and returns the config path.
func writeConfig(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "furiosa-version.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library_dir: "+dir+"\n"), 0o600))

	return path
}
