package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// halStubSource exports the accessors of the HAL library.
const halStubSource = `
const char *version(void) { return "1.2.3"; }
const char *git_short_hash(void) { return "abcd123"; }
const char *build_timestamp(void) { return "2024-01-01T00:00:00Z"; }
`

func writeConfig(t *testing.T, path, contents string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

// buildStubLibrary compiles source into dir/filename as a shared object.
// The test is skipped when no C compiler is available.
func buildStubLibrary(t *testing.T, dir, filename, source string) {
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

	//nolint:gosec // Compiler and paths are controlled by the test.
	out, err := exec.Command(compiler, "-shared", "-fPIC", "-o", filepath.Join(dir, filename), srcPath).CombinedOutput()
	require.NoError(t, err, string(out))
}
