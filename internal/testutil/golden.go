package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// BuildBinary compiles search-menu into a temporary directory. Tests are
// skipped when no go toolchain is on PATH.
func BuildBinary(t *testing.T) string {
	t.Helper()
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not available")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "search-menu")
	build := exec.Command(goBin, "build", "-o", bin, ".")
	build.Dir = RepoRoot(t)
	build.Env = append(os.Environ(), "GOCACHE="+filepath.Join(dir, "gocache"))
	out, err := build.CombinedOutput()
	require.NoError(t, err, "go build:\n%s", out)
	return bin
}

// AssertGolden compares output with testdata/<name> at the repository root.
// UPDATE_GOLDEN=1 rewrites the file from output first.
func AssertGolden(t *testing.T, name, output string) {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "testdata", name)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		require.NoError(t, os.WriteFile(path, []byte(output), 0o644))
	}
	want, err := os.ReadFile(path)
	require.NoError(t, err, "read golden %s", name)
	if diff := cmp.Diff(string(want), output); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// RepoRoot returns the nearest ancestor of the working directory that holds
// go.mod, or the filesystem root.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
