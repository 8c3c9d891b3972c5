package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesMissingDirectories(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "state", "nested", "fittrack.db")

	got, err := EnsureParentDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(filepath.Dir(want))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}

	_, err = os.Stat(want)
	require.True(t, os.IsNotExist(err), "the file itself is not created")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "fittrack.db")
	first, err := EnsureParentDir(p)
	require.NoError(t, err)
	second, err := EnsureParentDir(p)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := EnsureParentDir("~/.fittrack/fittrack.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".fittrack", "fittrack.db"), got)
}

func TestEnsureParentDir_RelativeAndMemory(t *testing.T) {
	got, err := EnsureParentDir(":memory:")
	require.NoError(t, err)
	require.Equal(t, ":memory:", got)

	got, err = EnsureParentDir("fittrack.db")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))
}

func TestEnsureParentDir_FailsWhenParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "state")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(blocker, "fittrack.db"))
	require.Error(t, err)
}
