package securefile

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFileReplacesContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	require.NoError(t, AtomicWriteFile(fs, "/out/a.yaml", []byte("one\n"), 0o644))
	require.NoError(t, AtomicWriteFile(fs, "/out/a.yaml", []byte("two\n"), 0o644))

	got, err := afero.ReadFile(fs, "/out/a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(got))

	exists, err := afero.Exists(fs, "/out/a.yaml.tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file must not survive a successful write")
}

func TestAtomicWriteFileRemovesStaleTemp(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/a.yaml.tmp", []byte("stale"), 0o644))

	require.NoError(t, AtomicWriteFile(fs, "/out/a.yaml", []byte("fresh"), 0o644))

	got, err := afero.ReadFile(fs, "/out/a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(got))
}

func TestConfigPathCandidates(t *testing.T) {
	t.Setenv("SNAP_REAL_HOME", "")
	t.Setenv("HOME", "/home/tester")

	paths, err := ConfigPathCandidates("wallet-data-maker")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/home/tester/.config/wallet-data-maker",
		"/home/tester/config",
		".",
	}, paths)

	_, err = ConfigPathCandidates("")
	assert.Error(t, err)
}
