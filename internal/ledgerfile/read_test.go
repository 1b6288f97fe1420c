package ledgerfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[account]]\n"), 0o644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "[[account]]\n", doc)
}

func TestRead_DirectoryConcatenatesTomlMembers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.toml"), []byte("# second"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), []byte("# first"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	doc, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "# first\n# second\n", doc)
}

func TestRead_MissingPath(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading ledger")
}

func TestAppendTarget(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ledger.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	target, err := AppendTarget(file)
	require.NoError(t, err)
	assert.Equal(t, file, target)

	target, err = AppendTarget(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ImportFileName), target)

	// A ledger file that does not exist yet is still a valid target.
	missing := filepath.Join(dir, "new.toml")
	target, err = AppendTarget(missing)
	require.NoError(t, err)
	assert.Equal(t, missing, target)
}
