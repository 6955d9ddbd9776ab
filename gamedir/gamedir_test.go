package gamedir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInstallation(t *testing.T, mapsDirName string) string {
	l2Dir := t.TempDir()
	mapsDir := filepath.Join(l2Dir, mapsDirName)
	require.NoError(t, os.MkdirAll(filepath.Join(mapsDir, "backup.unr"), 0755))
	for _, name := range []string{"22_22.unr", "20_21.unr", "readme.txt", "21_21.unr.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(mapsDir, name), []byte{0}, 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(l2Dir, "system"), 0755))
	return l2Dir
}

func TestFindMapsDir(t *testing.T) {
	l2Dir := createInstallation(t, "MAPS")
	mapsDir, err := FindMapsDir(l2Dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(l2Dir, "MAPS"), mapsDir)
}

func TestFindMapsDir_NotFound(t *testing.T) {
	l2Dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(l2Dir, "maps"), []byte{0}, 0644))

	_, err := FindMapsDir(l2Dir)
	var errNotFound ErrMapsDirNotFound
	require.True(t, errors.As(err, &errNotFound))
	assert.Equal(t, l2Dir, errNotFound.L2Dir)

	_, err = FindMapsDir(filepath.Join(l2Dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListMapFiles(t *testing.T) {
	l2Dir := createInstallation(t, "maps")
	fileNames, err := ListMapFiles(filepath.Join(l2Dir, "maps"))
	require.NoError(t, err)
	assert.Equal(t, []string{"20_21.unr", "22_22.unr"}, fileNames)
}

func TestListMapFiles_SymbolicLinks(t *testing.T) {
	l2Dir := createInstallation(t, "maps")
	mapsDir := filepath.Join(l2Dir, "maps")
	shared := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(shared, "23_22.unr"), []byte{0}, 0644))
	require.NoError(t, os.Symlink(filepath.Join(shared, "23_22.unr"), filepath.Join(mapsDir, "23_22.unr")))
	require.NoError(t, os.Symlink(filepath.Join(shared, "missing.unr"), filepath.Join(mapsDir, "24_22.unr")))

	fileNames, err := ListMapFiles(mapsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"20_21.unr", "22_22.unr", "23_22.unr"}, fileNames)
}

func TestFindMapsDir_SymbolicLink(t *testing.T) {
	l2Dir := t.TempDir()
	target := createInstallation(t, "Maps")
	require.NoError(t, os.Symlink(filepath.Join(target, "Maps"), filepath.Join(l2Dir, "MAPS")))

	mapsDir, err := FindMapsDir(l2Dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(l2Dir, "MAPS"), mapsDir)
}

func TestFilterContaining(t *testing.T) {
	items := []string{"20_21.unr", "22_22.unr", "Giran.unr"}
	assert.Equal(t, items, FilterContaining(items, ""))
	assert.Equal(t, []string{"20_21.unr"}, FilterContaining(items, "0_2"))
	assert.Equal(t, []string{"Giran.unr"}, FilterContaining(items, "GIR"))
}
