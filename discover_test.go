package spritetool

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{255, 0, 0, 255}
	writeIcon(t, dir, "c.png", 2, 2, red)
	writeIcon(t, dir, "a.png", 2, 2, red)
	writeIcon(t, dir, "sub/b.png", 2, 2, red)
	writeIcon(t, dir, ".hidden/x.png", 2, 2, red)
	writeIcon(t, dir, ".y.png", 2, 2, red)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	paths, err := Discover(dir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "c.png"),
		filepath.Join(dir, "sub", "b.png"),
	}
	assert.Equal(t, expected, paths)

	all, err := Discover(dir, IncludeAll(), IncludeHidden())
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Contains(t, all, filepath.Join(dir, "notes.txt"))
	assert.Contains(t, all, filepath.Join(dir, ".hidden", "x.png"))
}

func TestDiscoverIsStable(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"d.png", "b.png", "a.png", "c.png"} {
		writeIcon(t, dir, n, 1, 1, color.Black)
	}

	first, err := Discover(dir)
	require.NoError(t, err)
	second, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDiscoverOrdersByPathElement(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "a-b/x.png", 1, 1, color.Black)
	writeIcon(t, dir, "a/y.png", 1, 1, color.Black)
	writeIcon(t, dir, "a/b/z.png", 1, 1, color.Black)
	writeIcon(t, dir, "a.png", 1, 1, color.Black)

	paths, err := Discover(dir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, "a", "b", "z.png"),
		filepath.Join(dir, "a", "y.png"),
		filepath.Join(dir, "a-b", "x.png"),
		filepath.Join(dir, "a.png"),
	}
	assert.Equal(t, expected, paths)
}

func TestDiscoverEmpty(t *testing.T) {
	paths, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, IsIOError(err))
}
