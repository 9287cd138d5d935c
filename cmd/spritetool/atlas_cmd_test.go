package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/spritetool"
)

// built packs two icons and returns the settings used.
func built(t *testing.T) fixture {
	s := setup(t, "icons.json")
	writeIcon(t, filepath.Join(s.Icons, "a.png"), 4, color.RGBA{255, 0, 0, 255})
	writeIcon(t, filepath.Join(s.Icons, "b.png"), 4, color.RGBA{0, 0, 255, 255})
	require.NoError(t, doBuild(s))
	return fixture{sheet: s.Output, index: s.Module, dir: filepath.Dir(s.Output)}
}

type fixture struct {
	sheet string
	index string
	dir   string
}

func TestInspect(t *testing.T) {
	c := built(t)
	assert.NoError(t, doInspect("", c.index))
	assert.NoError(t, doInspect(c.sheet, c.index))
}

func TestExtract(t *testing.T) {
	c := built(t)
	out := t.TempDir()

	require.NoError(t, doExtract("", c.index, out, nil, 2))

	img, err := spritetool.DecodeFile(filepath.Join(out, "b.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 8), img.Bounds().Size())
	r, _, b, _ := img.At(3, 3).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), b)

	err = doExtract("", c.index, out, []string{"zzz"}, 1)
	assert.True(t, spritetool.IsNotFound(err))
}

func TestPreview(t *testing.T) {
	c := built(t)

	pdf := filepath.Join(c.dir, "preview.pdf")
	require.NoError(t, doPreview("", c.index, pdf, 1))
	info, err := os.Stat(pdf)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)

	png := filepath.Join(c.dir, "preview.png")
	require.NoError(t, doPreview("", c.index, png, 3))
	img, err := spritetool.DecodeFile(png)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(24, 12), img.Bounds().Size())

	assert.Error(t, doPreview("", c.index, filepath.Join(c.dir, "preview.gif"), 1))
}

func TestExtractRejectsPathNames(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, filepath.Join(dir, "sheet.png"), 4, color.RGBA{255, 0, 0, 255})
	index := filepath.Join(dir, "icons.json")
	out := filepath.Join(dir, "work", "out")
	require.NoError(t, os.MkdirAll(out, 0755))

	for _, name := range []string{"../../escaped", "sub/icon", "..", `a\b`} {
		doc := `{"sheet": "sheet.png", "icons": {` + strconv.Quote(name) +
			`: {"x": 0, "y": 0, "width": 4, "height": 4}}}`
		require.NoError(t, os.WriteFile(index, []byte(doc), 0644))

		err := doExtract("", index, out, nil, 1)
		assert.True(t, spritetool.IsValidationError(err), "%q: unexpected error %v", name, err)
	}

	_, err := os.Stat(filepath.Join(dir, "escaped.png"))
	assert.True(t, os.IsNotExist(err), "icon written outside the output directory")
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
