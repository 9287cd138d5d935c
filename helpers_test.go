package spritetool

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeIcon creates a solid-colored PNG file in dir and returns its path.
func writeIcon(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()

	p := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(p), 0755)
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		t.Fatal(err)
	}

	return p
}
