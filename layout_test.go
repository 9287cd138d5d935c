package spritetool

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestLayoutThreeIcons(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "a.png", 16, 16, red)
	writeIcon(t, dir, "b.png", 16, 16, green)
	writeIcon(t, dir, "c.png", 16, 16, blue)

	paths, err := Discover(dir)
	require.NoError(t, err)

	s, err := Layout(paths)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Grid.Columns)
	assert.Equal(t, 2, s.Grid.Rows)
	assert.Equal(t, image.Rect(0, 0, 32, 32), s.Image.Bounds())

	expected := []Placement{
		{Name: "a", X: 0, Y: 0, Width: 16, Height: 16},
		{Name: "b", X: 16, Y: 0, Width: 16, Height: 16},
		{Name: "c", X: 0, Y: 16, Width: 16, Height: 16},
	}
	assert.Equal(t, expected, s.Placements)

	assert.Equal(t, red, s.Image.RGBAAt(0, 0))
	assert.Equal(t, red, s.Image.RGBAAt(15, 15))
	assert.Equal(t, green, s.Image.RGBAAt(16, 0))
	assert.Equal(t, green, s.Image.RGBAAt(31, 15))
	assert.Equal(t, blue, s.Image.RGBAAt(0, 16))
	// trailing cell stays transparent
	assert.Equal(t, color.RGBA{}, s.Image.RGBAAt(16, 16))
	assert.Equal(t, color.RGBA{}, s.Image.RGBAAt(31, 31))
}

func TestLayoutSingleIcon(t *testing.T) {
	dir := t.TempDir()
	p := writeIcon(t, dir, "only.png", 8, 8, red)

	s, err := Layout([]string{p})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 8, 8), s.Image.Bounds())
	assert.Equal(t, []Placement{{Name: "only", X: 0, Y: 0, Width: 8, Height: 8}}, s.Placements)
}

func TestLayoutEmpty(t *testing.T) {
	s, err := Layout(nil)
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, ErrNoIcons))
}

func TestLayoutIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	colors := []color.RGBA{red, green, blue, {10, 20, 30, 255}, {0, 0, 0, 128}}
	for i, c := range colors {
		writeIcon(t, dir, string(rune('a'+i))+".png", 5, 3, c)
	}
	paths, err := Discover(dir)
	require.NoError(t, err)

	one, err := Layout(paths)
	require.NoError(t, err)
	two, err := Layout(paths)
	require.NoError(t, err)

	assert.Equal(t, one.Image.Pix, two.Image.Pix)
	assert.Equal(t, one.Placements, two.Placements)
}

// Layout with an in-memory decoder to cover larger icon counts.
func TestLayoutPlacementInvariants(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 12, 16, 23} {
		paths := make([]string, n)
		for i := range paths {
			paths[i] = filepath.Join("icons", string(rune('A'+i))+".png")
		}
		decode := func(path string) (image.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 6, 4)), nil
		}

		s, err := Layout(paths, WithDecoder(decode))
		require.NoError(t, err)
		require.Len(t, s.Placements, n)

		g := GridFor(n)
		assert.Equal(t, image.Pt(6*g.Columns, 4*g.Rows), s.Image.Bounds().Size())

		for i, p := range s.Placements {
			assert.Equal(t, Stem(paths[i]), p.Name)
			assert.Equal(t, s.Grid.Cell(i), image.Pt(p.X, p.Y))
			assert.True(t, p.Rect().In(s.Image.Bounds()), "placement %v outside sheet", p)

			for j := i + 1; j < n; j++ {
				other := s.Placements[j]
				assert.False(t, p.Rect().Overlaps(other.Rect()),
					"placements %v and %v overlap", p, other)
			}
		}
	}
}

func TestLayoutDecodesFirstIconOnce(t *testing.T) {
	calls := make(map[string]int)
	decode := func(path string) (image.Image, error) {
		calls[path]++
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	}

	_, err := Layout([]string{"a.png", "b.png"}, WithDecoder(decode))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a.png": 1, "b.png": 1}, calls)
}

func TestLayoutSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	a := writeIcon(t, dir, "a.png", 4, 4, red)
	b := writeIcon(t, dir, "b.png", 6, 4, green)
	c := writeIcon(t, dir, "c.png", 4, 4, blue)

	_, err := Layout([]string{a, b, c})
	var mismatch *SizeMismatchError
	require.True(t, errors.As(err, &mismatch), "unexpected error: %v", err)
	assert.Equal(t, b, mismatch.Path)
	assert.Equal(t, image.Pt(4, 4), mismatch.Expected)
	assert.Equal(t, image.Pt(6, 4), mismatch.Actual)

	// lenient mode: cells keep the first icon's size
	s, err := Layout([]string{a, b, c}, AllowMixedSizes())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), s.Image.Bounds())
	assert.Equal(t, 4, s.Placements[1].Width)
	assert.Equal(t, Icon{Path: b, Width: 6, Height: 4}, s.Icons[1])
	// the wide icon spills into the sheet border and gets clipped
	assert.Equal(t, green, s.Image.RGBAAt(7, 0))
	assert.Equal(t, blue, s.Image.RGBAAt(0, 4))
}

func TestLayoutDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	a1 := writeIcon(t, dir, "a.png", 2, 2, red)
	a2 := writeIcon(t, dir, "sub/a.png", 2, 2, green)

	_, err := Layout([]string{a1, a2})
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup), "unexpected error: %v", err)
	assert.Equal(t, "a", dup.Name)
	assert.Equal(t, []string{a1, a2}, dup.Paths)

	s, err := Layout([]string{a1, a2}, AllowDuplicateNames())
	require.NoError(t, err)
	require.Len(t, s.Placements, 2)
	assert.Equal(t, "a", s.Placements[0].Name)
	assert.Equal(t, "a", s.Placements[1].Name)
	assert.Equal(t, 2, s.Placements[1].X)
}

func TestLayoutDecodeErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	decode := func(path string) (image.Image, error) {
		if path == "c.png" {
			return nil, &DecodeError{Path: path, Err: boom}
		}
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	}

	s, err := Layout([]string{"a.png", "b.png", "c.png"}, WithDecoder(decode))
	assert.Nil(t, s)
	assert.True(t, IsDecodeError(err))
	assert.True(t, errors.Is(err, boom))
}

func TestLayoutMissingFirstIcon(t *testing.T) {
	_, err := Layout([]string{filepath.Join(t.TempDir(), "missing.png")})
	assert.True(t, IsIOError(err), "unexpected error: %v", err)
}
