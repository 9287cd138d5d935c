// Package atlas reads a generated sprite sheet together with its JSON index
// and gives access to the individual icons.
package atlas

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/imaging"
	"github.com/akeil/spritetool/internal/logging"
)

// Atlas is a sprite sheet with its index.
type Atlas struct {
	Index *Index
	sheet *image.RGBA
	// later entries win for duplicate names
	lookup map[string]spritetool.Placement
}

// Open loads the index from indexPath and the sheet image from sheetPath.
//
// If sheetPath is empty, the sheet named in the index is used,
// relative to the directory of the index file.
func Open(sheetPath, indexPath string) (*Atlas, error) {
	logging.Debug("Load sprite index from %q", indexPath)
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, &spritetool.IOError{Op: "open", Path: indexPath, Err: err}
	}
	defer f.Close()

	idx, err := ReadIndex(f)
	if err != nil {
		return nil, spritetool.Wrap(err, "read index %q", indexPath)
	}

	if sheetPath == "" {
		if idx.Sheet == "" {
			return nil, spritetool.NewValidationError("index %q does not name a sheet image", indexPath)
		}
		sheetPath = filepath.Join(filepath.Dir(indexPath), idx.Sheet)
	}

	img, err := spritetool.DecodeFile(sheetPath)
	if err != nil {
		return nil, err
	}

	return New(img, idx), nil
}

// New creates an Atlas from a decoded sheet and its index.
func New(sheet image.Image, idx *Index) *Atlas {
	lookup := make(map[string]spritetool.Placement, len(idx.Placements))
	for _, p := range idx.Placements {
		lookup[p.Name] = p
	}

	return &Atlas{
		Index: idx,
		// make the image an RGBA (allows SubImage(...))
		sheet:  imaging.ToRGBA(sheet),
		lookup: lookup,
	}
}

// Sheet returns the complete sheet image.
func (a *Atlas) Sheet() *image.RGBA {
	return a.sheet
}

// Names returns the icon names in index order.
func (a *Atlas) Names() []string {
	names := make([]string, len(a.Index.Placements))
	for i, p := range a.Index.Placements {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the placement for the named icon.
func (a *Atlas) Lookup(name string) (spritetool.Placement, bool) {
	p, ok := a.lookup[name]
	return p, ok
}

// Icon returns the image for the named icon.
// The returned image shares pixels with the sheet.
func (a *Atlas) Icon(name string) (image.Image, error) {
	p, ok := a.lookup[name]
	if !ok {
		return nil, spritetool.NewNotFound("no icon %q in sprite sheet", name)
	}

	r := p.Rect()
	if !r.In(a.sheet.Bounds()) {
		return nil, fmt.Errorf("sprite bounds %v for %q not within spritesheet dimensions %v",
			r, name, a.sheet.Bounds())
	}

	return a.sheet.SubImage(r), nil
}

// Verify checks that every placement lies within the sheet
// and that no two placements overlap.
func (a *Atlas) Verify() error {
	bounds := a.sheet.Bounds()
	ps := a.Index.Placements
	for i, p := range ps {
		r := p.Rect()
		if r.Empty() {
			return spritetool.NewValidationError("empty rectangle for %q", p.Name)
		}
		if !r.In(bounds) {
			return spritetool.NewValidationError("%q at %v is outside of the sheet %v", p.Name, r, bounds)
		}
		for _, other := range ps[i+1:] {
			if r.Overlaps(other.Rect()) {
				return spritetool.NewValidationError("%q at %v overlaps %q at %v",
					p.Name, r, other.Name, other.Rect())
			}
		}
	}
	return nil
}
