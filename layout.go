package spritetool

import (
	"image"

	"github.com/akeil/spritetool/internal/imaging"
	"github.com/akeil/spritetool/internal/logging"
)

// Sheet is the result of a layout run.
type Sheet struct {
	// Image holds the composited icons, transparent where no icon was placed.
	Image *image.RGBA
	// Placements has one entry per input path, in input order.
	Placements []Placement
	// Icons has the decoded size of every input, in input order.
	Icons []Icon
	Grid  Grid
}

type layoutOptions struct {
	decode         Decoder
	mixedSizes     bool
	duplicateNames bool
}

// LayoutOption changes the behavior of Layout.
type LayoutOption func(*layoutOptions)

// WithDecoder sets the function used to read icon images.
// The default is DecodeFile.
func WithDecoder(d Decoder) LayoutOption {
	return func(o *layoutOptions) {
		o.decode = d
	}
}

// AllowMixedSizes accepts icons which differ in size from the first one.
//
// Such icons are copied unscaled to the origin of their cell.
// Larger icons spill over into neighboring cells (clipped at the sheet
// border), smaller ones leave a transparent gap.
func AllowMixedSizes() LayoutOption {
	return func(o *layoutOptions) {
		o.mixedSizes = true
	}
}

// AllowDuplicateNames accepts input files with the same stem.
// Both get a placement, keyed lookups will see the later one.
func AllowDuplicateNames() LayoutOption {
	return func(o *layoutOptions) {
		o.duplicateNames = true
	}
}

// Layout composites the icons from the given paths into one sheet.
//
// Icons are placed row by row on the grid from GridFor, in the order
// of paths. The size of the first icon is the cell size for all icons.
//
// Layout fails with ErrNoIcons for an empty input, with an IOError or
// DecodeError if an icon cannot be read, with a SizeMismatchError if an icon
// has a different size (unless AllowMixedSizes is given) and with a
// DuplicateNameError if two paths have the same stem (unless
// AllowDuplicateNames is given). No sheet is returned on error.
func Layout(paths []string, opts ...LayoutOption) (*Sheet, error) {
	o := layoutOptions{decode: DecodeFile}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(paths)
	if n == 0 {
		return nil, ErrNoIcons
	}

	err := checkNames(paths, o.duplicateNames)
	if err != nil {
		return nil, err
	}

	first, err := o.decode(paths[0])
	if err != nil {
		return nil, err
	}
	cell := first.Bounds().Size()
	if cell.X == 0 || cell.Y == 0 {
		return nil, &DecodeError{Path: paths[0], Err: NewValidationError("empty image")}
	}

	grid := GridFor(n).WithCell(cell.X, cell.Y)
	sheet := image.NewRGBA(grid.Bounds())
	logging.Info("Sheet is %vx%v cells of %vx%v px for %d icons",
		grid.Columns, grid.Rows, cell.X, cell.Y, n)

	placements := make([]Placement, n)
	icons := make([]Icon, n)
	for i, path := range paths {
		img := first
		if i > 0 {
			img, err = o.decode(path)
			if err != nil {
				return nil, err
			}
		}

		size := img.Bounds().Size()
		if size != cell {
			if !o.mixedSizes {
				return nil, &SizeMismatchError{Path: path, Expected: cell, Actual: size}
			}
			logging.Warning("Icon %q is %vx%v, cell size is %vx%v",
				path, size.X, size.Y, cell.X, cell.Y)
		}

		icons[i] = Icon{Path: path, Width: size.X, Height: size.Y}

		origin := grid.Cell(i)
		imaging.Place(sheet, origin, img)

		placements[i] = Placement{
			Name:   icons[i].Name(),
			X:      origin.X,
			Y:      origin.Y,
			Width:  cell.X,
			Height: cell.Y,
		}
		logging.Debug("%v => %v,%v", placements[i].Name, origin.X, origin.Y)
	}

	return &Sheet{
		Image:      sheet,
		Placements: placements,
		Icons:      icons,
		Grid:       grid,
	}, nil
}

func checkNames(paths []string, allowDuplicates bool) error {
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		name := Stem(p)
		prev, ok := seen[name]
		if ok {
			if !allowDuplicates {
				return &DuplicateNameError{Name: name, Paths: []string{prev, p}}
			}
			logging.Warning("Duplicate icon name %q, %q replaces %q in lookups", name, p, prev)
		}
		seen[name] = p
	}
	return nil
}
