package main

import (
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/fs"
	"github.com/akeil/spritetool/internal/imaging"
	"github.com/akeil/spritetool/pkg/atlas"
)

func doExtract(sheetPath, indexPath, outDir string, names []string, scale int) error {
	a, err := atlas.Open(sheetPath, indexPath)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		names = a.Names()
	}

	for _, name := range names {
		err = checkFileName(name)
		if err != nil {
			fmt.Printf("%v Failed to extract %q: %v\n", crossmark, name, err)
			return err
		}

		icon, err := a.Icon(name)
		if err != nil {
			fmt.Printf("%v Failed to extract %q: %v\n", crossmark, name, err)
			return err
		}
		if scale > 1 {
			icon = imaging.Scale(icon, float64(scale))
		}

		path := filepath.Join(outDir, name+".png")
		err = fs.WriteFile(path, func(w io.Writer) error {
			return png.Encode(w, icon)
		})
		if err != nil {
			return err
		}
		fmt.Printf("%v icon %q saved as %q.\n", checkmark, name, path)
	}

	return nil
}

// checkFileName rejects icon names that would leave the output directory.
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return spritetool.NewValidationError("icon name %q cannot be used as a file name", name)
	}
	return nil
}
