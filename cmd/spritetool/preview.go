package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/fs"
	"github.com/akeil/spritetool/pkg/atlas"
	"github.com/akeil/spritetool/pkg/preview"
)

func doPreview(sheetPath, indexPath, outPath string, scale int) error {
	a, err := atlas.Open(sheetPath, indexPath)
	if err != nil {
		return err
	}

	fmt.Printf("%v render preview for %q\n", ellipsis, indexPath)
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".pdf":
		title := spritetool.Stem(indexPath)
		err = fs.WriteFile(outPath, func(w io.Writer) error {
			return preview.ContactSheet(w, a.Sheet(), a.Index.Placements, title)
		})
	default:
		format, ferr := spritetool.FormatForPath(outPath)
		if ferr != nil {
			return ferr
		}
		img := preview.Outline(a.Sheet(), a.Index.Placements, preview.DefaultOutline, scale)
		err = fs.WriteFile(outPath, func(w io.Writer) error {
			return spritetool.EncodeSheet(w, img, format)
		})
	}

	if err != nil {
		fmt.Printf("%v Failed to render preview: %v\n", crossmark, err)
		return err
	}

	fmt.Printf("%v preview saved as %q.\n", checkmark, outPath)
	return nil
}
