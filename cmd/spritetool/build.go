package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/config"
	"github.com/akeil/spritetool/internal/fs"
	"github.com/akeil/spritetool/pkg/emit"
)

func doBuild(s config.Config) error {
	err := s.Validate()
	if err != nil {
		return err
	}

	var dopts []spritetool.DiscoverOption
	if s.AllFiles {
		dopts = append(dopts, spritetool.IncludeAll())
	}
	paths, err := spritetool.Discover(s.Icons, dopts...)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("No icon files found in %q.\n", s.Icons)
		return nil
	}

	fmt.Printf("%v pack %d icons from %q\n", ellipsis, len(paths), s.Icons)
	var lopts []spritetool.LayoutOption
	if s.AllowMixedSizes {
		lopts = append(lopts, spritetool.AllowMixedSizes())
	}
	if s.AllowDuplicates {
		lopts = append(lopts, spritetool.AllowDuplicateNames())
	}
	sheet, err := spritetool.Layout(paths, lopts...)
	if err != nil {
		fmt.Printf("%v Failed to pack icons: %v\n", crossmark, err)
		return err
	}

	err = writeOutputs(s, sheet)
	if err != nil {
		return err
	}

	g := sheet.Grid
	fmt.Printf("%v sheet (%vx%v px, %vx%v cells) saved as %q.\n",
		checkmark, g.Size().X, g.Size().Y, g.Columns, g.Rows, s.Output)
	fmt.Printf("%v module with %d icons saved as %q.\n", checkmark, len(sheet.Placements), s.Module)
	return nil
}

// writeOutputs encodes sheet image and module in memory and writes both
// files only if encoding succeeded.
//
// Both files are staged before either is moved into place,
// the module is not replaced if the sheet cannot be.
func writeOutputs(s config.Config, sheet *spritetool.Sheet) error {
	imgFormat, err := spritetool.FormatForPath(s.Output)
	if err != nil {
		return err
	}
	modFormat, err := s.ModuleFormat()
	if err != nil {
		return err
	}

	e, err := emit.New(modFormat, emit.Options{
		Table: s.Table,
		Sheet: relPath(s.Module, s.Output),
	})
	if err != nil {
		return err
	}

	var mod, img bytes.Buffer
	err = e.Emit(&mod, sheet.Placements)
	if err != nil {
		return err
	}
	err = spritetool.EncodeSheet(&img, sheet.Image, imgFormat)
	if err != nil {
		return err
	}

	// the sheet goes first, the module refers to it
	outputs := []struct {
		path string
		data *bytes.Buffer
	}{
		{s.Output, &img},
		{s.Module, &mod},
	}

	staged := make([]*fs.Staged, 0, len(outputs))
	defer func() {
		for _, st := range staged {
			st.Discard()
		}
	}()
	for _, out := range outputs {
		data := out.data
		st, err := fs.Stage(out.path, func(w io.Writer) error {
			_, err := data.WriteTo(w)
			return err
		})
		if err != nil {
			return &spritetool.IOError{Op: "write", Path: out.path, Err: err}
		}
		staged = append(staged, st)
	}

	for i, st := range staged {
		err = st.Commit()
		if err != nil {
			return &spritetool.IOError{Op: "write", Path: outputs[i].path, Err: err}
		}
	}

	return nil
}

// relPath returns the sheet path relative to the module's directory
// or the plain file name if that is not possible.
func relPath(module, sheet string) string {
	rel, err := filepath.Rel(filepath.Dir(module), sheet)
	if err != nil {
		return filepath.Base(sheet)
	}
	return filepath.ToSlash(rel)
}
