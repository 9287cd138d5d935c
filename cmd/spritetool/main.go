package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/config"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	app := kingpin.New("spritetool", "Pack icon images into a sprite sheet")
	app.HelpFlag.Short('h')

	var (
		logLevel = app.Flag("log-level", "Log level (debug, info, warning, error, none)").String()
		jobFile  = app.Flag("config", "HCL job file with build settings").Short('c').ExistingFile()
	)

	build := app.Command("build", "Build a sprite sheet and its metadata module").Default()
	var (
		icons      = build.Flag("icons", "Directory with the icon files").Short('i').String()
		output     = build.Flag("output", "Path of the sheet image (.png, .bmp, .tiff)").Short('o').String()
		module     = build.Flag("module", "Path of the metadata module (.luau, .json, .ts)").Short('m').String()
		format     = build.Flag("format", "Module format, derived from the module path if not set").Short('f').Enum("luau", "lua", "json", "ts")
		table      = build.Flag("table", "Name of the lookup table").String()
		allFiles   = build.Flag("all-files", "Use every file, not only known image formats").Bool()
		mixedSizes = build.Flag("allow-mixed-sizes", "Accept icons with a size different from the first one").Bool()
		duplicates = build.Flag("allow-duplicates", "Accept icons with the same name").Bool()
	)

	inspect := app.Command("inspect", "List and verify the icons in a sprite sheet")
	var (
		inspectIndex = inspect.Arg("index", "JSON index of the sheet").Required().ExistingFile()
		inspectSheet = inspect.Flag("sheet", "Sheet image, if not named in the index").String()
	)

	extract := app.Command("extract", "Write single icons from a sprite sheet as PNG files")
	var (
		extractIndex = extract.Arg("index", "JSON index of the sheet").Required().ExistingFile()
		extractNames = extract.Arg("name", "Icon names, all icons if empty").Strings()
		extractSheet = extract.Flag("sheet", "Sheet image, if not named in the index").String()
		extractDir   = extract.Flag("output", "Output directory").Short('o').Default(".").ExistingDir()
		extractScale = extract.Flag("scale", "Enlarge icons by this factor").Default("1").Int()
	)

	preview := app.Command("preview", "Render a preview of a sprite sheet (.pdf or .png)")
	var (
		previewIndex = preview.Arg("index", "JSON index of the sheet").Required().ExistingFile()
		previewOut   = preview.Arg("output", "Preview file (.pdf or .png)").Required().String()
		previewSheet = preview.Flag("sheet", "Sheet image, if not named in the index").String()
		previewScale = preview.Flag("scale", "Enlarge PNG previews by this factor").Default("4").Int()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*jobFile)
	if err != nil {
		fail(err)
	}
	if *logLevel != "" {
		s.LogLevel = *logLevel
	}
	spritetool.SetLogLevel(s.LogLevel)

	switch command {
	case build.FullCommand():
		s.Merge(config.Config{
			Icons:           *icons,
			Output:          *output,
			Module:          *module,
			Format:          *format,
			Table:           *table,
			AllFiles:        *allFiles,
			AllowMixedSizes: *mixedSizes,
			AllowDuplicates: *duplicates,
		})
		err = doBuild(s)
	case inspect.FullCommand():
		err = doInspect(*inspectSheet, *inspectIndex)
	case extract.FullCommand():
		err = doExtract(*extractSheet, *extractIndex, *extractDir, *extractNames, *extractScale)
	case preview.FullCommand():
		err = doPreview(*previewSheet, *previewIndex, *previewOut, *previewScale)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fail(err)
	}
	os.Exit(0)
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

// loadSettings layers environment and job file.
func loadSettings(jobFile string) (config.Config, error) {
	s, err := config.FromEnv()
	if err != nil {
		return s, err
	}
	if jobFile != "" {
		err = s.LoadFile(jobFile)
	}
	return s, err
}
