// Package config holds the settings for a build run.
//
// Values are layered: defaults, then environment variables, then an
// optional HCL job file. Command line flags are applied last by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/logging"
	"github.com/akeil/spritetool/pkg/emit"
)

// Config describes one build run.
type Config struct {
	// Icons is the directory with the icon files.
	Icons string `env:"SPRITETOOL_ICONS"`
	// Output is the path of the sheet image.
	Output string `env:"SPRITETOOL_OUTPUT"`
	// Module is the path of the metadata module.
	Module string `env:"SPRITETOOL_MODULE"`
	// Format of the metadata module, derived from Module if empty.
	Format string `env:"SPRITETOOL_FORMAT"`
	// Table is the name of the lookup table in the module.
	Table    string `env:"SPRITETOOL_TABLE" envDefault:"Icons"`
	LogLevel string `env:"SPRITETOOL_LOG_LEVEL" envDefault:"warning"`

	AllFiles        bool `env:"SPRITETOOL_ALL_FILES"`
	AllowMixedSizes bool `env:"SPRITETOOL_ALLOW_MIXED_SIZES"`
	AllowDuplicates bool `env:"SPRITETOOL_ALLOW_DUPLICATES"`
}

// jobFile is the content of an HCL job file.
// Flags are pointers so that an explicit false is not lost.
type jobFile struct {
	Icons    string `hcl:"icons,optional"`
	Output   string `hcl:"output,optional"`
	Module   string `hcl:"module,optional"`
	Format   string `hcl:"format,optional"`
	Table    string `hcl:"table,optional"`
	LogLevel string `hcl:"log_level,optional"`

	AllFiles        *bool `hcl:"all_files,optional"`
	AllowMixedSizes *bool `hcl:"allow_mixed_sizes,optional"`
	AllowDuplicates *bool `hcl:"allow_duplicates,optional"`
}

// FromEnv returns a Config with defaults and values from the environment.
func FromEnv() (Config, error) {
	var c Config
	err := env.Parse(&c)
	if err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// ModuleFormat returns the format for the metadata module, either the one
// set explicitly or the one derived from the module file extension.
func (c *Config) ModuleFormat() (string, error) {
	if c.Format != "" {
		e, err := emit.New(c.Format, emit.Options{})
		if err != nil {
			return "", err
		}
		// normalize aliases
		return e.Ext()[1:], nil
	}
	return emit.FormatForPath(c.Module)
}

// LoadFile applies the settings from an HCL job file on top of c.
// The file name must end in ".hcl" (native syntax) or ".json" (HCL JSON).
// Attributes missing from the file keep their current value,
// flags set in the file replace the current value in either direction.
func (c *Config) LoadFile(path string) error {
	logging.Debug("Load job file %q", path)

	var f jobFile
	err := hclsimple.DecodeFile(path, nil, &f)
	if err != nil {
		return spritetool.Wrap(err, "read job file %q", path)
	}

	// relative paths in the job file are relative to the file itself
	base := filepath.Dir(path)
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	c.Merge(Config{
		Icons:    rel(f.Icons),
		Output:   rel(f.Output),
		Module:   rel(f.Module),
		Format:   f.Format,
		Table:    f.Table,
		LogLevel: f.LogLevel,
	})

	flag := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	flag(&c.AllFiles, f.AllFiles)
	flag(&c.AllowMixedSizes, f.AllowMixedSizes)
	flag(&c.AllowDuplicates, f.AllowDuplicates)
	return nil
}

// Merge copies all non-zero fields from other into c.
// Flags can only be switched on; this is used for command line flags,
// which have no "off" value of their own.
func (c *Config) Merge(other Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Icons, other.Icons)
	set(&c.Output, other.Output)
	set(&c.Module, other.Module)
	set(&c.Format, other.Format)
	set(&c.Table, other.Table)
	set(&c.LogLevel, other.LogLevel)

	c.AllFiles = c.AllFiles || other.AllFiles
	c.AllowMixedSizes = c.AllowMixedSizes || other.AllowMixedSizes
	c.AllowDuplicates = c.AllowDuplicates || other.AllowDuplicates
}

// Validate checks that the configuration is complete and consistent.
// It does not modify any files.
func (c *Config) Validate() error {
	if c.Icons == "" {
		return spritetool.NewValidationError("missing icons directory")
	}
	if c.Output == "" {
		return spritetool.NewValidationError("missing output path for the sheet image")
	}
	if c.Module == "" {
		return spritetool.NewValidationError("missing output path for the module")
	}

	info, err := os.Stat(c.Icons)
	if err != nil {
		return &spritetool.IOError{Op: "stat", Path: c.Icons, Err: err}
	}
	if !info.IsDir() {
		return spritetool.NewValidationError("%q is not a directory", c.Icons)
	}

	if filepath.Clean(c.Output) == filepath.Clean(c.Module) {
		return spritetool.NewValidationError("sheet and module must be written to different files")
	}

	for _, p := range []string{c.Output, c.Module} {
		dir := filepath.Dir(p)
		info, err = os.Stat(dir)
		if err != nil {
			return &spritetool.IOError{Op: "stat", Path: dir, Err: err}
		}
		if !info.IsDir() {
			return spritetool.NewValidationError("%q is not a directory", dir)
		}
	}

	_, err = spritetool.FormatForPath(c.Output)
	if err != nil {
		return err
	}

	format, err := c.ModuleFormat()
	if err != nil {
		return err
	}
	_, err = emit.New(format, emit.Options{Table: c.Table})
	if err != nil {
		return err
	}

	if c.LogLevel != "" {
		_, ok := logging.ParseLevel(c.LogLevel)
		if !ok {
			return spritetool.NewValidationError("unknown log level %q", c.LogLevel)
		}
	}

	return nil
}
