// Package emit writes placement records as a name-keyed lookup module.
//
// Records are written in the order they are given. Emitters do not check
// names for uniqueness; in the generated lookup a later entry replaces an
// earlier one with the same name.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/akeil/spritetool"
)

// Emitter serializes placement records.
type Emitter interface {
	// Emit writes the module for the given records to w.
	Emit(w io.Writer, records []spritetool.Placement) error
	// Ext is the preferred file extension, including the dot.
	Ext() string
}

// Format names
const (
	FormatLuau       = "luau"
	FormatJSON       = "json"
	FormatTypeScript = "ts"
)

const (
	// DefaultTable is the name of the generated lookup table.
	DefaultTable = "Icons"
	tsFormat     = "2006-01-02 15:04:05"
	generator    = "spritetool"
)

// Options are shared by all emitters.
type Options struct {
	// Table is the variable name of the lookup table (Luau, TypeScript).
	Table string
	// Sheet is the file name of the sheet image, recorded in the header.
	Sheet string
	// Now returns the generation timestamp; defaults to time.Now.
	Now func() time.Time
}

func (o Options) table() string {
	if o.Table == "" {
		return DefaultTable
	}
	return o.Table
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// New returns the emitter for the named format.
// The table name in opts must be a plain identifier.
func New(format string, opts Options) (Emitter, error) {
	if opts.Table != "" && !identifier.MatchString(opts.Table) {
		return nil, spritetool.NewValidationError("table name %q is not a valid identifier", opts.Table)
	}

	switch strings.ToLower(format) {
	case FormatLuau, "lua":
		return &Luau{opts}, nil
	case FormatJSON:
		return &JSON{opts}, nil
	case FormatTypeScript, "typescript":
		return &TypeScript{opts}, nil
	}
	return nil, spritetool.NewValidationError("unsupported module format %q, choose one of 'luau', 'json', 'ts'", format)
}

// FormatForPath determines the module format from a file extension.
func FormatForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".luau", ".lua":
		return FormatLuau, nil
	case ".json":
		return FormatJSON, nil
	case ".ts":
		return FormatTypeScript, nil
	}
	return "", spritetool.NewValidationError("cannot determine module format for %q", path)
}

// quoteJSON returns s as a JSON (and JavaScript) string literal.
func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// a string always encodes
	enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// commentText drops control characters so s stays on one comment line.
func commentText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, v ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, v...)
}
