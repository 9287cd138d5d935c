package spritetool

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrNoIcons is returned when there is nothing to pack.
// Callers usually report it and exit successfully.
var ErrNoIcons = errors.New("no icon files found")

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

// DecodeError is returned if an icon file cannot be parsed as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (d *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", d.Path, d.Err)
}

func (d *DecodeError) Unwrap() error {
	return d.Err
}

// IOError is returned if a file cannot be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsDecodeError tells if err is (or wraps) a DecodeError.
func IsDecodeError(err error) bool {
	var d *DecodeError
	return errors.As(err, &d)
}

// IsIOError tells if err is (or wraps) an IOError.
func IsIOError(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

// SizeMismatchError is returned if an icon does not have the cell size
// that was taken from the first icon.
type SizeMismatchError struct {
	Path     string
	Expected image.Point
	Actual   image.Point
}

func (s *SizeMismatchError) Error() string {
	return fmt.Sprintf("unexpected icon size (%vx%v) for %q, expected %vx%v",
		s.Actual.X, s.Actual.Y, s.Path, s.Expected.X, s.Expected.Y)
}

// DuplicateNameError is returned if two input files share the same stem.
type DuplicateNameError struct {
	Name  string
	Paths []string
}

func (d *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate icon name %q for %v", d.Name, strings.Join(d.Paths, ", "))
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(e error) error {
	return notFound{fmt.Sprintf("Not found: %v", e)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var n notFound
	return errors.As(err, &n)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
