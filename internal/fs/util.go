package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/akeil/spritetool/internal/logging"
)

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}

	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}

// WriteFile writes the content produced by write to path.
//
// The content is staged in a temporary file next to path and moved
// into place only if write succeeds. On failure, path is left untouched
// and the staging file is removed.
func WriteFile(path string, write func(w io.Writer) error) error {
	s, err := Stage(path, write)
	if err != nil {
		return err
	}
	return s.Commit()
}

// Staged is a file written next to its destination
// which has not been moved into place yet.
type Staged struct {
	tmp  string
	path string
	done bool
}

// Stage writes the content produced by write to a temporary file in the
// directory of path. Nothing is staged if write fails.
func Stage(path string, write func(w io.Writer) error) (*Staged, error) {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	err = write(f)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return nil, err
	}

	return &Staged{tmp: tmp, path: path}, nil
}

// Commit moves the staged file to its destination.
// The staging file is removed if that fails.
func (s *Staged) Commit() error {
	if s.done {
		return nil
	}
	s.done = true

	logging.Debug("Move staged file %q to %q", s.tmp, s.path)
	err := Move(s.tmp, s.path)
	if err != nil {
		os.Remove(s.tmp)
		return err
	}
	return nil
}

// Discard removes the staging file unless it was committed.
func (s *Staged) Discard() {
	if s.done {
		return
	}
	s.done = true
	os.Remove(s.tmp)
}
