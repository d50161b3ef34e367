package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// osRename is a variable to allow testing of rename errors.
var osRename = os.Rename

// AtomicFile is a temporary file that replaces its target on Commit.
// A reader of the target never observes a partially written output.
type AtomicFile struct {
	*os.File
	target string
	done   bool
	closed bool
}

// CreateAtomic creates a temporary file in the directory of target,
// creating the directory if needed.
func CreateAtomic(target string) (*AtomicFile, error) {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(target)+"-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &AtomicFile{File: f, target: target}, nil
}

// Commit syncs and closes the temporary file and renames it over the target.
func (a *AtomicFile) Commit() error {
	if a.done {
		return nil
	}
	a.done = true
	tempPath := a.Name()

	if !a.closed {
		if err := a.Sync(); err != nil {
			a.Close()
			os.Remove(tempPath)
			return fmt.Errorf("failed to sync %s: %w", a.target, err)
		}
		if err := a.Close(); err != nil {
			os.Remove(tempPath)
			return fmt.Errorf("failed to close temp file: %w", err)
		}
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := osRename(tempPath, a.target); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename to %s: %w", a.target, err)
	}
	return nil
}

// Detach closes the handle and returns the temporary path, for writers
// that open the file through another API. Commit still renames it.
func (a *AtomicFile) Detach() (string, error) {
	if !a.closed {
		a.closed = true
		if err := a.Close(); err != nil {
			return "", fmt.Errorf("failed to close temp file: %w", err)
		}
	}
	return a.Name(), nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (a *AtomicFile) Abort() {
	if a.done {
		return
	}
	a.done = true
	if !a.closed {
		a.Close()
	}
	os.Remove(a.Name())
}
