// Package fileutil finds the source files of a batch, names their outputs
// and writes outputs atomically.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/internal/validation"
)

// Discover returns the source files named by input. A file must carry one
// of extensions; a directory is scanned one level deep for matching regular
// files, in name order. Extensions compare case-insensitively.
//
// Every failure is an *errors.InputError: the path is unusable, a single
// file has an unsupported extension, or nothing convertible was found.
func Discover(input string, extensions []string) ([]string, error) {
	if err := validation.ValidatePath(input); err != nil {
		return nil, &errors.InputError{Path: input, Message: "invalid path", Err: err}
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, &errors.InputError{Path: input, Message: "cannot access input", Err: err}
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, errors.NewInput(input, "not a regular file")
		}
		if !HasExtension(input, extensions) {
			return nil, errors.NewInput(input, fmt.Sprintf("unsupported extension %q (want one of %s)",
				filepath.Ext(input), strings.Join(extensions, ", ")))
		}
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, &errors.InputError{Path: input, Message: "cannot read directory", Err: err}
	}

	var files []string
	for _, entry := range entries {
		if !HasExtension(entry.Name(), extensions) {
			continue
		}
		path := filepath.Join(input, entry.Name())
		// Stat follows symlinks so linked sources are converted too.
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		return nil, errors.NewInput(input, "no convertible files found")
	}
	slices.Sort(files)
	return files, nil
}

// HasExtension reports whether path ends in one of extensions, ignoring case.
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// OutputPath names the output for source: the source base name with its
// extension replaced by ext, placed in outDir or, when outDir is empty,
// next to the source.
func OutputPath(source, outDir, ext string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	if outDir == "" {
		return filepath.Join(filepath.Dir(source), base)
	}
	return filepath.Join(outDir, base)
}
