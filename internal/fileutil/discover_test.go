package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	verrors "github.com/FocuswithJustin/versetab/core/errors"
)

var sourceExts = []string{".usx", ".usfm", ".sfm"}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.USFM", "a.usx", "c.sfm", "notes.txt", "README"} {
		touch(t, filepath.Join(dir, name))
	}
	touch(t, filepath.Join(dir, "nested", "d.usx"))
	if err := os.Mkdir(filepath.Join(dir, "e.usx"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(dir, sourceExts)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.usx"),
		filepath.Join(dir, "b.USFM"),
		filepath.Join(dir, "c.sfm"),
	}
	if !slices.Equal(files, want) {
		t.Errorf("Discover() = %v, want %v", files, want)
	}
}

func TestDiscoverSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "GEN.Usx")
	touch(t, path)

	files, err := Discover(path, sourceExts)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if !slices.Equal(files, []string{path}) {
		t.Errorf("Discover() = %v", files)
	}
}

func TestDiscoverFatalErrors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	touch(t, txt)
	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"missing path", filepath.Join(dir, "missing")},
		{"empty path", ""},
		{"unsupported extension", txt},
		{"no matching files", empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Discover(tt.input, sourceExts)
			if err == nil {
				t.Fatal("expected error")
			}
			var inputErr *verrors.InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InputError, got %T: %v", err, err)
			}
			if !verrors.IsFatal(err) {
				t.Error("expected fatal error")
			}
		})
	}
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.usx", true},
		{"A.USFM", true},
		{"dir.usx/file", false},
		{"noext", false},
		{"a.usx.bak", false},
	}
	for _, tt := range tests {
		if got := HasExtension(tt.path, sourceExts); got != tt.want {
			t.Errorf("HasExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		source string
		outDir string
		ext    string
		want   string
	}{
		{filepath.Join("books", "43JHN.usx"), "", ".csv", filepath.Join("books", "43JHN.csv")},
		{filepath.Join("books", "GEN.SFM"), "out", ".csv.xz", filepath.Join("out", "GEN.csv.xz")},
		{"rev.usfm", "", ".json", "rev.json"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.source, tt.outDir, tt.ext); got != tt.want {
			t.Errorf("OutputPath(%q, %q, %q) = %q, want %q", tt.source, tt.outDir, tt.ext, got, tt.want)
		}
	}
}
