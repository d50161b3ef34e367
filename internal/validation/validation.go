// Package validation checks user-supplied paths and source file content
// before any conversion work is done.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits applied to inputs (CWE-400).
const (
	// MaxFileSize is the maximum allowed source file size (256 MB).
	MaxFileSize = 256 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
	// sniffLength is how much of a file is inspected for magic bytes.
	sniffLength = 512
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrFileTooLarge     = errors.New("file too large")
	ErrFileType         = errors.New("file type mismatch")
)

// ValidatePath performs path validation without requiring a base directory.
// It checks length limits and invalid characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateSize rejects files larger than MaxFileSize.
func ValidateSize(size int64) error {
	if size > MaxFileSize {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, size, MaxFileSize)
	}
	return nil
}

// FileType represents a detected file type.
type FileType string

const (
	// Markup formats
	FileTypeXML  FileType = "xml"
	FileTypeText FileType = "text"

	// Binary formats that are commonly mislabelled
	FileTypeGzip   FileType = "gzip"
	FileTypeXZ     FileType = "xz"
	FileTypeZip    FileType = "zip"
	FileTypeSQLite FileType = "sqlite"

	// Unknown
	FileTypeUnknown FileType = "unknown"
)

// magicBytes defines magic byte signatures for file type detection.
var magicBytes = []struct {
	fileType FileType
	magic    []byte
}{
	{FileTypeGzip, []byte{0x1f, 0x8b}},
	{FileTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{FileTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{FileTypeSQLite, []byte("SQLite format 3")},
}

// ValidateSource checks that the start of a source file is text of the kind
// its extension promises. Compressed archives, databases and other binary
// content are rejected. Empty content passes; the format engine reports it.
func ValidateSource(data []byte, filename string) (FileType, error) {
	expected := detectFileTypeFromExtension(filename)
	if expected == FileTypeUnknown {
		return FileTypeUnknown, fmt.Errorf("%w: unrecognised extension %q", ErrFileType, filepath.Ext(filename))
	}

	head := data
	if len(head) > sniffLength {
		head = head[:sniffLength]
	}
	if len(head) == 0 {
		return expected, nil
	}

	if detected := detectFileTypeFromMagic(head); detected != FileTypeUnknown {
		return detected, fmt.Errorf("%w: extension suggests %s but content is %s", ErrFileType, expected, detected)
	}
	if !isLikelyText(head) {
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is binary", ErrFileType, expected)
	}
	return expected, nil
}

// detectFileTypeFromMagic detects file type from magic bytes.
func detectFileTypeFromMagic(buf []byte) FileType {
	for _, sig := range magicBytes {
		if bytes.HasPrefix(buf, sig.magic) {
			return sig.fileType
		}
	}
	return FileTypeUnknown
}

// detectFileTypeFromExtension determines the expected file type from the
// filename extension.
func detectFileTypeFromExtension(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".usx", ".xml":
		return FileTypeXML
	case ".usfm", ".sfm", ".txt":
		return FileTypeText
	default:
		return FileTypeUnknown
	}
}

// isLikelyText reports whether buf looks like UTF-8 or ASCII text.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}

	// Null bytes are a strong indicator of binary content.
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable := 0
	control := 0
	for _, b := range buf {
		switch {
		case b >= 0x20 && b <= 0x7e, b == '\t', b == '\n', b == '\r':
			printable++
		case b < 0x20 || b == 0x7f:
			control++
		}
		// UTF-8 lead and continuation bytes are neutral.
	}

	if control == 0 {
		return true
	}
	return float64(printable)/float64(printable+control) > 0.95
}
