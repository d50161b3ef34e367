package ir

import "strings"

// NoteKind says which column a note is routed to.
type NoteKind int

const (
	// Footnote notes go to the Footnotes column.
	Footnote NoteKind = iota
	// Crossref notes go to the Crossrefs column.
	Crossref
)

// String returns the kind name.
func (k NoteKind) String() string {
	if k == Crossref {
		return "crossref"
	}
	return "footnote"
}

// noteStyles are the note codes recognised in both formats.
var noteStyles = map[string]bool{
	"f":  true,
	"fe": true,
	"ef": true,
	"x":  true,
	"ex": true,
}

// noteBodyStyles are the sub-part styles that carry a note's text body.
// xt is the cross-reference counterpart of ft.
var noteBodyStyles = map[string]bool{
	"ft": true,
	"xt": true,
}

// Note is an extracted annotation.
type Note struct {
	Code string // Note style code, e.g. "f" or "x"
	Text string // Normalized text body
}

// Kind routes the note by its own code: codes starting with "x" are
// cross references, everything else is a footnote.
func (n Note) Kind() NoteKind {
	return ClassifyNote(n.Code)
}

// ClassifyNote returns the NoteKind for a note style code.
func ClassifyNote(code string) NoteKind {
	if strings.HasPrefix(code, "x") {
		return Crossref
	}
	return Footnote
}

// IsNoteStyle reports whether code opens a note.
func IsNoteStyle(code string) bool {
	return noteStyles[code]
}

// IsNoteBody reports whether style is a note text body (ft/xt).
// A leading "+" is ignored.
func IsNoteBody(style string) bool {
	return noteBodyStyles[strings.TrimPrefix(style, "+")]
}
