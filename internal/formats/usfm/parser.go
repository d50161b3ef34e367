// Package usfm extracts verse records from USFM/SFM, the line-oriented
// backslash-marker Scripture format.
package usfm

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/internal/validation"
)

// formatName is used in error messages.
const formatName = "USFM"

// maxLineSize bounds a single physical line. A whole file may be one line,
// so the limit follows the largest accepted file.
const maxLineSize = validation.MaxFileSize + 1

// scanState is the scanner's verse state.
type scanState int

const (
	noVerse scanState = iota
	inVerse
)

// scanner is the per-file line state machine.
type scanner struct {
	book    string
	state   scanState
	acc     *ir.Accumulator
	records []ir.VerseRecord
}

// parseUSFM scans USFM text and returns its verse records in document
// order. A verse still open at the end of input is flushed.
func parseUSFM(path string, data []byte) ([]ir.VerseRecord, error) {
	s := &scanner{acc: ir.NewAccumulator()}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	first := true
	for sc.Scan() {
		raw := sc.Text()
		if first {
			raw = strings.TrimPrefix(raw, "\ufeff")
			first = false
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		for _, logical := range splitLogical(trimmed) {
			s.handle(classify(logical))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &errors.ParseError{Format: formatName, Path: path, Message: "reading lines", Err: err}
	}
	s.flush()

	if s.book == "" {
		return nil, errors.NewParse(formatName, path, `missing \id book identifier`)
	}
	return s.records, nil
}

func (s *scanner) handle(l line) {
	switch l.kind {
	case lineID:
		s.book = l.number

	case lineChapter:
		s.flush()
		s.acc.SetChapter(l.number)

	case lineHeading:
		// Notes inside a heading are dropped; only the heading text is kept.
		s.acc.SetSubtitle(processContent(l.text).plain)

	case lineVerse:
		s.flush()
		s.acc.Open(l.number)
		s.state = inVerse
		s.content(l.text)

	case lineParagraph, lineContinuation:
		if s.state == inVerse {
			s.content(l.text)
		}
	}
}

// content appends one content segment to the open verse. Segments come
// from separate lines, so each is followed by a space.
func (s *scanner) content(text string) {
	seg := processContent(text)
	for _, n := range seg.notes {
		s.acc.AddNote(n)
	}
	s.acc.AppendText(seg.plain+" ", seg.styled+" ")
}

// flush emits the open verse, if any.
func (s *scanner) flush() {
	if s.state != inVerse {
		return
	}
	if rec, ok := s.acc.TryEmit(s.book); ok {
		s.records = append(s.records, rec)
	}
	s.state = noVerse
}

func isHeadingMarker(name string) bool {
	return ir.IsHeadingStyle(name)
}
