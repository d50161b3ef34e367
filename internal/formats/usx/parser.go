// Package usx extracts verse records from USX, the tag-tree Scripture
// format that marks verse boundaries with start (sid) and end (eid)
// milestones.
package usx

import (
	"github.com/FocuswithJustin/versetab/core/errors"
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/core/xml"
)

// formatName is used in error messages.
const formatName = "USX"

// walker is the per-file traversal state.
type walker struct {
	book    string
	acc     *ir.Accumulator
	records []ir.VerseRecord
	heading int // depth of heading paras being walked
}

// parseUSX walks a USX document and returns its verse records in document
// order. Only verses closed by an end milestone are emitted; a verse left
// open at the end of the document is dropped.
func parseUSX(path string, data []byte) ([]ir.VerseRecord, error) {
	doc, err := xml.Parse(data)
	if err != nil {
		return nil, &errors.ParseError{Format: formatName, Path: path, Message: "invalid XML", Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.NewParse(formatName, path, "document has no root element")
	}

	book := doc.BookCode()
	if book == "" {
		return nil, errors.NewParse(formatName, path, "missing book code")
	}

	w := &walker{
		book: book,
		acc:  ir.NewAccumulator(),
	}
	w.visit(root)
	return w.records, nil
}

func (w *walker) visit(n xml.Node) {
	switch v := n.(type) {
	case *xml.Text:
		w.text(v)
	case *xml.Element:
		w.element(v)
	}
}

func (w *walker) children(e *xml.Element) {
	for _, child := range e.Children {
		w.visit(child)
	}
}

func (w *walker) element(e *xml.Element) {
	style := e.Attr("style")

	switch e.Tag {
	case "chapter":
		// Chapter end milestones carry no number.
		if number := e.Attr("number"); number != "" {
			w.acc.SetChapter(number)
		}

	case "verse":
		if e.HasAttr("eid") {
			if rec, ok := w.acc.TryEmit(w.book); ok {
				w.records = append(w.records, rec)
			}
			return
		}
		w.acc.Open(e.Attr("number"))

	case "note":
		if w.heading > 0 {
			return
		}
		w.acc.AddNote(extractNote(e))

	case "char":
		if ir.IsSuppressed(style) {
			return
		}
		mark := w.acc.StyledMark()
		w.children(e)
		if w.acc.InVerse() {
			w.acc.WrapStyled(mark, ir.StyleTag(style))
		}

	case "para":
		if ir.IsHeadingStyle(style) {
			w.acc.SetSubtitle(e.InnerTextExcept(skipInHeading))
			// Milestones nested in a heading still open and close verses;
			// its text is subtitle only.
			w.heading++
			w.children(e)
			w.heading--
			return
		}
		// A paragraph break inside a verse separates words.
		w.acc.AppendText(" ", " ")
		w.children(e)
		w.acc.AppendText(" ", " ")

	default:
		w.children(e)
	}
}

// text passes character data through unchanged; whitespace at node
// boundaries is significant ("<char>Lord</char>'s").
func (w *walker) text(t *xml.Text) {
	if w.heading > 0 {
		return
	}
	w.acc.AppendText(t.Value, t.Value)
}

// extractNote keeps only the first text-body char (ft/xt) found depth-first.
func extractNote(note *xml.Element) ir.Note {
	n := ir.Note{Code: note.Attr("style")}
	if body := findNoteBody(note); body != nil {
		n.Text = ir.NormalizeSpace(body.InnerTextExcept(isSuppressedChar))
	}
	return n
}

func findNoteBody(e *xml.Element) *xml.Element {
	for _, child := range e.Children {
		el, ok := child.(*xml.Element)
		if !ok {
			continue
		}
		if el.Tag == "char" && ir.IsNoteBody(el.Attr("style")) {
			return el
		}
		if found := findNoteBody(el); found != nil {
			return found
		}
	}
	return nil
}

// skipInHeading leaves notes and suppressed text out of subtitle text.
func skipInHeading(e *xml.Element) bool {
	return e.Tag == "note" || isSuppressedChar(e)
}

func isSuppressedChar(e *xml.Element) bool {
	return e.Tag == "char" && ir.IsSuppressed(e.Attr("style"))
}
