// Package ir provides the format-neutral representation shared by the USX
// and USFM engines: the per-verse record, the verse accumulator that both
// engines drive, and the style and note tables that keep their output
// identical.
//
// # Records
//
// A VerseRecord is one output row. Records are only produced when book,
// chapter and verse are known and the plain text is non-empty; anything
// else is discarded without a diagnostic.
//
// # Accumulator
//
// Each engine owns one Accumulator per file. Text is appended raw and
// whitespace is collapsed once at emission time:
//
//	acc := ir.NewAccumulator()
//	acc.SetChapter("1")
//	acc.Open("1")
//	acc.AppendText("Hello ", "Hello ")
//	rec, ok := acc.TryEmit("JHN")
//
// The subtitle survives verse and chapter boundaries and is only replaced
// by a later non-empty heading.
//
// # Styles and notes
//
// StyleTag maps character style codes to output tags. The "sup" style is
// never mapped; its content is dropped by both engines. Notes keep only
// their text body (ft, or xt for cross references) and are routed by the
// first letter of the note code.
package ir
