package ir

import "strings"

// Accumulator holds the per-file verse state driven by an engine.
//
// Verse text is collected raw, exactly as the engine found it, and
// whitespace is normalised once at emission. Engines therefore pass source
// whitespace through and add a space only where the source format implies
// one (a line or paragraph break).
//
// Per-verse state is cleared when a verse opens and again after TryEmit.
// The chapter and subtitle are not per-verse: the subtitle in particular is
// kept across chapter changes. A record carries the subtitle that was
// current when its verse opened, unless a heading arrives inside the verse
// and more verse text follows it; then the record carries that heading.
// A heading that only precedes the close of a verse belongs to the next
// verse.
type Accumulator struct {
	chapter  string
	verse    string
	open     bool
	subtitle string

	// verseSubtitle is the subtitle the open verse will be emitted with.
	verseSubtitle string
	// headingInVerse is set by a heading seen while the verse is open.
	headingInVerse bool

	plain     strings.Builder
	styled    string
	footnotes []string
	crossrefs []string

	// generation changes whenever per-verse state is reset so that a
	// StyledMark taken before a reset is recognised as stale.
	generation int
}

// StyledMark is a position in the styled buffer, see Accumulator.WrapStyled.
type StyledMark struct {
	generation int
	index      int
}

// NewAccumulator returns an empty accumulator with no open verse.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Chapter returns the current chapter label.
func (a *Accumulator) Chapter() string {
	return a.chapter
}

// SetChapter sets the current chapter. The subtitle is left untouched.
func (a *Accumulator) SetChapter(chapter string) {
	a.chapter = strings.TrimSpace(chapter)
}

// Verse returns the open verse label, or "" when no verse is open.
func (a *Accumulator) Verse() string {
	return a.verse
}

// InVerse reports whether a verse is currently open.
func (a *Accumulator) InVerse() bool {
	return a.open
}

// Subtitle returns the most recent heading text.
func (a *Accumulator) Subtitle() string {
	return a.subtitle
}

// SetSubtitle replaces the subtitle. Empty text is ignored.
func (a *Accumulator) SetSubtitle(text string) {
	if text = NormalizeSpace(text); text != "" {
		a.subtitle = text
		if a.open {
			a.headingInVerse = true
		}
	}
}

// Open starts a new verse and discards any unfinished per-verse state.
func (a *Accumulator) Open(verse string) {
	a.reset()
	a.verse = strings.TrimSpace(verse)
	a.verseSubtitle = a.subtitle
	a.open = true
}

// AppendText adds raw plain and styled text to the open verse. Nothing
// happens when no verse is open.
func (a *Accumulator) AppendText(plain, styled string) {
	if !a.open {
		return
	}
	if a.headingInVerse && strings.TrimSpace(plain) != "" {
		a.verseSubtitle = a.subtitle
		a.headingInVerse = false
	}
	a.plain.WriteString(plain)
	a.styled += styled
}

// StyledMark records the current end of the styled buffer.
func (a *Accumulator) StyledMark() StyledMark {
	return StyledMark{generation: a.generation, index: len(a.styled)}
}

// WrapStyled wraps the styled text appended since m in <tag>...</tag>.
// It does nothing if the verse changed since the mark was taken or only
// whitespace was appended.
func (a *Accumulator) WrapStyled(m StyledMark, tag string) {
	if !a.open || m.generation != a.generation || m.index > len(a.styled) {
		return
	}
	inner := a.styled[m.index:]
	if strings.TrimSpace(inner) == "" {
		return
	}
	a.styled = a.styled[:m.index] + OpenTag(tag) + inner + CloseTag(tag)
}

// AddNote routes a note to the footnote or cross-reference list.
// Notes with an empty body are dropped.
func (a *Accumulator) AddNote(n Note) {
	if n.Kind() == Crossref {
		a.AddCrossref(n.Text)
		return
	}
	a.AddFootnote(n.Text)
}

// AddFootnote appends a footnote body. Empty text is dropped.
func (a *Accumulator) AddFootnote(text string) {
	if text = NormalizeSpace(text); text != "" {
		a.footnotes = append(a.footnotes, text)
	}
}

// AddCrossref appends a cross-reference body. Empty text is dropped.
func (a *Accumulator) AddCrossref(text string) {
	if text = NormalizeSpace(text); text != "" {
		a.crossrefs = append(a.crossrefs, text)
	}
}

// TryEmit closes the open verse. It returns a record when book, chapter
// and verse are known and the plain text is non-empty. Per-verse state and
// the verse label are cleared whether or not a record is returned.
func (a *Accumulator) TryEmit(book string) (VerseRecord, bool) {
	rec := VerseRecord{
		Book:       strings.TrimSpace(book),
		Chapter:    a.chapter,
		Verse:      a.verse,
		TextPlain:  NormalizeSpace(a.plain.String()),
		TextStyled: NormalizeStyled(a.styled),
		Footnotes:  strings.Join(a.footnotes, NoteSeparator),
		Crossrefs:  strings.Join(a.crossrefs, NoteSeparator),
		Subtitle:   a.verseSubtitle,
	}
	ok := a.open && rec.Book != "" && rec.Chapter != "" && rec.Verse != "" && rec.TextPlain != ""

	a.reset()
	a.verse = ""
	a.verseSubtitle = ""
	a.open = false

	if !ok {
		return VerseRecord{}, false
	}
	return rec, true
}

func (a *Accumulator) reset() {
	a.plain.Reset()
	a.styled = ""
	a.headingInVerse = false
	a.footnotes = nil
	a.crossrefs = nil
	a.generation++
}
