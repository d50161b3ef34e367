package ir

// Columns is the stable column order of every tabular output.
var Columns = []string{
	"Book",
	"Chapter",
	"Verse",
	"TextPlain",
	"TextStyled",
	"Footnotes",
	"Crossrefs",
	"Subtitle",
}

// NoteSeparator joins multiple notes inside the Footnotes and Crossrefs columns.
const NoteSeparator = " | "

// VerseRecord is one emitted verse.
type VerseRecord struct {
	Book       string `json:"book"`
	Chapter    string `json:"chapter"`
	Verse      string `json:"verse"`
	TextPlain  string `json:"text_plain"`
	TextStyled string `json:"text_styled"`
	Footnotes  string `json:"footnotes"`
	Crossrefs  string `json:"crossrefs"`
	Subtitle   string `json:"subtitle"`
}

// Row returns the record fields in Columns order.
func (r VerseRecord) Row() []string {
	return []string{
		r.Book,
		r.Chapter,
		r.Verse,
		r.TextPlain,
		r.TextStyled,
		r.Footnotes,
		r.Crossrefs,
		r.Subtitle,
	}
}
