package usfm

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// markupLexer splits USFM text into markers and the text between them.
// Markers cover opening (\nd), nested (\+nd), closing (\nd*) and bare
// milestone-end (\*) forms.
var markupLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Marker", Pattern: `\\(?:\+?[A-Za-z][A-Za-z0-9-]*\*?|\*)`},
	{Name: "Text", Pattern: `[^\\]+`},
	{Name: "Backslash", Pattern: `\\`},
})

var markerType = markupLexer.Symbols()["Marker"]

// token is a lexed piece of a USFM line.
type token struct {
	marker bool
	value  string // raw text, including the backslash for markers
	offset int    // byte offset in the lexed string
}

// name returns the marker name without backslash, nesting prefix or
// closing star: `\+nd*` -> "nd".
func (t token) name() string {
	if !t.marker {
		return ""
	}
	n := strings.TrimPrefix(t.value, `\`)
	n = strings.TrimPrefix(n, "+")
	return strings.TrimSuffix(n, "*")
}

// closing reports whether the marker ends a span (`\nd*`).
func (t token) closing() bool {
	return t.marker && strings.HasSuffix(t.value, "*")
}

// tokenize lexes s. Lexing cannot fail for the rules above (every byte is
// covered), but a lexer error falls back to a single text token.
func tokenize(s string) []token {
	lex, err := markupLexer.LexString("", s)
	if err != nil {
		return []token{{value: s}}
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return []token{{value: s}}
	}

	tokens := make([]token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			continue
		}
		tokens = append(tokens, token{
			marker: tok.Type == markerType,
			value:  tok.Value,
			offset: tok.Pos.Offset,
		})
	}
	return tokens
}

// lineKind is the closed set of line classifications.
type lineKind int

const (
	lineID lineKind = iota
	lineChapter
	lineHeading
	lineVerse
	lineParagraph
	lineContinuation
)

func (k lineKind) String() string {
	switch k {
	case lineID:
		return "id"
	case lineChapter:
		return "chapter"
	case lineHeading:
		return "heading"
	case lineVerse:
		return "verse"
	case lineParagraph:
		return "paragraph"
	}
	return "continuation"
}

// line is one classified logical line.
type line struct {
	kind   lineKind
	number string // chapter or verse label; book code for lineID
	text   string // remaining content
}

// paragraphMarkers are the paragraph and poetry markers whose remainder is
// verse content.
var paragraphMarkers = map[string]bool{
	"p": true, "m": true, "po": true, "pr": true, "cls": true,
	"pmo": true, "pm": true, "pmc": true, "pmr": true,
	"pi": true, "pi1": true, "pi2": true, "pi3": true,
	"mi": true, "nb": true, "pc": true, "ph": true, "ph1": true, "ph2": true, "ph3": true,
	"b": true,
	"q": true, "q1": true, "q2": true, "q3": true, "q4": true,
	"qr": true, "qc": true, "qa": true, "qd": true,
	"qm": true, "qm1": true, "qm2": true, "qm3": true,
	"li": true, "li1": true, "li2": true, "li3": true, "li4": true,
}

// splitLogical splits a trimmed physical line before every embedded verse
// or chapter marker, so `\p \v 1 text \v 2 more` yields three lines.
func splitLogical(s string) []string {
	tokens := tokenize(s)
	var parts []string
	start := 0
	for _, tok := range tokens {
		if tok.offset == 0 || !tok.marker || tok.closing() {
			continue
		}
		if tok.value != `\v` && tok.value != `\c` {
			continue
		}
		if part := strings.TrimSpace(s[start:tok.offset]); part != "" {
			parts = append(parts, part)
		}
		start = tok.offset
	}
	if part := strings.TrimSpace(s[start:]); part != "" {
		parts = append(parts, part)
	}
	return parts
}

// classify assigns a kind to one trimmed, non-empty logical line.
func classify(s string) line {
	tokens := tokenize(s)
	if len(tokens) == 0 || !tokens[0].marker || tokens[0].closing() || strings.HasPrefix(tokens[0].value, `\+`) {
		return line{kind: lineContinuation, text: s}
	}

	first := tokens[0]
	rest := strings.TrimSpace(s[len(first.value):])
	name := first.name()

	switch {
	case name == "id":
		code, _ := splitFirstField(rest)
		return line{kind: lineID, number: strings.ToUpper(code)}
	case name == "c":
		number, _ := splitFirstField(rest)
		return line{kind: lineChapter, number: number}
	case name == "v":
		number, text := splitFirstField(rest)
		return line{kind: lineVerse, number: number, text: text}
	case isHeadingMarker(name):
		return line{kind: lineHeading, text: rest}
	case paragraphMarkers[name]:
		return line{kind: lineParagraph, text: rest}
	}
	return line{kind: lineContinuation, text: s}
}

// splitFirstField returns the first whitespace-separated field of s and
// the remainder after it.
func splitFirstField(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
