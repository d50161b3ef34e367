package usfm

import (
	"strings"

	"github.com/FocuswithJustin/versetab/core/ir"
)

// segment is the result of processing one piece of verse content.
type segment struct {
	plain  string
	styled string
	notes  []ir.Note
}

// processContent runs the content pipeline on s: suppressed spans are
// removed first, then same-line notes are extracted, then the styled and
// plain variants are rendered from what is left.
func processContent(s string) segment {
	tokens := stripSuppressed(tokenize(s))
	tokens, notes := extractNotes(tokens)
	plain, styled := render(tokens)
	return segment{plain: plain, styled: styled, notes: notes}
}

// stripSuppressed drops every superscript span including its markers and
// nested content. An unclosed span runs to the end of the segment.
func stripSuppressed(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	depth := 0
	for _, tok := range tokens {
		if tok.marker && ir.IsSuppressed(tok.name()) {
			if tok.closing() {
				if depth > 0 {
					depth--
				}
			} else {
				depth++
			}
			continue
		}
		if depth == 0 {
			out = append(out, tok)
		}
	}
	return out
}

// extractNotes removes every note whose opening and closing markers are
// both in tokens and returns the extracted notes in order. A note without
// its closing marker is left in place.
func extractNotes(tokens []token) ([]token, []ir.Note) {
	var notes []ir.Note
	out := make([]token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !tok.marker || tok.closing() || strings.HasPrefix(tok.value, `\+`) || !ir.IsNoteStyle(tok.name()) {
			out = append(out, tok)
			continue
		}
		end := findClose(tokens, i, tok.name())
		if end < 0 {
			out = append(out, tok)
			continue
		}
		notes = append(notes, ir.Note{Code: tok.name(), Text: noteBody(tokens[i+1 : end])})
		i = end
	}
	return out, notes
}

// findClose returns the index of the closing marker for the note opened at
// tokens[start], or -1.
func findClose(tokens []token, start int, name string) int {
	for j := start + 1; j < len(tokens); j++ {
		if tokens[j].marker && tokens[j].closing() && tokens[j].name() == name {
			return j
		}
	}
	return -1
}

// noteBody returns the text following the first ft/xt marker up to the
// next marker.
func noteBody(tokens []token) string {
	for i, tok := range tokens {
		if !tok.marker || tok.closing() || !ir.IsNoteBody(tok.name()) {
			continue
		}
		var buf strings.Builder
		for _, next := range tokens[i+1:] {
			if next.marker {
				break
			}
			buf.WriteString(next.value)
		}
		return ir.NormalizeSpace(buf.String())
	}
	return ""
}

// pairMarkers matches opening and closing character markers. The result
// maps the index of each paired marker to the index of its partner.
func pairMarkers(tokens []token) map[int]int {
	pairs := make(map[int]int)
	var stack []int
	for i, tok := range tokens {
		if !tok.marker || tok.name() == "" {
			continue
		}
		if !tok.closing() {
			stack = append(stack, i)
			continue
		}
		for k := len(stack) - 1; k >= 0; k-- {
			if tokens[stack[k]].name() == tok.name() {
				pairs[stack[k]] = i
				pairs[i] = stack[k]
				stack = stack[:k]
				break
			}
		}
	}
	return pairs
}

// render builds the plain and styled variants. Paired markers become tags
// in the styled variant and vanish from the plain one; unpaired markers
// become a single space in both.
func render(tokens []token) (string, string) {
	pairs := pairMarkers(tokens)
	var plain, styled strings.Builder

	for i, tok := range tokens {
		if !tok.marker {
			text := tok.value
			if i > 0 && tokens[i-1].marker && !tokens[i-1].closing() {
				// The space after an opening marker is a delimiter.
				text = trimOneSpace(text)
			}
			if i+1 < len(tokens) && tokens[i+1].closing() {
				text = stripAttributes(text)
			}
			plain.WriteString(text)
			styled.WriteString(text)
			continue
		}

		if _, paired := pairs[i]; !paired {
			plain.WriteString(" ")
			styled.WriteString(" ")
			continue
		}
		tag := ir.StyleTag(tok.name())
		if tok.closing() {
			styled.WriteString(ir.CloseTag(tag))
		} else {
			styled.WriteString(ir.OpenTag(tag))
		}
	}

	return ir.NormalizeSpace(plain.String()), ir.NormalizeStyled(styled.String())
}

func trimOneSpace(s string) string {
	if s != "" && (s[0] == ' ' || s[0] == '\t') {
		return s[1:]
	}
	return s
}

// stripAttributes drops a trailing word-attribute list:
// `gracious|lemma="grace"` -> `gracious`.
func stripAttributes(s string) string {
	if i := strings.LastIndex(s, "|"); i >= 0 {
		return s[:i]
	}
	return s
}
