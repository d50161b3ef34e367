package usfm

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tokens := tokenize(`Hello \nd world\nd* \+wj x\+wj*\qt-s\*`)
	var got []string
	for _, tok := range tokens {
		prefix := "T:"
		if tok.marker {
			prefix = "M:"
		}
		got = append(got, prefix+tok.value)
	}
	want := []string{`T:Hello `, `M:\nd`, `T: world`, `M:\nd*`, `T: `, `M:\+wj`, `T: x`, `M:\+wj*`, `M:\qt-s`, `M:\*`}
	if !slices.Equal(got, want) {
		t.Errorf("tokenize() = %q, want %q", got, want)
	}
}

func TestTokenName(t *testing.T) {
	tests := []struct {
		value   string
		name    string
		closing bool
	}{
		{`\nd`, "nd", false},
		{`\nd*`, "nd", true},
		{`\+nd`, "nd", false},
		{`\+nd*`, "nd", true},
		{`\*`, "", true},
	}
	for _, tt := range tests {
		tok := token{marker: true, value: tt.value}
		if tok.name() != tt.name || tok.closing() != tt.closing {
			t.Errorf("%s: name=%q closing=%v, want %q %v", tt.value, tok.name(), tok.closing(), tt.name, tt.closing)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in     string
		kind   lineKind
		number string
		text   string
	}{
		{`\id GEN Genesis`, lineID, "GEN", ""},
		{`\id gen`, lineID, "GEN", ""},
		{`\c 12`, lineChapter, "12", ""},
		{`\v 3 Text here`, lineVerse, "3", "Text here"},
		{`\v 4`, lineVerse, "4", ""},
		{`\s1 Heading`, lineHeading, "", "Heading"},
		{`\ms Book One`, lineHeading, "", "Book One"},
		{`\mt2 Title`, lineHeading, "", "Title"},
		{`\p`, lineParagraph, "", ""},
		{`\q2 poetry`, lineParagraph, "", "poetry"},
		{`\toc1 Genesis`, lineContinuation, "", `\toc1 Genesis`},
		{`just text`, lineContinuation, "", "just text"},
		{`\nd* tail`, lineContinuation, "", `\nd* tail`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := classify(tt.in)
			if got.kind != tt.kind || got.number != tt.number || got.text != tt.text {
				t.Errorf("classify(%q) = {%v %q %q}, want {%v %q %q}", tt.in, got.kind, got.number, got.text, tt.kind, tt.number, tt.text)
			}
		})
	}
}

func TestSplitLogical(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`\v 1 text`, []string{`\v 1 text`}},
		{`\p \v 1 One. \v 2 Two.`, []string{`\p`, `\v 1 One.`, `\v 2 Two.`}},
		{`\c 1 \p \v 1 x`, []string{`\c 1 \p`, `\v 1 x`}},
		{`text \va 2\va* more`, []string{`text \va 2\va* more`}},
	}
	for _, tt := range tests {
		if got := splitLogical(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitLogical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
