package usfm

import (
	"testing"
)

func TestProcessContent(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		plain     string
		styled    string
		noteCount int
	}{
		{"plain text", "In the beginning", "In the beginning", "In the beginning", 0},
		{"paired marker", `Hello \nd world\nd*.`, "Hello world.", "Hello <nd>world</nd>.", 0},
		{"unpaired marker", `one \zz two`, "one two", "one two", 0},
		{"nested", `\wj a \+nd b\+nd*\wj*`, "a b", "<wj>a <nd>b</nd></wj>", 0},
		{"suppressed", `x\sup 1\sup* y`, "x y", "x y", 0},
		{"unclosed suppression", `x \sup 1 2`, "x", "x", 0},
		{"note removed", `word\f + \ft note\f* next`, "word next", "word next", 1},
		{"unclosed note kept", `word\f + \ft note`, "word + note", "word + note", 0},
		{"inner space tightened", `\nd  spaced \nd*`, "spaced", "<nd>spaced</nd>", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := processContent(tt.in)
			if seg.plain != tt.plain {
				t.Errorf("plain = %q, want %q", seg.plain, tt.plain)
			}
			if seg.styled != tt.styled {
				t.Errorf("styled = %q, want %q", seg.styled, tt.styled)
			}
			if len(seg.notes) != tt.noteCount {
				t.Errorf("notes = %d, want %d", len(seg.notes), tt.noteCount)
			}
		})
	}
}

func TestNoteBody(t *testing.T) {
	tests := []struct {
		in   string
		code string
		text string
	}{
		{`\f + \fr 1.1 \ft Body text\f*`, "f", "Body text"},
		{`\x - \xo 1.1 \xt Gen 1:1\x*`, "x", "Gen 1:1"},
		{`\f + \fr 1.1 \fq quoted\f*`, "f", ""},
		{`\fe + \ft first \ft second\fe*`, "fe", "first"},
		{`\f + \ft see \+xt Gen 1\+xt* more\f*`, "f", "see"},
	}
	for _, tt := range tests {
		seg := processContent(tt.in)
		if len(seg.notes) != 1 {
			t.Fatalf("%s: expected 1 note, got %d", tt.in, len(seg.notes))
		}
		if seg.notes[0].Code != tt.code || seg.notes[0].Text != tt.text {
			t.Errorf("%s: note = %+v, want {%s %s}", tt.in, seg.notes[0], tt.code, tt.text)
		}
	}
}
