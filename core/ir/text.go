package ir

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	openTagSpace  = regexp.MustCompile(`(<[a-z]+>)(\s+)`)
	spaceCloseTag = regexp.MustCompile(`(\s+)(</[a-z]+>)`)
	emptyTagPair  = regexp.MustCompile(`<([a-z]+)></([a-z]+)>`)
)

// NormalizeSpace converts s to NFC, collapses every run of whitespace to a
// single space and trims both ends. Nothing else in s is changed.
func NormalizeSpace(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// NormalizeStyled is NormalizeSpace for styled text. Whitespace just inside
// a tag is moved outside it and empty tag pairs are removed, so
// "Hello<nd> world </nd>." becomes "Hello <nd>world</nd> .".
func NormalizeStyled(s string) string {
	for {
		next := openTagSpace.ReplaceAllString(s, "$2$1")
		next = spaceCloseTag.ReplaceAllString(next, "$2$1")
		next = emptyTagPair.ReplaceAllStringFunc(next, func(m string) string {
			parts := emptyTagPair.FindStringSubmatch(m)
			if parts[1] == parts[2] {
				return ""
			}
			return m
		})
		if next == s {
			break
		}
		s = next
	}
	return NormalizeSpace(s)
}
