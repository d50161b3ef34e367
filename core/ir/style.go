package ir

import "strings"

// SuppressedStyle is the character style whose content never reaches output.
const SuppressedStyle = "sup"

// DefaultTag is the tag used for character styles without a dedicated mapping.
const DefaultTag = "span"

// styleTags maps character style codes to output tag names.
var styleTags = map[string]string{
	"wj":   "wj",
	"add":  "add",
	"nd":   "nd",
	"it":   "i",
	"bd":   "b",
	"bdit": "bdit",
}

// headingStyles are the paragraph styles that replace the current subtitle.
var headingStyles = map[string]bool{
	"s": true, "s1": true, "s2": true, "s3": true, "s4": true,
	"ms": true, "ms1": true, "ms2": true, "ms3": true,
	"mt": true, "mt1": true, "mt2": true, "mt3": true, "mt4": true,
}

// StyleTag returns the output tag for a character style code.
// A leading "+" (USFM nesting prefix) is ignored.
func StyleTag(style string) string {
	if tag, ok := styleTags[strings.TrimPrefix(style, "+")]; ok {
		return tag
	}
	return DefaultTag
}

// IsSuppressed reports whether style is the suppression style.
func IsSuppressed(style string) bool {
	return strings.TrimPrefix(style, "+") == SuppressedStyle
}

// IsHeadingStyle reports whether style updates the subtitle.
func IsHeadingStyle(style string) bool {
	return headingStyles[style]
}

// OpenTag returns "<tag>".
func OpenTag(tag string) string {
	return "<" + tag + ">"
}

// CloseTag returns "</tag>".
func CloseTag(tag string) string {
	return "</" + tag + ">"
}
