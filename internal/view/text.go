package view

import (
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Initial returns the first character of s, or "" when s is empty. It is
// used as avatar fallback text.
func Initial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Count formats n with its noun, e.g. "1,234 users".
func Count(n int, noun string) string {
	return printer.Sprintf("%d %s", n, noun)
}
