package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches a run of letters, combining marks, digits or underscores.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Lower lowercases the text with unicode aware casing rules.
// A Caser is stateful, so every call gets its own.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Fields lowercases the text and splits it on whitespace.
func Fields(s string) []string {
	return strings.Fields(Lower(s))
}

// Words lowercases the text and returns the word tokens in order.
// Punctuation and any other non-word runes never make it into a token.
func Words(s string) []string {
	return wordPattern.FindAllString(Lower(s), -1)
}
