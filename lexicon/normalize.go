package lexicon

import (
	"golang.org/x/text/unicode/norm"
	"strings"
	"unicode"
	"unicode/utf8"
)

const Empty = "Ø"

// Normalize lower-cases, trims and composes accents so that typed text and the
// data files compare equal.
func Normalize(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

// Predicate turns free text into an RRG constant: lower case with dots for spaces.
func Predicate(s string) string {
	return strings.ReplaceAll(Normalize(s), " ", ".")
}

// Argument normalizes an argument slot; empty text and "0" mean the slot is absent.
func Argument(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" || s == "0" {
		return Empty
	}
	return s
}

func IsEmpty(arg string) bool {
	return arg == Empty || arg == ""
}

func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
