package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Compiled regex patterns for text normalization
var (
	multiSpacePattern   = regexp.MustCompile(`[ \t]+`)
	multiNewlinePattern = regexp.MustCompile(`\n\s*\n+`)
)

// normalizeText collapses runs of whitespace so extracted page text stays
// readable and regex-friendly: spaces and tabs become one space, blank-line
// runs become one newline.
func normalizeText(s string) string {
	s = multiSpacePattern.ReplaceAllString(s, " ")
	s = multiNewlinePattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// truncateRunes caps a string at max runes without splitting a multi-byte
// character.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// containsAny reports whether s contains at least one of the substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
