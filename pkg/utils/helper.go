package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateSessionID returns a fresh random session identifier.
func GenerateSessionID() string {
	return uuid.New().String()
}

// IsSessionID reports whether s looks like an id from GenerateSessionID.
func IsSessionID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// NormalizeText rewrites CRLF and lone CR line breaks as LF and drops
// control characters other than tab and newline, so text reads back the
// same from every store format.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' {
			return r
		}
		if unicode.IsControl(r) || r == 0xFFFE || r == 0xFFFF {
			return -1
		}
		return r
	}, s)
}
