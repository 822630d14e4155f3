package sni

import (
	"strings"
	"unicode/utf8"
)

const (
	// Suffix is appended to every converted channel name.
	Suffix = ".chl.mq.ibm.com"
	// MaxChannelNameLength is the longest channel name MQ accepts.
	MaxChannelNameLength = 20
)

// punctuation holds the non-alphanumeric characters allowed in a channel name.
const punctuation = "_/%."

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// isAllowed reports whether r may appear in a channel name.
func isAllowed(r rune) bool {
	return isDigit(r) || isUpper(r) || isLower(r) || strings.ContainsRune(punctuation, r)
}

func validLength(name string) bool {
	n := utf8.RuneCountInString(name)
	return n > 0 && n <= MaxChannelNameLength
}

// Validate reports whether name is a valid IBM MQ channel name: 1 to 20
// characters, each one of A-Z a-z 0-9 _ / % .
func Validate(name string) bool {
	if !validLength(name) {
		return false
	}
	for _, r := range name {
		if !isAllowed(r) {
			return false
		}
	}
	return true
}

// ValidateLegacy applies the length rule of Validate but only enforces the
// character set for single character names; longer names are accepted
// whatever they contain. It matches names accepted by earlier converters.
func ValidateLegacy(name string) bool {
	if !validLength(name) {
		return false
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return isAllowed(r)
	}
	return true
}

// NeedsURLWarning reports whether the SNI generated for name will end in a
// character that strict URL parsers reject. Only the last character matters:
// lowercase letters and the punctuation characters are hex encoded with a
// trailing '-'.
func NeedsURLWarning(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(name)
	return isLower(r) || strings.ContainsRune(punctuation, r)
}
