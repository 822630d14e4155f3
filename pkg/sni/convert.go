package sni

import (
	"fmt"
	"strconv"
	"strings"
)

// Convert maps a channel name to its SNI form. Digits are kept, uppercase
// letters are lowercased and every other character becomes its code point in
// lowercase hex followed by '-'. The result always ends with Suffix.
//
// Convert does not validate name; callers should run Validate first.
func Convert(name string) string {
	var b strings.Builder
	b.Grow(len(name)*3 + len(Suffix))
	for _, r := range name {
		switch {
		case isDigit(r):
			b.WriteRune(r)
		case isUpper(r):
			b.WriteRune(r + ('a' - 'A'))
		default:
			_, _ = fmt.Fprintf(&b, "%02x-", r)
		}
	}
	b.WriteString(Suffix)
	return b.String()
}

// Decode recovers the channel name an SNI string was generated from. The
// input is matched case-insensitively and must be exactly what Convert
// produces for a valid channel name.
func Decode(sni string) (string, error) {
	lower := strings.ToLower(sni)
	encoded, ok := strings.CutSuffix(lower, Suffix)
	if !ok {
		return "", fmt.Errorf("%q: %w", sni, ErrMissingSuffix)
	}

	var b strings.Builder
	for i := 0; i < len(encoded); {
		c := encoded[i]
		// Hex groups are the only place Convert emits '-', always two digits in.
		if i+2 < len(encoded) && encoded[i+2] == '-' {
			v, err := strconv.ParseUint(encoded[i:i+2], 16, 8)
			if err != nil {
				return "", fmt.Errorf("%q: bad hex group %q at offset %d: %w", sni, encoded[i:i+3], i, ErrMalformedSNI)
			}
			if v > 0x7f {
				return "", fmt.Errorf("%q: non-ASCII hex group %q at offset %d: %w", sni, encoded[i:i+3], i, ErrMalformedSNI)
			}
			b.WriteByte(byte(v))
			i += 3
			continue
		}
		switch {
		case isDigit(rune(c)):
			b.WriteByte(c)
		case isLower(rune(c)):
			b.WriteByte(c - ('a' - 'A'))
		default:
			return "", fmt.Errorf("%q: unexpected %q at offset %d: %w", sni, c, i, ErrMalformedSNI)
		}
		i++
	}

	name := b.String()
	if !Validate(name) {
		return "", &InvalidChannelNameError{Name: name}
	}
	if Convert(name) != lower {
		return "", fmt.Errorf("%q: %w", sni, ErrNonCanonicalSNI)
	}
	return name, nil
}
