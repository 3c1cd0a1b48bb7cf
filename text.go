package blobber

import (
	"strconv"
	"strings"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."

// FillText repeats template until the result is at least length bytes long
// and truncates it to exactly length bytes.
//
// When numbered is true every repetition is prefixed with its zero-based
// index, so the output reads "0. template1. template2. template...".
//
// Truncation is byte-wise. A template containing multi-byte UTF-8 sequences
// may be cut in the middle of a rune.
func FillText(length int, template string, numbered bool) (string, error) {
	if template == "" {
		return "", ErrInvalidTemplate
	}
	if length <= 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(length + len(template))
	for i := 0; sb.Len() < length; i++ {
		if numbered {
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(". ")
		}
		sb.WriteString(template)
	}

	return sb.String()[:length], nil
}

// Lorem returns exactly length bytes of repeated "Lorem ipsum" text.
func Lorem(length int, numbered bool) string {
	// The template is a non-empty constant, so FillText cannot fail.
	s, _ := FillText(length, lorem, numbered)
	return s
}
