// Package contactutil provides input cleanup helpers for callers that
// accept free-form contact data. The value constructors in package
// contact stay strict and do not normalize; these helpers run before
// construction, never inside it.
package contactutil

import (
	"strings"
	"unicode"
)

// NormalizeName trims the value and collapses internal whitespace runs
// to a single space. It does not validate.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevSpace := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeDigits strips common phone formatting (spaces, dashes, dots,
// parentheses) so "111-222-3333" becomes "1112223333". Anything else,
// including a leading '+', is preserved and left for validation to
// reject.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.TrimSpace(s) {
		switch r {
		case ' ', '-', '.', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
