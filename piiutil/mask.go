// Package piiutil masks contact data before it reaches logs.
package piiutil

import (
	"strings"
	"unicode"
)

// MaskPhone masks a phone value while preserving formatting symbols,
// keeping the last 1 or 4 digits:
//   - total digits <= 4 -> keep 1 last digit
//   - total digits > 4  -> keep 4 last digits
//
// Examples:
//
//	"1234567890" -> "******7890"
//	"1234"       -> "***4"
//	"12"         -> "*2"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)

	totalDigits := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			totalDigits++
		}
	}

	if totalDigits == 0 {
		return maskKeepLast(runes, 1)
	}

	keepDigits := 4
	if totalDigits <= 4 {
		keepDigits = 1
	}

	digitsSeen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			digitsSeen++
			if digitsSeen > keepDigits {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}

// MaskName keeps the first rune of each word and masks the rest, so
// "John Doe" becomes "J*** D**". Single-rune words stay visible.
func MaskName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	words := strings.Fields(name)
	for wi, w := range words {
		runes := []rune(w)
		for i := 1; i < len(runes); i++ {
			runes[i] = '*'
		}
		words[wi] = string(runes)
	}
	return strings.Join(words, " ")
}

// maskKeepLast masks every letter and digit except the last keep
// significant runes; separators stay visible.
func maskKeepLast(runes []rune, keep int) string {
	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}
