package utils

import (
	"regexp"
	"unicode/utf8"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidHexColor checks a display color like "#ff8800".
func IsValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// IsValidCurrency checks the currency short string from settings.
// Counted in runes so multibyte symbols like "Kč" or "€" fit.
func IsValidCurrency(currency string) bool {
	n := utf8.RuneCountInString(currency)
	return n >= 1 && n <= 10
}
