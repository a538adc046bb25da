package services

import (
	"strings"
	"unicode"
)

// Irregular plural display names; everything else gets title-case + "s".
var irregularPlurals = map[string]string{
	"idli":    "Idlis",
	"dosa":    "Dosas",
	"vada":    "Vadas",
	"parotta": "Parottas",
	"poori":   "Pooris",
}

// Pluralize builds the display name for a dish: title-cased as-is for a
// quantity of one, pluralized otherwise.
func Pluralize(word string, quantity int) string {
	if quantity > 1 {
		if p, ok := irregularPlurals[strings.ToLower(word)]; ok {
			return p
		}
		return titleCase(word) + "s"
	}
	return titleCase(word)
}

// titleCase upper-cases the first letter of every word, preserving spacing.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = isLetter
		b.WriteRune(r)
	}
	return b.String()
}
