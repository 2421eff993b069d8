package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseAmount converts a captured figure like "12 264,50" or "1 000.00" to a decimal.
// Whitespace of any kind (thousands separators, NBSP) is dropped and a single
// comma is read as the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.Replace(s, ",", ".", 1)

	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// NormalizeName capitalises every word of a sender name ("ИВАН И." -> "Иван И.").
// Only the first letter of a word is upper-cased, so "АННА-МАРИЯ" becomes
// "Анна-мария". Single letters and words ending with a period are initials
// and stay as received.
func NormalizeName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	// Casers keep state between calls, so each call gets its own.
	upper := cases.Upper(language.Russian)
	lower := cases.Lower(language.Russian)
	for i, w := range words {
		if utf8.RuneCountInString(w) == 1 || strings.HasSuffix(w, ".") {
			continue
		}
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}

// Non-breaking space variants banks like to put into figures.
var spaceReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u2007", " ",
	"\u2009", " ",
	"\u202f", " ",
	"\t", " ",
)

// normalizeMessage turns exotic spaces into plain ones and trims the message.
func normalizeMessage(message string) string {
	return strings.TrimSpace(spaceReplacer.Replace(message))
}
