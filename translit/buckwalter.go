// Package translit converts Arabic script to the Buckwalter working alphabet.
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// buckwalter maps Arabic code points to single working-alphabet characters.
// The mapping is one-way: hamza seats and alif forms keep distinct codes
// here and are only merged later by the tokenizer.
var buckwalter = map[rune]rune{
	// Letters
	'ء': '\'',
	'آ': '|', // madda
	'أ': '>',
	'ؤ': '&',
	'إ': '<',
	'ئ': '}',
	'ا': 'A',
	'ب': 'b',
	'ة': 'p', // ta marbuta
	'ت': 't',
	'ث': '^',
	'ج': 'j',
	'ح': 'H',
	'خ': 'x',
	'د': 'd',
	'ذ': '*',
	'ر': 'r',
	'ز': 'z',
	'س': 's',
	'ش': '$',
	'ص': 'S',
	'ض': 'D',
	'ط': 'T',
	'ظ': 'Z',
	'ع': 'E',
	'غ': 'g',
	'ف': 'f',
	'ق': 'q',
	'ك': 'k',
	'ل': 'l',
	'م': 'm',
	'ن': 'n',
	'ه': 'h',
	'و': 'w',
	'ى': 'Y', // alif maqsura
	'ي': 'y',

	// Diacritics
	'\u064B': 'F', // fathatan
	'\u064C': 'N', // dammatan
	'\u064D': 'K', // kasratan
	'\u064E': 'a', // fatha
	'\u064F': 'u', // damma
	'\u0650': 'i', // kasra
	'\u0651': '~', // shadda
	'\u0652': 'o', // sukun
}

// Transliterate maps every rune of text through the Buckwalter table.
// Runes without an entry are copied unchanged, so the output always has
// the same number of runes as the input.
func Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if m, ok := Lookup(r); ok {
			b.WriteRune(m)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lookup returns the working-alphabet character for an Arabic rune.
func Lookup(r rune) (rune, bool) {
	m, ok := buckwalter[r]
	return m, ok
}

// folder rewrites presentation forms and ligatures to base letters and
// drops directional formatting marks.
var folder = transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Bidi_Control)))

// Fold prepares text typed or copied from rendered sources: contextual
// presentation forms (U+FB50-U+FEFF) become base letters, lam-alef
// ligatures expand to two letters, and bidi control marks are removed.
// Fold may change the rune count; run it before Transliterate.
func Fold(text string) (string, error) {
	out, _, err := transform.String(folder, text)
	if err != nil {
		return "", err
	}
	return out, nil
}
