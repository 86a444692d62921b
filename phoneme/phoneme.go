package phoneme

import "sort"

// Unit is a phoneme in the Buckwalter working alphabet, as produced by the
// tokenizer (one or two characters, e.g. "$", "aa").
type Unit string

// Symbol is an output phoneme symbol (IPA-like, e.g. "ʃ", "aː").
type Symbol string

const (
	// Sil is the silence sentinel: explicit pauses and the failure fallback.
	Sil Symbol = "sil"

	// WordSeparator delimits words in a rendered utterance.
	WordSeparator = " + "
)

// symbolTable maps working-alphabet units to Egyptian Arabic output symbols.
var symbolTable = map[Unit]Symbol{
	// Consonants
	"b": "b",
	"t": "t",
	"^": "s", // ث
	"j": "g", // ج
	"H": "ħ",
	"x": "x",
	"d": "d",
	"*": "z", // ذ
	"r": "r",
	"z": "z",
	"s": "s",
	"$": "ʃ",
	"E": "ʕ",
	"g": "ɣ",
	"f": "f",
	"q": "q",
	"k": "k",
	"l": "l",
	"m": "m",
	"n": "n",
	"h": "h",
	"w": "w",
	"y": "j",

	// Emphatics
	"S": "sˤ",
	"D": "dˤ",
	"T": "tˤ",
	"Z": "zˤ",

	// Hamza seats and madda
	">": "ʔ",
	"<": "ʔ",
	"'": "ʔ",
	"}": "ʔ",
	"&": "ʔ",
	"|": "ʔ",

	// Ta marbuta
	"p": "t",

	// Short vowels
	"a": "a",
	"i": "i",
	"u": "u",

	// Long vowels and alif forms
	"aa": "aː",
	"A":  "aː",
	"Y":  "aː",
	"ii": "iː",
	"uu": "uː",
	"AA": "ɑː",

	// Numbered variants
	"i0":  "i",
	"i1":  "i",
	"u0":  "u",
	"u1":  "u",
	"ii0": "iː",
	"ii1": "iː",
	"uu0": "uː",
	"uu1": "uː",
	"I0":  "ɪ",
	"I1":  "ɪ",
	"U0":  "ʊ",
	"U1":  "ʊ",
	"II0": "ɪː",
	"II1": "ɪː",
	"UU0": "ʊː",
	"UU1": "ʊː",
}

// Lookup returns the table symbol for u, if any.
func Lookup(u Unit) (Symbol, bool) {
	s, ok := symbolTable[u]
	return s, ok
}

// ToSymbol maps one unit to its output symbol.
// Units missing from the table fall back to gemination (two identical
// characters map to the base symbol doubled) and then to the unit itself.
func ToSymbol(u Unit) Symbol {
	if s, ok := Lookup(u); ok {
		return s
	}
	r := []rune(string(u))
	if len(r) == 2 && r[0] == r[1] {
		base := Symbol(string(r[0]))
		if s, ok := Lookup(Unit(string(r[0]))); ok {
			base = s
		}
		return base + base
	}
	return Symbol(u)
}

// ToSymbols maps units in order, one symbol per unit.
func ToSymbols(units []Unit) []Symbol {
	out := make([]Symbol, len(units))
	for i, u := range units {
		out[i] = ToSymbol(u)
	}
	return out
}

// AllSymbols returns the distinct output symbols of the table plus Sil,
// sorted for stable vocabulary construction.
func AllSymbols() []Symbol {
	seen := map[Symbol]bool{Sil: true}
	out := []Symbol{Sil}
	for _, s := range symbolTable {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	rest := out[1:]
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return out
}
