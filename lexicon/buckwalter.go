package lexicon

import "github.com/ieee0824/arabicg2p/phoneme"

// longVowels are the two-character units matched before single characters
// (longest match).
var longVowels = map[string]bool{
	"aa": true, "ii": true, "uu": true,
	"AA": true, "II": true, "UU": true,
}

// unambiguousConsonants canonicalizes consonants; every hamza seat maps to '<'.
var unambiguousConsonants = map[rune]phoneme.Unit{
	'b': "b", '*': "*", 'T': "T", 'm': "m",
	't': "t", 'r': "r", 'Z': "Z", 'n': "n",
	'^': "^", 'z': "z", 'E': "E", 'h': "h",
	'j': "j", 's': "s", 'g': "g", 'H': "H",
	'q': "q", 'f': "f", 'x': "x", 'S': "S",
	'$': "$", 'd': "d", 'D': "D", 'k': "k",
	'>': "<", '\'': "<", '}': "<", '&': "<",
	'<': "<",
}

// vowels maps vowel letters to their unit; both alif forms are long.
var vowels = map[rune]phoneme.Unit{
	'A': "aa", 'Y': "aa",
	'a': "a", 'i': "i", 'u': "u",
}

// consonants pass through unchanged. Semivowels w and y are included.
var consonants = map[rune]bool{
	'>': true, '<': true, '}': true, '&': true, '\'': true,
	'b': true, 't': true, '^': true, 'j': true, 'H': true,
	'x': true, 'd': true, '*': true, 'r': true, 'z': true,
	's': true, '$': true, 'S': true, 'D': true, 'T': true,
	'Z': true, 'E': true, 'g': true, 'f': true, 'q': true,
	'k': true, 'l': true, 'm': true, 'n': true, 'h': true,
	'|': true,
	'w': true, 'y': true,
}

// Tokenize splits one normalized Buckwalter word into phoneme units.
// Characters outside every table are silently skipped.
func Tokenize(word string) []phoneme.Unit {
	units, _ := TokenizeCount(word)
	return units
}

// TokenizeCount is Tokenize that also reports how many runes were skipped.
func TokenizeCount(word string) ([]phoneme.Unit, int) {
	runes := []rune(word)
	var result []phoneme.Unit
	skipped := 0
	for i := 0; i < len(runes); {
		// Try 2-char match first (longest match)
		if i+1 < len(runes) {
			key := string(runes[i : i+2])
			if longVowels[key] {
				result = append(result, phoneme.Unit(key))
				i += 2
				continue
			}
		}
		r := runes[i]
		if u, ok := unambiguousConsonants[r]; ok {
			result = append(result, u)
		} else if u, ok := vowels[r]; ok {
			result = append(result, u)
		} else if consonants[r] {
			result = append(result, phoneme.Unit(string(r)))
		} else {
			skipped++
		}
		i++
	}
	return result, skipped
}
