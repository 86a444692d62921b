package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ieee0824/arabicg2p/phoneme"
)

// Entry represents a single pronunciation for a word.
type Entry struct {
	Word    string
	Reading string           // Buckwalter reading
	Symbols []phoneme.Symbol // output symbol sequence
}

// Dictionary holds word-to-pronunciation mappings.
type Dictionary struct {
	Entries map[string][]Entry // word -> list of alternative pronunciations
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]Entry),
	}
}

// Add adds a pronunciation entry to the dictionary.
func (d *Dictionary) Add(word, reading string, symbols []phoneme.Symbol) {
	d.Entries[word] = append(d.Entries[word], Entry{
		Word:    word,
		Reading: reading,
		Symbols: symbols,
	})
}

// Load reads a pronunciation dictionary from a tab-separated file.
// Format: word<TAB>buckwalter<TAB>symbol1 symbol2 symbol3 ...
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 tab-separated fields, got %d", lineNum, len(parts))
		}

		fields := strings.Fields(parts[2])
		if len(fields) == 0 {
			return nil, fmt.Errorf("line %d: empty pronunciation for %q", lineNum, parts[0])
		}
		symbols := make([]phoneme.Symbol, len(fields))
		for i, s := range fields {
			if s == "+" {
				return nil, fmt.Errorf("line %d: word separator in pronunciation of %q", lineNum, parts[0])
			}
			symbols[i] = phoneme.Symbol(s)
		}

		d.Add(parts[0], parts[1], symbols)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns all pronunciation variants for a word.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.Entries[word]
}

// SymbolSequence returns the symbol sequence for a word (first pronunciation).
func (d *Dictionary) SymbolSequence(word string) ([]phoneme.Symbol, bool) {
	entries := d.Entries[word]
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0].Symbols, true
}

// Words returns all words in the dictionary.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	return words
}

// Write writes the dictionary in the format read by Load, sorted by word.
func (d *Dictionary) Write(w io.Writer) error {
	words := d.Words()
	sort.Strings(words)
	bw := bufio.NewWriter(w)
	for _, word := range words {
		for _, e := range d.Entries[word] {
			fmt.Fprintf(bw, "%s\t%s\t%s\n", e.Word, e.Reading, JoinSymbols(e.Symbols))
		}
	}
	return bw.Flush()
}

// JoinSymbols renders symbols separated by single spaces.
func JoinSymbols(ss []phoneme.Symbol) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}
