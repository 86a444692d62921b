// Package vocab maps phoneme symbols to integer indices for model input.
package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Pad is the reserved symbol at index 0 of a built vocabulary.
const Pad = "$"

// Vocab is a symbol to index table.
type Vocab struct {
	index map[string]int
}

// New creates an empty vocabulary.
func New() *Vocab {
	return &Vocab{index: make(map[string]int)}
}

// Build creates a vocabulary from rendered phoneme strings. Pad gets index 0,
// then every token gets the next index in first-seen order.
func Build(lines []string) *Vocab {
	v := New()
	v.index[Pad] = 0
	for _, line := range lines {
		for _, tok := range strings.Fields(line) {
			if _, ok := v.index[tok]; !ok {
				v.index[tok] = len(v.index)
			}
		}
	}
	return v
}

// Load reads a "symbol",index CSV table.
func Load(r io.Reader) (*Vocab, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	v := New()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			line, _ := cr.FieldPos(1)
			return nil, fmt.Errorf("line %d: bad index %q", line, rec[1])
		}
		v.index[rec[0]] = idx
	}
	return v, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Len returns the number of symbols.
func (v *Vocab) Len() int {
	return len(v.index)
}

// Index returns the index of sym.
func (v *Vocab) Index(sym string) (int, bool) {
	i, ok := v.index[sym]
	return i, ok
}

// Encode converts a rendered phoneme string to indices. Tokens missing from
// the table are skipped and returned in unknown.
func (v *Vocab) Encode(phonemes string) (ids []int, unknown []string) {
	for _, tok := range strings.Fields(phonemes) {
		if i, ok := v.index[tok]; ok {
			ids = append(ids, i)
		} else {
			unknown = append(unknown, tok)
		}
	}
	return ids, unknown
}

// Write writes the table as CSV ordered by index.
func (v *Vocab) Write(w io.Writer) error {
	syms := make([]string, 0, len(v.index))
	for s := range v.index {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		if v.index[syms[i]] != v.index[syms[j]] {
			return v.index[syms[i]] < v.index[syms[j]]
		}
		return syms[i] < syms[j]
	})
	cw := csv.NewWriter(w)
	for _, s := range syms {
		if err := cw.Write([]string{s, strconv.Itoa(v.index[s])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
