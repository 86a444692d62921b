package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ieee0824/arabicg2p"
	"github.com/ieee0824/arabicg2p/lexicon"
	"github.com/ieee0824/arabicg2p/phoneme"
)

type mismatch struct {
	word     string
	ref, hyp []phoneme.Symbol
	errs     lexicon.Errors
}

type result struct {
	words      int
	exact      int
	errs       lexicon.Errors
	refSymbols int
	mismatches []mismatch
}

func (r result) per() float64 {
	if r.refSymbols == 0 {
		return 0
	}
	return float64(r.errs.Total()) / float64(r.refSymbols) * 100
}

func main() {
	dictPath := flag.String("dict", "", "reference lexicon (word<TAB>buckwalter<TAB>symbols)")
	fold := flag.Bool("fold", false, "fold presentation forms before conversion")
	verbose := flag.Bool("v", false, "print every mismatching word")
	flag.Parse()

	if *dictPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: g2peval -dict <lexicon.tsv> [-fold] [-v]")
		fmt.Fprintln(os.Stderr, "  Scores rule-based pronunciations against a reference lexicon.")
		os.Exit(1)
	}

	dict, err := lexicon.LoadFile(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load dictionary: %v\n", err)
		os.Exit(1)
	}

	conv := arabicg2p.New(arabicg2p.WithFolding(*fold))
	res := evaluate(conv, dict)
	if *verbose {
		printMismatches(os.Stdout, res.mismatches)
	}
	fmt.Fprintf(os.Stdout, "words: %d  exact: %d (%.1f%%)\n", res.words, res.exact, pct(res.exact, res.words))
	fmt.Fprintf(os.Stdout, "symbols: %d  sub: %d  ins: %d  del: %d  PER: %.2f%%\n",
		res.refSymbols, res.errs.Substitutions, res.errs.Insertions, res.errs.Deletions, res.per())
}

// evaluate converts every dictionary word and compares it against the first
// reference pronunciation. Word separators are not scored.
func evaluate(conv *arabicg2p.Converter, dict *lexicon.Dictionary) result {
	words := dict.Words()
	sort.Strings(words)

	var res result
	for _, w := range words {
		ref, _ := dict.SymbolSequence(w)
		hyp := flatten(conv, w)
		errs := lexicon.Align(ref, hyp)

		res.words++
		res.refSymbols += len(ref)
		res.errs = res.errs.Add(errs)
		if errs.Total() == 0 {
			res.exact++
			continue
		}
		res.mismatches = append(res.mismatches, mismatch{word: w, ref: ref, hyp: hyp, errs: errs})
	}
	return res
}

func flatten(conv *arabicg2p.Converter, text string) []phoneme.Symbol {
	words, err := conv.Phonemize(text)
	if err != nil {
		return []phoneme.Symbol{phoneme.Sil}
	}
	var out []phoneme.Symbol
	for _, w := range words {
		out = append(out, w...)
	}
	return out
}

func printMismatches(w io.Writer, ms []mismatch) {
	for _, m := range ms {
		fmt.Fprintf(w, "%s\tref=[%s]\thyp=[%s]\tS=%d I=%d D=%d\n",
			m.word, lexicon.JoinSymbols(m.ref), lexicon.JoinSymbols(m.hyp),
			m.errs.Substitutions, m.errs.Insertions, m.errs.Deletions)
	}
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
