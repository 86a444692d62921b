package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/ieee0824/arabicg2p"
	"github.com/ieee0824/arabicg2p/lexicon"
	"github.com/ieee0824/arabicg2p/manifest"
	"github.com/ieee0824/arabicg2p/vocab"
)

func main() {
	manifestPath := flag.String("manifest", "", "dataset list (audio|text|speaker) whose text column is converted")
	output := flag.String("output", "", "output path (default stdout)")
	dictPath := flag.String("dict", "", "pronunciation dictionary overriding the rules")
	fold := flag.Bool("fold", false, "fold presentation forms and strip bidi marks before conversion")
	vocabPath := flag.String("vocab", "", "write a symbol index table built from the output")
	workers := flag.Int("workers", runtime.NumCPU(), "number of parallel workers for -manifest")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: g2p [options] < text.txt > phonemes.txt")
		fmt.Fprintln(os.Stderr, "       g2p -manifest train_list.txt -output train_list_ipa.txt")
		fmt.Fprintln(os.Stderr, "  Converts Arabic text to phoneme symbols, one utterance per line.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := []arabicg2p.Option{arabicg2p.WithFolding(*fold)}
	if *dictPath != "" {
		dict, err := lexicon.LoadFile(*dictPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading dictionary: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Dictionary: %d words\n", len(dict.Entries))
		opts = append(opts, arabicg2p.WithDictionary(dict))
	}
	conv := arabicg2p.New(opts...)

	out := io.Writer(os.Stdout)
	var outFile *os.File
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating output: %v\n", err)
			os.Exit(1)
		}
		outFile = f
		out = f
	}

	var produced []string
	if *manifestPath != "" {
		entries, err := manifest.ReadFile(*manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading manifest: %v\n", err)
			os.Exit(1)
		}
		converted := convertEntries(conv, entries, *workers)
		if err := manifest.Write(out, converted); err != nil {
			fmt.Fprintf(os.Stderr, "write error: %v\n", err)
			os.Exit(1)
		}
		for _, e := range converted {
			produced = append(produced, e.Text)
		}
	} else {
		var err error
		produced, err = convertLines(conv, os.Stdin, out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing output: %v\n", err)
			os.Exit(1)
		}
	}

	st := conv.Stats()
	fmt.Fprintf(os.Stderr, "Utterances: %d (failed: %d, dictionary words: %d, dropped characters: %d)\n",
		st.Utterances, st.Failures, st.DictHits, st.DroppedRunes)

	if *vocabPath != "" {
		v := vocab.Build(produced)
		f, err := os.Create(*vocabPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating vocab: %v\n", err)
			os.Exit(1)
		}
		if err := v.Write(f); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "error writing vocab: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing vocab: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Vocab: %s (%d symbols)\n", *vocabPath, v.Len())
	}
}

// convertLines converts every input line and writes one output line each.
func convertLines(conv *arabicg2p.Converter, r io.Reader, w io.Writer) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	bw := bufio.NewWriter(w)

	var produced []string
	for scanner.Scan() {
		ph := conv.Process(scanner.Text())
		if _, err := fmt.Fprintln(bw, ph); err != nil {
			return produced, fmt.Errorf("write: %w", err)
		}
		produced = append(produced, ph)
	}
	if err := scanner.Err(); err != nil {
		return produced, fmt.Errorf("read: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return produced, fmt.Errorf("write: %w", err)
	}
	return produced, nil
}

// convertEntries replaces each entry's text with its phoneme string.
// Entry order is preserved.
func convertEntries(conv *arabicg2p.Converter, entries []manifest.Entry, workers int) []manifest.Entry {
	if workers < 1 {
		workers = 1
	}
	out := make([]manifest.Entry, len(entries))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range entries {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			e := entries[i]
			e.Text = conv.Process(e.Text)
			out[i] = e
		}(i)
	}
	wg.Wait()
	return out
}
