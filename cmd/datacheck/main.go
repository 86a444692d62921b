package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ieee0824/arabicg2p"
	"github.com/ieee0824/arabicg2p/audio"
	"github.com/ieee0824/arabicg2p/manifest"
	"github.com/ieee0824/arabicg2p/phoneme"
	"github.com/ieee0824/arabicg2p/vocab"
)

// sampleTexts are converted as a G2P smoke test.
var sampleTexts = []string{
	"مرحبا",    // hello
	"كيف حالك", // how are you
	"شكرا",     // thank you
	"الله",
	"Egypt",
}

// sampleSymbols must be present in the symbol index table.
var sampleSymbols = []string{"ʔ", "b", "a", "aː", "sil", "h", "ħ", "g"}

func main() {
	maxCheck := flag.Int("max", 100, "check entries within the first N lines (blank lines count)")
	vocabPath := flag.String("vocab", "", "symbol index table to check sample symbols against")
	workers := flag.Int("workers", audio.DefaultConfig().Workers, "number of parallel decoders")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: datacheck [options] <train_list.txt>")
		fmt.Fprintln(os.Stderr, "  Checks that the audio files of a dataset list can be decoded")
		fmt.Fprintln(os.Stderr, "  and smoke-tests the G2P front end.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	listPath := flag.Arg(0)

	entries, err := manifest.ReadFile(listPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", listPath, err)
		os.Exit(1)
	}
	entries = firstLines(entries, *maxCheck)
	fmt.Printf("Checking up to %d files from %s\n", len(entries), listPath)

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.AudioPath
	}
	reports := audio.CheckAll(context.Background(), paths, audio.Config{Workers: *workers})
	corrupted := printReports(os.Stdout, entries, reports)

	fmt.Println()
	fmt.Println("G2P:")
	conv := arabicg2p.New()
	for _, text := range sampleTexts {
		fmt.Printf("  %q -> %s\n", text, conv.Process(text))
	}

	if *vocabPath != "" {
		v, err := vocab.LoadFile(*vocabPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading vocab: %v\n", err)
		} else {
			fmt.Println()
			fmt.Println("Vocab:")
			for _, line := range checkSymbols(v, sampleSymbols) {
				fmt.Println("  " + line)
			}
			if missing := missingTableSymbols(v); len(missing) > 0 {
				fmt.Printf("  %d table symbols not in vocab: %s\n", len(missing), strings.Join(missing, " "))
			}
		}
	}

	if corrupted > 0 {
		fmt.Printf("\nFound %d corrupted files. Remove them with dataclean or re-export the audio.\n", corrupted)
	}
}

// firstLines keeps the entries that start within the first n source lines.
func firstLines(entries []manifest.Entry, n int) []manifest.Entry {
	for i, e := range entries {
		if e.Line > n {
			return entries[:i]
		}
	}
	return entries
}

// printReports writes one line per report and a summary; it returns the
// number of failed entries.
func printReports(w io.Writer, entries []manifest.Entry, reports []audio.Report) int {
	var failed []audio.Report
	for i, rep := range reports {
		status := "OK  "
		if !rep.OK {
			status = "FAIL"
			failed = append(failed, rep)
		}
		fmt.Fprintf(w, "%s %3d: %s - %s\n", status, entries[i].Line, rep.Path, rep.Message)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Total checked: %d\n", len(reports))
	fmt.Fprintf(w, "Corrupted files: %d\n", len(failed))
	fmt.Fprintf(w, "Success rate: %.1f%%\n", safePct(len(reports)-len(failed), len(reports)))

	if len(failed) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Corrupted files:")
		for _, rep := range failed {
			fmt.Fprintf(w, "  - %s: %s\n", rep.Path, rep.Message)
		}
	}
	return len(failed)
}

// checkSymbols reports the index of each symbol or that it is missing.
func checkSymbols(v *vocab.Vocab, symbols []string) []string {
	lines := make([]string, len(symbols))
	for i, s := range symbols {
		if idx, ok := v.Index(s); ok {
			lines[i] = fmt.Sprintf("%q -> index %d", s, idx)
		} else {
			lines[i] = fmt.Sprintf("%q -> NOT FOUND", s)
		}
	}
	return lines
}

// missingTableSymbols lists symbols the converter can emit that v lacks.
func missingTableSymbols(v *vocab.Vocab) []string {
	var missing []string
	for _, s := range phoneme.AllSymbols() {
		if _, ok := v.Index(string(s)); !ok {
			missing = append(missing, string(s))
		}
	}
	return missing
}

func safePct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
