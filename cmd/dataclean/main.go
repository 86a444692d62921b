package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ieee0824/arabicg2p/audio"
	"github.com/ieee0824/arabicg2p/manifest"
)

type corruptedEntry struct {
	line int
	path string
	err  string
}

func main() {
	workers := flag.Int("workers", audio.DefaultConfig().Workers, "number of parallel decoders")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dataclean [options] <dataset_file> [output_file]")
		fmt.Fprintln(os.Stderr, "  Removes lines whose audio file is missing or cannot be decoded.")
		fmt.Fprintln(os.Stderr, "  Example: dataclean train_list.txt train_list_cleaned.txt")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)
	if outputPath == "" {
		outputPath = derivedPath(inputPath, "_cleaned")
	}

	entries, err := manifest.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", inputPath, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Checking audio files in %s...\n", inputPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.AudioPath
	}
	reports := audio.CheckAll(ctx, paths, audio.Config{Workers: *workers})
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "interrupted; no files written")
		os.Exit(1)
	}
	valid, corrupted := partition(entries, reports)
	for _, c := range corrupted {
		fmt.Fprintf(os.Stderr, "FAIL line %d: %s - %s\n", c.line, c.path, c.err)
	}

	fmt.Fprintf(os.Stderr, "Writing cleaned dataset to %s...\n", outputPath)
	if err := manifest.WriteFile(outputPath, valid); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "Summary:")
	fmt.Fprintf(os.Stderr, "Total lines: %d\n", len(entries))
	fmt.Fprintf(os.Stderr, "Valid files: %d\n", len(valid))
	fmt.Fprintf(os.Stderr, "Corrupted files: %d\n", len(corrupted))
	fmt.Fprintf(os.Stderr, "Success rate: %.1f%%\n", safePct(len(valid), len(entries)))

	if len(corrupted) == 0 {
		fmt.Fprintln(os.Stderr, "All files are valid. No cleaning needed.")
		return
	}

	listPath := derivedPath(inputPath, "_corrupted")
	listPath = strings.TrimSuffix(listPath, filepath.Ext(listPath)) + ".txt"
	if err := writeCorruptedFile(listPath, corrupted); err != nil {
		fmt.Fprintf(os.Stderr, "error writing corrupted list: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Corrupted files list saved to: %s\n", listPath)
	fmt.Fprintln(os.Stderr, "Some files were corrupted and removed. Use the cleaned dataset file for training.")
}

// derivedPath inserts suffix before the extension: train.txt -> train_cleaned.txt.
func derivedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// partition splits entries by their check report.
func partition(entries []manifest.Entry, reports []audio.Report) ([]manifest.Entry, []corruptedEntry) {
	var valid []manifest.Entry
	var corrupted []corruptedEntry
	for i, e := range entries {
		if reports[i].OK {
			valid = append(valid, e)
			continue
		}
		corrupted = append(corrupted, corruptedEntry{line: e.Line, path: e.AudioPath, err: reports[i].Message})
	}
	return valid, corrupted
}

// writeCorrupted writes the tab-separated Line/File/Error table.
func writeCorrupted(w io.Writer, corrupted []corruptedEntry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Line\tFile\tError")
	for _, c := range corrupted {
		fmt.Fprintf(bw, "%d\t%s\t%s\n", c.line, c.path, c.err)
	}
	return bw.Flush()
}

func writeCorruptedFile(path string, corrupted []corruptedEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeCorrupted(f, corrupted); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func safePct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
