package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ieee0824/arabicg2p/audio"
	"github.com/ieee0824/arabicg2p/manifest"
	"github.com/ieee0824/arabicg2p/vocab"
)

func TestPrintReports(t *testing.T) {
	entries := []manifest.Entry{
		{Line: 1, AudioPath: "a.wav"},
		{Line: 3, AudioPath: "b.wav"},
	}
	reports := []audio.Report{
		{Path: "a.wav", OK: true, Message: "OK - 10 samples, 24000 Hz"},
		{Path: "b.wav", Message: "File not found"},
	}
	var buf bytes.Buffer
	n := printReports(&buf, entries, reports)
	if n != 1 {
		t.Errorf("corrupted = %d, want 1", n)
	}
	out := buf.String()
	for _, want := range []string{
		"OK     1: a.wav - OK - 10 samples, 24000 Hz",
		"FAIL   3: b.wav - File not found",
		"Success rate: 50.0%",
		"  - b.wav: File not found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFirstLines(t *testing.T) {
	entries, err := manifest.Read(strings.NewReader("a.wav|x|0\n\nb.wav|y|0\nc.wav|z|0\n"))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{100, 3},
	}
	for _, tt := range tests {
		if got := firstLines(entries, tt.n); len(got) != tt.want {
			t.Errorf("firstLines(%d) = %d entries, want %d", tt.n, len(got), tt.want)
		}
	}
}

func TestCheckSymbols(t *testing.T) {
	v := vocab.Build([]string{"ʃ k r aː"})
	got := checkSymbols(v, []string{"k", "ʔ"})
	want := []string{`"k" -> index 2`, `"ʔ" -> NOT FOUND`}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMissingTableSymbols(t *testing.T) {
	missing := missingTableSymbols(vocab.Build([]string{"ʃ k r aː"}))
	has := func(s string) bool {
		for _, m := range missing {
			if m == s {
				return true
			}
		}
		return false
	}
	if !has("ʔ") || !has("sil") {
		t.Errorf("missing = %v, want ʔ and sil", missing)
	}
	if has("k") || has("aː") {
		t.Errorf("missing = %v, must not list symbols present in vocab", missing)
	}
}

func TestSafePct(t *testing.T) {
	if safePct(1, 0) != 0 {
		t.Error("safePct with zero total should be 0")
	}
	if safePct(1, 4) != 25 {
		t.Errorf("safePct(1, 4) = %f", safePct(1, 4))
	}
}
