package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ieee0824/arabicg2p"
	"github.com/ieee0824/arabicg2p/manifest"
)

func TestConvertLines(t *testing.T) {
	conv := arabicg2p.New(arabicg2p.WithLogger(nil))
	in := "شكرا\nكيف حالك\n\n-\n"
	var out bytes.Buffer

	produced, err := convertLines(conv, strings.NewReader(in), &out)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ʃ k r aː", "k j f + ħ aː l k", "sil", "sil"}
	if len(produced) != len(want) {
		t.Fatalf("produced %d lines, want %d", len(produced), len(want))
	}
	for i := range want {
		if produced[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, produced[i], want[i])
		}
	}
	if out.String() != strings.Join(want, "\n")+"\n" {
		t.Errorf("output = %q", out.String())
	}
}

type failWriter struct{}

var errDiskFull = errors.New("disk full")

func (failWriter) Write(p []byte) (int, error) { return 0, errDiskFull }

func TestConvertLinesWriteError(t *testing.T) {
	conv := arabicg2p.New(arabicg2p.WithLogger(nil))
	_, err := convertLines(conv, strings.NewReader("شكرا\n"), failWriter{})
	if !errors.Is(err, errDiskFull) {
		t.Errorf("convertLines error = %v, want %v", err, errDiskFull)
	}
}

func TestConvertEntries(t *testing.T) {
	conv := arabicg2p.New(arabicg2p.WithLogger(nil))
	entries := []manifest.Entry{
		{Line: 1, AudioPath: "a.wav", Text: "شكرا", SpeakerID: "0"},
		{Line: 2, AudioPath: "b.wav", Text: "مرحبا", SpeakerID: "1"},
		{Line: 3, AudioPath: "c.wav", Text: "", SpeakerID: "1"},
		{Line: 4, AudioPath: "d.wav", Text: "شكرا", Fields: 3},
	}

	got := convertEntries(conv, entries, 2)
	want := []string{"a.wav|ʃ k r aː|0", "b.wav|m r ħ b aː|1", "c.wav|sil|1", "d.wav|ʃ k r aː|"}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i].String(), want[i])
		}
	}
	if entries[0].Text != "شكرا" {
		t.Error("input entries were modified")
	}
}
