// Package manifest reads and writes speech dataset lists of the form
// audio_path|text|speaker_id.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sep separates manifest fields.
const Sep = "|"

// Entry is one manifest line.
type Entry struct {
	Line      int // 1-based line number in the source file
	AudioPath string
	Text      string
	SpeakerID string
	Extra     []string // fields after the speaker ID
	Fields    int      // field count in the source line; 0 for built entries
}

// String renders the entry as a manifest line without a trailing newline.
// A parsed entry keeps its source field count, empty trailing fields
// included; a built entry omits trailing empty fields.
func (e Entry) String() string {
	fields := append([]string{e.AudioPath, e.Text, e.SpeakerID}, e.Extra...)
	n := len(fields)
	if len(e.Extra) == 0 {
		for n > 1 && fields[n-1] == "" {
			n--
		}
	}
	if e.Fields > n && e.Fields <= len(fields) {
		n = e.Fields
	}
	return strings.Join(fields[:n], Sep)
}

// Parse splits one manifest line. The audio path is required.
func Parse(line string) (Entry, error) {
	line = strings.TrimSpace(line)
	parts := strings.Split(line, Sep)
	if parts[0] == "" {
		return Entry{}, fmt.Errorf("missing audio path")
	}
	e := Entry{AudioPath: parts[0], Fields: len(parts)}
	if len(parts) > 1 {
		e.Text = parts[1]
	}
	if len(parts) > 2 {
		e.SpeakerID = parts[2]
	}
	if len(parts) > 3 {
		e.Extra = parts[3:]
	}
	return e, nil
}

// Read parses a manifest. Blank lines are skipped; a line without an
// audio path is an error.
func Read(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	var entries []Entry
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		e.Line = lineNum
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadFile is a convenience wrapper that opens a file path.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write writes entries one per line.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, e.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates path and writes entries to it.
func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
