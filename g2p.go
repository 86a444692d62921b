// Package arabicg2p converts Arabic text to phoneme symbol strings for a
// speech front end.
//
// The conversion is a fixed chain: Buckwalter transliteration, ordered
// phonological rewrite rules, a split on spaces, per-word tokenization and
// symbol mapping. Words are rendered with single spaces between symbols and
// " + " between words; "sil" marks silence.
package arabicg2p

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/ieee0824/arabicg2p/lexicon"
	"github.com/ieee0824/arabicg2p/normalize"
	"github.com/ieee0824/arabicg2p/phoneme"
	"github.com/ieee0824/arabicg2p/translit"
)

// ErrInvalidUTF8 is returned by Phonemize for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Word is the symbol sequence of one word; silence is []Symbol{Sil}.
type Word []phoneme.Symbol

// String renders the word with single spaces between symbols.
func (w Word) String() string {
	return lexicon.JoinSymbols(w)
}

// IsSilence reports whether w is the silence word.
func (w Word) IsSilence() bool {
	return len(w) == 1 && w[0] == phoneme.Sil
}

var silenceWord = Word{phoneme.Sil}

// Stats counts events across all calls of one Converter.
type Stats struct {
	Utterances   int64 // Process calls
	Failures     int64 // Process calls that fell back to "sil"
	DroppedRunes int64 // runes skipped by the tokenizer
	DictHits     int64 // words taken from the dictionary
}

// Converter runs the G2P pipeline. A Converter is safe for concurrent use.
// The zero value converts with the rules only and logs to the standard logger.
type Converter struct {
	logger *log.Logger
	fold   bool
	dict   *lexicon.Dictionary

	utterances   atomic.Int64
	failures     atomic.Int64
	droppedRunes atomic.Int64
	dictHits     atomic.Int64
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for pipeline failures. nil disables logging.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		c.logger = l
	}
}

// WithFolding enables presentation-form and bidi-mark folding before
// transliteration.
func WithFolding(enabled bool) Option {
	return func(c *Converter) {
		c.fold = enabled
	}
}

// WithDictionary sets a pronunciation dictionary consulted before the rules.
// Words are looked up by their surface form.
func WithDictionary(d *lexicon.Dictionary) Option {
	return func(c *Converter) {
		c.dict = d
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger: log.New(os.Stderr, "arabicg2p: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stats returns a snapshot of the counters.
func (c *Converter) Stats() Stats {
	return Stats{
		Utterances:   c.utterances.Load(),
		Failures:     c.failures.Load(),
		DroppedRunes: c.droppedRunes.Load(),
		DictHits:     c.dictHits.Load(),
	}
}

// Process converts an utterance to its rendered symbol string. It never
// fails: any pipeline error is logged and "sil" is returned instead.
func (c *Converter) Process(utterance string) (out string) {
	c.utterances.Add(1)
	defer func() {
		if r := recover(); r != nil {
			out = c.fail(utterance, fmt.Errorf("panic: %v", r))
		}
	}()

	words, err := c.Phonemize(utterance)
	if err != nil {
		return c.fail(utterance, err)
	}
	return Render(words)
}

func (c *Converter) fail(utterance string, err error) string {
	c.failures.Add(1)
	logger := c.logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("process utterance %q: %v", utterance, err)
	return string(phoneme.Sil)
}

// Phonemize converts an utterance to one Word per space-separated word.
func (c *Converter) Phonemize(utterance string) ([]Word, error) {
	if !utf8.ValidString(utterance) {
		return nil, ErrInvalidUTF8
	}
	if c.fold {
		folded, err := translit.Fold(utterance)
		if err != nil {
			return nil, fmt.Errorf("fold: %w", err)
		}
		utterance = folded
	}

	bw := translit.Transliterate(utterance)
	normalized := normalize.Words(bw)

	var surface []string
	if c.dict != nil {
		surface = strings.Split(utterance, " ")
		if len(surface) != len(normalized) {
			return nil, fmt.Errorf("normalization changed word count: %d -> %d", len(surface), len(normalized))
		}
	}

	words := make([]Word, len(normalized))
	for i, w := range normalized {
		if surface != nil {
			if syms, ok := c.dict.SymbolSequence(surface[i]); ok {
				c.dictHits.Add(1)
				words[i] = Word(syms)
				continue
			}
		}
		words[i] = c.word(w)
	}
	return words, nil
}

// word converts one normalized Buckwalter word.
func (c *Converter) word(w string) Word {
	if IsSilence(w) {
		return silenceWord
	}
	units, skipped := lexicon.TokenizeCount(w)
	if skipped > 0 {
		c.droppedRunes.Add(int64(skipped))
	}
	if len(units) == 0 {
		return silenceWord
	}
	return Word(phoneme.ToSymbols(units))
}

// IsSilence reports whether a split word stands for a pause: "-", "sil",
// or empty/whitespace-only.
func IsSilence(w string) bool {
	return w == "-" || w == string(phoneme.Sil) || strings.TrimSpace(w) == ""
}

// Render joins words with " + ".
func Render(words []Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.String()
	}
	return strings.Join(parts, phoneme.WordSeparator)
}

// Process converts an utterance with a default Converter.
func Process(utterance string) string {
	return defaultConverter.Process(utterance)
}

var defaultConverter = New()
