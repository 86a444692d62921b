package arabicg2p

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/ieee0824/arabicg2p/lexicon"
)

func quiet() *Converter {
	return New(WithLogger(nil))
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"shukran", "شكرا", "ʃ k r aː"},
		{"marhaban", "مرحبا", "m r ħ b aː"},
		{"kayf_halak", "كيف حالك", "k j f + ħ aː l k"},
		{"allah", "الله", "aː l l h"},
		{"latin", "Egypt", "ʕ ɣ j t"},
		{"two_words", "شكرا جزيلا", "ʃ k r aː + g z j l aː"},

		// diacritics
		{"fatha", "كَتَبَ", "k a t a b a"},
		{"sukun", "قُلْ", "q u l"},
		{"shadda_dropped", "محمّد", "m ħ m d"},
		{"fatha_alif", "كَان", "k aː n"},
		{"tatweel", "شـكرا", "ʃ k r aː"},
		{"ta_marbuta_dropped", "مدرسة", "m d r s"},

		// nunation
		{"tanwin_fath", "كتاباً", "k t aː b a n"},
		{"tanwin_damm", "كتابٌ", "k t aː b u n"},
		{"tanwin_kasr", "كتابٍ", "k t aː b i n"},

		// word-initial alif
		{"initial_alif_after_space", "في البيت", "f j + l b j t"},
		{"initial_alif_at_start", "البيت", "aː l b j t"},

		// hamza seating
		{"hamza_initial", "أحمد", "ʔ a ħ m d"},
		{"hamza_after_space", "هو أحمد", "h w + ʔ a ħ m d"},
		{"hamza_medial", "سأل", "s ʔ l"},
		{"hamza_below", "إسلام", "ʔ i s l aː m"},
		{"alif_kasra", "اِبن", "ʔ i b n"},
		{"madda", "آمن", "ʔ aː m n"},

		// silence
		{"empty", "", "sil"},
		{"dash", "-", "sil"},
		{"sil", "sil", "sil"},
		{"double_space", "شكرا  جزيلا", "ʃ k r aː + sil + g z j l aː"},
		{"trailing_space", "شكرا ", "ʃ k r aː + sil"},
		{"dash_between", "شكرا - جزيلا", "ʃ k r aː + sil + g z j l aː"},
		{"unmapped_only", "123", "sil"},
	}

	c := quiet()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Process(tt.input)
			if got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProcessHamzaCollapse(t *testing.T) {
	c := quiet()
	for _, seat := range []string{"أ", "إ", "ء", "ئ", "ؤ"} {
		if got := c.Process(seat); got != "ʔ" {
			t.Errorf("Process(%q) = %q, want ʔ", seat, got)
		}
	}
}

func TestProcessInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithLogger(log.New(&buf, "", 0)))

	got := c.Process("شكرا \xff")
	if got != "sil" {
		t.Errorf("Process(invalid) = %q, want sil", got)
	}
	if !strings.Contains(buf.String(), "process utterance") {
		t.Errorf("log = %q, want failure line", buf.String())
	}
	if st := c.Stats(); st.Failures != 1 || st.Utterances != 1 {
		t.Errorf("Stats = %+v, want 1 failure of 1 utterance", st)
	}

	if _, err := c.Phonemize("\xff"); err != ErrInvalidUTF8 {
		t.Errorf("Phonemize(invalid) error = %v, want ErrInvalidUTF8", err)
	}
}

func TestZeroConverter(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	var c Converter
	if got := c.Process("\xff"); got != "sil" {
		t.Errorf("Process(invalid) = %q, want sil", got)
	}
	if got := c.Process("شكرا"); got != "ʃ k r aː" {
		t.Errorf("Process = %q, want ʃ k r aː", got)
	}
	if !strings.Contains(buf.String(), "process utterance") {
		t.Errorf("log = %q, want failure line", buf.String())
	}
	if st := c.Stats(); st.Failures != 1 || st.Utterances != 2 {
		t.Errorf("Stats = %+v", st)
	}
}

func TestProcessWordCount(t *testing.T) {
	c := quiet()
	inputs := []string{
		"شكرا",
		"كيف حالك",
		"في البيت الكبير",
		"هو أحمد - sil يا",
		"  ",
		"a b c d e",
	}
	for _, in := range inputs {
		n := len(strings.Split(in, " "))
		got := c.Process(in)
		if seps := strings.Count(got, " + "); seps != n-1 {
			t.Errorf("Process(%q) = %q: %d separators, want %d", in, got, seps, n-1)
		}
	}
}

func TestProcessRoundTrip(t *testing.T) {
	c := quiet()
	inputs := []string{"شكرا", "كيف حالك", "أحمد", "آمن", "كتاباً"}
	for _, in := range inputs {
		first := c.Process(in)
		second := c.Process(first)
		if second == "" {
			t.Errorf("Process(%q) = empty", first)
		}
		third := c.Process(second)
		if third == "" {
			t.Errorf("Process(%q) = empty", second)
		}
	}
	if st := c.Stats(); st.Failures != 0 {
		t.Errorf("round trip failures = %d, want 0", st.Failures)
	}
}

func TestProcessTotality(t *testing.T) {
	c := quiet()
	inputs := []string{"", " ", "\t", "\x00", "\xc3\x28", "+", "a+b", "ـــ", "ًٌٍ", "😀", strings.Repeat("ب", 1000)}
	for _, in := range inputs {
		if got := c.Process(in); got == "" {
			t.Errorf("Process(%q) = empty", in)
		}
	}
}

func TestDroppedRunes(t *testing.T) {
	c := quiet()
	c.Process("مدرسة")
	c.Process("محمّد")
	if got := c.Stats().DroppedRunes; got != 2 {
		t.Errorf("DroppedRunes = %d, want 2", got)
	}
}

func TestWithDictionary(t *testing.T) {
	d, err := lexicon.Load(strings.NewReader("شكرا\t$krA\tʃ u k r a n\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := New(WithLogger(nil), WithDictionary(d))

	got := c.Process("شكرا جدا")
	want := "ʃ u k r a n + g d aː"
	if got != want {
		t.Errorf("Process = %q, want %q", got, want)
	}
	if st := c.Stats(); st.DictHits != 1 {
		t.Errorf("DictHits = %d, want 1", st.DictHits)
	}
}

func TestWithFolding(t *testing.T) {
	tests := []struct {
		input string
		fold  bool
		want  string
	}{
		{"\uFEFB", false, "sil"},
		{"\uFEFB", true, "l aː"},
		{"\u200Fشكرا", true, "ʃ k r aː"},
		{"\uFEB7\uFEDC\uFEAE\u0627", true, "ʃ k r aː"},
	}
	for _, tt := range tests {
		c := New(WithLogger(nil), WithFolding(tt.fold))
		if got := c.Process(tt.input); got != tt.want {
			t.Errorf("Process(%q) fold=%v = %q, want %q", tt.input, tt.fold, got, tt.want)
		}
	}
}

func TestPhonemize(t *testing.T) {
	words, err := quiet().Phonemize("شكرا - ")
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 3 {
		t.Fatalf("len(words) = %d, want 3", len(words))
	}
	if words[0].String() != "ʃ k r aː" {
		t.Errorf("words[0] = %q", words[0].String())
	}
	if !words[1].IsSilence() || !words[2].IsSilence() {
		t.Errorf("words[1:] = %v, want silence", words[1:])
	}
}

func TestProcessConcurrent(t *testing.T) {
	c := quiet()
	inputs := []string{"شكرا", "كيف حالك", "أحمد", "", "في البيت"}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = c.Process(in)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				i := k % len(inputs)
				if got := c.Process(inputs[i]); got != want[i] {
					t.Errorf("Process(%q) = %q, want %q", inputs[i], got, want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPackageProcess(t *testing.T) {
	if got := Process("شكرا"); got != "ʃ k r aː" {
		t.Errorf("Process = %q", got)
	}
}
