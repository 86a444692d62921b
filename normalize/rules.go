// Package normalize applies the ordered phonological rewrite rules to
// Buckwalter text and splits the result into words.
//
// The rule list is a single pipeline stage. Later rules assume earlier
// ones have already fired (AF collapses before F expands, the madda
// expands before hamza seating), so entries must not be reordered.
package normalize

import (
	"regexp"
	"strings"
)

// Kind distinguishes literal substitutions from regular expressions.
type Kind int

const (
	Literal Kind = iota
	Pattern
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Pattern:
		return "pattern"
	}
	return "unknown"
}

// Rule is one rewrite. For Pattern rules Replace may reference capture
// groups with ${n}.
type Rule struct {
	Kind    Kind
	Match   string
	Replace string
	re      *regexp.Regexp
}

// Apply rewrites every non-overlapping occurrence of the rule in s.
func (r Rule) Apply(s string) string {
	if r.Kind == Pattern {
		return r.re.ReplaceAllString(s, r.Replace)
	}
	return strings.ReplaceAll(s, r.Match, r.Replace)
}

func lit(match, replace string) Rule {
	return Rule{Kind: Literal, Match: match, Replace: replace}
}

func pat(match, replace string) Rule {
	return Rule{Kind: Pattern, Match: match, Replace: replace, re: regexp.MustCompile(match)}
}

// rules is the ordered rewrite list.
var rules = []Rule{
	// Nunation on a trailing alif
	lit("AF", "F"),
	// Tatweel
	lit("\u0640", ""),
	// Sukun
	lit("o", ""),
	// Fatha before a long alif is part of the alif
	lit("aA", "A"),
	lit("aY", "Y"),
	// Word-initial bare alif is silent
	lit(" A", " "),
	// Nunation
	lit("F", "an"),
	lit("N", "un"),
	lit("K", "in"),
	// Madda
	lit("|", ">A"),

	// Hamza seating
	pat(`Ai`, `<i`),
	pat(`Aa`, `>a`),
	pat(`Au`, `>u`),
	pat(`^>([^auAw])`, `>a${1}`),
	pat(` >([^auAw ])`, ` >a${1}`),
	pat(`<([^i])`, `<i${1}`),
}

// Rules returns a copy of the ordered rule list.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Apply runs every rule once, in order, over the whole string.
func Apply(text string) string {
	for _, r := range rules {
		text = r.Apply(text)
	}
	return text
}

// Split splits normalized text on U+0020. Empty words produced by
// repeated or leading/trailing spaces are kept.
func Split(text string) []string {
	return strings.Split(text, " ")
}

// Words is Apply followed by Split.
func Words(text string) []string {
	return Split(Apply(text))
}
