package lexicon

import "github.com/ieee0824/arabicg2p/phoneme"

// Errors counts the edit operations that turn a reference symbol sequence
// into a hypothesis.
type Errors struct {
	Substitutions int
	Insertions    int // hypothesis symbols with no reference counterpart
	Deletions     int // reference symbols missing from the hypothesis
}

// Total is the edit distance.
func (e Errors) Total() int {
	return e.Substitutions + e.Insertions + e.Deletions
}

// Add returns the element-wise sum of e and o.
func (e Errors) Add(o Errors) Errors {
	return Errors{
		Substitutions: e.Substitutions + o.Substitutions,
		Insertions:    e.Insertions + o.Insertions,
		Deletions:     e.Deletions + o.Deletions,
	}
}

// Align computes a minimum-cost alignment of hyp against ref and returns
// its operation counts. On ties a match or substitution is preferred over
// a deletion, and a deletion over an insertion.
func Align(ref, hyp []phoneme.Symbol) Errors {
	// cost[i][j] is the distance between ref[:i] and hyp[:j].
	cost := make([][]int, len(ref)+1)
	for i := range cost {
		cost[i] = make([]int, len(hyp)+1)
		cost[i][0] = i
	}
	for j := range cost[0] {
		cost[0][j] = j
	}
	for i := 1; i <= len(ref); i++ {
		for j := 1; j <= len(hyp); j++ {
			diag := cost[i-1][j-1]
			if ref[i-1] != hyp[j-1] {
				diag++
			}
			cost[i][j] = min(diag, cost[i-1][j]+1, cost[i][j-1]+1)
		}
	}

	var e Errors
	i, j := len(ref), len(hyp)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1] && cost[i][j] == cost[i-1][j-1]:
			i, j = i-1, j-1
		case i > 0 && j > 0 && cost[i][j] == cost[i-1][j-1]+1:
			e.Substitutions++
			i, j = i-1, j-1
		case i > 0 && cost[i][j] == cost[i-1][j]+1:
			e.Deletions++
			i--
		default:
			e.Insertions++
			j--
		}
	}
	return e
}

// PhonemeEditDistance is the Levenshtein distance between two symbol sequences.
func PhonemeEditDistance(a, b []phoneme.Symbol) int {
	return Align(a, b).Total()
}
