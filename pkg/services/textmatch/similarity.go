package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel prepares a label for comparison: lowercase, diacritics
// stripped, all whitespace removed.
func NormalizeLabel(s string) string {
	s = strings.ToLower(s)

	// Transformers carry state, so build the chain per call; the shared
	// normalizer runs concurrently across categories.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Levenshtein returns the edit distance between two strings, counting
// insertions, deletions and substitutions at cost 1. Transpositions are
// not considered.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j-1]+cost, // substitution
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity scores two strings in [0,100] based on the edit distance
// between their normalized forms. Equal inputs short-circuit to 100
// without running the distance computation. The score is symmetric.
func Similarity(a, b string) float64 {
	if a == b {
		return 100
	}

	na := NormalizeLabel(a)
	nb := NormalizeLabel(b)
	if na == nb {
		return 100
	}

	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}

	dist := Levenshtein(na, nb)
	return float64(maxLen-dist) / float64(maxLen) * 100
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
