// Package lipi is the transliteration layer at the boundary of the
// derivation engine: the engine itself consumes and produces only the
// internal SLP1-like alphabet package sound defines, and converting to or
// from any other script happens here, never inside a derivation driver.
// Per spec.md §6, the interface is deliberately narrow: a scheme is just an
// ordered set of (source_grapheme, slp1_grapheme) pairs, not a general
// script-detection or normalization pipeline (that lives in
// `_examples/original_source/vidyut-lipi`'s much larger autogenerated
// scheme tables, which this package does not replicate).
package lipi

import "strings"

// SchemeID names one of the external encodings this package knows how to
// convert to and from SLP1.
type SchemeID string

const (
	SLP1 SchemeID = "slp1"
	IAST SchemeID = "iast"
)

// Pair is one grapheme correspondence: a scheme's own grapheme alongside
// its SLP1 equivalent, per spec.md §6's "(scheme_id, (source_grapheme,
// slp1_grapheme))" interface.
type Pair struct {
	Grapheme string
	SLP1     string
}

// Scheme is a bidirectional grapheme table for one external encoding.
// Lookups try the longest graphemes first so that multi-rune graphemes
// (IAST's aspirated consonants, long-vowel digraphs) never get shadowed by
// a shorter prefix match.
type Scheme struct {
	ID           SchemeID
	toSLP1       map[string]string
	fromSLP1     map[string]string
	maxGraphLen  int
	maxSLP1Len   int
}

// NewScheme builds a Scheme from its grapheme pairs. Pairs later in the
// slice do not override earlier ones with the same grapheme or SLP1 text.
func NewScheme(id SchemeID, pairs []Pair) *Scheme {
	s := &Scheme{
		ID:       id,
		toSLP1:   make(map[string]string, len(pairs)),
		fromSLP1: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := s.toSLP1[p.Grapheme]; !ok {
			s.toSLP1[p.Grapheme] = p.SLP1
		}
		if _, ok := s.fromSLP1[p.SLP1]; !ok {
			s.fromSLP1[p.SLP1] = p.Grapheme
		}
		if n := len([]rune(p.Grapheme)); n > s.maxGraphLen {
			s.maxGraphLen = n
		}
		if n := len([]rune(p.SLP1)); n > s.maxSLP1Len {
			s.maxSLP1Len = n
		}
	}
	return s
}

// ToSLP1 converts text in this scheme's own script into the internal
// alphabet, via longest-match-first lookup.
func (s *Scheme) ToSLP1(text string) string {
	return convert(text, s.toSLP1, s.maxGraphLen)
}

// FromSLP1 converts internal-alphabet text into this scheme's own script.
func (s *Scheme) FromSLP1(text string) string {
	return convert(text, s.fromSLP1, s.maxSLP1Len)
}

// convert performs a greedy longest-match substitution: at each position it
// tries the longest known grapheme first, falling back to shorter ones,
// and passes an unrecognized rune through unchanged (ASCII punctuation,
// digits, whitespace all fall through this way).
func convert(text string, table map[string]string, maxLen int) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		matched := false
		for n := maxLen; n >= 1; n-- {
			if i+n > len(runes) {
				continue
			}
			candidate := string(runes[i : i+n])
			if repl, ok := table[candidate]; ok {
				b.WriteString(repl)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}
